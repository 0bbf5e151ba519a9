package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "gdata", cfg.Store)
	assert.Equal(t, 1.0, cfg.Speed)
	assert.Equal(t, DefaultShopURL, cfg.ShopURL)
}

func TestLoadFileThenEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "plantetyven.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
store: file
data: /tmp/streak.json
theme: neon
speed: 2.5
seed: 99
`), 0o644))
	t.Setenv(EnvPrefix+"THEME", "mono")
	t.Setenv(EnvPrefix+"VERBOSE", "true")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Store)
	assert.Equal(t, "/tmp/streak.json", cfg.Data)
	assert.Equal(t, "mono", cfg.Theme, "env wins over file")
	assert.Equal(t, 2.5, cfg.Speed)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, DefaultShopURL, cfg.ShopURL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvParseErrors(t *testing.T) {
	for _, k := range []string{"SPEED", "SEED", "VERBOSE"} {
		cfg := Default()
		err := cfg.applyEnv(func(name string) (string, bool) {
			if name == EnvPrefix+k {
				return "not-a-value", true
			}
			return "", false
		})
		assert.Error(t, err, k)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Store = "redis"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	cfg = Default()
	cfg.Speed = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	cfg = Default()
	cfg.Store = "MEMORY"
	assert.NoError(t, cfg.Validate())

	cfg = Default()
	cfg.Theme = "neon2"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	cfg = Default()
	cfg.Theme = "Neon"
	assert.NoError(t, cfg.Validate())
}

func TestLoadLeavesValidationToCaller(t *testing.T) {
	p := filepath.Join(t.TempDir(), "plantetyven.yaml")
	require.NoError(t, os.WriteFile(p, []byte("store: redis\n"), 0o644))
	t.Setenv(EnvPrefix+"THEME", "sepia")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "redis", cfg.Store)
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	cfg.Store = "memory"
	cfg.Theme = "mono"
	assert.NoError(t, cfg.Validate())
}
