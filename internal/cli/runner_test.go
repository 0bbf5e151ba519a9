package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShelf(t *testing.T) {
	assert.Equal(t, 0, Run([]string{"shelf", "--seed", "1", "--store", "memory", "--theme", "mono"}))
}

func TestStreakFileStore(t *testing.T) {
	data := filepath.Join(t.TempDir(), "streak.json")
	require.NoError(t, os.WriteFile(data, []byte(`{"plantStreak":"6"}`), 0o644))

	assert.Equal(t, 0, Run([]string{"streak", "--store", "file", "--data", data}))
	assert.Equal(t, 0, Run([]string{"streak", "reset", "--store", "file", "--data", data}))

	b, err := os.ReadFile(data)
	require.NoError(t, err)
	assert.JSONEq(t, `{"plantStreak":"0"}`, string(b))
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "s.json")
	cfg := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("store: file\ndata: "+data+"\n"), 0o644))

	assert.Equal(t, 0, Run([]string{"--config", cfg, "streak", "reset"}))
	_, err := os.Stat(data)
	assert.NoError(t, err, "config file picked the file store")
}

func TestUsageErrors(t *testing.T) {
	cases := [][]string{
		{"bogus"},
		{"streak", "extra"},
		{"shelf", "--nope"},
		{"shelf", "--store", "redis"},
		{"shelf", "--store", "memory", "--speed=-1"},
	}
	for _, args := range cases {
		assert.Equal(t, 2, Run(args), "%v", args)
	}
}

func TestBadConfigFile(t *testing.T) {
	assert.Equal(t, 1, Run([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "streak"}))
}

func TestFlagsOverrideBadConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "plantetyven.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("store: redis\n"), 0o644))
	assert.Equal(t, 0, Run([]string{"--config", cfg, "--store", "memory", "shelf", "--seed", "3"}))
	assert.Equal(t, 2, Run([]string{"--config", cfg, "shelf"}))

	t.Setenv("PLANTETYVEN_STORE", "redis")
	assert.Equal(t, 0, Run([]string{"shelf", "--store", "memory"}))
}

func TestUnknownTheme(t *testing.T) {
	assert.Equal(t, 2, Run([]string{"shelf", "--store", "memory", "--theme", "neon2"}))
}
