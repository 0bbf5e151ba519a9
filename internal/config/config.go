// Package config loads game settings: defaults, then an optional YAML file,
// then PLANTETYVEN_* environment overrides. CLI flags are applied last by
// the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/plantetyven/internal/store"
)

const EnvPrefix = "PLANTETYVEN_"

const DefaultShopURL = "https://plantasjen.no"

type Config struct {
	Store   string  `yaml:"store"`    // gdata | file | memory
	Data    string  `yaml:"data"`     // file store path
	Theme   string  `yaml:"theme"`    // classic | neon | mono
	Speed   float64 `yaml:"speed"`    // animation speed multiplier
	Seed    int64   `yaml:"seed"`     // 0 = time based
	ShopURL string  `yaml:"shop_url"` // end panel link
	LogFile string  `yaml:"log_file"`
	Verbose bool    `yaml:"verbose"`
}

func Default() Config {
	return Config{
		Store:   store.BackendGdata,
		Theme:   "classic",
		Speed:   1,
		ShopURL: DefaultShopURL,
	}
}

// Load reads path (missing file is fine when path is empty) and applies env.
// The result is not validated; callers merge flags first, then Validate.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(k string) (string, bool) {
		v, ok := lookup(EnvPrefix + k)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}
	if v, ok := get("STORE"); ok {
		c.Store = v
	}
	if v, ok := get("DATA"); ok {
		c.Data = v
	}
	if v, ok := get("THEME"); ok {
		c.Theme = v
	}
	if v, ok := get("SHOP_URL"); ok {
		c.ShopURL = v
	}
	if v, ok := get("LOG_FILE"); ok {
		c.LogFile = v
	}
	if v, ok := get("SPEED"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sSPEED: %w", EnvPrefix, err)
		}
		c.Speed = f
	}
	if v, ok := get("SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		c.Seed = n
	}
	if v, ok := get("VERBOSE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sVERBOSE: %w", EnvPrefix, err)
		}
		c.Verbose = b
	}
	return nil
}

var ErrInvalid = errors.New("invalid config")

// Themes lists the accepted theme names. Empty means classic.
var Themes = []string{"classic", "neon", "mono"}

func (c Config) Validate() error {
	switch strings.ToLower(c.Store) {
	case store.BackendGdata, store.BackendFile, store.BackendMemory:
	default:
		return fmt.Errorf("%w: store %q", ErrInvalid, c.Store)
	}
	if c.Theme != "" && !slices.Contains(Themes, strings.ToLower(c.Theme)) {
		return fmt.Errorf("%w: theme %q (want one of %s)", ErrInvalid, c.Theme, strings.Join(Themes, ", "))
	}
	if c.Speed <= 0 {
		return fmt.Errorf("%w: speed must be > 0, got %v", ErrInvalid, c.Speed)
	}
	return nil
}
