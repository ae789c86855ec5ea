package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// StoreKind selects the persistence backend.
type StoreKind string

const (
	StoreSQLite StoreKind = "sqlite"
	StoreFile   StoreKind = "file"
)

const (
	DefaultTickMs    = 500
	MinTickMs        = 100
	MaxTickMs        = 1000
	DefaultServeAddr = "127.0.0.1:8787"

	configFileName = "config.yaml"
)

// Config holds runtime settings for the cockpit binary.
type Config struct {
	Home        string    `yaml:"-"`
	Store       StoreKind `yaml:"store"`
	DBPath      string    `yaml:"db_path"`
	StateDir    string    `yaml:"state_dir"`
	TickMs      int       `yaml:"tick_ms"`
	LogUseCases bool      `yaml:"log_use_cases"`
	ServeAddr   string    `yaml:"serve_addr"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig(home string) Config {
	return Config{
		Home:      home,
		Store:     StoreSQLite,
		DBPath:    filepath.Join(home, "cockpit.db"),
		StateDir:  filepath.Join(home, "state"),
		TickMs:    DefaultTickMs,
		ServeAddr: DefaultServeAddr,
	}
}

// Load resolves configuration from, in increasing precedence: defaults,
// $COCKPIT_HOME/config.yaml, then the environment. A .env file in the
// working directory is read into the environment first when present.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	home := os.Getenv("COCKPIT_HOME")
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		home = filepath.Join(userHome, ".cockpit")
	}

	cfg := DefaultConfig(home)
	if err := cfg.applyFile(filepath.Join(home, configFileName)); err != nil {
		return Config{}, err
	}
	cfg.applyEnv()
	return cfg, cfg.validate()
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	c.DBPath = c.resolve(c.DBPath)
	c.StateDir = c.resolve(c.StateDir)
	return nil
}

// resolve makes paths from the config file relative to Home.
func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Home, p)
}

func (c *Config) applyEnv() {
	if v := os.Getenv("COCKPIT_STORE"); v != "" {
		c.Store = StoreKind(v)
	}
	if v := os.Getenv("COCKPIT_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("COCKPIT_STATE_DIR"); v != "" {
		c.StateDir = v
	}
	if v := os.Getenv("COCKPIT_TICK_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.TickMs = n
		}
	}
	if v := os.Getenv("COCKPIT_LOG_USE_CASES"); v != "" {
		c.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("COCKPIT_SERVE_ADDR"); v != "" {
		c.ServeAddr = v
	}
}

func (c *Config) validate() error {
	switch c.Store {
	case StoreSQLite, StoreFile:
	default:
		return fmt.Errorf("unknown store %q (want %q or %q)", c.Store, StoreSQLite, StoreFile)
	}
	if c.TickMs <= 0 {
		c.TickMs = DefaultTickMs
	}
	c.TickMs = min(max(c.TickMs, MinTickMs), MaxTickMs)
	if c.ServeAddr == "" {
		c.ServeAddr = DefaultServeAddr
	}
	return nil
}

// TickInterval is the TUI refresh period.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}
