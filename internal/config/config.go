// Package config loads and saves the daemon's YAML configuration. On
// first run a default file is written with 0600 permissions; saves are
// atomic via a temp file and rename.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level daemon configuration.
type Config struct {
	// DBPath is the SQLite event database location.
	DBPath string `yaml:"db_path"`

	// TickSeconds is the scheduler poll cadence.
	TickSeconds int `yaml:"tick_seconds"`

	// LeadMinutes is how far ahead the upcoming pre-alert fires.
	LeadMinutes int `yaml:"lead_minutes"`

	// MetricsListen is the /metrics listen address. Empty disables the
	// metrics listener.
	MetricsListen string `yaml:"metrics_listen,omitempty"`
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "notifyme.yaml"
	}
	return filepath.Join(dir, "notifyme", "config.yaml")
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		DBPath:      defaultDBPath(),
		TickSeconds: 60,
		LeadMinutes: 10,
	}
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "notifyme.db"
	}
	return filepath.Join(dir, "notifyme", "events.db")
}

// Normalize fills missing or out-of-range values with defaults so
// partially filled config files still behave.
func (c *Config) Normalize() {
	if c.DBPath == "" {
		c.DBPath = defaultDBPath()
	}
	if c.TickSeconds <= 0 {
		c.TickSeconds = 60
	}
	if c.LeadMinutes <= 0 {
		c.LeadMinutes = 10
	}
}

// Load reads the configuration from path. If the file does not exist a
// default config is written there and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes cfg to path atomically with 0600 permissions, creating
// the parent directory if needed.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}
	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".notifyme-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
