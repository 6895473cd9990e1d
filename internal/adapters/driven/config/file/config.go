// Package file loads and saves the CLI configuration from a TOML file in
// the user's leads directory.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// DefaultDebounceMillis is the quiet period before a deferred save fires.
const DefaultDebounceMillis = 2000

// Config holds the user-facing settings for the leads CLI.
type Config struct {
	// BucketURL is the base URL of the object bucket holding the leads
	// document. Overridable with the LEADS_BUCKET_URL environment
	// variable.
	BucketURL string `toml:"bucket_url"`

	// DebounceMillis is the quiet period between the last edit and the
	// deferred whole-collection write.
	DebounceMillis int `toml:"debounce_millis"`

	// WatchDir is the default drop directory for `leads watch`.
	WatchDir string `toml:"watch_dir"`

	// Verbose enables debug logging without the --verbose flag.
	Verbose bool `toml:"verbose"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DebounceMillis: DefaultDebounceMillis,
	}
}

// DefaultPath returns ~/.leads/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".leads", "config.toml"), nil
}

// Load reads the configuration from path. A missing file yields defaults;
// the LEADS_BUCKET_URL environment variable overrides the bucket URL
// either way.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// First run, nothing saved yet.
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if env := os.Getenv("LEADS_BUCKET_URL"); env != "" {
		cfg.BucketURL = env
	}
	if cfg.DebounceMillis <= 0 {
		cfg.DebounceMillis = DefaultDebounceMillis
	}
	return cfg, nil
}

// Save writes the configuration to path, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

// Debounce returns the configured quiet period as a duration.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMillis) * time.Millisecond
}
