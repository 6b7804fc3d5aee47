// Package config manages the persisted application configuration as a JSON
// file under the user configuration directory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const configFileName = "config.json"

// Config holds the tunable application settings.
type Config struct {
	// Title is shown centered on the first screen row.
	Title string `json:"title"`

	// EscapeWait is the raw-mode read timeout in tenths of a second. It
	// bounds how long the input decoder waits for the remainder of an
	// escape sequence before reporting a lone Escape.
	EscapeWait int `json:"escape_wait"`

	// LogFile, when set, receives debug logging. Logging never goes to
	// stdout or stderr while the screen is active.
	LogFile string `json:"log_file,omitempty"`

	// Verbose enables debug-level logging by default.
	Verbose bool `json:"verbose"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Title:      "tedit -- version 0.1.0",
		EscapeWait: 1,
	}
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if c.EscapeWait < 1 || c.EscapeWait > 10 {
		return fmt.Errorf("escape_wait must be between 1 and 10 deciseconds, got %d", c.EscapeWait)
	}
	return nil
}

// Manager defines the contract for configuration storage.
type Manager interface {
	Load() (Config, error)
	Save(Config) error
	Path() string
	Exists() bool
}

// FileManager stores the configuration as JSON in a directory.
type FileManager struct {
	configDir string
}

// NewFileManager creates a manager rooted at configDir.
func NewFileManager(configDir string) *FileManager {
	return &FileManager{configDir: configDir}
}

// DefaultConfigDir returns the per-user configuration directory.
func DefaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(base, "tedit"), nil
}

// Path returns the full path of the configuration file.
func (m *FileManager) Path() string {
	return filepath.Join(m.configDir, configFileName)
}

// Exists reports whether a configuration file is present.
func (m *FileManager) Exists() bool {
	_, err := os.Stat(m.Path())
	return err == nil
}

// Load reads and validates the stored configuration. A missing file yields
// the defaults without error.
func (m *FileManager) Load() (Config, error) {
	data, err := os.ReadFile(m.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save validates and writes the configuration, creating the directory as
// needed.
func (m *FileManager) Save(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := os.MkdirAll(m.configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(m.Path(), data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
