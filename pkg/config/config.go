// Package config provides configuration management for the kacctl maintenance
// toolkit. It handles loading, validating, and saving application settings for
// the price cache, the patch target, backups, and hooks. The package supports
// YAML configuration files and provides sensible defaults that mirror the
// accounting workspace layout.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/creatiVision/krypto-accounting-sub001/pkg/errors"
	"github.com/creatiVision/krypto-accounting-sub001/pkg/fsutil"
	goversion "github.com/hashicorp/go-version"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// Settings represents general application settings.
type Settings struct {
	// CacheDir is the directory holding cached price lookups.
	CacheDir string `yaml:"cache_dir,omitempty"`

	// TargetFile is the accounting module the fix commands operate on.
	TargetFile string `yaml:"target_file,omitempty"`

	// BackupDir receives tar.gz snapshots taken before destructive edits.
	BackupDir string `yaml:"backup_dir,omitempty"`

	// HooksDir holds optional tengo maintenance hooks. Empty disables hooks.
	HooksDir string `yaml:"hooks_dir,omitempty"`

	// MinToolVersion is the minimum kacctl version this workspace requires.
	MinToolVersion string `yaml:"min_tool_version,omitempty"`

	// Output settings
	LogLevel string `yaml:"log_level"` // error, warn, info, debug
}

// Default configuration values.
const (
	// DefaultCacheDir is the price cache location relative to the workspace.
	DefaultCacheDir = "data/price_cache"

	// DefaultTargetFile is the accounting module the patchers were written for.
	DefaultTargetFile = "krypto-accounting_german_tax.py"

	// DefaultBackupDir is where pre-patch snapshots are stored.
	DefaultBackupDir = "zz_archive/backup"

	// YAMLIndent is the number of spaces to use for YAML indentation.
	YAMLIndent = 2
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			CacheDir:   DefaultCacheDir,
			TargetFile: DefaultTargetFile,
			BackupDir:  DefaultBackupDir,
			LogLevel:   "info",
		},
	}
}

// LoadConfig loads configuration from a file.
func LoadConfig(path string) (*Config, error) {
	// Validate the config file path
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	// Ensure the path is clean and absolute
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	// Check if file exists and is accessible
	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	// Apply defaults and validate
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrConfigValidation, err.Error())
	}

	return &config, nil
}

// SaveConfig saves configuration to a file.
func (c *Config) SaveConfig(path string) error {
	// Validate the config file path
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	// Ensure the path is clean and absolute
	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(absPath), fsutil.DirModeDefault); err != nil {
		return errors.Wrap(errors.ErrConfigDirectory, err.Error())
	}

	data, err := c.ToYAML()
	if err != nil {
		return err
	}

	if err := fsutil.WriteFileAtomic(absPath, data, fsutil.FileModeDefault); err != nil {
		return errors.Wrap(errors.ErrConfigFileCreate, err.Error())
	}

	return nil
}

// ToYAML converts the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(YAMLIndent)
	if err := encoder.Encode(c); err != nil {
		return nil, errors.Wrap(errors.ErrConfigEncode, err.Error())
	}
	if err := encoder.Close(); err != nil {
		return nil, errors.Wrap(errors.ErrConfigEncode, err.Error())
	}
	return []byte(buf.String()), nil
}

// applyDefaults fills in zero-valued settings with their defaults.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Settings.CacheDir == "" {
		c.Settings.CacheDir = defaults.Settings.CacheDir
	}
	if c.Settings.TargetFile == "" {
		c.Settings.TargetFile = defaults.Settings.TargetFile
	}
	if c.Settings.BackupDir == "" {
		c.Settings.BackupDir = defaults.Settings.BackupDir
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = defaults.Settings.LogLevel
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrConfigValidation
	}
	return validateSettings(c.Settings)
}

func validateSettings(s Settings) error {
	if s.CacheDir == "" {
		return errors.ErrCacheDirectory
	}
	if s.TargetFile == "" {
		return errors.ErrEmptyTargetPath
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(s.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", s.LogLevel)
	}
	return nil
}

// CheckToolVersion verifies the running binary satisfies min_tool_version.
func (c *Config) CheckToolVersion(current string) error {
	if c.Settings.MinToolVersion == "" {
		return nil
	}

	minimum, err := goversion.NewVersion(c.Settings.MinToolVersion)
	if err != nil {
		return errors.Wrapf(err, "invalid min_tool_version %q", c.Settings.MinToolVersion)
	}

	running, err := goversion.NewVersion(current)
	if err != nil {
		return errors.Wrapf(err, "invalid tool version %q", current)
	}

	if running.LessThan(minimum) {
		return fmt.Errorf("workspace requires kacctl >= %s, running %s", minimum, running)
	}
	return nil
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	return filepath.Join(configDir, "kacctl", "config.yaml"), nil
}
