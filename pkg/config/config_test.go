package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultCacheDir, cfg.Settings.CacheDir)
	assert.Equal(t, DefaultTargetFile, cfg.Settings.TargetFile)
	assert.Equal(t, DefaultBackupDir, cfg.Settings.BackupDir)
	assert.Equal(t, "info", cfg.Settings.LogLevel)
	assert.Empty(t, cfg.Settings.HooksDir)
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		content     string
		expectError bool
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "missing file returns defaults",
			path: "does-not-exist.yaml",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultCacheDir, cfg.Settings.CacheDir)
			},
		},
		{
			name: "custom settings",
			content: `settings:
  cache_dir: /tmp/prices
  target_file: tax_module.py
  log_level: debug
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/tmp/prices", cfg.Settings.CacheDir)
				assert.Equal(t, "tax_module.py", cfg.Settings.TargetFile)
				assert.Equal(t, "debug", cfg.Settings.LogLevel)
				// Unset fields fall back to defaults
				assert.Equal(t, DefaultBackupDir, cfg.Settings.BackupDir)
			},
		},
		{
			name:        "invalid yaml",
			content:     "settings: [not a map",
			expectError: true,
		},
		{
			name: "invalid log level",
			content: `settings:
  log_level: loud
`,
			expectError: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if testCase.content != "" {
				require.NoError(t, os.WriteFile(path, []byte(testCase.content), 0o644))
			} else if testCase.path != "" {
				path = filepath.Join(t.TempDir(), testCase.path)
			}

			cfg, err := LoadConfig(path)

			if testCase.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			if testCase.check != nil {
				testCase.check(t, cfg)
			}
		})
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestSaveAndReloadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Settings.CacheDir = "/var/cache/prices"
	cfg.Settings.LogLevel = "warn"

	require.NoError(t, cfg.SaveConfig(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/cache/prices", loaded.Settings.CacheDir)
	assert.Equal(t, "warn", loaded.Settings.LogLevel)
}

func TestToYAML(t *testing.T) {
	cfg := DefaultConfig()
	data, err := cfg.ToYAML()
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "cache_dir:"))
	assert.True(t, strings.Contains(string(data), DefaultCacheDir))
}

func TestCheckToolVersion(t *testing.T) {
	tests := []struct {
		name        string
		minimum     string
		current     string
		expectError bool
	}{
		{"no minimum set", "", "0.1.0", false},
		{"current satisfies minimum", "0.1.0", "0.2.0", false},
		{"current equals minimum", "0.1.0", "0.1.0", false},
		{"current below minimum", "1.0.0", "0.1.0", true},
		{"garbage minimum", "not-a-version", "0.1.0", true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Settings.MinToolVersion = testCase.minimum

			err := cfg.CheckToolVersion(testCase.current)

			if testCase.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
