package cli

import (
	"fmt"

	"github.com/creatiVision/krypto-accounting-sub001/pkg/config"
	"github.com/creatiVision/krypto-accounting-sub001/pkg/hooks"
)

// These variables will be set by the main package
var (
	ConfigPath *string
	Verbose    *bool
)

// loadConfig loads the configuration from the --config flag or the default
// location and verifies the workspace's minimum tool version.
func loadConfig() (*config.Config, error) {
	configPath := ""
	if ConfigPath != nil {
		configPath = *ConfigPath
	}

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
	} else {
		defaultPath, pathErr := config.GetDefaultConfigPath()
		if pathErr != nil {
			return nil, fmt.Errorf("failed to get default config path: %w", pathErr)
		}
		cfg, err = config.LoadConfig(defaultPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with CLI flags if provided
	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}

	if err := cfg.CheckToolVersion(Version); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadHooks builds a hook executor from the configured hooks directory.
// An empty hooks directory yields an executor with no scripts.
func loadHooks(cfg *config.Config) (*hooks.TengoExecutor, error) {
	executor := hooks.NewTengoExecutor()
	if err := hooks.LoadHooksFromDir(executor, cfg.Settings.HooksDir); err != nil {
		return nil, err
	}
	return executor, nil
}
