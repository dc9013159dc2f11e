package cli

import (
	"fmt"

	"github.com/creatiVision/krypto-accounting-sub001/internal/logger"
	"github.com/creatiVision/krypto-accounting-sub001/pkg/cache"
	"github.com/creatiVision/krypto-accounting-sub001/pkg/hooks"
	"github.com/spf13/cobra"
)

// NewCacheCmd creates the cache command with subcommands.
func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the price cache",
		Long:  "Flush, show information about, and manage the price lookup cache",
	}

	cmd.AddCommand(
		newCacheFlushCmd(),
		newCacheInfoCmd(),
		newCacheDirCmd(),
	)

	return cmd
}

func newCacheFlushCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "flush",
		Short: "Flush the price cache",
		Long: `Delete every cached price file directly inside the cache directory.

Subdirectories are left untouched and individual deletion failures do not
abort the flush. A missing cache directory is reported and treated as
success.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runCacheFlush(dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "cache directory (default: from config)")

	return cmd
}

func newCacheInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show cache information",
		Long:  "Display information about the price cache",
		RunE:  runCacheInfo,
	}

	return cmd
}

func newCacheDirCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dir",
		Short: "Show cache directory path",
		Long:  "Display the path to the price cache directory",
		RunE:  runCacheDir,
	}

	return cmd
}

func runCacheFlush(dirOverride string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cacheDir := cfg.Settings.CacheDir
	if dirOverride != "" {
		cacheDir = dirOverride
	}

	executor, err := loadHooks(cfg)
	if err != nil {
		return err
	}

	hookCtx := hooks.HookContext{TargetPath: cacheDir}
	if err := executor.Execute(hooks.PreFlush, hookCtx); err != nil {
		return fmt.Errorf("pre-flush hook failed: %w", err)
	}

	logger.Info("Flushing price cache", logger.Fields{"directory": cacheDir})

	cacheManager := cache.NewManager(cacheDir)
	cacheOp := cache.NewCacheOperation(cacheManager)

	msg, err := cacheOp.Flush()
	if err != nil {
		return err
	}
	fmt.Println(msg)

	if err := executor.Execute(hooks.PostFlush, hookCtx); err != nil {
		logger.Warn("post-flush hook failed", logger.Fields{"error": err.Error()})
	}

	return nil
}

func runCacheInfo(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cacheManager := cache.NewManager(cfg.Settings.CacheDir)
	cacheOp := cache.NewCacheOperation(cacheManager)

	info, err := cacheOp.GetInfo()
	if err != nil {
		return err
	}

	fmt.Println(info)
	return nil
}

func runCacheDir(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cacheManager := cache.NewManager(cfg.Settings.CacheDir)
	cacheOp := cache.NewCacheOperation(cacheManager)

	fmt.Println(cacheOp.GetDirectory())
	return nil
}
