package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/creatiVision/krypto-accounting-sub001/internal/cli"
	"github.com/creatiVision/krypto-accounting-sub001/internal/logger"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	noColor    bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kacctl",
		Short: "Maintenance toolkit for the krypto-accounting workspace",
		Long: `kacctl is a maintenance toolkit for the krypto-accounting workspace:
- cache: flush and inspect the price lookup cache
- fix: apply the known syntax and return-statement fixes to the accounting module
- csv: unify delimiters in CSV exports`,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				logger.InitLogger("debug", noColor)
			} else {
				logger.InitLogger("info", noColor)
			}
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: auto-detect)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Set up CLI pkg variables
	cli.ConfigPath = &configPath
	cli.Verbose = &verbose

	// Add subcommands
	cmd.AddCommand(
		cli.NewCacheCmd(),
		cli.NewFixCmd(),
		cli.NewCSVCmd(),
		cli.NewConfigCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
