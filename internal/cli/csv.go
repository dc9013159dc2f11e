package cli

import (
	"fmt"

	"github.com/creatiVision/krypto-accounting-sub001/internal/logger"
	"github.com/creatiVision/krypto-accounting-sub001/pkg/csvfix"
	"github.com/spf13/cobra"
)

// NewCSVCmd creates the csv command with subcommands.
func NewCSVCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Maintain CSV exports",
		Long:  "Unify the delimiter of CSV export files so every report parses the same way",
	}

	cmd.AddCommand(newCSVUnifyCmd())

	return cmd
}

func newCSVUnifyCmd() *cobra.Command {
	var (
		dir       string
		recursive bool
	)

	cmd := &cobra.Command{
		Use:   "unify",
		Short: "Unify CSV delimiters",
		Long:  "Rewrite semicolon-delimited CSV files in a directory to use commas",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runCSVUnify(dir, recursive)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "directory containing CSV files")
	cmd.Flags().BoolVar(&recursive, "recursive", false, "descend into subdirectories")

	return cmd
}

func runCSVUnify(dir string, recursive bool) error {
	changed, err := csvfix.UnifyDir(dir, ',', recursive)
	if err != nil {
		return err
	}

	for _, path := range changed {
		logger.Info("Unified CSV delimiter", logger.Fields{"file": path})
	}

	fmt.Printf("Processed %d CSV files in %s\n", len(changed), dir)
	return nil
}
