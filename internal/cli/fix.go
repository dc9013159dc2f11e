package cli

import (
	"fmt"

	"github.com/creatiVision/krypto-accounting-sub001/internal/logger"
	"github.com/creatiVision/krypto-accounting-sub001/pkg/backup"
	"github.com/creatiVision/krypto-accounting-sub001/pkg/hooks"
	"github.com/creatiVision/krypto-accounting-sub001/pkg/patch"
	"github.com/spf13/cobra"
)

// NewFixCmd creates the fix command with subcommands.
func NewFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Apply source fixes to the accounting module",
		Long: `Apply the known syntax and return-statement fixes to the accounting module.

The line-scan strategy is the default: it carries a comma guard that makes it
safe to run repeatedly. The literal strategy applies exact substring
replacements, and the region strategy inserts the missing return statement
after the end of process_for_tax.`,
	}

	cmd.AddCommand(
		newFixApplyCmd(),
		newFixShowCmd(),
	)

	return cmd
}

func newFixApplyCmd() *cobra.Command {
	var (
		strategy string
		target   string
		noBackup bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply fixes to the target file",
		Long:  "Read the target file, apply the selected fix strategy, and rewrite it in place",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFixApply(cmd, strategy, target, noBackup)
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", string(patch.StrategyLines), "fix strategy (literal, lines, region)")
	cmd.Flags().StringVar(&target, "target", "", "target file (default: from config)")
	cmd.Flags().BoolVar(&noBackup, "no-backup", false, "skip the pre-write tar.gz snapshot")

	return cmd
}

func newFixShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the built-in fix rules",
		Long:  "Display the replacements, line rules, and region rule the fix command applies",
		Run:   runFixShow,
	}

	return cmd
}

func runFixApply(cmd *cobra.Command, strategy, targetOverride string, noBackup bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	target := cfg.Settings.TargetFile
	if targetOverride != "" {
		target = targetOverride
	}

	executor, err := loadHooks(cfg)
	if err != nil {
		return err
	}

	hookCtx := hooks.HookContext{TargetPath: target}
	if err := executor.Execute(hooks.PreFix, hookCtx); err != nil {
		return fmt.Errorf("pre-fix hook failed: %w", err)
	}

	var snapshotter patch.Snapshotter
	if !noBackup && cfg.Settings.BackupDir != "" {
		snapshotter = backup.NewManager(cfg.Settings.BackupDir)
	}

	patcher := patch.NewPatcher(target, snapshotter)

	result, err := patcher.Apply(cmd.Context(), patch.Strategy(strategy))
	if err != nil {
		return err
	}

	switch {
	case !result.Written:
		// Region strategy with no match leaves the file untouched.
		fmt.Println("Could not find the target pattern. No changes made.")
	case result.Changed:
		logger.Info("Applied fixes", logger.Fields{
			"target":   target,
			"strategy": strategy,
		})
		if result.BackupPath != "" {
			logger.Info("Snapshot taken", logger.Fields{"backup": result.BackupPath})
		}
		fmt.Printf("Successfully applied %s fixes to %s\n", strategy, target)
	default:
		fmt.Printf("No fixes needed in %s\n", target)
	}

	if err := executor.Execute(hooks.PostFix, hookCtx); err != nil {
		logger.Warn("post-fix hook failed", logger.Fields{"error": err.Error()})
	}

	return nil
}

func runFixShow(*cobra.Command, []string) {
	fmt.Println("Literal replacements:")
	for _, r := range patch.DefaultReplacements() {
		fmt.Printf("  %q -> %q\n", r.Old, r.New)
	}

	fmt.Println("Line rules:")
	for _, rule := range patch.DefaultLineRules() {
		fmt.Printf("  contains %q, lacks %q\n", rule.Contains, rule.Lacks)
		for _, edit := range rule.Edits {
			fmt.Printf("    %q -> %q\n", edit.Old, edit.New)
		}
	}

	region := patch.DefaultRegionRule()
	fmt.Println("Region rule:")
	fmt.Printf("  pattern %q\n", region.Pattern)
	fmt.Printf("  insert  %q\n", region.Insert)
}
