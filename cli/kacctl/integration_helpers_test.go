//go:build integration

package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeWorkspaceConfig writes a config file pointing at workspace-local
// cache, target, and backup paths, and returns the config path.
func writeWorkspaceConfig(t *testing.T, root string) (cfgPath, cacheDir, target, backupDir string) {
	t.Helper()

	cfgPath = filepath.Join(root, "config.yaml")
	cacheDir = filepath.Join(root, "data", "price_cache")
	target = filepath.Join(root, "krypto-accounting_german_tax.py")
	backupDir = filepath.Join(root, "zz_archive", "backup")

	yamlContent := `settings:
  cache_dir: ` + cacheDir + `
  target_file: ` + target + `
  backup_dir: ` + backupDir + `
  log_level: info
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(yamlContent), 0o600))
	return cfgPath, cacheDir, target, backupDir
}

// runCommand executes the root command with args and returns captured stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	cmd.SetArgs(args)

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := cmd.ExecuteContext(context.Background())

	_ = w.Close()
	os.Stdout = oldStdout

	var buf strings.Builder
	_, _ = io.Copy(&buf, r)
	return buf.String(), err
}
