//go:build integration

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const brokenModule = `def log_event(event: str details: str) -> None:
    timestamp = now()
    LOG_DATA.append([timestamp event details])

def process_for_tax(trades, ledger, year):
    tax_data = []
    for refid in refids:
        processed_refids.add(refid)
`

func TestFix_ApplyLinesIsIdempotent(t *testing.T) {
	tempDir := t.TempDir()
	cfgPath, _, target, backupDir := writeWorkspaceConfig(t, tempDir)
	require.NoError(t, os.WriteFile(target, []byte(brokenModule), 0o644))

	output, err := runCommand(t, "--config", cfgPath, "fix", "apply")
	require.NoError(t, err)
	assert.Contains(t, output, "Successfully applied lines fixes")

	first, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(first), "def log_event(event: str, details: str) -> None:")
	assert.Contains(t, string(first), "LOG_DATA.append([timestamp, event, details])")

	// A snapshot was taken before the write
	entries, err := os.ReadDir(backupDir)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)

	// Second run leaves the file unchanged
	output, err = runCommand(t, "--config", cfgPath, "fix", "apply")
	require.NoError(t, err)
	assert.Contains(t, output, "No fixes needed")

	second, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestFix_ApplyRegionInsertsReturn(t *testing.T) {
	tempDir := t.TempDir()
	cfgPath, _, target, _ := writeWorkspaceConfig(t, tempDir)
	require.NoError(t, os.WriteFile(target, []byte(brokenModule), 0o644))

	output, err := runCommand(t, "--config", cfgPath, "fix", "apply", "--strategy", "region", "--no-backup")
	require.NoError(t, err)
	assert.Contains(t, output, "Successfully applied region fixes")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "    return tax_data")
}

func TestFix_ApplyRegionNoMatch(t *testing.T) {
	tempDir := t.TempDir()
	cfgPath, _, target, _ := writeWorkspaceConfig(t, tempDir)
	content := "def unrelated():\n    pass\n"
	require.NoError(t, os.WriteFile(target, []byte(content), 0o644))

	output, err := runCommand(t, "--config", cfgPath, "fix", "apply", "--strategy", "region", "--no-backup")
	require.NoError(t, err)
	assert.Contains(t, output, "No changes made")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestFix_ApplyMissingTargetFails(t *testing.T) {
	tempDir := t.TempDir()
	cfgPath, _, _, _ := writeWorkspaceConfig(t, tempDir)

	_, err := runCommand(t, "--config", cfgPath, "fix", "apply")
	require.Error(t, err)
}

func TestFix_Show(t *testing.T) {
	output, err := runCommand(t, "fix", "show")
	require.NoError(t, err)
	assert.Contains(t, output, "Literal replacements:")
	assert.Contains(t, output, "log_event")
	assert.Contains(t, output, "process_for_tax")
}

func TestCSV_Unify(t *testing.T) {
	tempDir := t.TempDir()
	exportDir := filepath.Join(tempDir, "export")
	require.NoError(t, os.MkdirAll(exportDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(exportDir, "report.csv"), []byte("date;asset\n2024-01-01;BTC\n"), 0o644))

	output, err := runCommand(t, "csv", "unify", "--dir", exportDir)
	require.NoError(t, err)
	assert.Contains(t, output, "Processed 1 CSV files")

	data, err := os.ReadFile(filepath.Join(exportDir, "report.csv"))
	require.NoError(t, err)
	assert.Equal(t, "date,asset\n2024-01-01,BTC\n", string(data))
}

func TestVersion(t *testing.T) {
	output, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, output, "kacctl version")
}
