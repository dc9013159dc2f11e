package cache

import (
	"fmt"
)

// CacheOperation represents an operation that can be performed on the cache.
type CacheOperation struct {
	manager Manager
}

// NewCacheOperation creates a new cache operation instance.
func NewCacheOperation(manager Manager) *CacheOperation {
	return &CacheOperation{
		manager: manager,
	}
}

// Flush flushes the price cache and returns a human-readable result message.
func (op *CacheOperation) Flush() (string, error) {
	result, err := op.manager.Flush()
	if err != nil {
		return "", fmt.Errorf("failed to flush cache: %w", err)
	}

	if result.Missing {
		return fmt.Sprintf("Cache directory %s does not exist. Nothing to flush.", op.manager.GetDirectory()), nil
	}

	msg := fmt.Sprintf("Cache flush complete. Deleted %d files, freed %s.", result.Deleted, formatBytes(result.BytesFreed))
	if result.Failed > 0 {
		msg += fmt.Sprintf(" %d files could not be deleted.", result.Failed)
	}
	return msg, nil
}

// GetInfo returns information about the cache.
func (op *CacheOperation) GetInfo() (string, error) {
	info, err := op.manager.GetInfo()
	if err != nil {
		return "", fmt.Errorf("failed to get cache info: %w", err)
	}

	return fmt.Sprintf(`Cache Information:
  Directory:  %s
  Total Size: %s
  Files:      %d`,
		info.Directory,
		formatBytes(info.TotalSize),
		info.Files,
	), nil
}

// GetDirectory returns the cache directory path.
func (op *CacheOperation) GetDirectory() string {
	return op.manager.GetDirectory()
}

// SetDirectory sets a new cache directory.
func (op *CacheOperation) SetDirectory(dir string) error {
	if dir == "" {
		return fmt.Errorf("cache directory cannot be empty")
	}
	return op.manager.SetDirectory(dir)
}

// formatBytes converts bytes to a human-readable string.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"K", "M", "G", "T", "P", "E"}
	if exp < len(units) {
		return fmt.Sprintf("%.1f %sB", float64(bytes)/float64(div), units[exp])
	}
	return fmt.Sprintf("%d B", bytes)
}
