package cache

import (
	"os"
	"path/filepath"

	"github.com/creatiVision/krypto-accounting-sub001/internal/logger"
	"github.com/creatiVision/krypto-accounting-sub001/pkg/errors"
)

// DefaultManager implements the Manager interface for price cache operations.
type DefaultManager struct {
	directory string
}

// NewManager creates a new cache manager for the given directory.
func NewManager(directory string) *DefaultManager {
	return &DefaultManager{
		directory: directory,
	}
}

// Flush removes every regular file directly inside the cache directory.
// Subdirectories are left untouched. Individual deletion failures are logged
// and counted but never abort the batch. A missing cache directory is a
// benign no-op.
func (cm *DefaultManager) Flush() (*FlushResult, error) {
	result := &FlushResult{}

	entries, err := os.ReadDir(cm.directory)
	if err != nil {
		if os.IsNotExist(err) {
			result.Missing = true
			return result, nil
		}
		return nil, errors.Wrapf(err, "failed to read cache directory %s", cm.directory)
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		path := filepath.Join(cm.directory, entry.Name())

		var size int64
		if info, err := entry.Info(); err == nil {
			size = info.Size()
		}

		if err := os.Remove(path); err != nil {
			logger.Error("Error deleting cache file", logger.Fields{
				"file":  entry.Name(),
				"error": err.Error(),
			})
			result.Failed++
			continue
		}

		logger.Info("Deleted cache file", logger.Fields{"file": entry.Name()})
		result.Deleted++
		result.BytesFreed += size
	}

	return result, nil
}

// GetInfo returns information about the cache.
func (cm *DefaultManager) GetInfo() (*Info, error) {
	info := &Info{
		Directory: cm.directory,
	}

	entries, err := os.ReadDir(cm.directory)
	if err != nil {
		if os.IsNotExist(err) {
			return info, nil
		}
		return nil, errors.Wrapf(err, "failed to get cache info for %s", cm.directory)
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		fileInfo, err := entry.Info()
		if err != nil {
			continue
		}
		info.TotalSize += fileInfo.Size()
		info.Files++
	}

	return info, nil
}

// GetDirectory returns the cache directory path.
func (cm *DefaultManager) GetDirectory() string {
	return cm.directory
}

// SetDirectory sets the cache directory path.
func (cm *DefaultManager) SetDirectory(dir string) error {
	if dir == "" {
		return ErrCacheDirectory
	}
	cm.directory = dir
	return nil
}
