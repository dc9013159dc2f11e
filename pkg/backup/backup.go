// Package backup creates tar.gz snapshots of files before they are
// overwritten by a fix operation.
package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/creatiVision/krypto-accounting-sub001/pkg/fsutil"
	"github.com/mholt/archives"
)

// Manager writes snapshots into a fixed backup directory.
type Manager struct {
	directory string
}

// NewManager creates a backup manager writing into the given directory.
func NewManager(directory string) *Manager {
	return &Manager{
		directory: directory,
	}
}

// Directory returns the backup directory path.
func (bm *Manager) Directory() string {
	return bm.directory
}

// Create archives sourcePath into the backup directory as a timestamped
// tar.gz and returns the archive path. The backup directory is created if
// it does not exist.
func (bm *Manager) Create(ctx context.Context, sourcePath string) (string, error) {
	if bm.directory == "" {
		return "", fmt.Errorf("backup directory cannot be empty")
	}

	absoluteSource, err := filepath.Abs(sourcePath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path for %s: %w", sourcePath, err)
	}

	if _, err := os.Stat(absoluteSource); err != nil {
		return "", fmt.Errorf("failed to stat source file %s: %w", sourcePath, err)
	}

	if err := fsutil.EnsureDir(bm.directory); err != nil {
		return "", fmt.Errorf("failed to create backup directory %s: %w", bm.directory, err)
	}

	archivePath := filepath.Join(bm.directory, archiveName(absoluteSource, time.Now()))

	archiveFiles, err := archives.FilesFromDisk(ctx, nil, map[string]string{
		absoluteSource: filepath.Base(absoluteSource),
	})
	if err != nil {
		return "", fmt.Errorf("failed to read source file from disk: %w", err)
	}

	file, err := os.Create(archivePath)
	if err != nil {
		return "", fmt.Errorf("failed to create archive file %s: %w", archivePath, err)
	}
	defer func() {
		_ = file.Sync()
		_ = file.Close()
	}()

	format := archives.CompressedArchive{
		Compression: archives.Gz{},
		Archival:    archives.Tar{},
	}

	if err := format.Archive(ctx, file, archiveFiles); err != nil {
		_ = os.Remove(archivePath)
		return "", fmt.Errorf("failed to create archive: %w", err)
	}

	return archivePath, nil
}

// archiveName builds a collision-resistant snapshot name from the source
// file name and a timestamp.
func archiveName(sourcePath string, now time.Time) string {
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("%s-%s.tar.gz", base, now.Format("20060102-150405"))
}
