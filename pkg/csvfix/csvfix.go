// Package csvfix rewrites CSV files that use a semicolon delimiter to use a
// single unified delimiter, so downstream tax reports can parse every export
// the same way.
package csvfix

import (
	"bytes"
	"encoding/csv"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/creatiVision/krypto-accounting-sub001/pkg/errors"
	"github.com/creatiVision/krypto-accounting-sub001/pkg/fsutil"
)

// SourceDelimiter is the delimiter the broken exports were written with.
const SourceDelimiter = ';'

// UnifyFile rewrites path with the target delimiter if it is currently
// semicolon-delimited. Returns true when the file was rewritten. Files that
// already use the target delimiter are left untouched.
func UnifyFile(path string, target rune) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read CSV file %s", path)
	}

	if !usesDelimiter(data, SourceDelimiter) {
		return false, nil
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = SourceDelimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return false, errors.Wrapf(err, "failed to parse CSV file %s", path)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.Comma = target
	if err := writer.WriteAll(records); err != nil {
		return false, errors.Wrapf(err, "failed to rewrite CSV file %s", path)
	}

	perm := os.FileMode(fsutil.FileModeDefault)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := fsutil.WriteFileAtomic(path, buf.Bytes(), perm); err != nil {
		return false, err
	}
	return true, nil
}

// UnifyDir unifies every .csv file in dir and returns the rewritten paths.
// With recursive set, subdirectories are walked as well.
func UnifyDir(dir string, target rune, recursive bool) ([]string, error) {
	var changed []string

	walkFn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !recursive && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), ".csv") {
			return nil
		}

		rewritten, err := UnifyFile(path, target)
		if err != nil {
			return err
		}
		if rewritten {
			changed = append(changed, path)
		}
		return nil
	}

	if err := filepath.WalkDir(dir, walkFn); err != nil {
		return changed, errors.Wrapf(err, "failed to unify CSV files in %s", dir)
	}
	return changed, nil
}

// usesDelimiter reports whether the first line contains the delimiter
// outside of quoted fields.
func usesDelimiter(data []byte, delimiter byte) bool {
	line := data
	if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
		line = data[:idx]
	}

	inQuotes := false
	for _, b := range line {
		switch b {
		case '"':
			inQuotes = !inQuotes
		case delimiter:
			if !inQuotes {
				return true
			}
		}
	}
	return false
}
