package hooks

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/creatiVision/krypto-accounting-sub001/pkg/errors"
)

// HookFileExtensions lists the supported hook file extensions.
var HookFileExtensions = map[string]bool{
	".tengo": true,
}

// LoadHooksFromDir loads all hook scripts named <hook-type>.tengo from dir.
// A missing directory is a no-op; files with unknown names or extensions are
// skipped.
func LoadHooksFromDir(manager HookManager, dir string) error {
	if dir == "" {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to read hooks directory %s", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := filepath.Ext(entry.Name())
		if _, ok := HookFileExtensions[ext]; !ok {
			continue // Skip unsupported file types
		}

		hookType := HookType(strings.TrimSuffix(entry.Name(), ext))

		// Validate hook type
		switch hookType {
		case PreFlush, PostFlush, PreFix, PostFix:
			// Valid hook type
		default:
			continue // Skip unknown hook types
		}

		hookPath := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(hookPath)
		if err != nil {
			return errors.Wrapf(err, "error reading hook file %s", hookPath)
		}

		manager.AddScript(hookType, string(content))
	}

	return nil
}
