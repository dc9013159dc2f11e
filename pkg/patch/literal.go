package patch

import "strings"

// ApplyReplacements applies an ordered list of exact substring replacements
// to the whole text. Each replacement substitutes all occurrences; a
// replacement whose Old does not occur is a no-op.
func ApplyReplacements(text string, replacements []Replacement) string {
	for _, r := range replacements {
		text = strings.ReplaceAll(text, r.Old, r.New)
	}
	return text
}
