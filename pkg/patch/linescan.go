package patch

import "strings"

// ApplyLineRules scans the text line by line and applies every rule whose
// conditions hold. Line terminators are preserved exactly. Applying the same
// rules twice yields the same text as applying them once, provided each
// rule's Lacks fragment is introduced by its own edits.
func ApplyLineRules(text string, rules []LineRule) string {
	lines := splitLines(text)

	for i, line := range lines {
		for _, rule := range rules {
			if !rule.matches(line) {
				continue
			}
			for _, edit := range rule.Edits {
				line = strings.Replace(line, edit.Old, edit.New, 1)
			}
			lines[i] = line
		}
	}

	return strings.Join(lines, "")
}

func (r LineRule) matches(line string) bool {
	for _, fragment := range r.Contains {
		if !strings.Contains(line, fragment) {
			return false
		}
	}
	if r.Lacks != "" && strings.Contains(line, r.Lacks) {
		return false
	}
	return true
}

// splitLines splits text into lines, keeping the terminator on each line so
// the document can be reassembled byte for byte.
func splitLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
