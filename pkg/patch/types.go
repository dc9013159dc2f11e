package patch

// Strategy selects how a fix is matched and applied.
type Strategy string

// Supported patching strategies.
const (
	// StrategyLiteral applies exact whole-text substring replacements.
	StrategyLiteral Strategy = "literal"
	// StrategyLines scans line by line with an idempotence guard.
	StrategyLines Strategy = "lines"
	// StrategyRegion inserts a block after a regex-matched region.
	StrategyRegion Strategy = "region"
)

// Replacement is a single exact substring substitution. Every occurrence of
// Old is replaced; an absent Old is a no-op.
type Replacement struct {
	Old string
	New string
}

// LineRule mutates a single line when every Contains fragment is present and
// the Lacks fragment is absent. The Lacks guard makes the rule idempotent:
// once the edits have introduced the guarded fragment, the rule stops firing.
type LineRule struct {
	Contains []string
	Lacks    string
	Edits    []Replacement
}

// RegionRule matches a region of the whole text with a non-greedy,
// dot-matches-newline regular expression and inserts Insert immediately
// after the end of the first match.
type RegionRule struct {
	Pattern string
	Insert  string
}

// Result describes the outcome of a patch application.
type Result struct {
	// Strategy that was applied.
	Strategy Strategy
	// Changed reports whether the written text differs from the original.
	Changed bool
	// Written reports whether the target file was rewritten at all.
	Written bool
	// BackupPath is the snapshot taken before the write, if any.
	BackupPath string
}
