package patch

// The rule sets below encode the known defects of the accounting module:
// missing commas in the log_event signature and the LOG_DATA append call,
// and a missing return at the end of process_for_tax.

// DefaultReplacements is the literal-strategy rule set.
func DefaultReplacements() []Replacement {
	return []Replacement{
		{
			Old: "def log_event(event: str details: str) -> None:",
			New: "def log_event(event: str, details: str) -> None:",
		},
		{
			Old: "LOG_DATA.append([timestamp event details])",
			New: "LOG_DATA.append([timestamp, event, details])",
		},
	}
}

// DefaultLineRules is the line-scan rule set. The comma guard keeps both
// rules idempotent.
func DefaultLineRules() []LineRule {
	return []LineRule{
		{
			Contains: []string{"def log_event(event: str", "details: str"},
			Lacks:    ",",
			Edits: []Replacement{
				{Old: "def log_event(event: str", New: "def log_event(event: str,"},
			},
		},
		{
			Contains: []string{"LOG_DATA.append([timestamp"},
			Lacks:    ",",
			Edits: []Replacement{
				{Old: "LOG_DATA.append([timestamp", New: "LOG_DATA.append([timestamp,"},
				{Old: "timestamp, event", New: "timestamp, event,"},
			},
		},
	}
}

// DefaultRegionRule appends the missing return statement to process_for_tax.
// Only the first matching function is patched if several match.
func DefaultRegionRule() RegionRule {
	return RegionRule{
		Pattern: `def process_for_tax\([^)]*\).*?processed_refids\.add\(refid\)`,
		Insert:  "\n\n    # Return the tax data for further processing\n    return tax_data",
	}
}
