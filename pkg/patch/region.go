package patch

import (
	"regexp"

	"github.com/creatiVision/krypto-accounting-sub001/pkg/errors"
)

// ApplyRegionRule searches the whole text for the rule's pattern, compiled
// in dot-matches-newline mode, and inserts the rule's block immediately
// after the end of the first (leftmost) match. The returned bool reports
// whether a match was found; on no match the text is returned unmodified.
func ApplyRegionRule(text string, rule RegionRule) (string, bool, error) {
	re, err := regexp.Compile("(?s)" + rule.Pattern)
	if err != nil {
		return text, false, errors.Wrapf(err, "invalid region pattern %q", rule.Pattern)
	}

	loc := re.FindStringIndex(text)
	if loc == nil {
		return text, false, nil
	}

	return text[:loc[1]] + rule.Insert + text[loc[1]:], true, nil
}
