package patch_test

import (
	"strings"
	"testing"

	"github.com/creatiVision/krypto-accounting-sub001/pkg/patch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyReplacements(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		replacements []patch.Replacement
		expected     string
	}{
		{
			name:         "fixes log_event signature",
			text:         "def log_event(event: str details: str) -> None:",
			replacements: patch.DefaultReplacements(),
			expected:     "def log_event(event: str, details: str) -> None:",
		},
		{
			name:         "fixes LOG_DATA append",
			text:         "    LOG_DATA.append([timestamp event details])",
			replacements: patch.DefaultReplacements(),
			expected:     "    LOG_DATA.append([timestamp, event, details])",
		},
		{
			name:         "zero occurrences is a no-op",
			text:         "def unrelated(a: int, b: int) -> int:\n    return a + b\n",
			replacements: patch.DefaultReplacements(),
			expected:     "def unrelated(a: int, b: int) -> int:\n    return a + b\n",
		},
		{
			name: "replaces all occurrences",
			text: "aa bb aa",
			replacements: []patch.Replacement{
				{Old: "aa", New: "cc"},
			},
			expected: "cc bb cc",
		},
		{
			name: "replacements apply in order",
			text: "one",
			replacements: []patch.Replacement{
				{Old: "one", New: "two"},
				{Old: "two", New: "three"},
			},
			expected: "three",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			result := patch.ApplyReplacements(testCase.text, testCase.replacements)
			assert.Equal(t, testCase.expected, result)
		})
	}
}

func TestApplyLineRules(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "fixes signature line",
			text:     "def log_event(event: str details: str) -> None:\n    pass\n",
			expected: "def log_event(event: str, details: str) -> None:\n    pass\n",
		},
		{
			name:     "fixes append line",
			text:     "LOG_DATA.append([timestamp event details])\n",
			expected: "LOG_DATA.append([timestamp, event, details])\n",
		},
		{
			name:     "comma guard skips already patched signature",
			text:     "def log_event(event: str, details: str) -> None:\n",
			expected: "def log_event(event: str, details: str) -> None:\n",
		},
		{
			name:     "untouched file passes through unchanged",
			text:     "x = 1\ny = 2",
			expected: "x = 1\ny = 2",
		},
		{
			name:     "preserves blank lines and missing final newline",
			text:     "a\n\nLOG_DATA.append([timestamp event details])",
			expected: "a\n\nLOG_DATA.append([timestamp, event, details])",
		},
		{
			name:     "preserves CRLF terminators",
			text:     "def log_event(event: str details: str) -> None:\r\n",
			expected: "def log_event(event: str, details: str) -> None:\r\n",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			result := patch.ApplyLineRules(testCase.text, patch.DefaultLineRules())
			assert.Equal(t, testCase.expected, result)
		})
	}
}

func TestApplyLineRulesIdempotent(t *testing.T) {
	text := "def log_event(event: str details: str) -> None:\n" +
		"    timestamp = now()\n" +
		"    LOG_DATA.append([timestamp event details])\n"

	once := patch.ApplyLineRules(text, patch.DefaultLineRules())
	twice := patch.ApplyLineRules(once, patch.DefaultLineRules())

	assert.Equal(t, once, twice)
	assert.Contains(t, once, "def log_event(event: str, details: str) -> None:")
	assert.Contains(t, once, "LOG_DATA.append([timestamp, event, details])")
}

func TestApplyRegionRule(t *testing.T) {
	body := "def process_for_tax(trades, ledger, year):\n" +
		"    tax_data = []\n" +
		"    for refid in refids:\n" +
		"        processed_refids.add(refid)\n" +
		"\n" +
		"def next_function():\n" +
		"    pass\n"

	patched, matched, err := patch.ApplyRegionRule(body, patch.DefaultRegionRule())
	require.NoError(t, err)
	assert.True(t, matched)

	// The return block lands directly after the matched statement and before
	// the following code.
	insertAt := strings.Index(patched, "processed_refids.add(refid)") + len("processed_refids.add(refid)")
	assert.True(t, strings.HasPrefix(patched[insertAt:], "\n\n    # Return the tax data for further processing\n    return tax_data"))
	assert.Less(t, strings.Index(patched, "return tax_data"), strings.Index(patched, "def next_function"))
}

func TestApplyRegionRuleNoMatch(t *testing.T) {
	body := "def unrelated():\n    pass\n"

	patched, matched, err := patch.ApplyRegionRule(body, patch.DefaultRegionRule())
	require.NoError(t, err)
	assert.False(t, matched)
	assert.Equal(t, body, patched)
}

func TestApplyRegionRuleFirstMatchOnly(t *testing.T) {
	fn := "def process_for_tax(a):\n    processed_refids.add(refid)\n"
	body := fn + "\n" + fn

	patched, matched, err := patch.ApplyRegionRule(body, patch.DefaultRegionRule())
	require.NoError(t, err)
	assert.True(t, matched)
	assert.Equal(t, 1, strings.Count(patched, "return tax_data"))
}

func TestApplyRegionRuleInvalidPattern(t *testing.T) {
	_, _, err := patch.ApplyRegionRule("text", patch.RegionRule{Pattern: "(unclosed"})
	require.Error(t, err)
}
