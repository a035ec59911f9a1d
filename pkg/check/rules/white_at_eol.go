package rules

import "github.com/typolint/typolint/pkg/check"

func init() {
	check.Register(WhiteAtEOL)
}

// WhiteAtEOL flags a trailing run of spaces or tabs at the end of a line.
// The match covers the whole run.
var WhiteAtEOL = check.RuleDef{
	Name:        check.RuleWhiteAtEOL,
	Group:       "line",
	Seq:         4,
	Description: "Flag trailing whitespace at the end of a line.",
	Message:     "trailing whitespace",
	Rationale:   "Trailing whitespace is invisible churn that pollutes diffs.",
	Match:       matchWhiteAtEOL,
}

func matchWhiteAtEOL(line string) (int, int, bool) {
	end := len(line)
	start := end
	for start > 0 && (line[start-1] == ' ' || line[start-1] == '\t') {
		start--
	}
	if start == end {
		return 0, 0, false
	}
	return start, end - start, true
}
