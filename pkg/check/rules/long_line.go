package rules

import "github.com/typolint/typolint/pkg/check"

func init() {
	check.Register(LongLine)
}

// LongLine flags lines longer than check.MaxLineLength bytes, terminator
// excluded. The match covers the first MaxLineLength bytes so the reported
// column is always the fixed sentinel 81, not the overflow position.
var LongLine = check.RuleDef{
	Name:        check.RuleLongLine,
	Group:       "line",
	Seq:         6,
	Description: "Flag lines longer than 80 bytes.",
	Message:     "line longer than 80 bytes",
	Rationale:   "The tree is read in 80-column terminals and review tools.",
	Match:       matchLongLine,
}

func matchLongLine(line string) (int, int, bool) {
	if len(line) > check.MaxLineLength {
		return 0, check.MaxLineLength, true
	}
	return 0, 0, false
}
