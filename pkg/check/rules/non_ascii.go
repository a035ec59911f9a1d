package rules

import "github.com/typolint/typolint/pkg/check"

func init() {
	check.Register(NonASCII)
}

// NonASCII flags the first byte with the high bit set.
var NonASCII = check.RuleDef{
	Name:        check.RuleNonASCII,
	Group:       "line",
	Seq:         2,
	Description: "Flag bytes with the high bit set (value 128 or above).",
	Message:     "non-ASCII byte",
	Rationale:   "Source files are plain ASCII; stray encoding artifacts show up as high-bit bytes.",
	Match:       matchNonASCII,
}

func matchNonASCII(line string) (int, int, bool) {
	for i := 0; i < len(line); i++ {
		if line[i] >= 0x80 {
			return i, 1, true
		}
	}
	return 0, 0, false
}
