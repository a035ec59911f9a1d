package rules

import "github.com/typolint/typolint/pkg/check"

func init() {
	check.Register(NonPrinting)
}

// NonPrinting flags the first byte that is neither a tab, nor a high-bit
// byte, nor in the printable range (space through tilde). It is evaluated
// independently of the tab and non-ascii rules and can co-fire with them on
// different bytes of the same line.
var NonPrinting = check.RuleDef{
	Name:        check.RuleNonPrinting,
	Group:       "line",
	Seq:         3,
	Description: "Flag control bytes outside the printable range.",
	Message:     "non-printing byte",
	Rationale:   "Control bytes other than tab are invisible and corrupt diffs and editors.",
	Match:       matchNonPrinting,
}

func matchNonPrinting(line string) (int, int, bool) {
	for i := 0; i < len(line); i++ {
		b := line[i]
		if b == '\t' || b >= 0x80 {
			continue
		}
		if b < ' ' || b > '~' {
			return i, 1, true
		}
	}
	return 0, 0, false
}
