package rules

import (
	"strings"

	"github.com/typolint/typolint/pkg/check"
)

func init() {
	check.Register(Tab)
}

// Tab flags the first horizontal tab on a line.
var Tab = check.RuleDef{
	Name:        check.RuleTab,
	Group:       "line",
	Seq:         1,
	Description: "Flag horizontal tab characters.",
	Message:     "horizontal tab character",
	Rationale:   "Tabs render at unpredictable widths; indentation must use spaces.",
	Match:       matchTab,
}

func matchTab(line string) (int, int, bool) {
	if i := strings.IndexByte(line, '\t'); i >= 0 {
		return i, 1, true
	}
	return 0, 0, false
}
