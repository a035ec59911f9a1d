package rules

import (
	"regexp"

	"github.com/typolint/typolint/pkg/check"
)

func init() {
	check.Register(SVNKeyword)
}

// SVNKeyword flags a literal keyword-expansion marker of the form $Id$ or
// $Id: ...$ left over from version-control keyword substitution.
var SVNKeyword = check.RuleDef{
	Name:        check.RuleSVNKeyword,
	Group:       "line",
	Seq:         5,
	Description: "Flag leftover $Id$ keyword-expansion markers.",
	Message:     "leftover version-control keyword",
	Rationale:   "Keyword expansion is disabled for this tree; stale markers mislead readers.",
	Match:       matchSVNKeyword,
}

var svnKeywordRe = regexp.MustCompile(`\$Id(:[^$]*)?\$`)

func matchSVNKeyword(line string) (int, int, bool) {
	loc := svnKeywordRe.FindStringIndex(line)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1] - loc[0], true
}
