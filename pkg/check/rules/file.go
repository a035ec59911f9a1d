package rules

import "github.com/typolint/typolint/pkg/check"

// The file-level checks are evaluated by the engine itself, after the line
// stream ends. They are registered without a matcher so the rules command
// can document them and exception lists can name them.

func init() {
	check.Register(MissingLF)
	check.Register(WhiteAtEOF)
	check.Register(MissingHeader)
	check.Register(UnusedProp)
}

// MissingLF fires when the file does not end with a newline.
var MissingLF = check.RuleDef{
	Name:        check.RuleMissingLF,
	Group:       "file",
	Seq:         7,
	Description: "Flag files whose last line has no trailing newline.",
	Rationale:   "Tools that read line-wise silently drop or mangle an unterminated last line.",
}

// WhiteAtEOF fires when one or more blank lines precede the end of file.
var WhiteAtEOF = check.RuleDef{
	Name:        check.RuleWhiteAtEOF,
	Group:       "file",
	Seq:         8,
	Description: "Flag trailing blank lines before the end of file.",
}

// MissingHeader fires when the project-name marker and Copyright pair is
// not found in the fixed header windows.
var MissingHeader = check.RuleDef{
	Name:        check.RuleMissingHeader,
	Group:       "file",
	Seq:         9,
	Description: "Flag files without the standard copyright header block.",
	Rationale:   "Every distributed source file carries the project header; its shape is fixed.",
}

// UnusedProp fires once per exception entry that never matched a violation.
var UnusedProp = check.RuleDef{
	Name:        check.RuleUnusedProp,
	Group:       "file",
	Seq:         10,
	Description: "Flag per-path exception entries that never matched a violation.",
	Rationale:   "Stale exceptions hide regressions; an exception must earn its keep.",
}
