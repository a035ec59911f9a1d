package check

// RuleName identifies one lexical check.
type RuleName string

// The fixed rule enumeration. Every Violation carries one of these.
const (
	// RuleTab flags horizontal tab characters.
	RuleTab RuleName = "tab"
	// RuleNonASCII flags bytes with the high bit set.
	RuleNonASCII RuleName = "non-ascii"
	// RuleNonPrinting flags control bytes outside the printable range.
	RuleNonPrinting RuleName = "non-printing"
	// RuleWhiteAtEOL flags trailing whitespace on a line.
	RuleWhiteAtEOL RuleName = "white-at-eol"
	// RuleSVNKeyword flags leftover $Id$ keyword-expansion markers.
	RuleSVNKeyword RuleName = "svn-keyword"
	// RuleLongLine flags lines longer than MaxLineLength bytes.
	RuleLongLine RuleName = "long-line"
	// RuleMissingLF flags files without a trailing newline.
	RuleMissingLF RuleName = "missing-lf"
	// RuleWhiteAtEOF flags trailing blank lines before end of file.
	RuleWhiteAtEOF RuleName = "white-at-eof"
	// RuleMissingHeader flags files without a recognized copyright header.
	RuleMissingHeader RuleName = "missing-header"
	// RuleUnusedProp flags exception entries that never matched a violation.
	RuleUnusedProp RuleName = "unused-prop"
)

// Policy constants. These are convention thresholds, not tunables; the only
// supported override is disabling a rule outright.
const (
	// MaxLineLength is the line-length limit in bytes, terminator excluded.
	MaxLineLength = 80
	// MaxReportsPerRule caps how many violations of one rule are reported
	// per file.
	MaxReportsPerRule = 10
)

// AllRuleNames lists every rule in canonical reporting order: line rules in
// evaluation order, then the end-of-file checks, then the header check, then
// the unused-exception check.
var AllRuleNames = []RuleName{
	RuleTab,
	RuleNonASCII,
	RuleNonPrinting,
	RuleWhiteAtEOL,
	RuleSVNKeyword,
	RuleLongLine,
	RuleMissingLF,
	RuleWhiteAtEOF,
	RuleMissingHeader,
	RuleUnusedProp,
}

// ValidRuleName reports whether s names a known rule.
func ValidRuleName(s string) bool {
	for _, n := range AllRuleNames {
		if string(n) == s {
			return true
		}
	}
	return false
}

// Violation is one lexical finding within a file. It is ephemeral: produced
// during a single file scan and consumed by the reporter.
type Violation struct {
	Rule    RuleName
	Line    int // 1-based
	Col     int // 1-based; position after the match (match start + length)
	Message string
}

// MatchFunc locates the first match of a line rule within one raw line
// (terminator stripped). start is the 0-based byte offset of the match.
// Rules are pure functions; all per-file state lives in the engine.
type MatchFunc func(line string) (start, length int, ok bool)

// RuleDef is a data-driven rule definition. Line rules carry a Match
// function; file-scope rules (end-of-file, header, unused-exception) are
// evaluated by the engine itself and registered only for documentation.
type RuleDef struct {
	Name        RuleName
	Group       string // "line" or "file"
	Description string
	Message     string // violation message emitted for each match
	Seq         int    // evaluation order within a line
	Match       MatchFunc

	// Documentation fields for the rules command.
	Rationale string
}

// RuleInfo provides metadata about a rule for documentation/tooling.
type RuleInfo struct {
	Name        RuleName `json:"name"`
	Group       string   `json:"group"`
	Description string   `json:"description"`
	Rationale   string   `json:"rationale,omitempty"`
}

// Info extracts documentation metadata from a rule definition.
func (d RuleDef) Info() RuleInfo {
	return RuleInfo{
		Name:        d.Name,
		Group:       d.Group,
		Description: d.Description,
		Rationale:   d.Rationale,
	}
}
