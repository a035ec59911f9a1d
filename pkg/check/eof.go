package check

// eofState tracks the last two lines seen. Files are read as if a trailing
// empty sentinel line were appended by the final terminator: splitting on
// the terminator leaves a final empty line exactly when the file ends with
// one. The finish step tells "no sentinel at all" (missing trailing newline)
// apart from "a real blank line before the sentinel" (trailing blank lines).
type eofState struct {
	lastLine     string
	previousLine string
	lineCount    int
}

// observe feeds one line, in order.
func (s *eofState) observe(line string) {
	s.previousLine = s.lastLine
	s.lastLine = line
	s.lineCount++
}

// finish classifies the end of file. The two outcomes are mutually
// exclusive and checked in priority order.
func (s *eofState) finish() []Violation {
	if s.lastLine != "" {
		// The content did not end with a terminator. A truly empty file
		// (zero bytes) reads as one empty line and lands in the other
		// branch.
		v := Violation{
			Rule:    RuleMissingLF,
			Line:    s.lineCount + 1,
			Col:     1,
			Message: "missing newline at end of file",
		}
		s.previousLine = s.lastLine
		s.lineCount++
		return []Violation{v}
	}

	if s.lineCount > 1 && s.previousLine == "" {
		return []Violation{{
			Rule:    RuleWhiteAtEOF,
			Line:    s.lineCount,
			Col:     1,
			Message: "trailing blank lines at end of file",
		}}
	}

	return nil
}
