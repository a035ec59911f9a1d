package check

import "fmt"

// FileReport is the buffered outcome of scanning one file. Lines are fully
// formatted and ordered; callers flush them atomically so capped output and
// summaries stay contiguous per file.
type FileReport struct {
	Path string
	// Lines holds one formatted message per emitted violation, plus the
	// standalone cap notices.
	Lines []string
	// Counts tallies every match per rule, including suppressed ones.
	Counts map[RuleName]int
	// Reported tallies emitted violation messages per rule, so suppressed
	// and over-cap matches are excluded.
	Reported map[RuleName]int
	// Skipped is true when the file was fully exempt and never scanned.
	Skipped bool
	// Err records a per-file read failure. The file is reported and
	// skipped; the run continues.
	Err error
}

// Total returns the number of emitted violation messages (cap notices
// excluded).
func (r *FileReport) Total() int {
	n := 0
	for _, c := range r.Reported {
		n += c
	}
	return n
}

// HasFindings reports whether anything was emitted.
func (r *FileReport) HasFindings() bool {
	return len(r.Lines) > 0
}

// reporter applies suppression and capping to the violation stream of one
// file. Counters live for one scan and back both the cap and the
// unused-exception check.
type reporter struct {
	path     string
	exc      Exceptions
	counts   map[RuleName]int
	reported map[RuleName]int
	lines    []string
}

func newReporter(path string, exc Exceptions) *reporter {
	return &reporter{
		path:     path,
		exc:      exc,
		counts:   make(map[RuleName]int),
		reported: make(map[RuleName]int),
	}
}

// report counts the violation and emits it unless suppressed or over the
// cap. Suppressed violations still count, so a listed exception that fires
// is recorded as used. The unused-prop check itself is never suppressible:
// listing it is what triggers it.
func (r *reporter) report(v Violation) {
	r.counts[v.Rule]++

	if v.Rule != RuleUnusedProp && r.exc.Disabled(v.Rule) {
		return
	}

	n := r.counts[v.Rule]
	if n > MaxReportsPerRule {
		return
	}

	r.lines = append(r.lines, fmt.Sprintf("%s:%d.%d: [%s] %s", r.path, v.Line, v.Col, v.Rule, v.Message))
	r.reported[v.Rule]++
	if n == MaxReportsPerRule {
		r.lines = append(r.lines, fmt.Sprintf("%s: too many [%s] violations, the rest are not reported", r.path, v.Rule))
	}
}

// finish runs the unused-exception check: every per-path exception entry
// that never matched yields one unused-prop violation at the start of the
// file. Usage is judged against the counts as they stood at end of scan, so
// the unused-prop emissions below cannot mark each other used.
func (r *reporter) finish() {
	snapshot := make(map[RuleName]int, len(r.counts))
	for name, c := range r.counts {
		snapshot[name] = c
	}

	for _, entry := range r.exc.Props() {
		if snapshot[entry] > 0 {
			continue
		}
		r.report(Violation{
			Rule:    RuleUnusedProp,
			Line:    1,
			Col:     1,
			Message: fmt.Sprintf("exception %q never matched a violation", entry),
		})
	}
}

func (r *reporter) fileReport() *FileReport {
	return &FileReport{
		Path:     r.path,
		Lines:    r.lines,
		Counts:   r.counts,
		Reported: r.reported,
	}
}
