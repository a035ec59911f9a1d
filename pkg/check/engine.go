package check

import "strings"

// Engine scans file content against the registered rules. Scans are pure
// functions of (content, exceptions); an Engine is safe for concurrent use
// across files.
type Engine struct {
	lineRules []RuleDef
	markers   []string
}

// NewEngine creates an engine using the registered line rules and the
// header markers from cfg.
func NewEngine(cfg *Config) *Engine {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &Engine{
		lineRules: LineRules(),
		markers:   cfg.HeaderMarkers,
	}
}

// Scan evaluates one file's raw content. Lines are fed in order: line rules
// in their fixed sequence, then the end-of-file checks, then the header
// check, then the unused-exception check. Within a file evaluation is
// strictly sequential; line numbers drive the header windows and the cap
// counters.
func (e *Engine) Scan(path string, content []byte, exc Exceptions) *FileReport {
	rep := newReporter(path, exc)
	hdr := newHeaderDetector(e.markers)
	eof := &eofState{}

	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lineNo := i + 1
		for _, rule := range e.lineRules {
			start, length, ok := rule.Match(line)
			if !ok {
				continue
			}
			rep.report(Violation{
				Rule: rule.Name,
				Line: lineNo,
				// Reporting convention: 1-based match start plus
				// match length, the position after the match.
				Col:     start + 1 + length,
				Message: rule.Message,
			})
		}
		hdr.observe(lineNo, line)
		eof.observe(line)
	}

	for _, v := range eof.finish() {
		rep.report(v)
	}
	for _, v := range hdr.finish() {
		rep.report(v)
	}
	rep.finish()

	return rep.fileReport()
}
