package check

import "strings"

// Header window offsets. These are a fixed heuristic tuned to a historical
// comment-block format: the project-name marker must sit on lines 3-5, and
// the Copyright line 4-6 lines below it. They enforce the convention and
// must not be widened.
const (
	markerWindowFirst = 3
	markerWindowLast  = 5
	copyrightOffsetLo = 4
	copyrightOffsetHi = 6
)

const copyrightWord = "Copyright"

// DefaultHeaderMarkers returns the default project-name marker words: a
// language name, a build-tool name, and a documentation-tool name.
func DefaultHeaderMarkers() []string {
	return []string{"Python", "SCons", "Doxygen"}
}

// headerDetector is the two-phase scanner for the copyright header block.
// It first looks for a project-name marker within the marker window, then
// for a Copyright word within a fixed range below the marker line.
type headerDetector struct {
	markers    []string
	markerLine int // 0 while unset
	copyright  bool
}

func newHeaderDetector(markers []string) *headerDetector {
	if len(markers) == 0 {
		markers = DefaultHeaderMarkers()
	}
	return &headerDetector{markers: markers}
}

// observe feeds one line. Lines are 1-based and must arrive in order.
func (h *headerDetector) observe(lineNo int, line string) {
	if h.markerLine == 0 {
		if lineNo >= markerWindowFirst && lineNo <= markerWindowLast && h.hasMarker(line) {
			h.markerLine = lineNo
		}
		return
	}
	if !h.copyright &&
		lineNo >= h.markerLine+copyrightOffsetLo &&
		lineNo <= h.markerLine+copyrightOffsetHi &&
		strings.Contains(line, copyrightWord) {
		h.copyright = true
	}
}

// finish reports the missing-header violation when the marker/Copyright pair
// was not found. File-level findings are reported at the start of the file.
func (h *headerDetector) finish() []Violation {
	if h.markerLine > 0 && h.copyright {
		return nil
	}
	return []Violation{{
		Rule:    RuleMissingHeader,
		Line:    1,
		Col:     1,
		Message: "missing copyright header",
	}}
}

// hasMarker reports whether the line contains one of the marker words as a
// standalone word bounded by spaces.
func (h *headerDetector) hasMarker(line string) bool {
	for _, m := range h.markers {
		if strings.Contains(line, " "+m+" ") {
			return true
		}
	}
	return false
}
