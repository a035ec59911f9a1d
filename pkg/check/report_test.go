package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func excFor(t *testing.T, props string, disabled ...RuleName) Exceptions {
	t.Helper()
	cfg := NewConfig()
	for _, r := range disabled {
		cfg.Disable(r)
	}
	src := stubSource{md: Metadata{Tracked: true, Props: props}}
	exc, skip := Resolve(cfg, "src/file.c", src)
	require.False(t, skip)
	return exc
}

func TestReporterCap(t *testing.T) {
	rep := newReporter("src/file.c", excFor(t, ""))

	for i := 1; i <= 15; i++ {
		rep.report(Violation{Rule: RuleTab, Line: i, Col: 2, Message: "horizontal tab character"})
	}

	// Exactly 10 messages plus one standalone notice; 11-15 are silent.
	require.Len(t, rep.lines, 11)
	assert.Equal(t, "src/file.c:1.2: [tab] horizontal tab character", rep.lines[0])
	assert.Equal(t, "src/file.c:10.2: [tab] horizontal tab character", rep.lines[9])
	assert.Equal(t, "src/file.c: too many [tab] violations, the rest are not reported", rep.lines[10])
	assert.Equal(t, 15, rep.counts[RuleTab])
}

func TestReporterCapIsPerRule(t *testing.T) {
	rep := newReporter("src/file.c", excFor(t, ""))

	for i := 1; i <= 12; i++ {
		rep.report(Violation{Rule: RuleTab, Line: i, Col: 2, Message: "m"})
		rep.report(Violation{Rule: RuleLongLine, Line: i, Col: 81, Message: "m"})
	}

	// 10 + notice for each rule independently.
	assert.Len(t, rep.lines, 22)
}

func TestReporterSuppressionStillCounts(t *testing.T) {
	rep := newReporter("src/file.c", excFor(t, "tab"))

	rep.report(Violation{Rule: RuleTab, Line: 1, Col: 2, Message: "m"})
	rep.report(Violation{Rule: RuleTab, Line: 2, Col: 2, Message: "m"})

	assert.Empty(t, rep.lines)
	assert.Equal(t, 2, rep.counts[RuleTab])
	assert.Zero(t, rep.reported[RuleTab])

	// The exception matched, so no unused-prop at finish.
	rep.finish()
	assert.Empty(t, rep.lines)
}

func TestReporterUnusedException(t *testing.T) {
	rep := newReporter("src/file.c", excFor(t, "tab, svn-keyword"))

	rep.report(Violation{Rule: RuleTab, Line: 1, Col: 2, Message: "m"})
	rep.finish()

	require.Len(t, rep.lines, 1)
	assert.Equal(t, `src/file.c:1.1: [unused-prop] exception "svn-keyword" never matched a violation`, rep.lines[0])
}

func TestReporterUnusedPropNotSuppressible(t *testing.T) {
	// Listing unused-prop in the exception list does not silence the
	// unused-exception check; listing it is what triggers it.
	rep := newReporter("src/file.c", excFor(t, "unused-prop"))
	rep.finish()

	require.Len(t, rep.lines, 1)
	assert.Contains(t, rep.lines[0], `[unused-prop] exception "unused-prop" never matched`)
}

func TestReporterGlobalDisableNotUnused(t *testing.T) {
	// Globally disabled rules are not per-path entries and never produce
	// unused-prop findings.
	rep := newReporter("src/file.c", excFor(t, "", RuleTab))
	rep.finish()
	assert.Empty(t, rep.lines)
}

func TestFileReportTotal(t *testing.T) {
	rep := newReporter("src/file.c", excFor(t, ""))
	for i := 1; i <= 15; i++ {
		rep.report(Violation{Rule: RuleTab, Line: i, Col: 2, Message: "m"})
	}
	rep.report(Violation{Rule: RuleLongLine, Line: 1, Col: 81, Message: "m"})

	fr := rep.fileReport()
	assert.Equal(t, 11, fr.Total(), "capped tab count plus one long-line")
	assert.Equal(t, 10, fr.Reported[RuleTab])
	assert.True(t, fr.HasFindings())
	assert.Equal(t, "src/file.c", fr.Path)
}
