package rules_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typolint/typolint/pkg/check"
	"github.com/typolint/typolint/pkg/check/rules"
)

func TestTab(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantMatch bool
		wantStart int
	}{
		{name: "no tab", line: "plain text", wantMatch: false},
		{name: "leading tab", line: "\tindented", wantMatch: true, wantStart: 0},
		{name: "embedded tab", line: "a\tb\tc", wantMatch: true, wantStart: 1},
		{name: "empty line", line: "", wantMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, length, ok := rules.Tab.Match(tt.line)
			assert.Equal(t, tt.wantMatch, ok)
			if tt.wantMatch {
				assert.Equal(t, tt.wantStart, start)
				assert.Equal(t, 1, length)
			}
		})
	}
}

func TestNonASCII(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantMatch bool
		wantStart int
	}{
		{name: "ascii only", line: "hello world", wantMatch: false},
		{name: "utf8 sequence", line: "caf\xc3\xa9", wantMatch: true, wantStart: 3},
		{name: "lone high byte", line: "\xffrest", wantMatch: true, wantStart: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _, ok := rules.NonASCII.Match(tt.line)
			assert.Equal(t, tt.wantMatch, ok)
			if tt.wantMatch {
				assert.Equal(t, tt.wantStart, start)
			}
		})
	}
}

func TestNonPrinting(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantMatch bool
		wantStart int
	}{
		{name: "printable range", line: " !~abc", wantMatch: false},
		{name: "tab is not non-printing", line: "a\tb", wantMatch: false},
		{name: "high byte is not non-printing", line: "a\xc3b", wantMatch: false},
		{name: "bell byte", line: "ab\x07cd", wantMatch: true, wantStart: 2},
		{name: "carriage return", line: "line\r", wantMatch: true, wantStart: 4},
		{name: "vertical tab before bell", line: "\x0b\x07", wantMatch: true, wantStart: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _, ok := rules.NonPrinting.Match(tt.line)
			assert.Equal(t, tt.wantMatch, ok)
			if tt.wantMatch {
				assert.Equal(t, tt.wantStart, start)
			}
		})
	}
}

func TestWhiteAtEOL(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantMatch  bool
		wantStart  int
		wantLength int
	}{
		{name: "clean line", line: "no trailing", wantMatch: false},
		{name: "one space", line: "x ", wantMatch: true, wantStart: 1, wantLength: 1},
		{name: "mixed run", line: "x \t ", wantMatch: true, wantStart: 1, wantLength: 3},
		{name: "interior whitespace only", line: "a b", wantMatch: false},
		{name: "all whitespace", line: "   ", wantMatch: true, wantStart: 0, wantLength: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, length, ok := rules.WhiteAtEOL.Match(tt.line)
			assert.Equal(t, tt.wantMatch, ok)
			if tt.wantMatch {
				assert.Equal(t, tt.wantStart, start)
				assert.Equal(t, tt.wantLength, length)
			}
		})
	}
}

func TestSVNKeyword(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantMatch  bool
		wantStart  int
		wantLength int
	}{
		{name: "bare marker", line: "// $Id$", wantMatch: true, wantStart: 3, wantLength: 4},
		{name: "expanded marker", line: "# $Id: file.c 123 $", wantMatch: true, wantStart: 2, wantLength: 17},
		{name: "unrelated dollars", line: "price is $5 and $6", wantMatch: false},
		{name: "other keyword", line: "$Rev$", wantMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, length, ok := rules.SVNKeyword.Match(tt.line)
			assert.Equal(t, tt.wantMatch, ok)
			if tt.wantMatch {
				assert.Equal(t, tt.wantStart, start)
				assert.Equal(t, tt.wantLength, length)
			}
		})
	}
}

func TestLongLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantMatch bool
	}{
		{name: "exactly 80", line: strings.Repeat("x", 80), wantMatch: false},
		{name: "81 bytes", line: strings.Repeat("x", 81), wantMatch: true},
		{name: "much longer", line: strings.Repeat("x", 500), wantMatch: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, length, ok := rules.LongLine.Match(tt.line)
			assert.Equal(t, tt.wantMatch, ok)
			if tt.wantMatch {
				// Fixed sentinel: column is always 81 regardless of
				// the overflow position.
				assert.Equal(t, 0, start)
				assert.Equal(t, check.MaxLineLength, length)
			}
		})
	}
}

func TestRegistration(t *testing.T) {
	require.GreaterOrEqual(t, check.Count(), len(check.AllRuleNames))

	lineRules := check.LineRules()
	require.Len(t, lineRules, 6)

	// Line rules must evaluate in their fixed order.
	var order []check.RuleName
	for _, r := range lineRules {
		order = append(order, r.Name)
	}
	assert.Equal(t, []check.RuleName{
		check.RuleTab,
		check.RuleNonASCII,
		check.RuleNonPrinting,
		check.RuleWhiteAtEOL,
		check.RuleSVNKeyword,
		check.RuleLongLine,
	}, order)

	for _, name := range check.AllRuleNames {
		_, ok := check.GetByName(name)
		assert.True(t, ok, "rule %s not registered", name)
	}
}
