package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typolint/typolint/internal/cli/config"
	"github.com/typolint/typolint/internal/walker"
	"github.com/typolint/typolint/pkg/check"
)

func TestBuildCheckConfig(t *testing.T) {
	tests := []struct {
		name         string
		cfg          config.Config
		opts         CheckOptions
		wantDisabled []check.RuleName
		wantErr      string
	}{
		{
			name: "empty config disables nothing",
		},
		{
			name:         "flags and file merge",
			cfg:          config.Config{Disable: []string{"long-line"}},
			opts:         CheckOptions{Disable: []string{"svn-keyword"}},
			wantDisabled: []check.RuleName{check.RuleLongLine, check.RuleSVNKeyword},
		},
		{
			name:    "unknown rule name from file",
			cfg:     config.Config{Disable: []string{"tabs"}},
			wantErr: "unknown rule name",
		},
		{
			name:    "unknown rule name from flag",
			opts:    CheckOptions{Disable: []string{"no-such"}},
			wantErr: "unknown rule name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ccfg, err := buildCheckConfig(&tt.cfg, &tt.opts)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, name := range tt.wantDisabled {
				assert.True(t, ccfg.IsDisabled(name), "%s should be disabled", name)
			}
			assert.False(t, ccfg.IsDisabled(check.RuleTab))
		})
	}
}

func TestBuildCheckConfigHeaderMarkers(t *testing.T) {
	cfg := config.Config{Header: config.HeaderConfig{Markers: []string{"MyProject"}}}
	_, err := buildCheckConfig(&cfg, &CheckOptions{})
	require.NoError(t, err)
}

func TestAggregate(t *testing.T) {
	res := &checkResult{
		reports: []*check.FileReport{
			{Path: "a.c", Lines: []string{"a.c:1.2: [tab] m"}, Reported: map[check.RuleName]int{check.RuleTab: 1}},
			{Path: "b.c"},
			{Path: "c.ref", Skipped: true},
			{Path: "d.c", Err: assert.AnError},
		},
		walkErrs: []walker.WalkError{{Path: "gone", Err: assert.AnError}},
	}

	agg := aggregate(res)
	assert.Equal(t, 2, agg.FilesScanned)
	assert.Equal(t, 1, agg.FilesSkipped)
	assert.Equal(t, 1, agg.FilesFlagged)
	assert.Equal(t, 1, agg.Violations)
	assert.Equal(t, 1, agg.ByRule["tab"])
	assert.Equal(t, 1, agg.TraversalErrs)
}

func TestBuildCheckOutputOmitsCleanFiles(t *testing.T) {
	res := &checkResult{
		reports: []*check.FileReport{
			{Path: "clean.c"},
			{Path: "bad.c", Lines: []string{"bad.c:1.2: [tab] m"}, Reported: map[check.RuleName]int{check.RuleTab: 1}},
		},
	}

	out := buildCheckOutput(res, aggregate(res))
	require.Len(t, out.Files, 1)
	assert.Equal(t, "bad.c", out.Files[0].Path)
}
