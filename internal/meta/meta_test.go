package meta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProps = `prune:
  - vendor
  - third_party/bundled

paths:
  "*.png":
    binary: true
  "*.c":
    exceptions: "long-line"
  "src/legacy/*.c":
    exceptions: "tab, long-line"
  "docs/notes.txt":
    exceptions: "missing-header"
`

func loadTestSource(t *testing.T) *Source {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultPropsFile)
	require.NoError(t, os.WriteFile(path, []byte(testProps), 0o600))

	src, err := Load(path)
	require.NoError(t, err)
	return src
}

func TestLookup(t *testing.T) {
	src := loadTestSource(t)

	tests := []struct {
		name        string
		path        string
		wantTracked bool
		wantBinary  bool
		wantProps   string
	}{
		{name: "base-name glob", path: "src/util.c", wantTracked: true, wantProps: "long-line"},
		{name: "most specific pattern wins", path: "src/legacy/old.c", wantTracked: true, wantProps: "tab, long-line"},
		{name: "exact path", path: "docs/notes.txt", wantTracked: true, wantProps: "missing-header"},
		{name: "binary entry", path: "assets/logo.png", wantTracked: true, wantBinary: true},
		{name: "no match is untracked", path: "README", wantTracked: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md, err := src.Lookup(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTracked, md.Tracked)
			assert.Equal(t, tt.wantBinary, md.Binary)
			assert.Equal(t, tt.wantProps, md.Props)
		})
	}
}

func TestLookupCached(t *testing.T) {
	src := loadTestSource(t)

	first, err := src.Lookup("src/util.c")
	require.NoError(t, err)
	second, err := src.Lookup("src/util.c")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPruned(t *testing.T) {
	src := loadTestSource(t)

	assert.True(t, src.Pruned("vendor"))
	assert.True(t, src.Pruned("sub/vendor"), "base name matches anywhere")
	assert.True(t, src.Pruned("third_party/bundled"))
	assert.False(t, src.Pruned("src"))
	assert.False(t, src.Pruned("third_party"))
}

func TestLoadMissingFile(t *testing.T) {
	src, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	md, err := src.Lookup("anything.c")
	require.NoError(t, err)
	assert.False(t, md.Tracked)
	assert.False(t, src.Pruned("vendor"))
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("paths: [not, a, map]"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
