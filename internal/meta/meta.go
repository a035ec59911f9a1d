// Package meta provides the path-metadata collaborator backed by a YAML
// properties file. It replaces the version-control property store of the
// original tool with a plain file keyed by path patterns.
package meta

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/typolint/typolint/pkg/check"
)

// DefaultPropsFile is the properties file looked up at the project root.
const DefaultPropsFile = ".typoprops.yaml"

// Entry holds the metadata attached to one path pattern.
type Entry struct {
	// Exceptions is the raw exception list: rule names separated by
	// commas and/or spaces.
	Exceptions string `koanf:"exceptions"`
	// Binary marks content that must never be scanned.
	Binary bool `koanf:"binary"`
}

// fileSchema mirrors the YAML layout.
type fileSchema struct {
	// Prune lists directory names (or relative paths) whose subtrees are
	// skipped entirely by the traversal.
	Prune []string `koanf:"prune"`
	// Paths maps a glob pattern to its entry. Patterns match against the
	// slash-separated relative path and against the base name.
	Paths map[string]Entry `koanf:"paths"`
}

// Source is a check.ExceptionSource loaded from a properties file. Lookups
// are read-only after Load, so a Source is safe for concurrent use.
type Source struct {
	schema fileSchema
	// patterns in deterministic order: longest pattern first so the most
	// specific one wins.
	patterns []string

	mu    sync.Mutex
	cache map[string]check.Metadata
}

// Load reads a properties file. A missing file is not an error: it yields a
// Source that tracks nothing, which scans every file with no exceptions.
func Load(path string) (*Source, error) {
	s := &Source{cache: make(map[string]check.Metadata)}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to stat properties file %s: %w", path, err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("error reading properties file %s: %w", path, err)
	}
	if err := k.Unmarshal("", &s.schema); err != nil {
		return nil, fmt.Errorf("unable to decode properties file %s: %w", path, err)
	}

	for p := range s.schema.Paths {
		s.patterns = append(s.patterns, p)
	}
	// Longest pattern first; ties break lexically for determinism.
	sortPatterns(s.patterns)

	return s, nil
}

// Lookup implements check.ExceptionSource. The first (most specific)
// matching pattern supplies the metadata; paths with no match are untracked.
func (s *Source) Lookup(path string) (check.Metadata, error) {
	key := filepath.ToSlash(path)

	s.mu.Lock()
	if md, ok := s.cache[key]; ok {
		s.mu.Unlock()
		return md, nil
	}
	s.mu.Unlock()

	md := s.lookup(key)

	s.mu.Lock()
	s.cache[key] = md
	s.mu.Unlock()
	return md, nil
}

func (s *Source) lookup(key string) check.Metadata {
	base := filepath.Base(key)
	for _, p := range s.patterns {
		if matchPattern(p, key, base) {
			e := s.schema.Paths[p]
			return check.Metadata{
				Tracked: true,
				Binary:  e.Binary,
				Props:   e.Exceptions,
			}
		}
	}
	return check.Metadata{}
}

// Pruned reports whether the directory is marked fully pruned. It matches
// on the directory's base name or its slash-separated relative path.
func (s *Source) Pruned(dir string) bool {
	key := filepath.ToSlash(dir)
	base := filepath.Base(key)
	for _, p := range s.schema.Prune {
		if p == key || p == base {
			return true
		}
	}
	return false
}

func matchPattern(pattern, key, base string) bool {
	if ok, _ := filepath.Match(pattern, key); ok {
		return true
	}
	// Patterns without a separator also match the base name, so "*.c"
	// applies anywhere in the tree.
	if !strings.Contains(pattern, "/") {
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}
	return false
}

func sortPatterns(patterns []string) {
	sort.Slice(patterns, func(i, j int) bool {
		if len(patterns[i]) != len(patterns[j]) {
			return len(patterns[i]) > len(patterns[j])
		}
		return patterns[i] < patterns[j]
	})
}
