package check

import (
	"path/filepath"
	"strings"
)

// Built-in path conventions. Matching is on the base name.
var (
	// fullExemptPatterns name reference files that are never scanned.
	fullExemptPatterns = []string{"*.ref"}

	// tabExemptPatterns name files where tabs are significant.
	tabExemptPatterns = []string{"Makefile*"}

	// headerExemptNames and headerExemptExts name generated or list-style
	// files that never carry a copyright header: dependency caches,
	// ignore lists, and build-tool project lists.
	headerExemptNames = []string{".depend", ".cvsignore", ".gitignore"}
	headerExemptExts  = []string{".dsp", ".dsw", ".vcproj", ".sln"}
)

// Exceptions is the effective disabled-rule set for one file, computed once
// before scanning begins and immutable during the scan.
type Exceptions struct {
	disabled map[RuleName]bool
	// props holds the per-path exception entries in order, deduplicated.
	// Entries that never match a violation are reported as unused-prop.
	props []RuleName
}

// Disabled reports whether the rule is suppressed for this file.
func (e Exceptions) Disabled(name RuleName) bool {
	return e.disabled[name]
}

// Props returns the per-path exception entries in order.
func (e Exceptions) Props() []RuleName {
	return e.props
}

// Resolve merges the three exception sources for a path: the global
// user-disabled rules from cfg, the built-in path-pattern rules, and the
// per-path exception list from src. The merge is a plain union; adding a
// source can only suppress reports.
//
// The second return is true when the file must be skipped entirely: the path
// matches the reference-file convention or the metadata store reports binary
// content. Lookup failures and untracked paths degrade to "no exceptions,
// not exempt" so the file is still scanned.
func Resolve(cfg *Config, path string, src ExceptionSource) (Exceptions, bool) {
	base := filepath.Base(path)

	if matchAny(fullExemptPatterns, base) {
		return Exceptions{}, true
	}

	var md Metadata
	if src != nil {
		if m, err := src.Lookup(path); err == nil && m.Tracked {
			md = m
		}
	}
	if md.Binary {
		return Exceptions{}, true
	}

	exc := Exceptions{disabled: make(map[RuleName]bool)}
	if cfg != nil {
		for name := range cfg.DisabledRules {
			if cfg.DisabledRules[name] {
				exc.disabled[name] = true
			}
		}
	}

	if matchAny(tabExemptPatterns, base) {
		exc.disabled[RuleTab] = true
	}
	if headerExempt(base) {
		exc.disabled[RuleMissingHeader] = true
	}

	for _, entry := range ParseProps(md.Props) {
		exc.disabled[entry] = true
		exc.props = append(exc.props, entry)
	}

	return exc, false
}

// ParseProps splits a raw exception-list string into entries. Entries are
// separated by commas and/or spaces; duplicates keep their first position.
// Unknown names are kept: they can never match a violation and so surface as
// unused-prop findings rather than being silently dropped.
func ParseProps(raw string) []RuleName {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	var entries []RuleName
	seen := make(map[RuleName]bool)
	for _, f := range fields {
		name := RuleName(f)
		if seen[name] {
			continue
		}
		seen[name] = true
		entries = append(entries, name)
	}
	return entries
}

func matchAny(patterns []string, base string) bool {
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, base); ok {
			return true
		}
	}
	return false
}

func headerExempt(base string) bool {
	for _, n := range headerExemptNames {
		if base == n {
			return true
		}
	}
	ext := filepath.Ext(base)
	for _, e := range headerExemptExts {
		if ext == e {
			return true
		}
	}
	return false
}
