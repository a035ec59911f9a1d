// Package walker implements the traversal collaborator: it produces the
// ordered sequence of candidate file paths, pruning configured directory
// names and subtrees the metadata store marks fully pruned.
package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultPruneDirs are directory names skipped in every traversal.
var DefaultPruneDirs = []string{".git", ".svn", ".hg", "node_modules"}

// Pruner answers whether a directory's subtree is marked fully pruned.
// Implemented by meta.Source.
type Pruner interface {
	Pruned(dir string) bool
}

// Walker walks file and directory arguments into a flat candidate list.
type Walker struct {
	// PruneDirs are directory names to skip. Nil means DefaultPruneDirs.
	PruneDirs []string
	// Pruner marks whole subtrees as pruned. May be nil.
	Pruner Pruner
}

// WalkError records a path that could not be traversed. The walk continues.
type WalkError struct {
	Path string
	Err  error
}

func (e WalkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Walk expands the given roots, in order, into the candidate file paths.
// Files are yielded in lexical order within each root. Unreadable paths are
// collected as WalkErrors and do not abort the traversal.
func (w *Walker) Walk(roots []string) ([]string, []WalkError) {
	prune := w.PruneDirs
	if prune == nil {
		prune = DefaultPruneDirs
	}
	pruneSet := make(map[string]bool, len(prune))
	for _, d := range prune {
		pruneSet[d] = true
	}

	var paths []string
	var errs []WalkError

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			errs = append(errs, WalkError{Path: root, Err: err})
			continue
		}
		if !info.IsDir() {
			paths = append(paths, root)
			continue
		}

		walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				errs = append(errs, WalkError{Path: path, Err: err})
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				if path != root && pruneSet[d.Name()] {
					return fs.SkipDir
				}
				if w.Pruner != nil && path != root && w.Pruner.Pruned(relTo(root, path)) {
					return fs.SkipDir
				}
				return nil
			}
			paths = append(paths, path)
			return nil
		})
		if walkErr != nil {
			errs = append(errs, WalkError{Path: root, Err: walkErr})
		}
	}

	return paths, errs
}

// relTo returns path relative to root in slash form, falling back to the
// path itself when it cannot be made relative.
func relTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
