package commands

import "errors"

// Sentinel errors mapped to process exit codes by the main package.
var (
	// ErrViolationsFound signals that the scan completed and found
	// violations.
	ErrViolationsFound = errors.New("typographic violations found")
	// ErrNotPruned signals that a prunecheck path is not marked pruned.
	ErrNotPruned = errors.New("path is not pruned")
)
