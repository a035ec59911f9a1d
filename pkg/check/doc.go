// Package check implements the typographic rule-evaluation engine.
//
// # Architecture
//
// The package has three layers:
//
//  1. Root package (pkg/check/): shared types, the rule registry, the
//     exception resolver, the reporter, and the per-file scan engine
//  2. Rules (pkg/check/rules/): one data-driven definition per line rule
//  3. Collaborators: traversal and metadata lookup live outside the engine
//     behind the ExceptionSource interface, so a scan is a pure function of
//     (content, exceptions) and testable against in-memory bytes
//
// # Rule Registration
//
// Line rules are registered via init() functions when their package is
// imported:
//
//	import _ "github.com/typolint/typolint/pkg/check/rules"
//
// # Scanning
//
// The engine feeds lines through the line rules in a fixed order, tracks
// the header-detection state machine and the end-of-file state, and runs
// the unused-exception check last. The reporter applies per-file exception
// suppression and the per-rule report cap.
//
//	eng := check.NewEngine(cfg)
//	exc, skip := check.Resolve(cfg, path, source)
//	if !skip {
//		report := eng.Scan(path, content, exc)
//	}
package check
