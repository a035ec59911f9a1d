// Package rules contains the line-level typographic rules plus the
// documentation entries for the file-level checks.
//
// Each line rule is a pure matcher over one raw line; all file state lives
// in the engine. Import this package to register all rules:
//
//	import _ "github.com/typolint/typolint/pkg/check/rules"
package rules
