// Package config provides configuration management for the typolint CLI.
//
// Configuration is layered from defaults, an optional typolint.yaml project
// file, TYPOLINT_ environment variables, and command-line flags, in
// increasing order of precedence.
package config

// HeaderConfig controls copyright header detection.
type HeaderConfig struct {
	// Markers are the words searched for, space-bounded, in the marker
	// window near the top of each file.
	Markers []string `koanf:"markers"`
}

// Config holds all CLI configuration options.
type Config struct {
	// Disable lists rule names disabled for the whole run.
	Disable []string `koanf:"disable"`
	// Jobs bounds concurrent file scans. Zero means one per CPU.
	Jobs int `koanf:"jobs"`
	// PropsFile is the path-metadata properties file. Relative paths are
	// resolved against the project root.
	PropsFile    string       `koanf:"props"`
	PruneDirs    []string     `koanf:"prune_dirs"`
	Header       HeaderConfig `koanf:"header"`
	Verbose      bool         `koanf:"verbose"`
	OutputFormat string       `koanf:"output"`

	// ProjectRoot is the directory config-relative paths resolve against.
	// Derived at load time, not read from the file.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultPropsFile = ".typoprops.yaml"
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
