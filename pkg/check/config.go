package check

// Config controls which rules are disabled for the whole run and how the
// header detector recognizes a project header.
type Config struct {
	// DisabledRules contains rule names to suppress in every file.
	DisabledRules map[RuleName]bool

	// HeaderMarkers are the standalone words accepted as a project-name
	// marker by the header detector.
	HeaderMarkers []string
}

// NewConfig creates a default configuration with all rules enabled.
func NewConfig() *Config {
	return &Config{
		DisabledRules: make(map[RuleName]bool),
		HeaderMarkers: DefaultHeaderMarkers(),
	}
}

// IsDisabled returns true if the rule is globally suppressed.
func (c *Config) IsDisabled(name RuleName) bool {
	if c == nil {
		return false
	}
	return c.DisabledRules[name]
}

// Disable suppresses a rule for every file.
func (c *Config) Disable(name RuleName) *Config {
	c.DisabledRules[name] = true
	return c
}

// SetHeaderMarkers overrides the recognized project-name marker words.
func (c *Config) SetHeaderMarkers(markers []string) *Config {
	if len(markers) > 0 {
		c.HeaderMarkers = markers
	}
	return c
}
