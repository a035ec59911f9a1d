package config

import (
	"fmt"

	"github.com/typolint/typolint/pkg/check"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}

	switch c.OutputFormat {
	case "", "auto", "text", "markdown", "json":
	default:
		return fmt.Errorf("unknown output format %q (want auto, text, markdown or json)", c.OutputFormat)
	}

	for _, name := range c.Disable {
		if !check.ValidRuleName(name) {
			return fmt.Errorf("unknown rule name %q in disable list", name)
		}
	}

	return nil
}
