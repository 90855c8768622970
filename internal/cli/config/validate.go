package config

import (
	"fmt"

	"github.com/leapstack-labs/leapunit/internal/cli/output"
	sharedcfg "github.com/leapstack-labs/leapunit/internal/config"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("invalid output format: output is required")
	}
	if _, err := output.ParseMode(c.Output); err != nil {
		return fmt.Errorf("invalid output format: %w", err)
	}
	if c.Precision < 0 || c.Precision > sharedcfg.MaxPrecision {
		return fmt.Errorf("invalid precision %d: must be between 0 and %d", c.Precision, sharedcfg.MaxPrecision)
	}

	seen := make(map[string]bool, len(c.Units))
	for i, a := range c.Units {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("units[%d]: %w", i, err)
		}
		if seen[a.Symbol] {
			return fmt.Errorf("units[%d]: unit alias %q is defined more than once", i, a.Symbol)
		}
		seen[a.Symbol] = true
	}
	return nil
}
