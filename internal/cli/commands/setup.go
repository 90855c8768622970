package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/leapstack-labs/leapunit/internal/cli/config"
	"github.com/leapstack-labs/leapunit/internal/cli/output"
	intconfig "github.com/leapstack-labs/leapunit/internal/config"
	"github.com/leapstack-labs/leapunit/pkg/unit"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Registry *unit.Registry
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with a unit registry extended by
// the configured aliases and a renderer for the configured output mode.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	reg, err := intconfig.BuildRegistry(unit.Default, cfg.Units, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build unit registry: %w", err)
	}

	mode, err := output.ParseMode(cfg.Output)
	if err != nil {
		return nil, err
	}
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Registry: reg,
		Renderer: r,
	}, nil
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	cfg := config.Default()
	if v := os.Getenv("LEAPUNIT_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("LEAPUNIT_PRECISION"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Precision = p
		}
	}
	cfg.Verbose = os.Getenv("LEAPUNIT_VERBOSE") == "true"
	return cfg
}

// parseValue parses a numeric command argument.
func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: expected a number", s)
	}
	return v, nil
}

// formatFloat renders a float with the given number of significant digits,
// or the shortest round-trip form when precision is zero.
func formatFloat(v float64, precision int) string {
	if precision <= 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', precision, 64)
}
