package config

import (
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/leapunit/pkg/unit"
)

// BuildRegistry returns a copy of base extended with aliases, defined in
// order so that later aliases may refer to earlier ones. base is not
// modified. A nil logger discards output.
func BuildRegistry(base *unit.Registry, aliases []Alias, logger *slog.Logger) (*unit.Registry, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if base == nil {
		base = unit.DefaultRegistry()
	}

	reg := base.Clone()
	for _, a := range aliases {
		if err := a.Validate(); err != nil {
			return nil, err
		}
		u, err := reg.Define(a.Symbol, a.Definition, a.Category)
		if err != nil {
			return nil, fmt.Errorf("unit alias %q: %w", a.Symbol, err)
		}
		logger.Debug("defined unit alias",
			slog.String("symbol", a.Symbol),
			slog.String("definition", a.Definition),
			slog.String("base_units", u.BaseUnitString()))
	}
	return reg, nil
}
