// Package config provides shared configuration types for leapunit.
// It is decoupled from CLI concerns so that other tools embedding the unit
// engine can load the same alias definitions.
package config

import (
	"fmt"
	"strings"
)

// Alias defines a named unit in terms of other units, e.g.
//
//	symbol: W
//	definition: J s^-1
//	category: power
type Alias struct {
	Symbol     string `koanf:"symbol" yaml:"symbol" json:"symbol"`
	Definition string `koanf:"definition" yaml:"definition" json:"definition"`
	Category   string `koanf:"category" yaml:"category,omitempty" json:"category,omitempty"`
}

// Validate checks that the alias has a usable symbol and a definition.
func (a Alias) Validate() error {
	if a.Symbol == "" {
		return fmt.Errorf("unit alias symbol is required")
	}
	if strings.ContainsAny(a.Symbol, " */^\t") {
		return fmt.Errorf("unit alias symbol %q must not contain spaces or any of */^", a.Symbol)
	}
	if strings.TrimSpace(a.Definition) == "" {
		return fmt.Errorf("unit alias %q: definition is required", a.Symbol)
	}
	return nil
}

// ParseAliasShorthand parses the one-line alias form "symbol = definition",
// e.g. "W = J s^-1".
func ParseAliasShorthand(s string) (Alias, error) {
	symbol, definition, ok := strings.Cut(s, "=")
	if !ok {
		return Alias{}, fmt.Errorf("unit alias %q: expected \"symbol = definition\"", s)
	}
	a := Alias{
		Symbol:     strings.TrimSpace(symbol),
		Definition: strings.TrimSpace(definition),
	}
	return a, a.Validate()
}

// ProjectConfig holds the settings that can live in a leapunit.yaml file.
type ProjectConfig struct {
	Output    string  `koanf:"output"`
	Precision int     `koanf:"precision"`
	Units     []Alias `koanf:"units"`
}

// ApplyDefaults fills unset fields with their default values.
func (c *ProjectConfig) ApplyDefaults() {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
}
