// Package config provides configuration management for the leapunit CLI.
//
// The shared alias type lives in internal/config and is re-exported here so
// that command code only needs this package.
package config

import (
	sharedcfg "github.com/leapstack-labs/leapunit/internal/config"
)

// Alias is an alias for the shared unit alias definition.
type Alias = sharedcfg.Alias

// Config holds all CLI configuration options.
type Config struct {
	Output    string  `koanf:"output"`
	Precision int     `koanf:"precision"`
	Verbose   bool    `koanf:"verbose"`
	Units     []Alias `koanf:"units"`
}

// Default configuration values.
const (
	DefaultOutput    = sharedcfg.DefaultOutput
	DefaultPrecision = sharedcfg.DefaultPrecision
)

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Output:    DefaultOutput,
		Precision: DefaultPrecision,
	}
}
