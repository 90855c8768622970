package config

// Default configuration values.
const (
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultPrecision = 0      // shortest round-trip representation
	MaxPrecision     = 17

	EnvPrefix = "LEAPUNIT_"
)
