// Package output renders command results for terminals, markdown consumers
// and machine-readable formats.
package output

import (
	"fmt"
	"strings"
)

// Mode selects how command results are rendered.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"     // text on a TTY, markdown otherwise
	ModeText     Mode = "text"     // styled text and tables
	ModeMarkdown Mode = "markdown" // headers, key/value lists and pipe tables
	ModeJSON     Mode = "json"
	ModeYAML     Mode = "yaml"
)

// Modes lists every accepted output mode.
func Modes() []Mode {
	return []Mode{ModeAuto, ModeText, ModeMarkdown, ModeJSON, ModeYAML}
}

// UnknownOutputModeError reports an output mode name that is not supported.
type UnknownOutputModeError struct {
	Mode string
}

func (e *UnknownOutputModeError) Error() string {
	names := make([]string, 0, len(Modes()))
	for _, m := range Modes() {
		names = append(names, string(m))
	}
	return fmt.Sprintf("unknown output mode %q (expected one of %s)", e.Mode, strings.Join(names, ", "))
}

// ParseMode converts a user-supplied name into a Mode. Matching is case
// insensitive, "md" is accepted for markdown and "yml" for yaml.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "text":
		return ModeText, nil
	case "markdown", "md":
		return ModeMarkdown, nil
	case "json":
		return ModeJSON, nil
	case "yaml", "yml":
		return ModeYAML, nil
	}
	return "", &UnknownOutputModeError{Mode: s}
}
