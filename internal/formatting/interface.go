// Package formatting renders server profiles for the command line.
//
// The same profile data can be shown in several output formats (console,
// JSON, YAML, table). The interactive shell uses the console formatter; the
// non-interactive profile commands let the user pick one with --output.
package formatting

import (
	"fmt"
	"strings"

	"hsmanager/internal/profile"
)

// OutputFormat represents the desired output format
type OutputFormat string

const (
	FormatConsole OutputFormat = "console" // Simple console output
	FormatJSON    OutputFormat = "json"    // JSON output
	FormatYAML    OutputFormat = "yaml"    // YAML output
	FormatTable   OutputFormat = "table"   // Rich table output
)

// ParseFormat validates a user supplied format name.
func ParseFormat(name string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(name)) {
	case FormatConsole:
		return FormatConsole, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatTable:
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (expected console, json, yaml or table)", name)
	}
}

// Options configures the formatter behavior
type Options struct {
	Format OutputFormat
	Color  bool // Enable colored output
}

// Formatter renders profiles.
type Formatter interface {
	// FormatProfiles renders a list of profiles in registry order.
	FormatProfiles(profiles []profile.Profile) (string, error)
	// FormatProfile renders every field of one profile.
	FormatProfile(p profile.Profile) (string, error)
}

// NewFormatter creates the formatter for options.Format.
func NewFormatter(options Options) Formatter {
	switch options.Format {
	case FormatJSON:
		return NewJSONFormatter(options)
	case FormatYAML:
		return NewYAMLFormatter(options)
	case FormatTable:
		return NewTableFormatter(options)
	case FormatConsole:
		fallthrough
	default:
		return NewConsoleFormatter(options)
	}
}
