package formatting

import (
	"fmt"
	"strings"

	"hsmanager/internal/profile"
)

// Field labels used by the console formatter and the shell.
const (
	LabelName    = "Server name"
	LabelVersion = "Server version"
	LabelPath    = "Server path"
	LabelArgs    = "Server launch arguments"
)

// ConsoleFormatter provides simple console output formatting
type ConsoleFormatter struct {
	options Options
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(options Options) *ConsoleFormatter {
	return &ConsoleFormatter{
		options: options,
	}
}

// FormatProfiles prints one name line per profile.
func (f *ConsoleFormatter) FormatProfiles(profiles []profile.Profile) (string, error) {
	if len(profiles) == 0 {
		return "No server profiles found.", nil
	}

	lines := make([]string, 0, len(profiles))
	for _, p := range profiles {
		lines = append(lines, FormatNameLine(p))
	}
	return strings.Join(lines, "\n"), nil
}

// FormatProfile prints the four fields of p, one per line.
func (f *ConsoleFormatter) FormatProfile(p profile.Profile) (string, error) {
	return strings.Join([]string{
		fmt.Sprintf("%s: %s", LabelName, p.Name),
		fmt.Sprintf("%s: %s", LabelVersion, p.Version),
		fmt.Sprintf("%s: %s", LabelPath, p.Path),
		fmt.Sprintf("%s: %s", LabelArgs, p.Args),
	}, "\n"), nil
}

// FormatNameLine renders the single line listing a profile's name.
func FormatNameLine(p profile.Profile) string {
	return fmt.Sprintf("%s: %s", LabelName, p.Name)
}
