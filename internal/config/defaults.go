package config

import (
	"os"
	"path/filepath"

	"hsmanager/internal/profile"
)

const (
	// DefaultPrompt is printed before every line the shell reads.
	DefaultPrompt = "> "

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// GetDefaultConfig returns the built-in configuration.
func GetDefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			ProfilesFile: profile.DefaultFileName,
			AtomicWrites: true,
		},
		Registry: RegistryConfig{
			MissingPolicy: profile.MissingReport.String(),
		},
		Shell: ShellConfig{
			Prompt:      DefaultPrompt,
			InspectBack: true,
			HistoryFile: filepath.Join(os.TempDir(), ".hsmanager_history"),
			Color:       ColorAuto,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// ApplyLegacy switches the configuration to the behavior of earlier releases:
// not-found edits and removals hit the first entry and the inspect session
// can only be left by interrupting it.
func (c *Config) ApplyLegacy() {
	c.Registry.MissingPolicy = profile.MissingFirstEntry.String()
	c.Shell.InspectBack = false
}
