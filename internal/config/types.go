package config

// Config is the complete hsmanager configuration.
type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Registry RegistryConfig `yaml:"registry"`
	Shell    ShellConfig    `yaml:"shell"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// StorageConfig controls where and how profiles are persisted.
type StorageConfig struct {
	// ProfilesFile is the path of the profiles JSON file.
	ProfilesFile string `yaml:"profilesFile"`
	// AtomicWrites stages saves in a temporary file renamed over the target.
	AtomicWrites bool `yaml:"atomicWrites"`
}

// RegistryConfig controls registry behavior.
type RegistryConfig struct {
	// MissingPolicy is "report" or "first-entry".
	MissingPolicy string `yaml:"missingPolicy"`
}

// ShellConfig controls the interactive shell.
type ShellConfig struct {
	Prompt string `yaml:"prompt"`
	// InspectBack enables the "back" command in the inspect session.
	InspectBack bool `yaml:"inspectBack"`
	// FatalLoadErrors makes a failed profile load end the shell with an error
	// instead of being reported and ignored.
	FatalLoadErrors bool `yaml:"fatalLoadErrors"`
	// HistoryFile stores readline history. Empty disables history.
	HistoryFile string `yaml:"historyFile"`
	// Color is "auto", "always" or "never".
	Color string `yaml:"color"`
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	Level string `yaml:"level"`
}
