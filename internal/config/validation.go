package config

import (
	"hsmanager/internal/profile"
	"hsmanager/pkg/logging"
)

// Validate checks that every configuration value is usable.
func Validate(config Config) error {
	var errs ValidationErrors

	if config.Storage.ProfilesFile == "" {
		errs.Add("storage.profilesFile", "must not be empty", config.Storage.ProfilesFile)
	}

	if _, err := profile.ParseMissingPolicy(config.Registry.MissingPolicy); err != nil {
		errs.Add("registry.missingPolicy", err.Error(), config.Registry.MissingPolicy)
	}

	switch config.Shell.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs.Add("shell.color", "must be one of auto, always, never", config.Shell.Color)
	}

	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		errs.Add("logging.level", err.Error(), config.Logging.Level)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// MissingPolicy returns the parsed registry.missingPolicy value.
func (c Config) MissingPolicy() profile.MissingPolicy {
	policy, err := profile.ParseMissingPolicy(c.Registry.MissingPolicy)
	if err != nil {
		return profile.MissingReport
	}
	return policy
}

// LogLevel returns the parsed logging.level value.
func (c Config) LogLevel() logging.LogLevel {
	level, err := logging.ParseLevel(c.Logging.Level)
	if err != nil {
		return logging.LevelWarn
	}
	return level
}

// ProfileStore builds the store described by the storage section.
func (c Config) ProfileStore() *profile.FileStore {
	if c.Storage.AtomicWrites {
		return profile.NewFileStore(c.Storage.ProfilesFile)
	}
	return profile.NewFileStore(c.Storage.ProfilesFile, profile.WithDirectWrites())
}
