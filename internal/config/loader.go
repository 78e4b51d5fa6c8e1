package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"hsmanager/pkg/logging"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/hsmanager"
	configFileName = "config.yaml"

	// EnvProfilesFile overrides storage.profilesFile.
	EnvProfilesFile = "HSMANAGER_PROFILES"
	// EnvLogLevel overrides logging.level.
	EnvLogLevel = "HSMANAGER_LOG_LEVEL"
	// EnvColor overrides shell.color.
	EnvColor = "HSMANAGER_COLOR"
)

// DefaultConfigPath returns ~/.config/hsmanager/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user config directory: %w", err)
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

// LoadConfig reads the configuration file at path on top of the defaults.
// A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	config := GetDefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("ConfigLoader", "No config file found at %s, using defaults", path)
			return config, nil
		}
		return Config{}, ConfigurationError{
			FilePath:  path,
			ErrorType: ErrorTypeIO,
			Message:   "cannot read configuration file",
			Details:   err.Error(),
			Cause:     err,
			Suggestions: []string{
				"Point --config at a readable YAML file",
			},
		}
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, ConfigurationError{
			FilePath:   path,
			ErrorType:  ErrorTypeParse,
			Message:    "malformed YAML",
			Details:    err.Error(),
			LineNumber: extractLineNumber(err.Error()),
			Cause:      err,
			Suggestions: []string{
				"Check indentation and quoting near the reported line",
			},
		}
	}

	if err := Validate(config); err != nil {
		return Config{}, ConfigurationError{
			FilePath:  path,
			ErrorType: ErrorTypeValidation,
			Message:   "invalid configuration",
			Details:   err.Error(),
			Cause:     err,
		}
	}

	logging.Info("ConfigLoader", "Loaded configuration from %s", path)
	return config, nil
}

// envOverrides lists the settings that can come from the environment. Empty
// values leave the configuration unchanged.
type envOverrides struct {
	ProfilesFile string `env:"HSMANAGER_PROFILES"`
	LogLevel     string `env:"HSMANAGER_LOG_LEVEL"`
	Color        string `env:"HSMANAGER_COLOR"`
}

// ApplyEnv overrides configuration values from environ, or from the process
// environment when environ is nil.
func ApplyEnv(config *Config, environ map[string]string) error {
	var overrides envOverrides
	if err := env.ParseWithOptions(&overrides, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if overrides.ProfilesFile != "" {
		config.Storage.ProfilesFile = overrides.ProfilesFile
	}
	if overrides.LogLevel != "" {
		config.Logging.Level = overrides.LogLevel
	}
	if overrides.Color != "" {
		config.Shell.Color = overrides.Color
	}
	return nil
}
