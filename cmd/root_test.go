package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hsmanager/internal/config"
	"hsmanager/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs a fresh command tree with args and input on stdin.
// HOME points at an empty directory so no user configuration is picked up.
func executeCommand(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvProfilesFile, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvColor, "")

	cmd := newRootCmd()
	cmd.Version = "1.2.3-test"

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestSetVersion(t *testing.T) {
	original := GetVersion()
	defer SetVersion(original)

	SetVersion("1.2.3-test")
	assert.Equal(t, "1.2.3-test", rootCmd.Version)
	assert.Equal(t, "1.2.3-test", GetVersion())
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "hsmanager", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)

	for _, name := range []string{"config", "profiles", "debug", "legacy"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "missing global flag %s", name)
	}

	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"version", "shell", "profile"})
}

func TestVersionFlag(t *testing.T) {
	out, err := executeCommand(t, "", "--version")
	require.NoError(t, err)
	assert.Equal(t, "hsmanager version 1.2.3-test\n", out)
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"generic", errors.New("boom"), ExitCodeError},
		{"not found", &profile.NotFoundError{Name: "x"}, ExitCodeNotFound},
		{"wrapped not found", fmt.Errorf("edit: %w", &profile.NotFoundError{Name: "x"}), ExitCodeNotFound},
		{"storage", &profile.StorageError{Op: profile.OpDecode, Path: "p", Err: errors.New("bad")}, ExitCodeStorage},
		{"missing file", fmt.Errorf("load: %w", &profile.StorageError{Op: profile.OpRead, Path: "p", Err: os.ErrNotExist}), ExitCodeStorage},
		{"configuration", config.ConfigurationError{Message: "bad"}, ExitCodeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, getExitCode(tt.err))
		})
	}
}

func TestRootRunsShell(t *testing.T) {
	profiles := filepath.Join(t.TempDir(), "profiles.json")

	out, err := executeCommand(t, "version\nhelp\nexit\nauthor\n", "--profiles", profiles)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "> Version: 1.2.3-test\n> Help:\n"))
	assert.True(t, strings.HasSuffix(out, "> "))
	assert.NotContains(t, out, "Author:", "nothing after exit is executed")
}

func TestConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	fromFile := filepath.Join(dir, "from-file.json")
	fromEnv := filepath.Join(dir, "from-env.json")
	fromFlag := filepath.Join(dir, "from-flag.json")

	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("storage:\n  profilesFile: "+fromFile+"\n"), 0o644))

	_, err := executeCommand(t, "", "--config", configPath, "profile", "add", "a")
	require.NoError(t, err)
	assert.FileExists(t, fromFile)

	t.Run("env overrides file", func(t *testing.T) {
		cmd := newRootCmd()
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		cmd.SetArgs([]string{"--config", configPath, "profile", "add", "b"})
		t.Setenv(config.EnvProfilesFile, fromEnv)
		require.NoError(t, cmd.Execute())
		assert.FileExists(t, fromEnv)
	})

	t.Run("flag overrides file", func(t *testing.T) {
		_, err := executeCommand(t, "", "--config", configPath, "--profiles", fromFlag, "profile", "add", "c")
		require.NoError(t, err)
		assert.FileExists(t, fromFlag)
	})
}

func TestInvalidConfiguration(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("registry:\n  missingPolicy: sometimes\n"), 0o644))

	_, err := executeCommand(t, "", "--config", configPath, "version")
	require.Error(t, err)

	var cfgErr config.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, config.ErrorTypeValidation, cfgErr.ErrorType)
	assert.Equal(t, ExitCodeError, getExitCode(err))
}

func TestReportError_ConfigurationDetails(t *testing.T) {
	_, err := executeCommand(t, "", "--config", t.TempDir(), "version")
	require.Error(t, err)

	var out bytes.Buffer
	reportError(&out, err)

	assert.Contains(t, out.String(), "Error: Configuration error in")
	assert.Contains(t, out.String(), "is a directory")
	assert.Contains(t, out.String(), "Suggestions:")
}

func TestReportError_PlainError(t *testing.T) {
	var out bytes.Buffer
	reportError(&out, fmt.Errorf("wrapped: %w", profile.ErrNotFound))
	assert.Equal(t, "Error: wrapped: profile not found\n", out.String())
}

func TestDebugTracesConfigLoading(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvProfilesFile, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvColor, "")

	configPath := filepath.Join(t.TempDir(), "absent.yaml")

	cmd := newRootCmd()
	var stderr bytes.Buffer
	cmd.SetOut(io.Discard)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--debug", "--config", configPath, "version"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, stderr.String(), "No config file found at "+configPath)
	assert.Contains(t, stderr.String(), "subsystem=ConfigLoader")
}
