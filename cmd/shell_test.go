package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hsmanager/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellCommand(t *testing.T) {
	SetAuthor("hsmanager authors")
	defer SetAuthor("unknown")

	path := seedProfiles(t, profile.New("survival", "1.20.1", "/srv/a", "nogui"))

	out, err := executeCommand(t, "author\nserver-edit\nsurvival\nback\nbogus\n", "--profiles", path, "shell")
	require.NoError(t, err)

	assert.Contains(t, out, "Author: hsmanager authors\n")
	assert.Contains(t, out, "Edit server profiles\nServer name: survival\n")
	assert.Contains(t, out, "Server version: 1.20.1\n")
	assert.True(t, strings.HasSuffix(out, "> error\n> "), "bogus is dispatched in the main state")
}

func TestShellCommandLegacyIsModal(t *testing.T) {
	path := seedProfiles(t, profile.New("survival", "1.20.1", "/srv/a", "nogui"))

	out, err := executeCommand(t, "server-edit\nback\nexit\n", "--legacy", "--profiles", path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "Server not found\n"))
}

func TestShellCommandLoadFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	out, err := executeCommand(t, "server-edit\nversion\n", "--profiles", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Error: failed to load server profiles")
	assert.Contains(t, out, "Version: 1.2.3-test\n")
}

func TestShellCommandFatalLoadFailure(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("shell:\n  fatalLoadErrors: true\n"), 0o644))

	_, err := executeCommand(t, "server-edit\nversion\n", "--config", configPath, "--profiles", filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Equal(t, ExitCodeStorage, getExitCode(err))
}
