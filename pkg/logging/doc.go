// Package logging provides the diagnostic logger used by hsmanager.
//
// The logger is built on the standard slog package and tags every entry with
// the subsystem that produced it. It is meant for operator diagnostics only:
// messages the interactive shell shows to the user go through the shell's own
// console logger and never through this package.
//
// # Usage
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Registry", "Loaded %d profiles", n)
//	logging.Debug("Shell", "Entering state %s", state)
//	logging.Error("Storage", err, "Failed to save %s", path)
//
// Until InitForCLI is called every call is a no-op, which keeps library code
// and tests quiet by default.
package logging
