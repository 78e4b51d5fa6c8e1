// Package commands provides the command tables of the interactive shell.
//
// Every command implements the Command interface and is registered in a
// Registry under the exact line that triggers it. The shell keeps one
// Registry per state, so the same word can mean different things in the main
// prompt and in the inspect session.
package commands

import (
	"context"
	"errors"
	"sort"
)

// ErrExit is returned by a command that ends the shell.
var ErrExit = errors.New("exit")

// Command represents a shell command that can be executed interactively.
type Command interface {
	// Execute runs the command with the given arguments
	Execute(ctx context.Context, args []string) error

	// Usage returns the usage string for the command
	Usage() string

	// Description returns a brief description of what the command does
	Description() string
}

// OutputLogger defines the interface for structured command output.
// This separates user-facing output from diagnostic logging.
type OutputLogger interface {
	// User-facing output, no decoration
	Output(format string, args ...interface{})
	OutputLine(format string, args ...interface{})

	// Status messages
	Info(format string, args ...interface{})
	Debug(format string, args ...interface{})
	Error(format string, args ...interface{})
	Success(format string, args ...interface{})
}

// Session is the part of the shell that commands can switch states on.
type Session interface {
	// EnterInspect loads the profiles and switches to the inspect session.
	EnterInspect(ctx context.Context) error
	// LeaveInspect returns to the main prompt.
	LeaveInspect()
}

// BuildInfo identifies the running binary.
type BuildInfo struct {
	Version string
	Author  string
}

// Registry manages the commands available in one shell state.
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command to the registry under its exact trigger line.
func (r *Registry) Register(name string, cmd Command) {
	r.commands[name] = cmd
}

// Get retrieves a command by name. Matching is exact and case-sensitive.
func (r *Registry) Get(name string) (Command, bool) {
	cmd, exists := r.commands[name]
	return cmd, exists
}

// List returns all registered command names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
