package commands

import (
	"context"
)

// VersionCommand prints the version line
type VersionCommand struct {
	*BaseCommand
	info BuildInfo
}

// NewVersionCommand creates a new version command
func NewVersionCommand(output OutputLogger, info BuildInfo) *VersionCommand {
	return &VersionCommand{
		BaseCommand: NewBaseCommand(output),
		info:        info,
	}
}

// Execute prints the version
func (v *VersionCommand) Execute(ctx context.Context, args []string) error {
	PrintVersion(v.output, v.info)
	return nil
}

// Usage returns the usage string
func (v *VersionCommand) Usage() string {
	return "version"
}

// Description returns the command description
func (v *VersionCommand) Description() string {
	return "show version information"
}

// AuthorCommand prints the author line
type AuthorCommand struct {
	*BaseCommand
	info BuildInfo
}

// NewAuthorCommand creates a new author command
func NewAuthorCommand(output OutputLogger, info BuildInfo) *AuthorCommand {
	return &AuthorCommand{
		BaseCommand: NewBaseCommand(output),
		info:        info,
	}
}

// Execute prints the author
func (a *AuthorCommand) Execute(ctx context.Context, args []string) error {
	PrintAuthor(a.output, a.info)
	return nil
}

// Usage returns the usage string
func (a *AuthorCommand) Usage() string {
	return "author"
}

// Description returns the command description
func (a *AuthorCommand) Description() string {
	return "show author information"
}
