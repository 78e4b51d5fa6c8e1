package commands

import (
	"context"
)

// ServerEditCommand enters the inspect session
type ServerEditCommand struct {
	*BaseCommand
	session Session
}

// NewServerEditCommand creates a new server-edit command
func NewServerEditCommand(output OutputLogger, session Session) *ServerEditCommand {
	return &ServerEditCommand{
		BaseCommand: NewBaseCommand(output),
		session:     session,
	}
}

// Execute switches the shell to the inspect session
func (s *ServerEditCommand) Execute(ctx context.Context, args []string) error {
	return s.session.EnterInspect(ctx)
}

// Usage returns the usage string
func (s *ServerEditCommand) Usage() string {
	return "server-edit"
}

// Description returns the command description
func (s *ServerEditCommand) Description() string {
	return "edit server profiles"
}

// BackCommand leaves the inspect session
type BackCommand struct {
	*BaseCommand
	session Session
}

// NewBackCommand creates a new back command
func NewBackCommand(output OutputLogger, session Session) *BackCommand {
	return &BackCommand{
		BaseCommand: NewBaseCommand(output),
		session:     session,
	}
}

// Execute returns to the main prompt
func (b *BackCommand) Execute(ctx context.Context, args []string) error {
	b.session.LeaveInspect()
	return nil
}

// Usage returns the usage string
func (b *BackCommand) Usage() string {
	return "back"
}

// Description returns the command description
func (b *BackCommand) Description() string {
	return "return to the main prompt"
}
