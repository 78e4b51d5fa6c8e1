package commands

import (
	"context"
)

// reservedCommands are advertised in help but have no implementation yet.
var reservedCommands = []struct{ name, description string }{
	{"server-add", "add a server"},
	{"server-remove", "remove a server"},
	{"server-list", "list servers"},
	{"server-start", "start a server"},
	{"server-stop", "stop a server"},
	{"server-restart", "restart a server"},
	{"server-status", "show server status"},
	{"server-log", "show server log"},
	{"server-backup", "back up a server"},
	{"server-restore", "restore a server"},
}

// HelpCommand lists the commands of a registry followed by the reserved
// server-* names.
type HelpCommand struct {
	*BaseCommand
	registry *Registry
}

// NewHelpCommand creates a help command describing registry.
func NewHelpCommand(output OutputLogger, registry *Registry) *HelpCommand {
	return &HelpCommand{
		BaseCommand: NewBaseCommand(output),
		registry:    registry,
	}
}

// Execute prints the help text
func (h *HelpCommand) Execute(ctx context.Context, args []string) error {
	h.output.OutputLine("Help:")
	for _, name := range h.registry.List() {
		cmd, _ := h.registry.Get(name)
		h.output.OutputLine("    %s: %s", cmd.Usage(), cmd.Description())
	}
	for _, reserved := range reservedCommands {
		if _, implemented := h.registry.Get(reserved.name); implemented {
			continue
		}
		h.output.OutputLine("    %s: %s", reserved.name, reserved.description)
	}
	return nil
}

// Usage returns the usage string
func (h *HelpCommand) Usage() string {
	return "help"
}

// Description returns the command description
func (h *HelpCommand) Description() string {
	return "show this help text"
}
