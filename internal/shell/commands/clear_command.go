package commands

import (
	"context"
)

// clearScreen erases the display and moves the cursor home.
const clearScreen = "\x1b[2J\x1b[1;1H"

// ClearCommand clears the terminal and reprints the banner
type ClearCommand struct {
	*BaseCommand
	info BuildInfo
}

// NewClearCommand creates a new clear command
func NewClearCommand(output OutputLogger, info BuildInfo) *ClearCommand {
	return &ClearCommand{
		BaseCommand: NewBaseCommand(output),
		info:        info,
	}
}

// Execute clears the screen and reprints logo, version and author
func (c *ClearCommand) Execute(ctx context.Context, args []string) error {
	c.output.Output("%s", clearScreen)
	PrintBanner(c.output, c.info)
	return nil
}

// Usage returns the usage string
func (c *ClearCommand) Usage() string {
	return "clear"
}

// Description returns the command description
func (c *ClearCommand) Description() string {
	return "clear the screen"
}
