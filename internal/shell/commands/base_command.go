package commands

// BaseCommand provides the dependencies shared by all shell commands.
type BaseCommand struct {
	output OutputLogger
}

// NewBaseCommand creates a new base command writing to output.
func NewBaseCommand(output OutputLogger) *BaseCommand {
	return &BaseCommand{
		output: output,
	}
}
