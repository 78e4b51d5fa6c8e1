package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"hsmanager/internal/formatting"
	"hsmanager/internal/profile"
	"hsmanager/internal/shell/commands"
	"hsmanager/pkg/logging"

	"github.com/chzyer/readline"
)

// State identifies which command table the shell dispatches to.
type State int

const (
	StateMain State = iota
	StateInspect
)

func (s State) String() string {
	switch s {
	case StateMain:
		return "main"
	case StateInspect:
		return "inspect"
	default:
		return "unknown"
	}
}

// Messages printed by the shell.
const (
	MsgUnknownCommand = "error"
	MsgInspectHeader  = "Edit server profiles"
	MsgInspectPrompt  = "Enter the name of the server to edit"
	MsgNotFound       = "Server not found"
	MsgInspectBack    = "Type 'back' to return to the main prompt."
)

// ErrUnknownCommand is returned by Execute for input no command matches.
var ErrUnknownCommand = errors.New("unknown command")

// LineReader supplies one line of input per call. *readline.Instance
// satisfies it.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// Options configures a Shell.
type Options struct {
	Prompt          string
	InspectBack     bool
	FatalLoadErrors bool
	MissingPolicy   profile.MissingPolicy
	Info            commands.BuildInfo
}

// Shell is the interactive prompt.
type Shell struct {
	output    commands.OutputLogger
	store     profile.Store
	opts      Options
	state     State
	inspected *profile.Registry
	tables    map[State]*commands.Registry
	formatter *formatting.ConsoleFormatter
}

// New creates a shell reading profiles from store.
func New(output commands.OutputLogger, store profile.Store, opts Options) *Shell {
	if opts.Prompt == "" {
		opts.Prompt = "> "
	}

	s := &Shell{
		output:    output,
		store:     store,
		opts:      opts,
		state:     StateMain,
		formatter: formatting.NewConsoleFormatter(formatting.Options{Format: formatting.FormatConsole}),
	}
	s.registerCommands()
	return s
}

// registerCommands builds the command table of every state.
func (s *Shell) registerCommands() {
	mainTable := commands.NewRegistry()
	mainTable.Register("help", commands.NewHelpCommand(s.output, mainTable))
	mainTable.Register("version", commands.NewVersionCommand(s.output, s.opts.Info))
	mainTable.Register("author", commands.NewAuthorCommand(s.output, s.opts.Info))
	mainTable.Register("exit", commands.NewExitCommand(s.output))
	mainTable.Register("clear", commands.NewClearCommand(s.output, s.opts.Info))
	mainTable.Register("server-edit", commands.NewServerEditCommand(s.output, s))

	inspectTable := commands.NewRegistry()
	if s.opts.InspectBack {
		inspectTable.Register("back", commands.NewBackCommand(s.output, s))
	}

	s.tables = map[State]*commands.Registry{
		StateMain:    mainTable,
		StateInspect: inspectTable,
	}
}

// State returns the current state.
func (s *Shell) State() State {
	return s.state
}

// Inspected returns the registry loaded by the current inspect session, or
// nil outside of one.
func (s *Shell) Inspected() *profile.Registry {
	return s.inspected
}

// EnterInspect loads the profiles from the store and switches to
// StateInspect. On failure the state is unchanged.
func (s *Shell) EnterInspect(ctx context.Context) error {
	s.output.OutputLine("%s", MsgInspectHeader)

	registry, err := profile.Load(s.store, profile.WithMissingPolicy(s.opts.MissingPolicy))
	if err != nil {
		return fmt.Errorf("failed to load server profiles: %w", err)
	}

	for p := range registry.All() {
		s.output.OutputLine("%s", formatting.FormatNameLine(p))
	}
	if s.opts.InspectBack {
		s.output.Info(MsgInspectBack)
	}

	s.inspected = registry
	s.setState(StateInspect)
	return nil
}

// LeaveInspect drops the loaded registry and returns to StateMain.
func (s *Shell) LeaveInspect() {
	s.inspected = nil
	s.setState(StateMain)
}

func (s *Shell) setState(state State) {
	if s.state != state {
		logging.Debug("Shell", "State %s -> %s", s.state, state)
	}
	s.state = state
}

// Execute dispatches one trimmed line in the current state.
func (s *Shell) Execute(ctx context.Context, line string) error {
	if cmd, ok := s.tables[s.state].Get(line); ok {
		return cmd.Execute(ctx, nil)
	}

	if s.state == StateInspect {
		s.lookup(line)
		return nil
	}

	return ErrUnknownCommand
}

// lookup prints the profile named name from the inspected registry.
func (s *Shell) lookup(name string) {
	p := s.inspected.Find(name)
	if p == nil {
		s.output.OutputLine("%s", MsgNotFound)
		return
	}

	details, _ := s.formatter.FormatProfile(*p)
	s.output.OutputLine("%s", details)
}

// Completions returns the candidates for tab completion in the current state.
func (s *Shell) Completions(line string) []string {
	candidates := s.tables[s.state].List()
	if s.state == StateInspect && s.inspected != nil {
		candidates = append(candidates, s.inspected.Names()...)
	}
	return candidates
}

// Run reads and dispatches lines until exit, end of input or ctx is done.
// It returns nil on a normal end. With FatalLoadErrors set, a failure to load
// the profiles ends the loop and is returned.
func (s *Shell) Run(ctx context.Context, reader LineReader) error {
	if closer, ok := reader.(io.Closer); ok {
		stop := context.AfterFunc(ctx, func() {
			if err := closer.Close(); err != nil {
				logging.Warn("Shell", "Failed to close reader: %v", err)
			}
		})
		defer stop()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if s.state == StateInspect {
			s.output.OutputLine("%s", MsgInspectPrompt)
		}
		reader.SetPrompt(s.opts.Prompt)

		line, err := reader.Readline()
		if err != nil && ctx.Err() != nil {
			logging.Debug("Shell", "Input closed: %v", context.Cause(ctx))
			return nil
		}
		if errors.Is(err, readline.ErrInterrupt) {
			if s.state == StateInspect {
				s.LeaveInspect()
			}
			continue
		} else if errors.Is(err, io.EOF) {
			logging.Debug("Shell", "End of input")
			return nil
		} else if err != nil {
			return fmt.Errorf("readline error: %w", err)
		}

		if err := s.Execute(ctx, strings.TrimSpace(line)); err != nil {
			switch {
			case errors.Is(err, commands.ErrExit):
				return nil
			case errors.Is(err, ErrUnknownCommand):
				s.output.OutputLine("%s", MsgUnknownCommand)
			case s.opts.FatalLoadErrors && profile.IsStorageError(err):
				return err
			default:
				logging.Error("Shell", err, "Command failed")
				s.output.Error("Error: %v", err)
			}
		}
	}
}

// PrintBanner writes the logo, version and author lines.
func (s *Shell) PrintBanner() {
	commands.PrintBanner(s.output, s.opts.Info)
}
