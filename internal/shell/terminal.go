package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
)

// TerminalOptions configures the readline instance used on a real terminal.
type TerminalOptions struct {
	Prompt      string
	HistoryFile string
}

// NewTerminalReader creates a readline instance completing the shell's
// commands and, inside the inspect session, profile names.
func NewTerminalReader(s *Shell, opts TerminalOptions) (*readline.Instance, error) {
	completer := readline.NewPrefixCompleter(
		readline.PcItemDynamic(s.Completions),
	)

	return readline.NewEx(&readline.Config{
		Prompt:            opts.Prompt,
		HistoryFile:       opts.HistoryFile,
		AutoComplete:      completer,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
}

// PlainReader reads lines from a non-interactive input such as a pipe.
// The prompt is written to out before every read. Lines have no length
// limit.
type PlainReader struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string

	done      chan struct{}
	closeOnce sync.Once
}

type plainLine struct {
	line string
	err  error
}

// NewPlainReader creates a PlainReader.
func NewPlainReader(in io.Reader, out io.Writer) *PlainReader {
	return &PlainReader{
		in:   bufio.NewReader(in),
		out:  out,
		done: make(chan struct{}),
	}
}

// SetPrompt sets the text written before the next read.
func (p *PlainReader) SetPrompt(prompt string) {
	p.prompt = prompt
}

// Readline returns the next line without its terminator, or io.EOF once
// the input ends or the reader is closed.
func (p *PlainReader) Readline() (string, error) {
	select {
	case <-p.done:
		return "", io.EOF
	default:
	}

	fmt.Fprint(p.out, p.prompt)

	result := make(chan plainLine, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		result <- plainLine{line: line, err: err}
	}()

	select {
	case <-p.done:
		return "", io.EOF
	case r := <-result:
		if r.err == io.EOF && r.line != "" {
			r.err = nil
		}
		if r.err != nil {
			return "", r.err
		}
		return strings.TrimSuffix(strings.TrimSuffix(r.line, "\n"), "\r"), nil
	}
}

// Close makes a pending and every later Readline return io.EOF.
func (p *PlainReader) Close() error {
	p.closeOnce.Do(func() { close(p.done) })
	return nil
}

// OpenReader picks the reader for in: readline when in is a terminal, a
// PlainReader otherwise. The returned close function releases the terminal.
func OpenReader(s *Shell, in io.Reader, out io.Writer, opts TerminalOptions) (LineReader, func() error, error) {
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		rl, err := NewTerminalReader(s, opts)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize terminal: %w", err)
		}
		return rl, rl.Close, nil
	}
	pr := NewPlainReader(in, out)
	return pr, pr.Close, nil
}
