package shell

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Logger writes user-facing shell output.
type Logger struct {
	verbose  bool
	useColor bool
	writer   io.Writer
}

// NewLogger creates a logger writing to stdout.
func NewLogger(verbose, useColor bool) *Logger {
	return NewLoggerWithWriter(verbose, useColor, os.Stdout)
}

// NewLoggerWithWriter creates a logger with a custom writer
func NewLoggerWithWriter(verbose, useColor bool, writer io.Writer) *Logger {
	return &Logger{
		verbose:  verbose,
		useColor: useColor,
		writer:   writer,
	}
}

// Output writes text as is.
func (l *Logger) Output(format string, args ...interface{}) {
	fmt.Fprintf(l.writer, format, args...)
}

// OutputLine writes text followed by a newline.
func (l *Logger) OutputLine(format string, args ...interface{}) {
	fmt.Fprintf(l.writer, format+"\n", args...)
}

// colorize applies the attribute to text if colors are enabled
func (l *Logger) colorize(text string, attr color.Attribute) string {
	c := color.New(attr)
	if l.useColor {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(text)
}

// Info writes an informational message
func (l *Logger) Info(format string, args ...interface{}) {
	l.OutputLine("%s", l.colorize(fmt.Sprintf(format, args...), color.FgCyan))
}

// Debug writes a message only in verbose mode
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.OutputLine("%s", l.colorize(fmt.Sprintf(format, args...), color.FgHiBlack))
}

// Error writes an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.OutputLine("%s", l.colorize(fmt.Sprintf(format, args...), color.FgRed))
}

// Success writes a success message
func (l *Logger) Success(format string, args ...interface{}) {
	l.OutputLine("%s", l.colorize(fmt.Sprintf(format, args...), color.FgGreen))
}

// DetectColor resolves a color mode ("auto", "always", "never") for f.
// In auto mode colors are used when f is a terminal and NO_COLOR is unset.
func DetectColor(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
