package shell

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_Output(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(false, false, &buf)

	l.Output("a%d", 1)
	l.OutputLine("b")
	l.Info("info")
	l.Error("oops: %s", "x")
	l.Success("done")
	l.Debug("hidden")

	assert.Equal(t, "a1b\ninfo\noops: x\ndone\n", buf.String())
}

func TestLogger_VerboseAndColor(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(true, true, &buf)

	l.Debug("shown")
	l.Error("red")

	out := buf.String()
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "\x1b[31mred\x1b[0m")

	var quiet bytes.Buffer
	NewLoggerWithWriter(false, true, &quiet).Debug("gone")
	assert.Empty(t, quiet.String())
}

func TestDetectColor(t *testing.T) {
	assert.True(t, DetectColor("always", nil))
	assert.False(t, DetectColor("never", nil))
	assert.False(t, DetectColor("auto", nil))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, DetectColor("auto", nil))
}
