package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressOnlyPrintsAtVerboseOrAbove(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(VerbosityDefault, &buf)
	l.Progress("parsing %s", "foo.py")
	assert.Empty(t, buf.String())

	buf.Reset()
	l = NewLoggerWithWriter(VerbosityVerbose, &buf)
	l.Progress("parsing %s", "foo.py")
	assert.Contains(t, buf.String(), "parsing foo.py")
}

func TestDebugIncludesElapsedPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(VerbosityDebug, &buf)
	l.Debug("enriching op_kind")
	assert.True(t, strings.HasPrefix(buf.String(), "["))
	assert.Contains(t, buf.String(), "enriching op_kind")
}

func TestWarningAndErrorAlwaysPrint(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(VerbosityDefault, &buf)
	l.Warning("deprecated flag")
	l.Error("parse failed")
	out := buf.String()
	assert.Contains(t, out, "Warning: deprecated flag")
	assert.Contains(t, out, "Error: parse failed")
}

func TestTimingIsRecorded(t *testing.T) {
	l := NewLogger(VerbosityDefault)
	stop := l.StartTiming("parse")
	stop()
	_, ok := l.GetAllTimings()["parse"]
	assert.True(t, ok)
}

func TestIsVerboseAndIsDebug(t *testing.T) {
	l := NewLogger(VerbosityDebug)
	assert.True(t, l.IsVerbose())
	assert.True(t, l.IsDebug())
}
