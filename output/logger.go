// Package output provides structured, verbosity-controlled diagnostic
// logging for the Metastatic CLI. Adapted directly from the teacher's
// output/logger.go (same method set and elapsed-time-prefixed Debug
// shape), repointed at Metastatic's pipeline stages (parse/abstract/
// enrich/analyze/reify) instead of code-pathfinder's graph build.
package output

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Logger writes diagnostics to stderr (or a custom writer in tests),
// gated by VerbosityLevel, and keeps named timings for --debug summaries.
type Logger struct {
	verbosity VerbosityLevel
	writer    io.Writer
	startTime time.Time
	timings   map[string]time.Duration
}

// NewLogger creates a logger with the given verbosity, writing to stderr.
func NewLogger(verbosity VerbosityLevel) *Logger {
	return &Logger{
		verbosity: verbosity,
		writer:    os.Stderr,
		startTime: time.Now(),
		timings:   make(map[string]time.Duration),
	}
}

// NewLoggerWithWriter creates a logger writing to w instead of stderr.
func NewLoggerWithWriter(verbosity VerbosityLevel, w io.Writer) *Logger {
	return &Logger{
		verbosity: verbosity,
		writer:    w,
		startTime: time.Now(),
		timings:   make(map[string]time.Duration),
	}
}

// Progress logs a high-level pipeline stage message ("parsing source...",
// "enriching op_kind...") in verbose and debug modes.
func (l *Logger) Progress(format string, args ...interface{}) {
	if l.verbosity >= VerbosityVerbose {
		fmt.Fprintf(l.writer, format+"\n", args...)
	}
}

// Statistic logs a count/metric ("142 nodes", "3 flows found") in
// verbose and debug modes.
func (l *Logger) Statistic(format string, args ...interface{}) {
	if l.verbosity >= VerbosityVerbose {
		fmt.Fprintf(l.writer, format+"\n", args...)
	}
}

// Debug logs with an elapsed-time prefix, debug mode only.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.verbosity >= VerbosityDebug {
		elapsed := time.Since(l.startTime)
		fmt.Fprintf(l.writer, "[%s] %s\n", formatDuration(elapsed), fmt.Sprintf(format, args...))
	}
}

// Warning always prints.
func (l *Logger) Warning(format string, args ...interface{}) {
	fmt.Fprintf(l.writer, "Warning: %s\n", fmt.Sprintf(format, args...))
}

// Error always prints.
func (l *Logger) Error(format string, args ...interface{}) {
	fmt.Fprintf(l.writer, "Error: %s\n", fmt.Sprintf(format, args...))
}

// StartTiming begins timing a named pipeline stage; call the returned
// func to record its duration.
func (l *Logger) StartTiming(name string) func() {
	start := time.Now()
	return func() {
		l.timings[name] = time.Since(start)
	}
}

func (l *Logger) GetTiming(name string) time.Duration {
	return l.timings[name]
}

func (l *Logger) GetAllTimings() map[string]time.Duration {
	out := make(map[string]time.Duration, len(l.timings))
	for k, v := range l.timings {
		out[k] = v
	}
	return out
}

// PrintTimingSummary prints every recorded timing, verbose mode only.
func (l *Logger) PrintTimingSummary() {
	if l.verbosity < VerbosityVerbose {
		return
	}
	fmt.Fprintln(l.writer, "\nTiming summary:")
	for name, d := range l.timings {
		fmt.Fprintf(l.writer, "  %s: %s\n", name, d.Round(time.Millisecond))
	}
}

func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000
	return fmt.Sprintf("%02d:%02d.%03d", minutes, seconds, millis)
}

func (l *Logger) Verbosity() VerbosityLevel { return l.verbosity }
func (l *Logger) IsVerbose() bool           { return l.verbosity >= VerbosityVerbose }
func (l *Logger) IsDebug() bool             { return l.verbosity >= VerbosityDebug }
