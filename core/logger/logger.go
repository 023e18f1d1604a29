package logger

import (
	"fmt"
	"io"
	"os"

	charm "github.com/charmbracelet/log"
)

// Logger is the logging capability handed to the core components. It is
// always injected explicitly; nothing in core reaches for a process-wide
// logger.
type Logger interface {
	Trace(format string, args ...interface{})
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}

type Options struct {
	Verbose bool
	Writer  io.Writer
}

// CharmLogger backs Logger with charmbracelet/log. Trace shares the debug
// level but carries a prefix, since charm has no level below debug.
type CharmLogger struct {
	l *charm.Logger
}

func New(opts Options) *CharmLogger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	l := charm.New(w)
	l.SetReportTimestamp(true)
	if opts.Verbose {
		l.SetLevel(charm.DebugLevel)
	}
	return &CharmLogger{l: l}
}

func (c *CharmLogger) Trace(format string, args ...interface{}) {
	c.l.Debugf("trace: %s", fmt.Sprintf(format, args...))
}

func (c *CharmLogger) Debug(format string, args ...interface{}) {
	c.l.Debugf(format, args...)
}

func (c *CharmLogger) Info(format string, args ...interface{}) {
	c.l.Infof(format, args...)
}

func (c *CharmLogger) Error(format string, args ...interface{}) {
	c.l.Errorf(format, args...)
}

// Nop discards everything. Used in tests and as a safe default when a
// caller passes nil.
type Nop struct{}

func (Nop) Trace(string, ...interface{}) {}
func (Nop) Debug(string, ...interface{}) {}
func (Nop) Info(string, ...interface{})  {}
func (Nop) Error(string, ...interface{}) {}

// OrNop returns l, or a Nop logger when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop{}
	}
	return l
}
