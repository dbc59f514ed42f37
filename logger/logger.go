// Package logger provides a small logging interface for pawfetch components.
// Diagnostics always go to stderr; stdout is reserved for the fetch output.
package logger

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Logger defines the logging operations used by pawfetch. Messages take
// alternating key/value pairs. *log.Logger from charmbracelet/log satisfies it.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

// New creates a logger writing to w. Debug messages are only emitted when
// debug is true; otherwise only warnings and errors are shown.
func New(w io.Writer, debug bool) Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "pawfetch",
		Level:  level,
	})
}

type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(msg interface{}, keyvals ...interface{}) {}
func (l *noopLogger) Info(msg interface{}, keyvals ...interface{})  {}
func (l *noopLogger) Warn(msg interface{}, keyvals ...interface{})  {}
func (l *noopLogger) Error(msg interface{}, keyvals ...interface{}) {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   string
	Message string
	KeyVals []interface{}
}

// BufferLogger captures log messages for testing.
type BufferLogger struct {
	Messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{
		Messages: make([]LogMessage, 0),
	}
}

func (l *BufferLogger) add(level string, msg interface{}, keyvals []interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: level, Message: fmt.Sprint(msg), KeyVals: keyvals})
}

func (l *BufferLogger) Debug(msg interface{}, keyvals ...interface{}) { l.add("debug", msg, keyvals) }
func (l *BufferLogger) Info(msg interface{}, keyvals ...interface{})  { l.add("info", msg, keyvals) }
func (l *BufferLogger) Warn(msg interface{}, keyvals ...interface{})  { l.add("warn", msg, keyvals) }
func (l *BufferLogger) Error(msg interface{}, keyvals ...interface{}) { l.add("error", msg, keyvals) }

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.Messages = l.Messages[:0]
}
