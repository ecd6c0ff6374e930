// Package logx is the line logger used by the gauge firmware and its host
// tools. Each call writes exactly one line to the underlying writer, which is
// a UART on the MCU and stdout on the host.
package logx

import (
	"fmt"
	"io"
)

// Logger defines the logging operations. All methods accept a format string
// and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type lineLogger struct {
	w     io.Writer
	debug bool
}

// New returns a Logger writing to w. Debug lines are dropped unless debug is set.
func New(w io.Writer, debug bool) Logger {
	return &lineLogger{w: w, debug: debug}
}

func (l *lineLogger) Debug(format string, args ...any) {
	if l.debug {
		l.line("Debug: ", format, args)
	}
}

func (l *lineLogger) Info(format string, args ...any)  { l.line("Info: ", format, args) }
func (l *lineLogger) Warn(format string, args ...any)  { l.line("Warn: ", format, args) }
func (l *lineLogger) Error(format string, args ...any) { l.line("Error: ", format, args) }

// Write errors are ignored; logging is observational only.
func (l *lineLogger) line(prefix, format string, args []any) {
	_, _ = io.WriteString(l.w, prefix+fmt.Sprintf(format, args...)+"\r\n")
}

type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger { return noopLogger{} }

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
