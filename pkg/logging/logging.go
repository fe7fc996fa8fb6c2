// Package logging wraps logr.Logger so the rest of rbxdb never imports a
// concrete logging backend directly.
package logging

import (
	"github.com/go-logr/logr"
)

const (
	LevelInfo  = 0
	LevelDebug = 1
	LevelTrace = 2
)

// NewLogger wraps an existing logr.Logger. A zero-value logr.Logger (no
// sink) is replaced with a discard logger so callers never need a nil check.
func NewLogger(log logr.Logger) *Logger {
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	return &Logger{log: log}
}

// DefaultLogger returns a Logger that discards everything. Every builder in
// this module defaults to it so importing rbxdb produces no output unless a
// caller opts in with WithLogger.
func DefaultLogger() *Logger {
	return &Logger{log: logr.Discard()}
}

// Logger narrows logr.Logger down to the four verbs the builders use.
type Logger struct {
	log logr.Logger
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.V(LevelDebug).Info(msg, keysAndValues...)
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Info(msg, keysAndValues...)
}

func (l *Logger) Trace(msg string, keysAndValues ...interface{}) {
	l.log.V(LevelTrace).Info(msg, keysAndValues...)
}

func (l *Logger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(err, msg, keysAndValues...)
}

// WithName scopes subsequent log lines, e.g. logger.WithName("table:tracks").
func (l *Logger) WithName(name string) *Logger {
	return &Logger{log: l.log.WithName(name)}
}
