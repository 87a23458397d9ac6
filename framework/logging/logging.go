// Package logging is a thin veneer over logr so the framework can emit
// structured logs through whatever implementation the host wires in. The
// default is a no-op: a test-support library should be silent unless asked.
package logging

import "github.com/go-logr/logr"

// Logger is the minimal structured logger the framework emits through.
type Logger interface {
	// Info logs at the default verbosity.
	Info(msg string, keysAndValues ...any)

	// Debug logs detail that is only interesting when diagnosing setup.
	Debug(msg string, keysAndValues ...any)

	// WithValues returns a Logger that annotates every message with the
	// supplied key/value pairs.
	WithValues(keysAndValues ...any) Logger
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Info(string, ...any)      {}
func (nopLogger) Debug(string, ...any)     {}
func (nopLogger) WithValues(...any) Logger { return nopLogger{} }

// NewLogrLogger returns a Logger that writes through l. Debug messages are
// emitted at verbosity 1.
func NewLogrLogger(l logr.Logger) Logger { return logrLogger{log: l} }

type logrLogger struct {
	log logr.Logger
}

func (l logrLogger) Info(msg string, keysAndValues ...any) {
	l.log.Info(msg, keysAndValues...)
}

func (l logrLogger) Debug(msg string, keysAndValues ...any) {
	l.log.V(1).Info(msg, keysAndValues...)
}

func (l logrLogger) WithValues(keysAndValues ...any) Logger {
	return logrLogger{log: l.log.WithValues(keysAndValues...)}
}
