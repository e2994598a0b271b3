package logger

import "context"

// nopLogger discards everything. It lets library code log unconditionally
// while leaving the decision to wire real logging to the caller.
type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...Field) {}
func (nopLogger) Info(context.Context, string, ...Field)  {}
func (nopLogger) Warn(context.Context, string, ...Field)  {}
func (nopLogger) Error(context.Context, string, ...Field) {}
func (n nopLogger) Named(string) Logger                   { return n }

// Nop returns a logger that discards all records.
func Nop() Logger {
	return nopLogger{}
}
