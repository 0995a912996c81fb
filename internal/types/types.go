// Package types provides internal types shared across vhdlblocks packages.
package types

import (
	"context"
	"fmt"
	"log/slog"
)

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-item iteration logging (tokens, state transitions, blocks).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = slog.Level(-8)

// ctx is a package-level context for logging.
var ctx = context.Background()

// Logger wraps slog.Logger with nil-safe helpers.
type Logger struct {
	L *slog.Logger
}

// Enabled returns true if logging is enabled at the given level.
func (l *Logger) Enabled(level slog.Level) bool {
	return l.L != nil && l.L.Enabled(ctx, level)
}

// Log emits a log message if logging is enabled.
func (l *Logger) Log(level slog.Level, msg string, attrs ...slog.Attr) {
	if l.L != nil && l.L.Enabled(ctx, level) {
		l.L.LogAttrs(ctx, level, msg, attrs...)
	}
}

// TraceEnabled returns true if trace-level logging is enabled.
func (l *Logger) TraceEnabled() bool {
	return l.Enabled(LevelTrace)
}

// Trace emits a trace-level log.
func (l *Logger) Trace(msg string, attrs ...slog.Attr) {
	l.Log(LevelTrace, msg, attrs...)
}

// ComponentLogger returns logger tagged with a component attribute,
// or nil when logger is nil.
func ComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("component", component))
}

// ByteOffset is a byte position in source text.
type ByteOffset uint32

// Position is a location in source text. Row and Column are 1-based;
// Offset is the 0-based absolute byte offset.
type Position struct {
	Row    int
	Column int
	Offset ByteOffset
}

// String formats the position as "row:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Column)
}

// Span represents a range in source text.
type Span struct {
	Start Position // inclusive
	End   Position // exclusive
}

// NewSpan creates a new span.
func NewSpan(start, end Position) Span {
	return Span{Start: start, End: end}
}

// Len returns the length of the span in bytes.
func (s Span) Len() ByteOffset {
	return s.End.Offset - s.Start.Offset
}

// IsEmpty returns true if the span is empty.
func (s Span) IsEmpty() bool {
	return s.Start.Offset == s.End.Offset
}

// String formats the span as "row:col .. row:col".
func (s Span) String() string {
	return s.Start.String() + " .. " + s.End.String()
}
