package types

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSpan(t *testing.T) {
	s := NewSpan(Position{Row: 1, Column: 1, Offset: 0}, Position{Row: 1, Column: 8, Offset: 7})
	if s.Len() != 7 {
		t.Errorf("Len() = %d, want 7", s.Len())
	}
	if s.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
	if got := s.String(); got != "1:1 .. 1:8" {
		t.Errorf("String() = %q", got)
	}

	empty := NewSpan(Position{Row: 2, Column: 1, Offset: 9}, Position{Row: 2, Column: 1, Offset: 9})
	if !empty.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
}

func TestLoggerNilSafe(t *testing.T) {
	var l Logger
	if l.Enabled(slog.LevelError) {
		t.Error("nil logger should not be enabled")
	}
	l.Log(slog.LevelError, "ignored")
	l.Trace("ignored")
}

func TestLoggerTrace(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: LevelTrace})
	l := Logger{L: ComponentLogger(slog.New(h), "engine")}

	if !l.TraceEnabled() {
		t.Fatal("trace should be enabled")
	}
	l.Trace("push", slog.String("state", "Document"))
	out := buf.String()
	if !strings.Contains(out, "component=engine") || !strings.Contains(out, "state=Document") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestComponentLoggerNil(t *testing.T) {
	if ComponentLogger(nil, "lexer") != nil {
		t.Error("ComponentLogger(nil) should be nil")
	}
}
