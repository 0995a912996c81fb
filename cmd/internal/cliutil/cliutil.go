// Package cliutil provides shared CLI utilities for the vhdlblocks command.
package cliutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// Format is an output format flag value.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var _ pflag.Value = (*Format)(nil)

// String implements pflag.Value.
func (f *Format) String() string {
	if *f == "" {
		return string(FormatText)
	}
	return string(*f)
}

// Set implements pflag.Value.
func (f *Format) Set(s string) error {
	switch Format(strings.ToLower(s)) {
	case FormatText:
		*f = FormatText
	case FormatJSON:
		*f = FormatJSON
	default:
		return fmt.Errorf("unknown format %q (want text or json)", s)
	}
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}

// ReadInput reads the file named by the only argument, or stdin when
// there is no argument or it is "-". It returns a display name for
// messages.
func ReadInput(args []string, stdin io.Reader) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "<stdin>", nil, fmt.Errorf("read stdin: %w", err)
		}
		return "<stdin>", data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return args[0], nil, fmt.Errorf("read file: %w", err)
	}
	return args[0], data, nil
}

// GetOutput opens the output file or returns w.
func GetOutput(outputFile string, w io.Writer) (io.Writer, func(), error) {
	if outputFile == "" || outputFile == "-" {
		return w, func() {}, nil
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// LogLevel picks the log level from the -v count. Without -v the
// configured level applies.
func LogLevel(verbose int, configured slog.Level, trace slog.Level) slog.Level {
	switch {
	case verbose >= 2:
		return trace
	case verbose == 1:
		return min(configured, slog.LevelDebug)
	default:
		return configured
	}
}

// PrintError writes a formatted error message to w.
func PrintError(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "error: "+format+"\n", args...)
}
