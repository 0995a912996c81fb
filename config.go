package vhdlblocks

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned for configuration files that cannot be
// decoded or hold out of range values.
var ErrInvalidConfig = errors.New("invalid configuration")

// FileConfig is the YAML configuration file format.
//
//	tab_size: 4
//	extensions: [.vhd, .vhdl, .vho]
//	workers: 8
//	log_level: debug
//	paths: [rtl, sim]
type FileConfig struct {
	TabSize    int      `yaml:"tab_size"`
	Extensions []string `yaml:"extensions"`
	Workers    int      `yaml:"workers"`
	LogLevel   string   `yaml:"log_level"`
	Paths      []string `yaml:"paths"`
}

// LoadConfig reads a configuration file.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes configuration YAML. Unknown keys are rejected.
func ParseConfig(data []byte) (*FileConfig, error) {
	var cfg FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *FileConfig) validate() error {
	if c.TabSize < 0 {
		return fmt.Errorf("%w: tab_size must not be negative", ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidConfig)
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: extension %q must start with a dot", ErrInvalidConfig, ext)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level. An empty level is Warn.
func (c *FileConfig) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "":
		return slog.LevelWarn, nil
	case "trace":
		return LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
}

// Options converts the settings into options. Unset fields keep their
// defaults.
func (c *FileConfig) Options() []Option {
	var opts []Option
	if c.TabSize > 0 {
		opts = append(opts, WithTabSize(c.TabSize))
	}
	if len(c.Extensions) > 0 {
		opts = append(opts, WithExtensions(c.Extensions...))
	}
	if c.Workers > 0 {
		opts = append(opts, WithWorkers(c.Workers))
	}
	return opts
}
