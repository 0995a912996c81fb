package vhdlblocks

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
tab_size: 4
extensions: [.vhd, .vho]
workers: 3
log_level: Debug
paths:
  - rtl
  - sim
`))
	require.NoError(t, err)
	require.Equal(t, 4, cfg.TabSize)
	require.Equal(t, []string{".vhd", ".vho"}, cfg.Extensions)
	require.Equal(t, 3, cfg.Workers)
	require.Equal(t, []string{"rtl", "sim"}, cfg.Paths)

	level, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, level)

	c := newConfig(cfg.Options())
	require.Equal(t, 4, c.tabSize)
	require.Equal(t, 3, c.workers)
	require.Equal(t, []string{".vhd", ".vho"}, c.extensions)
}

func TestParseConfigEmpty(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	require.Empty(t, cfg.Options())

	level, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, slog.LevelWarn, level)
}

func TestParseConfigInvalid(t *testing.T) {
	tests := map[string]string{
		"unknown key":       "tabsize: 4\n",
		"negative tab size": "tab_size: -1\n",
		"negative workers":  "workers: -2\n",
		"bad extension":     "extensions: [vhd]\n",
		"bad level":         "log_level: loud\n",
		"wrong type":        "workers: many\n",
		"not a mapping":     "- a\n- b\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig([]byte(data))
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLevelNames(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"trace":   LevelTrace,
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"ERROR":   slog.LevelError,
	} {
		got, err := (&FileConfig{LogLevel: name}).Level()
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 2\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Workers)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(path, []byte("workers: -1\n"), 0o644))
	_, err = LoadConfig(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.Contains(t, err.Error(), path)
}
