package vhdlblocks

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vhdlblocks/vhdlblocks/internal/types"
)

// EnvPath names the environment variable listing extra design
// directories, separated by the OS path list separator. A leading "+"
// appends the directories to the configured ones, a leading "-"
// prepends them, and anything else replaces them.
const EnvPath = "VHDLBLOCKS_PATH"

// ConfigFileName is the per-project configuration file.
const ConfigFileName = ".vhdlblocks.yaml"

type pathOp int

const (
	pathReplace pathOp = iota
	pathAppend
	pathPrepend
)

// SearchPath returns the design directories to check: configured,
// adjusted by EnvPath, deduplicated and filtered to directories that
// exist.
func SearchPath(configured []string, logger *slog.Logger) []string {
	log := types.Logger{L: logger}
	paths := configured
	if v := os.Getenv(EnvPath); v != "" {
		op, dirs := parsePathList(v)
		paths = applyOp(op, dirs, paths)
		log.Log(slog.LevelDebug, "search path from environment",
			slog.String("value", v), slog.Int("dirs", len(dirs)))
	}
	return filterExistingDirs(dedup(paths))
}

// SearchSources returns a Source over the design trees below dirs.
// Directories that cannot be indexed are skipped.
func SearchSources(dirs []string, opts ...Option) Source {
	var sources []Source
	for _, d := range dirs {
		if src, err := DirTree(d, opts...); err == nil {
			sources = append(sources, src)
		}
	}
	return Multi(sources...)
}

// ConfigFiles returns the candidate configuration files in order of
// precedence: the working directory, then the user configuration
// directory, then the home directory.
func ConfigFiles() []string {
	files := []string{ConfigFileName}
	if dir, err := os.UserConfigDir(); err == nil {
		files = append(files, filepath.Join(dir, "vhdlblocks", "config.yaml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, filepath.Join(home, ConfigFileName))
	}
	return files
}

// FindConfig returns the first existing file of ConfigFiles.
func FindConfig() (string, bool) {
	for _, path := range ConfigFiles() {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// parsePathList interprets the "+" and "-" prefixes of a path list.
func parsePathList(value string) (pathOp, []string) {
	switch {
	case strings.HasPrefix(value, "+"):
		return pathAppend, splitPaths(value[1:])
	case strings.HasPrefix(value, "-"):
		return pathPrepend, splitPaths(value[1:])
	default:
		return pathReplace, splitPaths(value)
	}
}

func applyOp(op pathOp, dirs, current []string) []string {
	switch op {
	case pathAppend:
		return append(append([]string(nil), current...), dirs...)
	case pathPrepend:
		return append(dirs, current...)
	default:
		return dirs
	}
}

func splitPaths(s string) []string {
	if s == "" {
		return nil
	}
	var result []string
	for _, p := range strings.Split(s, string(os.PathListSeparator)) {
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func dedup(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	var result []string
	for _, p := range paths {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			result = append(result, p)
		}
	}
	return result
}

func filterExistingDirs(paths []string) []string {
	var result []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err == nil && info.IsDir() {
			result = append(result, p)
		}
	}
	return result
}
