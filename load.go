package vhdlblocks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/vhdlblocks/vhdlblocks/internal/types"
)

// ErrNoSources is returned when CheckFiles is called without a source.
var ErrNoSources = errors.New("no VHDL sources provided")

// ErrBinaryContent is reported for files that do not look like text.
var ErrBinaryContent = errors.New("binary content")

// binaryCheckSize is how much of a file is probed for NUL bytes.
const binaryCheckSize = 1024

// FileResult is the outcome of parsing one design file. Tokens and
// Blocks count what was parsed before any failure.
type FileResult struct {
	Path   string
	Tokens int
	Blocks int
	Err    error
}

// CheckFiles parses every file listed by src, at most WithWorkers files
// at a time, and verifies the block and token chains of each. Results
// are sorted by path. Per-file failures are reported in FileResult.Err;
// the returned error is set only when listing fails or ctx is cancelled.
func CheckFiles(ctx context.Context, src Source, opts ...Option) ([]FileResult, error) {
	if src == nil {
		return nil, ErrNoSources
	}
	cfg := newConfig(opts)
	logger := types.Logger{L: types.ComponentLogger(cfg.logger, "check")}

	files, err := src.ListFiles()
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}
	logger.Log(slog.LevelInfo, "checking files",
		slog.Int("files", len(files)), slog.Int("workers", cfg.workers))

	results := make([]FileResult, len(files))
	var wg sync.WaitGroup
	sem := make(chan struct{}, cfg.workers)

	for i, file := range files {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			case sem <- struct{}{}:
			}
			defer func() { <-sem }()

			if ctx.Err() != nil {
				return
			}
			results[i] = checkFile(src, file, cfg)
			r := &results[i]
			if r.Err != nil {
				logger.Log(slog.LevelDebug, "file failed",
					slog.String("path", r.Path), slog.Any("error", r.Err))
			} else if logger.TraceEnabled() {
				logger.Trace("file ok", slog.String("path", r.Path),
					slog.Int("tokens", r.Tokens), slog.Int("blocks", r.Blocks))
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b FileResult) int {
		return strings.Compare(a.Path, b.Path)
	})
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	logger.Log(slog.LevelInfo, "check complete",
		slog.Int("files", len(results)), slog.Int("failed", failed))
	return results, nil
}

func checkFile(src Source, path string, cfg config) FileResult {
	r := FileResult{Path: path}
	rc, err := src.Open(path)
	if err != nil {
		r.Err = err
		return r
	}
	content, err := io.ReadAll(rc)
	_ = rc.Close()
	if err != nil {
		r.Err = fmt.Errorf("reading %s: %w", path, err)
		return r
	}
	if looksBinary(content) {
		r.Err = fmt.Errorf("%s: %w", path, ErrBinaryContent)
		return r
	}

	p := NewParser(content, WithLogger(cfg.logger), WithTabSize(cfg.tabSize))
	doc, err := p.document()
	if err == nil {
		err = doc.Check()
	}
	r.Err = err
	r.Tokens = doc.TokenCount()
	r.Blocks = doc.Len()
	return r
}

func looksBinary(content []byte) bool {
	probe := content[:min(len(content), binaryCheckSize)]
	return bytes.IndexByte(probe, 0) >= 0
}
