package vhdlblocks

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// DefaultExtensions are the file extensions recognized as VHDL design files.
var DefaultExtensions = []string{".vhd", ".vhdl"}

// Source lists VHDL design files and opens them.
type Source interface {
	// ListFiles returns the paths of all design files known to this
	// source, sorted.
	ListFiles() ([]string, error)

	// Open opens a path returned by ListFiles. It returns an error
	// matching fs.ErrNotExist for paths the source does not know.
	Open(path string) (io.ReadCloser, error)
}

// --- Dir Source (single directory, lazy) ---

type dirSource struct {
	path   string
	extSet map[string]struct{}
}

// Dir creates a Source over the design files of a single directory
// (no recursion). The directory is listed on each ListFiles call.
func Dir(path string, opts ...Option) (Source, error) {
	if err := checkDir(path); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)
	return &dirSource{path: path, extSet: makeExtensionSet(cfg.extensions)}, nil
}

// MustDir is like Dir but panics on error.
func MustDir(path string, opts ...Option) Source {
	src, err := Dir(path, opts...)
	if err != nil {
		panic(err)
	}
	return src
}

func (s *dirSource) ListFiles() ([]string, error) {
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(s.path, entry.Name())
		if hasValidExtension(path, s.extSet) {
			files = append(files, path)
		}
	}
	return files, nil
}

func (s *dirSource) Open(path string) (io.ReadCloser, error) {
	if filepath.Dir(path) != filepath.Clean(s.path) || !hasValidExtension(path, s.extSet) {
		return nil, fs.ErrNotExist
	}
	return os.Open(path)
}

// --- DirTree Source (recursive directory, indexed) ---

type treeSource struct {
	files []string
	known map[string]struct{}
}

// DirTree creates a Source that recursively indexes a directory tree.
// It walks the tree once at construction. Unreadable subdirectories
// are skipped.
func DirTree(root string, opts ...Option) (Source, error) {
	if err := checkDir(root); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)
	extSet := makeExtensionSet(cfg.extensions)

	s := &treeSource{known: make(map[string]struct{})}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !hasValidExtension(path, extSet) {
			return nil
		}
		s.files = append(s.files, path)
		s.known[path] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// MustDirTree is like DirTree but panics on error.
func MustDirTree(root string, opts ...Option) Source {
	src, err := DirTree(root, opts...)
	if err != nil {
		panic(err)
	}
	return src
}

func (s *treeSource) ListFiles() ([]string, error) {
	return slices.Clone(s.files), nil
}

func (s *treeSource) Open(path string) (io.ReadCloser, error) {
	if _, ok := s.known[path]; !ok {
		return nil, fs.ErrNotExist
	}
	return os.Open(path)
}

// --- Files Source (explicit paths) ---

type fileSource struct {
	paths []string
}

// Files creates a Source over explicit file paths regardless of their
// extension. Paths are opened only when read.
func Files(paths ...string) Source {
	return &fileSource{paths: slices.Clone(paths)}
}

func (s *fileSource) ListFiles() ([]string, error) {
	files := slices.Clone(s.paths)
	slices.Sort(files)
	return files, nil
}

func (s *fileSource) Open(path string) (io.ReadCloser, error) {
	if !slices.Contains(s.paths, path) {
		return nil, fs.ErrNotExist
	}
	return os.Open(path)
}

// --- FS Source (for embed.FS, testing, http filesystems) ---

type fsSource struct {
	name   string
	fsys   fs.FS
	extSet map[string]struct{}

	once  sync.Once
	files []string
	err   error
}

// FS creates a Source backed by an fs.FS (e.g., embed.FS). Paths are
// reported as name:path. The filesystem is indexed on first use.
func FS(name string, fsys fs.FS, opts ...Option) Source {
	cfg := newConfig(opts)
	return &fsSource{
		name:   name,
		fsys:   fsys,
		extSet: makeExtensionSet(cfg.extensions),
	}
}

func (s *fsSource) index() ([]string, error) {
	s.once.Do(func() {
		s.err = fs.WalkDir(s.fsys, ".", func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if !d.IsDir() && hasValidExtension(path, s.extSet) {
				s.files = append(s.files, path)
			}
			return nil
		})
	})
	return s.files, s.err
}

func (s *fsSource) ListFiles() ([]string, error) {
	files, err := s.index()
	if err != nil {
		return nil, err
	}
	out := make([]string, len(files))
	for i, path := range files {
		out[i] = s.name + ":" + path
	}
	return out, nil
}

func (s *fsSource) Open(path string) (io.ReadCloser, error) {
	rel, ok := strings.CutPrefix(path, s.name+":")
	if !ok {
		return nil, fs.ErrNotExist
	}
	return s.fsys.Open(rel)
}

// --- Multi Source (combines multiple sources) ---

type multiSource struct {
	sources []Source
}

// Multi combines multiple sources into one. Files listed by more than
// one source are reported once.
func Multi(sources ...Source) Source {
	return &multiSource{sources: sources}
}

func (s *multiSource) ListFiles() ([]string, error) {
	var files []string
	for _, src := range s.sources {
		f, err := src.ListFiles()
		if err != nil {
			return nil, err
		}
		files = append(files, f...)
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}

func (s *multiSource) Open(path string) (io.ReadCloser, error) {
	for _, src := range s.sources {
		r, err := src.Open(path)
		if err == nil {
			return r, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, fs.ErrNotExist
}

// --- Helpers ---

func checkDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &os.PathError{Op: "open", Path: path, Err: os.ErrInvalid}
	}
	return nil
}

func makeExtensionSet(extensions []string) map[string]struct{} {
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		set[strings.ToLower(ext)] = struct{}{}
	}
	return set
}

func hasValidExtension(path string, extSet map[string]struct{}) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := extSet[ext]
	return ok
}
