package billy

import (
	"io/fs"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jmgilman/go/fatls/core"
)

// LocalFS wraps billy's osfs for disk-backed stores.
type LocalFS struct {
	store
}

// MemoryFS wraps billy's memfs for in-memory stores.
type MemoryFS struct {
	store
}

// Option configures store creation.
type Option func(*config)

type config struct {
	boundOS bool
}

// WithBoundOS confines every path, symlink targets included, to the root
// directory of a LocalFS.
func WithBoundOS() Option {
	return func(c *config) { c.boundOS = true }
}

// NewLocal creates a store over the directory root on the local disk.
func NewLocal(root string, opts ...Option) *LocalFS {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	var bfs billy.Filesystem
	if cfg.boundOS {
		bfs = osfs.New(root, osfs.WithBoundOS())
	} else {
		bfs = osfs.New(root)
	}
	return &LocalFS{store{bfs: bfs, typ: core.StoreTypeLocal}}
}

// NewMemory creates an empty in-memory store.
func NewMemory(_ ...Option) *MemoryFS {
	return &MemoryFS{store{bfs: memfs.New(), typ: core.StoreTypeMemory}}
}

// New wraps an existing billy.Filesystem. The store reports
// core.StoreTypeUnknown.
func New(bfs billy.Filesystem) core.Store {
	return &store{bfs: bfs, typ: core.StoreTypeUnknown}
}

// store is the shared read-only adapter over a billy.Filesystem.
type store struct {
	bfs billy.Filesystem
	typ core.StoreType
}

// Unwrap returns the underlying billy.Filesystem.
func (s *store) Unwrap() billy.Filesystem {
	return s.bfs
}

// normalize converts paths to use forward slashes consistently.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// Open opens the named file for reading.
func (s *store) Open(name string) (fs.File, error) {
	name = normalize(name)
	f, err := s.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: s.bfs, name: name}, nil
}

// Stat returns metadata for the named file or directory.
func (s *store) Stat(name string) (fs.FileInfo, error) {
	return s.bfs.Stat(normalize(name))
}

// ReadDir returns the entries of the named directory sorted by name.
func (s *store) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := s.bfs.ReadDir(normalize(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// Type returns the kind of storage backing the store.
func (s *store) Type() core.StoreType {
	return s.typ
}

// Compile-time interface checks.
var (
	_ core.Store = (*LocalFS)(nil)
	_ core.Store = (*MemoryFS)(nil)
)
