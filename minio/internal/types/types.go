// Package types describes bucket keys as directory entries.
package types // nolint:revive // Internal package with clear purpose

import (
	"io/fs"
	"time"

	"github.com/minio/minio-go/v7"
)

// Entry is one object or one key prefix. It is both the fs.FileInfo and the
// fs.DirEntry for that key, so ReadDir results need no further lookups.
type Entry struct {
	name  string
	size  int64
	mod   time.Time
	isDir bool
}

// FromObject describes the object obj under the base name name.
func FromObject(name string, obj minio.ObjectInfo) *Entry {
	return &Entry{name: name, size: obj.Size, mod: obj.LastModified}
}

// FromPrefix describes a virtual directory. Prefixes have no size and no
// modification time.
func FromPrefix(name string) *Entry {
	return &Entry{name: name, isDir: true}
}

func (e *Entry) Name() string       { return e.name }
func (e *Entry) ModTime() time.Time { return e.mod }
func (e *Entry) IsDir() bool        { return e.isDir }

// Sys returns nil. Buckets record no attributes beyond the modification time.
func (e *Entry) Sys() any { return nil }

// Size is zero for prefixes.
func (e *Entry) Size() int64 {
	if e.isDir {
		return 0
	}
	return e.size
}

// Mode reports read-only permissions since the store never writes.
func (e *Entry) Mode() fs.FileMode {
	if e.isDir {
		return fs.ModeDir | 0o555
	}
	return 0o444
}

func (e *Entry) Type() fs.FileMode           { return e.Mode().Type() }
func (e *Entry) Info() (fs.FileInfo, error) { return e, nil }

var (
	_ fs.FileInfo = (*Entry)(nil)
	_ fs.DirEntry = (*Entry)(nil)
)
