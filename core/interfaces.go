package core

import (
	"io"
	"io/fs"
	"time"

	"github.com/jmgilman/go/fatls/fatdate"
)

// StoreType represents the kind of storage backing a Store.
type StoreType int

const (
	// StoreTypeUnknown indicates the store type is unknown or unspecified.
	StoreTypeUnknown StoreType = iota
	// StoreTypeLocal indicates a disk-backed store.
	StoreTypeLocal
	// StoreTypeMemory indicates an in-memory store.
	StoreTypeMemory
	// StoreTypeRemote indicates a remote store such as S3.
	StoreTypeRemote
)

// String returns a string representation of the StoreType.
func (t StoreType) String() string {
	switch t {
	case StoreTypeLocal:
		return "local"
	case StoreTypeMemory:
		return "memory"
	case StoreTypeRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// Sink is the destination of all rendered output. It accepts single bytes and
// byte sequences in order. *bytes.Buffer, *bufio.Writer and *strings.Builder
// all satisfy Sink.
type Sink interface {
	io.Writer
	io.ByteWriter
}

// File is a read cursor over one entry in a store.
//
// A File carries a single position; it is not safe for concurrent use.
type File interface {
	// Name returns the entry name without any directory component.
	Name() string

	// IsDir reports whether the entry is a directory.
	IsDir() bool

	// IsHidden reports whether the entry carries the hidden attribute.
	IsHidden() bool

	// Size returns the entry size in bytes.
	Size() uint32

	// AccessDate returns the last access date. ok is false when the store
	// does not record it.
	AccessDate() (date fatdate.Date, ok bool)

	// CreateDateTime returns the creation timestamp, if recorded.
	CreateDateTime() (date fatdate.Date, tm fatdate.Time, ok bool)

	// ModifyDateTime returns the last modification timestamp, if recorded.
	ModifyDateTime() (date fatdate.Date, tm fatdate.Time, ok bool)

	// SeekTo moves the read position to the absolute offset pos.
	// Seeking beyond Size fails.
	SeekTo(pos uint32) error

	// ReadByte returns the byte at the current position and advances it.
	// It returns io.EOF at end of data and any other error on failure.
	io.ByteReader

	// Rewind resets the read position and the directory cursor to the start.
	Rewind()

	// Close releases resources held by the cursor.
	Close() error
}

// Dir enumerates the children of a directory entry.
type Dir interface {
	// OpenNext opens the next child in the store's native order. It returns
	// false when enumeration is exhausted or failed; Err distinguishes the two.
	// The caller must Close the returned child.
	OpenNext() (Handle, bool)

	// Err returns the error that stopped enumeration, or nil if it ended
	// normally or has not started.
	Err() error
}

// Handle is a cursor over a file or directory entry.
type Handle interface {
	File
	Dir
}

// Store defines the read-only operations a storage provider must offer.
type Store interface {
	// Open opens the named file for reading. Files that also implement
	// io.Seeker are positioned with Seek; others are reopened.
	Open(name string) (fs.File, error)

	// Stat returns metadata for the named file or directory.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir returns the entries of the named directory in the order the
	// provider enumerates them.
	ReadDir(name string) ([]fs.DirEntry, error)

	// Type returns the kind of storage backing the store.
	Type() StoreType
}

// Optional FileInfo capabilities (type assert FileInfo.Sys()):
//
// - Attributes: Hidden() bool
// - Times: AccessTime() time.Time, CreateTime() time.Time

// Attributes exposes DOS-style entry attributes.
type Attributes interface {
	Hidden() bool
}

// Times exposes timestamps beyond fs.FileInfo.ModTime. A zero time means the
// provider does not record that timestamp.
type Times interface {
	AccessTime() time.Time
	CreateTime() time.Time
}
