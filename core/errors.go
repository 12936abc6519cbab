package core

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotExist is returned when a file or directory does not exist.
	// Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrClosed is returned when reading from a closed cursor.
	// Re-exported from io/fs for convenience.
	ErrClosed = fs.ErrClosed

	// ErrIsDir is returned when byte reads or seeks target a directory.
	ErrIsDir = errors.New("is a directory")

	// ErrSeekRange is returned when a seek targets an offset beyond the entry size.
	ErrSeekRange = errors.New("seek beyond end of file")
)
