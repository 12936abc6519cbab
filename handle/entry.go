package handle

import (
	"bufio"
	"io"
	"io/fs"
	"math"
	"path"

	"github.com/jmgilman/go/fatls/core"
	"github.com/jmgilman/go/fatls/fatdate"
)

// Entry is a core.Handle over one path in a core.Store.
type Entry struct {
	store core.Store
	cfg   *config
	path  string
	name  string
	info  fs.FileInfo

	// file state
	file fs.File
	rd   *bufio.Reader
	pos  int64

	// directory state
	entries []fs.DirEntry
	listed  bool
	next    int
	err     error

	closed bool
}

// Open returns an Entry for name. Store errors are returned unchanged.
func Open(store core.Store, name string, opts ...Option) (*Entry, error) {
	p := clean(name)
	info, err := store.Stat(p)
	if err != nil {
		return nil, err
	}
	return newEntry(store, newConfig(opts), p, info), nil
}

func newEntry(store core.Store, cfg *config, p string, info fs.FileInfo) *Entry {
	name := info.Name()
	if p == "." || p == "/" {
		name = p
	}
	return &Entry{
		store: store,
		cfg:   cfg,
		path:  p,
		name:  name,
		info:  info,
	}
}

func clean(name string) string {
	if name == "" {
		return "."
	}
	return path.Clean(name)
}

// Path returns the store path the entry was opened on.
func (e *Entry) Path() string { return e.path }

// Name implements core.File.
func (e *Entry) Name() string { return e.name }

// IsDir implements core.File.
func (e *Entry) IsDir() bool { return e.info.IsDir() }

// IsHidden implements core.File.
func (e *Entry) IsHidden() bool { return e.cfg.hidden(e.name, e.info) }

// Size implements core.File. Sizes beyond 4 GiB are clamped.
func (e *Entry) Size() uint32 {
	size := e.info.Size()
	switch {
	case size < 0:
		return 0
	case size > math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(size)
}

// AccessDate implements core.File.
func (e *Entry) AccessDate() (fatdate.Date, bool) {
	t, ok := e.info.Sys().(core.Times)
	if !ok {
		return 0, false
	}
	d, _, ok := fatdate.Pack(t.AccessTime())
	return d, ok
}

// CreateDateTime implements core.File.
func (e *Entry) CreateDateTime() (fatdate.Date, fatdate.Time, bool) {
	t, ok := e.info.Sys().(core.Times)
	if !ok {
		return 0, 0, false
	}
	return fatdate.Pack(t.CreateTime())
}

// ModifyDateTime implements core.File.
func (e *Entry) ModifyDateTime() (fatdate.Date, fatdate.Time, bool) {
	return fatdate.Pack(e.info.ModTime())
}

// SeekTo implements core.File.
func (e *Entry) SeekTo(pos uint32) error {
	if err := e.readable(); err != nil {
		return err
	}
	if int64(pos) > e.info.Size() {
		return &fs.PathError{Op: "seek", Path: e.path, Err: core.ErrSeekRange}
	}
	if e.file == nil {
		if err := e.reopen(); err != nil {
			return err
		}
	}
	if int64(pos) == e.pos {
		return nil
	}

	if s, ok := e.file.(io.Seeker); ok {
		if _, err := s.Seek(int64(pos), io.SeekStart); err != nil {
			return err
		}
		e.rd.Reset(e.file)
		e.pos = int64(pos)
		return nil
	}

	// Without io.Seeker the stream is reopened and skipped forward.
	if int64(pos) < e.pos {
		if err := e.reopen(); err != nil {
			return err
		}
	}
	n, err := e.rd.Discard(int(int64(pos) - e.pos))
	e.pos += int64(n)
	return err
}

// ReadByte implements core.File.
func (e *Entry) ReadByte() (byte, error) {
	if err := e.readable(); err != nil {
		return 0, err
	}
	if e.file == nil {
		if err := e.reopen(); err != nil {
			return 0, err
		}
	}
	c, err := e.rd.ReadByte()
	if err != nil {
		return 0, err
	}
	e.pos++
	return c, nil
}

func (e *Entry) readable() error {
	if e.closed {
		return &fs.PathError{Op: "read", Path: e.path, Err: core.ErrClosed}
	}
	if e.info.IsDir() {
		return &fs.PathError{Op: "read", Path: e.path, Err: core.ErrIsDir}
	}
	return nil
}

// reopen opens the stream at offset 0, closing any previous one.
func (e *Entry) reopen() error {
	e.closeFile()
	f, err := e.store.Open(e.path)
	if err != nil {
		return err
	}
	e.file = f
	if e.rd == nil {
		e.rd = bufio.NewReaderSize(f, e.cfg.bufferSize)
	} else {
		e.rd.Reset(f)
	}
	e.pos = 0
	return nil
}

func (e *Entry) closeFile() {
	if e.file == nil {
		return
	}
	if err := e.file.Close(); err != nil {
		e.cfg.logger.Debug("close failed", "path", e.path, "error", err)
	}
	e.file = nil
}

// Rewind implements core.File. A file's stream is reopened on the next read
// and a directory is listed again on the next OpenNext.
func (e *Entry) Rewind() {
	e.closeFile()
	e.pos = 0
	e.entries = nil
	e.listed = false
	e.next = 0
	e.err = nil
}

// OpenNext implements core.Dir.
func (e *Entry) OpenNext() (core.Handle, bool) {
	if e.closed || !e.info.IsDir() || e.err != nil {
		return nil, false
	}
	if !e.listed {
		entries, err := e.store.ReadDir(e.path)
		if err != nil {
			e.err = err
			return nil, false
		}
		e.entries = entries
		e.listed = true
	}
	if e.next >= len(e.entries) {
		return nil, false
	}

	de := e.entries[e.next]
	e.next++
	info, err := de.Info()
	if err != nil {
		e.err = err
		return nil, false
	}
	return newEntry(e.store, e.cfg, path.Join(e.path, de.Name()), info), true
}

// Err implements core.Dir.
func (e *Entry) Err() error { return e.err }

// Close implements core.File. Closing twice is a no-op.
func (e *Entry) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	e.entries = nil
	if e.file == nil {
		return nil
	}
	err := e.file.Close()
	e.file = nil
	return err
}

var _ core.Handle = (*Entry)(nil)
