package minio

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"path"

	"github.com/minio/minio-go/v7"

	"github.com/jmgilman/go/fatls/minio/internal/errs"
	"github.com/jmgilman/go/fatls/minio/internal/types"
)

// streamingFile provides streaming reads without buffering entire objects.
type streamingFile struct {
	fs     *MinioFS
	key    string
	name   string
	obj    *minio.Object
	info   minio.ObjectInfo
	offset int64 // Current read position for Seek
	closed bool
}

// newStreamingFile opens the object for streaming without downloading it.
func newStreamingFile(ctx context.Context, mfs *MinioFS, key, name string) (*streamingFile, error) {
	// StatObject first so a missing key fails here and not on the first Read.
	info, err := mfs.client.StatObject(ctx, mfs.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, errs.PathError("open", name, errs.Translate(err))
	}

	obj, err := mfs.client.GetObject(ctx, mfs.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errs.PathError("open", name, errs.Translate(err))
	}

	return &streamingFile{
		fs:   mfs,
		key:  key,
		name: name,
		obj:  obj,
		info: info,
	}, nil
}

// Read reads up to len(p) bytes into p from the streaming object.
func (f *streamingFile) Read(p []byte) (int, error) {
	if f.closed {
		return 0, errs.PathError("read", f.name, fs.ErrClosed)
	}
	if f.offset >= f.info.Size {
		return 0, io.EOF
	}
	n, err := f.obj.Read(p)
	f.offset += int64(n)

	// Only report EOF when no data is read.
	if n > 0 && errors.Is(err, io.EOF) {
		return n, nil
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return n, errs.PathError("read", f.name, errs.Translate(err))
	}
	return n, err
}

// Close closes the streaming file and releases resources.
func (f *streamingFile) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	return f.obj.Close()
}

// Stat returns file information for the streaming file.
func (f *streamingFile) Stat() (fs.FileInfo, error) {
	return types.FromObject(path.Base(f.name), f.info), nil
}

// Seek sets the read position for the next Read operation.
// It reopens the object with a range request starting at the new offset.
func (f *streamingFile) Seek(offset int64, whence int) (int64, error) {
	if f.closed {
		return 0, errs.PathError("seek", f.name, fs.ErrClosed)
	}

	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = f.offset + offset
	case io.SeekEnd:
		newOffset = f.info.Size + offset
	default:
		return 0, errs.PathError("seek", f.name, fs.ErrInvalid)
	}

	if newOffset < 0 {
		return 0, errs.PathError("seek", f.name, fs.ErrInvalid)
	}
	if newOffset == f.offset {
		return newOffset, nil
	}

	_ = f.obj.Close()

	// A range starting at or past the end is rejected by S3, so reads at the
	// end are answered by Read without a request.
	opts := minio.GetObjectOptions{}
	if newOffset > 0 && newOffset < f.info.Size {
		if err := opts.SetRange(newOffset, 0); err != nil {
			return 0, errs.PathError("seek", f.name, err)
		}
	}

	// nolint:contextcheck // fs.File.Seek cannot accept context; using background context
	obj, err := f.fs.client.GetObject(context.Background(), f.fs.bucket, f.key, opts)
	if err != nil {
		return 0, errs.PathError("seek", f.name, errs.Translate(err))
	}

	f.obj = obj
	f.offset = newOffset
	return newOffset, nil
}

// Compile-time interface checks.
var (
	_ fs.File   = (*streamingFile)(nil)
	_ io.Seeker = (*streamingFile)(nil)
)
