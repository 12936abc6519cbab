package minio

import (
	"context"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/jmgilman/go/fatls/core"
	"github.com/jmgilman/go/fatls/errors"
	"github.com/jmgilman/go/fatls/minio/internal/errs"
	"github.com/jmgilman/go/fatls/minio/internal/pathutil"
	"github.com/jmgilman/go/fatls/minio/internal/types"
)

// MinioFS implements core.Store for MinIO/S3-compatible storage.
//
//nolint:revive // MinioFS name matches LocalFS and MemoryFS
type MinioFS struct {
	client *minio.Client
	bucket string
	prefix string // Optional prefix for all keys
}

// New creates a MinIO-backed store. No request is made until the store is
// used.
func New(cfg Config) (*MinioFS, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	client := cfg.Client
	if client == nil {
		var err error
		client, err = minio.New(cfg.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
			Secure: cfg.UseSSL,
		})
		if err != nil {
			return nil, errors.WithContext(
				errors.Wrap(err, errors.CodeInvalidConfig, "failed to create minio client"),
				"endpoint", cfg.Endpoint,
			)
		}
	}

	return &MinioFS{
		client: client,
		bucket: cfg.Bucket,
		prefix: pathutil.NormalizePrefix(cfg.Prefix),
	}, nil
}

// Client returns the underlying MinIO client.
func (m *MinioFS) Client() *minio.Client {
	return m.client
}

// Bucket returns the bucket the store reads from.
func (m *MinioFS) Bucket() string {
	return m.bucket
}

// joinPath joins the store prefix with the given name.
func (m *MinioFS) joinPath(name string) string {
	return pathutil.JoinPath(m.prefix, name)
}

// Open opens the named object for streaming reads.
// The returned file supports Seek via HTTP range requests.
func (m *MinioFS) Open(name string) (fs.File, error) {
	key := m.joinPath(name)
	return newStreamingFile(context.Background(), m, key, name)
}

// Stat returns information for the named object. Names with no object but
// with objects below them are reported as directories.
func (m *MinioFS) Stat(name string) (fs.FileInfo, error) {
	key := m.joinPath(name)
	base := path.Base(pathutil.Normalize(name))
	if key == m.prefix {
		return types.FromPrefix(base), nil
	}

	ctx := context.Background()
	info, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return types.FromObject(base, info), nil
	}

	translated := errs.Translate(err)
	if !errors.Is(translated, fs.ErrNotExist) {
		return nil, errs.PathError("stat", name, translated)
	}

	isDir, lerr := m.hasChildren(ctx, key)
	if lerr != nil {
		return nil, errs.PathError("stat", name, errs.Translate(lerr))
	}
	if !isDir {
		return nil, errs.PathError("stat", name, fs.ErrNotExist)
	}
	return types.FromPrefix(base), nil
}

// hasChildren reports whether any object lives under key/.
func (m *MinioFS) hasChildren(ctx context.Context, key string) (bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for object := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:  pathutil.DirKey(key),
		MaxKeys: 1,
	}) {
		if object.Err != nil {
			return false, object.Err
		}
		return true, nil
	}
	return false, nil
}

// ReadDir returns the entries directly under the named directory, sorted by
// name.
func (m *MinioFS) ReadDir(name string) ([]fs.DirEntry, error) {
	key := pathutil.DirKey(m.joinPath(name))
	ctx := context.Background()

	var entries []fs.DirEntry
	marker := false

	for object := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    key,
		Recursive: false,
	}) {
		if object.Err != nil {
			return nil, errs.PathError("readdir", name, errs.Translate(object.Err))
		}

		// A zero-byte "dir/" object marks an empty directory.
		if object.Key == key {
			marker = true
			continue
		}

		relName := strings.TrimPrefix(object.Key, key)
		if dir, ok := strings.CutSuffix(relName, "/"); ok {
			if dir != "" {
				entries = append(entries, types.FromPrefix(dir))
			}
			continue
		}
		if relName == "" {
			continue
		}
		entries = append(entries, types.FromObject(relName, object))
	}

	if len(entries) == 0 && !marker && key != pathutil.DirKey(m.prefix) {
		return nil, errs.PathError("readdir", name, fs.ErrNotExist)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	return entries, nil
}

// Type returns StoreTypeRemote.
func (m *MinioFS) Type() core.StoreType {
	return core.StoreTypeRemote
}

// Compile-time interface check.
var _ core.Store = (*MinioFS)(nil)
