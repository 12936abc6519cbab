package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jmgilman/go/fatls/core"
	"github.com/jmgilman/go/fatls/fattest"
	"github.com/jmgilman/go/fatls/handle"
)

// setupTestMinIO starts a MinIO container and returns a client for it.
func setupTestMinIO(t *testing.T) *minio.Client {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     "minioadmin",
			"MINIO_ROOT_PASSWORD": "minioadmin",
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000/tcp"),
	}

	minioC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start MinIO container")
	t.Cleanup(func() { _ = minioC.Terminate(ctx) })

	endpoint, err := minioC.Endpoint(ctx, "")
	require.NoError(t, err, "failed to get container endpoint")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
		Secure: false,
	})
	require.NoError(t, err, "failed to create MinIO client")

	return client
}

// seedBucket creates bucket and uploads layout below prefix.
func seedBucket(t *testing.T, client *minio.Client, bucket, prefix string, layout fattest.Layout) *MinioFS {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	for _, name := range layout.Files() {
		key := name
		if prefix != "" {
			key = prefix + "/" + name
		}
		data := layout[name]
		_, err := client.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
		require.NoError(t, err, "failed to upload %s", key)
	}

	store, err := New(Config{Client: client, Bucket: bucket, Prefix: prefix})
	require.NoError(t, err)
	return store
}

// TestMinioConformance runs the handle suite over a MinIO-backed store.
func TestMinioConformance(t *testing.T) {
	client := setupTestMinIO(t)
	n := 0

	for _, prefix := range []string{"", "card/volume"} {
		t.Run("prefix="+prefix, func(t *testing.T) {
			fattest.TestHandleSuite(t, func(t *testing.T, layout fattest.Layout) core.Handle {
				n++
				store := seedBucket(t, client, fmt.Sprintf("suite-%d", n), prefix, layout)
				root, err := handle.Open(store, "/")
				require.NoError(t, err)
				return root
			})
		})
	}
}

// TestMinioStore exercises Stat, ReadDir and Seek directly.
func TestMinioStore(t *testing.T) {
	client := setupTestMinIO(t)
	store := seedBucket(t, client, "store", "", fattest.Layout{
		"a.txt":     []byte("0123456789"),
		"dir/b.txt": []byte("b"),
	})
	ctx := context.Background()
	_, err := client.PutObject(ctx, "store", "empty/", bytes.NewReader(nil), 0, minio.PutObjectOptions{})
	require.NoError(t, err)

	t.Run("stat file", func(t *testing.T) {
		info, err := store.Stat("a.txt")
		require.NoError(t, err)
		assert.Equal(t, "a.txt", info.Name())
		assert.Equal(t, int64(10), info.Size())
		assert.False(t, info.IsDir())
		assert.False(t, info.ModTime().IsZero())
	})

	t.Run("stat virtual directory", func(t *testing.T) {
		info, err := store.Stat("dir")
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.Equal(t, "dir", info.Name())
	})

	t.Run("stat missing", func(t *testing.T) {
		_, err := store.Stat("missing")
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("readdir", func(t *testing.T) {
		entries, err := store.ReadDir("/")
		require.NoError(t, err)
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		assert.Equal(t, []string{"a.txt", "dir", "empty"}, names)
	})

	t.Run("readdir empty marker", func(t *testing.T) {
		entries, err := store.ReadDir("empty")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("readdir missing", func(t *testing.T) {
		_, err := store.ReadDir("missing")
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("open missing", func(t *testing.T) {
		_, err := store.Open("missing.txt")
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("seek", func(t *testing.T) {
		f, err := store.Open("a.txt")
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		seeker := f.(io.Seeker)
		pos, err := seeker.Seek(7, io.SeekStart)
		require.NoError(t, err)
		assert.Equal(t, int64(7), pos)

		got, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "789", string(got))

		_, err = seeker.Seek(0, io.SeekEnd)
		require.NoError(t, err)
		n, err := f.Read(make([]byte, 4))
		assert.Zero(t, n)
		assert.ErrorIs(t, err, io.EOF)

		_, err = seeker.Seek(-2, io.SeekCurrent)
		require.NoError(t, err)
		got, err = io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "89", string(got))
	})
}
