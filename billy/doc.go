// Package billy provides go-billy-backed implementations of core.Store.
//
// LocalFS wraps go-billy's osfs and MemoryFS wraps its memfs. Both are
// read-only from the point of view of core.Store; Unwrap exposes the
// underlying billy.Filesystem for callers that need to populate it.
//
// Usage:
//
//	store := billy.NewLocal("/mnt/card")
//	root, err := handle.Open(store, "/")
//
// # Memory Filesystem
//
// For tests, build a tree in memory:
//
//	store := billy.NewMemory()
//	_ = util.WriteFile(store.Unwrap(), "notes.txt", []byte("hi"), 0o644)
//
// # Thread Safety
//
// LocalFS and MemoryFS are safe for concurrent use by multiple goroutines.
// File values are not.
package billy
