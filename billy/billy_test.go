package billy

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/jmgilman/go/fatls/core"
)

// testCloser is a helper to handle defer close in tests.
func testCloser(t *testing.T, closer io.Closer) {
	t.Helper()
	if err := closer.Close(); err != nil {
		t.Logf("Close error (non-fatal): %v", err)
	}
}

func seed(t *testing.T, s *MemoryFS) {
	t.Helper()
	files := map[string]string{
		"b.txt":       "bravo",
		"a.txt":       "alpha",
		"dir/c.txt":   "charlie",
		"dir/sub/d":   "delta",
		".hidden.txt": "secret",
	}
	for name, data := range files {
		if err := util.WriteFile(s.Unwrap(), name, []byte(data), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): %v", name, err)
		}
	}
}

// TestMemoryFS_Constructor verifies NewMemory creates a valid store.
func TestMemoryFS_Constructor(t *testing.T) {
	fs := NewMemory()
	if fs == nil {
		t.Fatal("NewMemory() returned nil")
	}
	if fs.bfs == nil {
		t.Error("NewMemory() bfs field is nil")
	}
}

// TestStore_Type verifies each constructor reports its store type.
func TestStore_Type(t *testing.T) {
	tests := []struct {
		name  string
		store core.Store
		want  core.StoreType
	}{
		{"local", NewLocal(t.TempDir()), core.StoreTypeLocal},
		{"memory", NewMemory(), core.StoreTypeMemory},
		{"wrapped", New(memfs.New()), core.StoreTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.store.Type(); got != tt.want {
				t.Errorf("Type() = %v (%s), want %v (%s)", got, got, tt.want, tt.want)
			}
		})
	}
}

// TestMemoryFS_Unwrap verifies writes through Unwrap are visible to the store.
func TestMemoryFS_Unwrap(t *testing.T) {
	fs := NewMemory()
	if err := util.WriteFile(fs.Unwrap(), "test.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to use unwrapped filesystem: %v", err)
	}

	info, err := fs.Stat("test.txt")
	if err != nil {
		t.Fatalf("Stat(test.txt): got error %v, want nil", err)
	}
	if info.Size() != 1 {
		t.Errorf("Size() = %d, want 1", info.Size())
	}
}

// TestMemoryFS_ReadDir verifies entries come back sorted by name.
func TestMemoryFS_ReadDir(t *testing.T) {
	fs := NewMemory()
	seed(t, fs)

	entries, err := fs.ReadDir("/")
	if err != nil {
		t.Fatalf("ReadDir(/): got error %v, want nil", err)
	}

	want := []struct {
		name string
		dir  bool
	}{
		{".hidden.txt", false},
		{"a.txt", false},
		{"b.txt", false},
		{"dir", true},
	}
	if len(entries) != len(want) {
		t.Fatalf("ReadDir(/) returned %d entries, want %d", len(entries), len(want))
	}
	for i, w := range want {
		if entries[i].Name() != w.name {
			t.Errorf("entries[%d].Name() = %q, want %q", i, entries[i].Name(), w.name)
		}
		if entries[i].IsDir() != w.dir {
			t.Errorf("entries[%d].IsDir() = %v, want %v", i, entries[i].IsDir(), w.dir)
		}
		info, err := entries[i].Info()
		if err != nil || info.Name() != w.name {
			t.Errorf("entries[%d].Info() = %v, %v", i, info, err)
		}
	}

	nested, err := fs.ReadDir("dir/")
	if err != nil {
		t.Fatalf("ReadDir(dir/): got error %v, want nil", err)
	}
	if len(nested) != 2 || nested[0].Name() != "c.txt" || nested[1].Name() != "sub" {
		t.Errorf("ReadDir(dir/) = %v, want [c.txt sub]", nested)
	}
}

// TestMemoryFS_NotExist verifies missing paths report fs.ErrNotExist.
func TestMemoryFS_NotExist(t *testing.T) {
	fs := NewMemory()

	if _, err := fs.Open("missing.txt"); !errors.Is(err, iofs.ErrNotExist) {
		t.Errorf("Open(missing.txt): got %v, want fs.ErrNotExist", err)
	}
	if _, err := fs.Stat("missing.txt"); !errors.Is(err, iofs.ErrNotExist) {
		t.Errorf("Stat(missing.txt): got %v, want fs.ErrNotExist", err)
	}
	if _, err := fs.ReadDir("missing"); !errors.Is(err, iofs.ErrNotExist) {
		t.Errorf("ReadDir(missing): got %v, want fs.ErrNotExist", err)
	}
}

// TestLocalFS_Rooted verifies NewLocal resolves paths below its root.
func TestLocalFS_Rooted(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "sub", "f.txt"), []byte("local"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, fs := range []*LocalFS{NewLocal(root), NewLocal(root, WithBoundOS())} {
		info, err := fs.Stat("/sub/f.txt")
		if err != nil {
			t.Fatalf("Stat(/sub/f.txt): got error %v, want nil", err)
		}
		if info.Size() != 5 {
			t.Errorf("Size() = %d, want 5", info.Size())
		}

		entries, err := fs.ReadDir("sub")
		if err != nil {
			t.Fatalf("ReadDir(sub): got error %v, want nil", err)
		}
		if len(entries) != 1 || entries[0].Name() != "f.txt" {
			t.Errorf("ReadDir(sub) = %v, want [f.txt]", entries)
		}
	}
}
