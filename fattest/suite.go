package fattest

import (
	"bytes"
	"errors"
	"io"
	"sort"
	"testing"

	"github.com/jmgilman/go/fatls/core"
)

// HandleTestConfig adapts the suite to provider behavior.
type HandleTestConfig struct {
	// SkipTests lists subtest names to skip (e.g. "SeekPastEnd").
	SkipTests []string
}

// OpenFunc builds layout in a fresh store and returns a Handle on its root.
type OpenFunc func(t *testing.T, layout Layout) core.Handle

// SuiteLayout is the fixture every provider is asked to build.
func SuiteLayout() Layout {
	leaf := make([]byte, 256)
	for i := range leaf {
		leaf[i] = byte(i)
	}
	return Layout{
		"notes.txt":          []byte("hello, world\n"),
		"docs/readme.md":     []byte("# readme\n\nNested file.\n"),
		"docs/deep/leaf.bin": leaf,
	}
}

// TestHandleSuite runs the conformance tests against a core.Handle provider.
func TestHandleSuite(t *testing.T, open OpenFunc) {
	TestHandleSuiteWithConfig(t, open, HandleTestConfig{})
}

// TestHandleSuiteWithConfig runs the conformance tests with configuration.
func TestHandleSuiteWithConfig(t *testing.T, open OpenFunc, config HandleTestConfig) {
	layout := SuiteLayout()

	tests := []struct {
		name string
		fn   func(t *testing.T, root core.Handle, layout Layout)
	}{
		{"RootIsDir", testRootIsDir},
		{"Enumerate", testEnumerate},
		{"EnumerateExhausted", testEnumerateExhausted},
		{"Rewind", testRewind},
		{"ReadAll", testReadAll},
		{"SeekTo", testSeekTo},
		{"SeekToEnd", testSeekToEnd},
		{"SeekPastEnd", testSeekPastEnd},
		{"Size", testSize},
		{"FileHasNoChildren", testFileHasNoChildren},
		{"DirReadFails", testDirReadFails},
		{"Nested", testNested},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, skip := range config.SkipTests {
				if skip == tt.name {
					t.Skip("Skipped by provider configuration")
				}
			}
			root := open(t, layout)
			defer func() { _ = root.Close() }()
			tt.fn(t, root, layout)
		})
	}
}

// collect drains dir and returns the child names in enumeration order.
func collect(t *testing.T, dir core.Handle) []string {
	t.Helper()
	var names []string
	for {
		child, ok := dir.OpenNext()
		if !ok {
			break
		}
		names = append(names, child.Name())
		if err := child.Close(); err != nil {
			t.Errorf("Close(%q): got error %v", child.Name(), err)
		}
	}
	if err := dir.Err(); err != nil {
		t.Fatalf("Err() after enumeration: got %v, want nil", err)
	}
	return names
}

// child opens the named child of dir. The caller closes it.
func child(t *testing.T, dir core.Handle, name string) core.Handle {
	t.Helper()
	dir.Rewind()
	for {
		c, ok := dir.OpenNext()
		if !ok {
			t.Fatalf("child %q not found (Err=%v)", name, dir.Err())
		}
		if c.Name() == name {
			return c
		}
		_ = c.Close()
	}
}

func readAll(f core.File) ([]byte, error) {
	var buf bytes.Buffer
	for {
		c, err := f.ReadByte()
		if errors.Is(err, io.EOF) {
			return buf.Bytes(), nil
		}
		if err != nil {
			return buf.Bytes(), err
		}
		buf.WriteByte(c)
	}
}

func testRootIsDir(t *testing.T, root core.Handle, _ Layout) {
	if !root.IsDir() {
		t.Errorf("root IsDir() = false, want true")
	}
}

func testEnumerate(t *testing.T, root core.Handle, layout Layout) {
	want, isDir := layout.Children(".")
	root.Rewind()
	got := collect(t, root)
	sorted := append([]string(nil), got...)
	sort.Strings(sorted)
	if len(sorted) != len(want) {
		t.Fatalf("children = %v, want %v", got, want)
	}
	for i := range want {
		if sorted[i] != want[i] {
			t.Fatalf("children = %v, want %v", got, want)
		}
	}

	for _, name := range want {
		c := child(t, root, name)
		if c.IsDir() != isDir[name] {
			t.Errorf("%q IsDir() = %v, want %v", name, c.IsDir(), isDir[name])
		}
		_ = c.Close()
	}
}

func testEnumerateExhausted(t *testing.T, root core.Handle, _ Layout) {
	root.Rewind()
	_ = collect(t, root)
	if c, ok := root.OpenNext(); ok {
		_ = c.Close()
		t.Errorf("OpenNext() after exhaustion returned %q, want false", c.Name())
	}
	if err := root.Err(); err != nil {
		t.Errorf("Err() after exhaustion = %v, want nil", err)
	}
}

func testRewind(t *testing.T, root core.Handle, _ Layout) {
	root.Rewind()
	first := collect(t, root)
	root.Rewind()
	second := collect(t, root)
	if len(first) != len(second) {
		t.Fatalf("second pass = %v, want %v", second, first)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("second pass = %v, want %v", second, first)
		}
	}
}

func testReadAll(t *testing.T, root core.Handle, layout Layout) {
	f := child(t, root, "notes.txt")
	defer func() { _ = f.Close() }()

	got, err := readAll(f)
	if err != nil {
		t.Fatalf("ReadByte(): got error %v", err)
	}
	if !bytes.Equal(got, layout["notes.txt"]) {
		t.Errorf("content = %q, want %q", got, layout["notes.txt"])
	}
}

func testSeekTo(t *testing.T, root core.Handle, layout Layout) {
	f := child(t, root, "notes.txt")
	defer func() { _ = f.Close() }()

	if _, err := f.ReadByte(); err != nil {
		t.Fatalf("ReadByte(): got error %v", err)
	}
	if err := f.SeekTo(7); err != nil {
		t.Fatalf("SeekTo(7): got error %v", err)
	}
	got, err := readAll(f)
	if err != nil {
		t.Fatalf("ReadByte(): got error %v", err)
	}
	if want := layout["notes.txt"][7:]; !bytes.Equal(got, want) {
		t.Errorf("content after SeekTo(7) = %q, want %q", got, want)
	}

	if err := f.SeekTo(0); err != nil {
		t.Fatalf("SeekTo(0): got error %v", err)
	}
	c, err := f.ReadByte()
	if err != nil || c != 'h' {
		t.Errorf("ReadByte() after SeekTo(0) = %q, %v, want 'h', nil", c, err)
	}
}

func testSeekToEnd(t *testing.T, root core.Handle, layout Layout) {
	f := child(t, root, "notes.txt")
	defer func() { _ = f.Close() }()

	if err := f.SeekTo(uint32(len(layout["notes.txt"]))); err != nil {
		t.Fatalf("SeekTo(size): got error %v", err)
	}
	if _, err := f.ReadByte(); !errors.Is(err, io.EOF) {
		t.Errorf("ReadByte() at end: got %v, want io.EOF", err)
	}
}

func testSeekPastEnd(t *testing.T, root core.Handle, layout Layout) {
	f := child(t, root, "notes.txt")
	defer func() { _ = f.Close() }()

	if err := f.SeekTo(uint32(len(layout["notes.txt"]) + 1)); err == nil {
		t.Errorf("SeekTo(size+1): got nil error, want failure")
	}
}

func testSize(t *testing.T, root core.Handle, layout Layout) {
	f := child(t, root, "notes.txt")
	defer func() { _ = f.Close() }()

	if got, want := f.Size(), uint32(len(layout["notes.txt"])); got != want {
		t.Errorf("Size() = %d, want %d", got, want)
	}
}

func testFileHasNoChildren(t *testing.T, root core.Handle, _ Layout) {
	f := child(t, root, "notes.txt")
	defer func() { _ = f.Close() }()

	if c, ok := f.OpenNext(); ok {
		_ = c.Close()
		t.Errorf("OpenNext() on a file returned %q, want false", c.Name())
	}
	if err := f.Err(); err != nil {
		t.Errorf("Err() on a file = %v, want nil", err)
	}
}

func testDirReadFails(t *testing.T, root core.Handle, _ Layout) {
	d := child(t, root, "docs")
	defer func() { _ = d.Close() }()

	if _, err := d.ReadByte(); err == nil {
		t.Errorf("ReadByte() on a directory: got nil error, want failure")
	}
}

func testNested(t *testing.T, root core.Handle, layout Layout) {
	docs := child(t, root, "docs")
	defer func() { _ = docs.Close() }()
	deep := child(t, docs, "deep")
	defer func() { _ = deep.Close() }()
	leaf := child(t, deep, "leaf.bin")
	defer func() { _ = leaf.Close() }()

	if err := leaf.SeekTo(250); err != nil {
		t.Fatalf("SeekTo(250): got error %v", err)
	}
	got, err := readAll(leaf)
	if err != nil {
		t.Fatalf("ReadByte(): got error %v", err)
	}
	if want := layout["docs/deep/leaf.bin"][250:]; !bytes.Equal(got, want) {
		t.Errorf("leaf tail = %v, want %v", got, want)
	}
}
