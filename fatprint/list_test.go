package fatprint_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fatls/core"
	fatlserrors "github.com/jmgilman/go/fatls/errors"
	"github.com/jmgilman/go/fatls/fatdate"
	"github.com/jmgilman/go/fatls/fatprint"
	"github.com/jmgilman/go/fatls/fattest"
)

func sampleTree() *fattest.Node {
	stamp := fattest.Modified(fatdate.NewDate(2024, 3, 9), fatdate.NewTime(14, 5, 30))
	return fattest.Dir("",
		fattest.File("notes.txt", make([]byte, 42), stamp),
		fattest.File(".secret", []byte("x"), fattest.Hidden()),
		fattest.Dir("docs",
			fattest.File("readme.md", []byte("hello"), stamp),
			fattest.Dir("deep",
				fattest.File("leaf.bin", []byte{1, 2, 3}),
			),
			fattest.Dir("hidden", fattest.File("inner", nil)).With(fattest.Hidden()),
		).With(stamp),
	)
}

func TestList(t *testing.T) {
	tests := []struct {
		name   string
		flags  fatprint.ListFlags
		indent int
		want   string
	}{
		{
			name:  "plain",
			flags: 0,
			want:  "notes.txt\r\ndocs/\r\n",
		},
		{
			name:  "size",
			flags: fatprint.ListSize,
			want:  "        42 notes.txt\r\n         0 docs/\r\n",
		},
		{
			name:  "date and size",
			flags: fatprint.ListDate | fatprint.ListSize,
			want: "2024-03-09 14:05         42 notes.txt\r\n" +
				"2024-03-09 14:05          0 docs/\r\n",
		},
		{
			name:  "hidden",
			flags: fatprint.ListHidden,
			want:  "notes.txt\r\n.secret\r\ndocs/\r\n",
		},
		{
			name:  "recursive",
			flags: fatprint.ListRecursive,
			want: "notes.txt\r\n" +
				"docs/\r\n" +
				"  readme.md\r\n" +
				"  deep/\r\n" +
				"    leaf.bin\r\n",
		},
		{
			name:  "recursive hidden",
			flags: fatprint.ListRecursive | fatprint.ListHidden,
			want: "notes.txt\r\n" +
				".secret\r\n" +
				"docs/\r\n" +
				"  readme.md\r\n" +
				"  deep/\r\n" +
				"    leaf.bin\r\n" +
				"  hidden/\r\n" +
				"    inner\r\n",
		},
		{
			name:   "starting indent",
			flags:  0,
			indent: 3,
			want:   "   notes.txt\r\n   docs/\r\n",
		},
		{
			name:   "negative indent",
			flags:  0,
			indent: -2,
			want:   "notes.txt\r\ndocs/\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := fatprint.New().List(&buf, sampleTree(), tt.flags, tt.indent)
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestList_MissingDateStillSeparated(t *testing.T) {
	root := fattest.Dir("", fattest.File("a", []byte("abc")))
	var buf bytes.Buffer

	require.NoError(t, fatprint.New().List(&buf, root, fatprint.ListDate, 0))
	assert.Equal(t, " a\r\n", buf.String())
}

func TestList_ClosesChildren(t *testing.T) {
	root := sampleTree()
	var buf bytes.Buffer

	require.NoError(t, fatprint.New().List(&buf, root, fatprint.ListRecursive|fatprint.ListHidden, 0))

	var walk func(n *fattest.Node)
	walk = func(n *fattest.Node) {
		assert.LessOrEqual(t, n.MaxOpenChildren(), 1, "%q had more than one open child", n.Name())
		assert.Zero(t, n.OpenChildren(), "%q left children open", n.Name())
		for _, c := range n.Children() {
			assert.True(t, c.Closed(), "%q not closed", c.Name())
			assert.Equal(t, 1, c.Closes(), "%q closes", c.Name())
			walk(c)
		}
	}
	walk(root)
}

func TestList_RewindsFirst(t *testing.T) {
	root := sampleTree()
	c, ok := root.OpenNext()
	require.True(t, ok)
	require.NoError(t, c.Close())

	var buf bytes.Buffer
	require.NoError(t, fatprint.New().List(&buf, root, 0, 0))
	assert.Equal(t, "notes.txt\r\ndocs/\r\n", buf.String())
}

func TestList_NotADirectory(t *testing.T) {
	var buf bytes.Buffer
	err := fatprint.New().List(&buf, fattest.File("notes.txt", []byte("x")), fatprint.ListSize, 0)

	require.Error(t, err)
	assert.Equal(t, fatlserrors.CodeNotADirectory, fatlserrors.GetCode(err))
	assert.False(t, fatlserrors.IsRetryable(err))
	assert.Empty(t, buf.String())

	var fe fatlserrors.Error
	require.True(t, fatlserrors.As(err, &fe))
	assert.Equal(t, "notes.txt", fe.Context()["name"])
}

func TestList_DirectoryReadError(t *testing.T) {
	boom := errors.New("sector read failed")
	root := fattest.Dir("vol",
		fattest.File("a", nil),
		fattest.File("b", nil),
	).With(fattest.FailEnumeration(1, boom))

	var buf bytes.Buffer
	err := fatprint.New().List(&buf, root, 0, 4)

	require.Error(t, err)
	assert.Equal(t, fatlserrors.CodeDirectoryRead, fatlserrors.GetCode(err))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "    a\r\n", buf.String())

	var fe fatlserrors.Error
	require.True(t, fatlserrors.As(err, &fe))
	assert.Equal(t, "vol", fe.Context()["name"])
	assert.Equal(t, 4, fe.Context()["indent"])
}

func TestList_ChildErrorContinues(t *testing.T) {
	boom := errors.New("sector read failed")
	sub := fattest.Dir("sub", fattest.File("x", nil)).With(fattest.FailEnumeration(0, boom))
	after := fattest.File("after", nil)
	root := fattest.Dir("", sub, after)

	var buf, logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	err := fatprint.New(fatprint.WithLogger(logger)).List(&buf, root, fatprint.ListRecursive, 0)

	require.NoError(t, err)
	assert.Equal(t, "sub/\r\nafter\r\n", buf.String())
	assert.Contains(t, logs.String(), "sub-directory listing failed")
	assert.Contains(t, logs.String(), "name=sub")
	assert.True(t, sub.Closed())
	assert.True(t, after.Closed())
	assert.Zero(t, root.OpenChildren())
}

func TestList_EmptyDirectory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fatprint.New().List(&buf, fattest.Dir(""), fatprint.ListRecursive, 0))
	assert.Empty(t, buf.String())
}

func TestListFlags(t *testing.T) {
	assert.Equal(t, "none", fatprint.ListFlags(0).String())
	assert.Equal(t, "hidden|size", (fatprint.ListHidden | fatprint.ListSize).String())
	assert.Equal(t, "hidden|date|size|recursive",
		(fatprint.ListHidden | fatprint.ListDate | fatprint.ListSize | fatprint.ListRecursive).String())

	f := fatprint.ListDate | fatprint.ListRecursive
	assert.True(t, f.Has(fatprint.ListDate))
	assert.False(t, f.Has(fatprint.ListSize))
	assert.False(t, f.Has(fatprint.ListDate|fatprint.ListSize))
}

var _ core.Sink = (*bytes.Buffer)(nil)
