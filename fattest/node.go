// Package fattest provides an in-memory core.Handle tree with failure
// injection, and a conformance suite for core.Handle implementations.
//
// Building a tree:
//
//	root := fattest.Dir("",
//	    fattest.File("notes.txt", []byte("hello")),
//	    fattest.File("secret.txt", nil, fattest.Hidden()),
//	    fattest.Dir("sub",
//	        fattest.File("a.bin", []byte{0, 1, 2}),
//	    ),
//	)
//
// A Node is a single cursor, just like the handles it stands in for. OpenNext
// hands out the child Node itself after resetting its cursor.
package fattest

import (
	"io"

	"github.com/jmgilman/go/fatls/core"
	"github.com/jmgilman/go/fatls/fatdate"
)

// Node is an in-memory file or directory implementing core.Handle.
type Node struct {
	name     string
	dir      bool
	hidden   bool
	data     []byte
	size     *uint32
	children []*Node
	parent   *Node

	access stamp
	create stamp
	modify stamp

	enumFailAfter int
	enumErr       error
	seekErr       error
	readFailAt    int
	readErr       error

	pos     int
	next    int
	err     error
	closed  bool
	open    int
	maxOpen int
	closes  int
}

type stamp struct {
	date fatdate.Date
	time fatdate.Time
	ok   bool
}

// Option configures a Node.
type Option func(*Node)

// Hidden sets the hidden attribute.
func Hidden() Option {
	return func(n *Node) { n.hidden = true }
}

// Modified sets the modification timestamp.
func Modified(d fatdate.Date, t fatdate.Time) Option {
	return func(n *Node) { n.modify = stamp{date: d, time: t, ok: true} }
}

// Created sets the creation timestamp.
func Created(d fatdate.Date, t fatdate.Time) Option {
	return func(n *Node) { n.create = stamp{date: d, time: t, ok: true} }
}

// Accessed sets the access date.
func Accessed(d fatdate.Date) Option {
	return func(n *Node) { n.access = stamp{date: d, ok: true} }
}

// Size reports size instead of the length of the node's data.
func Size(size uint32) Option {
	return func(n *Node) { n.size = &size }
}

// FailEnumeration makes OpenNext fail with err after after children have
// been handed out.
func FailEnumeration(after int, err error) Option {
	return func(n *Node) {
		n.enumFailAfter = after
		n.enumErr = err
	}
}

// FailSeek makes every SeekTo return err.
func FailSeek(err error) Option {
	return func(n *Node) { n.seekErr = err }
}

// FailRead makes ReadByte return err when the position reaches at.
func FailRead(at int, err error) Option {
	return func(n *Node) {
		n.readFailAt = at
		n.readErr = err
	}
}

// File returns a regular file node holding data.
func File(name string, data []byte, opts ...Option) *Node {
	n := newNode(name, false)
	n.data = data
	return n.With(opts...)
}

// Dir returns a directory node with the given children in enumeration order.
func Dir(name string, children ...*Node) *Node {
	n := newNode(name, true)
	for _, c := range children {
		c.parent = n
	}
	n.children = children
	return n
}

func newNode(name string, dir bool) *Node {
	return &Node{
		name:          name,
		dir:           dir,
		enumFailAfter: -1,
		readFailAt:    -1,
	}
}

// With applies opts to n and returns it.
func (n *Node) With(opts ...Option) *Node {
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Name implements core.File.
func (n *Node) Name() string { return n.name }

// IsDir implements core.File.
func (n *Node) IsDir() bool { return n.dir }

// IsHidden implements core.File.
func (n *Node) IsHidden() bool { return n.hidden }

// Size implements core.File.
func (n *Node) Size() uint32 {
	if n.size != nil {
		return *n.size
	}
	return uint32(len(n.data))
}

// AccessDate implements core.File.
func (n *Node) AccessDate() (fatdate.Date, bool) {
	return n.access.date, n.access.ok
}

// CreateDateTime implements core.File.
func (n *Node) CreateDateTime() (fatdate.Date, fatdate.Time, bool) {
	return n.create.date, n.create.time, n.create.ok
}

// ModifyDateTime implements core.File.
func (n *Node) ModifyDateTime() (fatdate.Date, fatdate.Time, bool) {
	return n.modify.date, n.modify.time, n.modify.ok
}

// SeekTo implements core.File.
func (n *Node) SeekTo(pos uint32) error {
	switch {
	case n.seekErr != nil:
		return n.seekErr
	case n.closed:
		return core.ErrClosed
	case n.dir:
		return core.ErrIsDir
	case int(pos) > len(n.data):
		return core.ErrSeekRange
	}
	n.pos = int(pos)
	return nil
}

// ReadByte implements core.File.
func (n *Node) ReadByte() (byte, error) {
	switch {
	case n.closed:
		return 0, core.ErrClosed
	case n.dir:
		return 0, core.ErrIsDir
	case n.readFailAt >= 0 && n.pos == n.readFailAt:
		return 0, n.readErr
	case n.pos >= len(n.data):
		return 0, io.EOF
	}
	c := n.data[n.pos]
	n.pos++
	return c, nil
}

// Rewind implements core.File.
func (n *Node) Rewind() {
	n.pos = 0
	n.next = 0
	n.err = nil
}

// OpenNext implements core.Dir.
func (n *Node) OpenNext() (core.Handle, bool) {
	if !n.dir || n.closed || n.err != nil {
		return nil, false
	}
	if n.enumFailAfter >= 0 && n.next == n.enumFailAfter {
		n.err = n.enumErr
		return nil, false
	}
	if n.next >= len(n.children) {
		return nil, false
	}

	child := n.children[n.next]
	n.next++
	child.reopen()

	n.open++
	if n.open > n.maxOpen {
		n.maxOpen = n.open
	}
	return child, true
}

// Err implements core.Dir.
func (n *Node) Err() error { return n.err }

// Close implements core.File. Closing twice is a no-op.
func (n *Node) Close() error {
	if n.closed {
		return nil
	}
	n.closed = true
	n.closes++
	if n.parent != nil && n.parent.open > 0 {
		n.parent.open--
	}
	return nil
}

func (n *Node) reopen() {
	n.closed = false
	n.Rewind()
}

// Closed reports whether the node is currently closed.
func (n *Node) Closed() bool { return n.closed }

// Closes returns how many times the node has been closed.
func (n *Node) Closes() int { return n.closes }

// OpenChildren returns how many children are open right now.
func (n *Node) OpenChildren() int { return n.open }

// MaxOpenChildren returns the largest number of children that were open at
// the same time.
func (n *Node) MaxOpenChildren() int { return n.maxOpen }

// Children returns the node's children.
func (n *Node) Children() []*Node { return n.children }

var _ core.Handle = (*Node)(nil)
