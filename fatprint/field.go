package fatprint

import (
	"io"

	"github.com/jmgilman/go/fatls/core"
)

// SizeWidth is the width of the field written by PrintFileSize.
const SizeWidth = 10

// PrintAccessDate writes the access date of f. It writes nothing and returns
// 0 when the store does not record one.
func (p *Printer) PrintAccessDate(w io.Writer, f core.File) int {
	date, ok := f.AccessDate()
	if !ok {
		return 0
	}
	return p.calendar.FormatDate(w, date)
}

// PrintCreateDateTime writes the creation timestamp of f, or nothing.
func (p *Printer) PrintCreateDateTime(w io.Writer, f core.File) int {
	date, tm, ok := f.CreateDateTime()
	if !ok {
		return 0
	}
	return p.calendar.FormatDateTime(w, date, tm)
}

// PrintModifyDateTime writes the modification timestamp of f, or nothing.
func (p *Printer) PrintModifyDateTime(w io.Writer, f core.File) int {
	date, tm, ok := f.ModifyDateTime()
	if !ok {
		return 0
	}
	return p.calendar.FormatDateTime(w, date, tm)
}

// PrintFileSize writes the size of f in decimal, right-justified in a
// SizeWidth field.
func (p *Printer) PrintFileSize(w io.Writer, f core.File) int {
	return printDecimal(w, f.Size())
}

// PrintName writes the name of f.
func (p *Printer) PrintName(w io.Writer, f core.File) int {
	n, _ := io.WriteString(w, f.Name())
	return n
}

// printDecimal fills the field from the right, then pads with spaces.
func printDecimal(w io.Writer, v uint32) int {
	var buf [SizeWidth]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	for i > 0 {
		i--
		buf[i] = ' '
	}
	n, _ := w.Write(buf[:])
	return n
}

// PrintHex writes v as exactly width upper-case hex digits, zero-padded,
// most significant first. width is clamped to 4; a width below 1 writes
// nothing.
func PrintHex(w io.Writer, width int, v uint16) int {
	if width <= 0 {
		return 0
	}
	if width > 4 {
		width = 4
	}

	var buf [4]byte
	i := len(buf)
	for range width {
		c := byte(v & 0xF)
		if c < 10 {
			c += '0'
		} else {
			c += 'A' - 10
		}
		i--
		buf[i] = c
		v >>= 4
	}
	n, _ := w.Write(buf[i:])
	return n
}
