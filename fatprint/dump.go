package fatprint

import (
	"errors"
	"io"

	"github.com/jmgilman/go/fatls/core"
)

// MaxDump is the largest byte count Dump renders. Larger requests are clamped.
const MaxDump = 0xFFF0

const dumpLineBytes = 16

// Dump seeks f to pos and renders up to n bytes as a hex and ASCII table,
// sixteen bytes per line. Every line starts with "\r\n" and the running byte
// count (from 0, not pos) as four hex digits. A group's ASCII column follows
// its last byte and holds only the bytes read; bytes outside 0x20-0x7E print
// as '.'. The output always ends with "\r\n".
//
// Dump stops early when f reports end of data. If the seek fails nothing is
// written. It returns the number of bytes rendered.
func (p *Printer) Dump(w core.Sink, f core.File, pos uint32, n int) int {
	if n < 0 {
		n = 0
	}
	if n > MaxDump {
		n = MaxDump
	}

	if err := f.SeekTo(pos); err != nil {
		p.logger.Debug("dump seek failed", "name", f.Name(), "pos", pos, "error", err)
		return 0
	}

	if n == 0 {
		newline(w)
		PrintHex(w, 4, 0)
		_ = w.WriteByte(' ')
		newline(w)
		return 0
	}

	var text [dumpLineBytes]byte
	col, read := 0, 0
	for read < n {
		if read%dumpLineBytes == 0 {
			if col > 0 {
				writeColumn(w, text[:col])
				col = 0
			}
			newline(w)
			PrintHex(w, 4, uint16(read))
			_ = w.WriteByte(' ')
		}

		c, err := f.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				p.logger.Debug("dump read failed", "name", f.Name(), "offset", read, "error", err)
			}
			break
		}
		_ = w.WriteByte(' ')
		PrintHex(w, 2, uint16(c))
		text[col] = printable(c)
		col++
		read++
	}

	if col > 0 {
		writeColumn(w, text[:col])
	}
	newline(w)
	return read
}

func writeColumn(w core.Sink, text []byte) {
	_ = w.WriteByte(' ')
	_, _ = w.Write(text)
}

func printable(c byte) byte {
	if c >= ' ' && c < '~' {
		return c
	}
	return '.'
}
