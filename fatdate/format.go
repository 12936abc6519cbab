package fatdate

import "io"

// ISO is the default calendar. It renders dates as YYYY-MM-DD and times as
// hh:mm, the layout used by directory listings.
var ISO Calendar

// Calendar formats packed dates and times.
type Calendar struct{}

// FormatDate writes d and returns the number of bytes written.
func (Calendar) FormatDate(w io.Writer, d Date) int { return FormatDate(w, d) }

// FormatDateTime writes d and t and returns the number of bytes written.
func (Calendar) FormatDateTime(w io.Writer, d Date, t Time) int { return FormatDateTime(w, d, t) }

// FormatDate writes d as YYYY-MM-DD.
func FormatDate(w io.Writer, d Date) int {
	var buf [len("YYYY-MM-DD")]byte
	fmtDate(buf[:], d)
	n, _ := w.Write(buf[:])
	return n
}

// FormatTime writes t as hh:mm.
func FormatTime(w io.Writer, t Time) int {
	var buf [len("hh:mm")]byte
	fmtTime(buf[:], t)
	n, _ := w.Write(buf[:])
	return n
}

// FormatTimeSeconds writes t as hh:mm:ss.
func FormatTimeSeconds(w io.Writer, t Time) int {
	var buf [len("hh:mm:ss")]byte
	fmtTime(buf[:5], t)
	buf[5] = ':'
	fmt2(buf[6:], t.Second())
	n, _ := w.Write(buf[:])
	return n
}

// FormatDateTime writes d and t as YYYY-MM-DD hh:mm.
func FormatDateTime(w io.Writer, d Date, t Time) int {
	var buf [len("YYYY-MM-DD hh:mm")]byte
	fmtDate(buf[:10], d)
	buf[10] = ' '
	fmtTime(buf[11:], t)
	n, _ := w.Write(buf[:])
	return n
}

// fmtDate fills exactly 10 bytes.
func fmtDate(buf []byte, d Date) {
	year := d.Year()
	fmt2(buf[0:2], year/100)
	fmt2(buf[2:4], year%100)
	buf[4] = '-'
	fmt2(buf[5:7], d.Month())
	buf[7] = '-'
	fmt2(buf[8:10], d.Day())
}

// fmtTime fills exactly 5 bytes.
func fmtTime(buf []byte, t Time) {
	fmt2(buf[0:2], t.Hour())
	buf[2] = ':'
	fmt2(buf[3:5], t.Minute())
}

// fmt2 writes v modulo 100 as two zero-padded digits.
func fmt2(buf []byte, v int) {
	v %= 100
	buf[0] = byte('0' + v/10)
	buf[1] = byte('0' + v%10)
}
