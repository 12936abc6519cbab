// Package fatdate encodes, decodes and formats FAT packed dates and times.
//
// A packed date stores the year as an offset from 1980 in bits 15-9, the month
// in bits 8-5 and the day in bits 4-0. A packed time stores the hour in bits
// 15-11, the minute in bits 10-5 and the second divided by two in bits 4-0.
package fatdate

import "time"

// Date is a FAT packed calendar date.
type Date uint16

// Time is a FAT packed time of day with two second resolution.
type Time uint16

const (
	// MinYear is the first year a Date can represent.
	MinYear = 1980
	// MaxYear is the last year a Date can represent.
	MaxYear = MinYear + 127
)

// Year returns the calendar year.
func (d Date) Year() int { return MinYear + int(d>>9) }

// Month returns the month, 1-12 for valid dates.
func (d Date) Month() int { return int((d >> 5) & 0x0F) }

// Day returns the day of month, 1-31 for valid dates.
func (d Date) Day() int { return int(d & 0x1F) }

// Hour returns the hour, 0-23 for valid times.
func (t Time) Hour() int { return int(t >> 11) }

// Minute returns the minute, 0-59 for valid times.
func (t Time) Minute() int { return int((t >> 5) & 0x3F) }

// Second returns the second, always even.
func (t Time) Second() int { return int(t&0x1F) * 2 }

// NewDate packs a calendar date. Fields are masked, not validated.
func NewDate(year, month, day int) Date {
	return Date((year-MinYear)<<9 | (month&0x0F)<<5 | day&0x1F)
}

// NewTime packs a time of day. Odd seconds round down.
func NewTime(hour, minute, second int) Time {
	return Time((hour&0x1F)<<11 | (minute&0x3F)<<5 | (second/2)&0x1F)
}

// Pack converts t to its packed form in t's own location. It reports false
// when t is the zero time or falls outside MinYear..MaxYear.
func Pack(t time.Time) (Date, Time, bool) {
	if t.IsZero() || t.Year() < MinYear || t.Year() > MaxYear {
		return 0, 0, false
	}
	return NewDate(t.Year(), int(t.Month()), t.Day()),
		NewTime(t.Hour(), t.Minute(), t.Second()),
		true
}

// Unpack converts a packed date and time back to a time.Time in loc.
func Unpack(d Date, t Time, loc *time.Location) time.Time {
	return time.Date(d.Year(), time.Month(d.Month()), d.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, loc)
}
