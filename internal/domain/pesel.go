package domain

import "fmt"

// Length is the number of digits in a PESEL.
const Length = 11

// Field offsets, as [start, end) byte ranges.
const (
	yearStart  = 0
	yearEnd    = 2
	monthStart = 2
	monthEnd   = 4
	dayStart   = 4
	dayEnd     = 6
	sexStart   = 9
	sexEnd     = 10
)

// Month-field ranges. The 2000s range offsets the true month by 20.
const (
	minMonth         = 1
	maxMonth1900s    = 12
	minMonth2000s    = 21
	maxMonth2000s    = 32
	centuryOffset    = 20
	century1900      = 1900
	century2000      = 2000
	february         = 2
	daysEvenMonth    = 30
	daysOddMonth     = 31
	daysFebruary     = 28
	daysFebruaryLeap = 29
)

// Sex is the sex encoded by the tenth digit.
type Sex int

const (
	SexFemale Sex = iota
	SexMale
)

// Label returns the Polish label printed for the sex.
func (s Sex) Label() string {
	if s == SexMale {
		return "Mężczyzna"
	}
	return "Kobieta"
}

func (s Sex) String() string {
	if s == SexMale {
		return "male"
	}
	return "female"
}

// BirthDate is the decoded (year, month, day) triple.
type BirthDate struct {
	Year  int
	Month int
	Day   int
}

// String formats the date as zero-padded YYYY-MM-DD.
func (d BirthDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Result is what a successful decode yields.
type Result struct {
	PESEL       string
	Sex         Sex
	DateOfBirth string
}

// field reads the decimal number at [start, end).
// s must already be known to be all digits and long enough.
func field(s string, start, end int) int {
	n := 0
	for i := start; i < end; i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

func yearField(s string) int  { return field(s, yearStart, yearEnd) }
func monthField(s string) int { return field(s, monthStart, monthEnd) }
func dayField(s string) int   { return field(s, dayStart, dayEnd) }

// trueMonth strips the century offset from a month-field.
func trueMonth(m int) int {
	if m > maxMonth1900s {
		return m - centuryOffset
	}
	return m
}

func fullYear(yy, m int) int {
	if m > maxMonth1900s {
		return yy + century2000
	}
	return yy + century1900
}

func inBounds(lo, v, hi int) bool {
	return lo <= v && v <= hi
}

// Summary is the one-line success message, e.g.
// "Jestes: Kobieta. Twoja data urodzenia: 1992-06-30".
func (r Result) Summary(sexLabel string) string {
	return fmt.Sprintf("Jestes: %s. Twoja data urodzenia: %s", sexLabel, r.DateOfBirth)
}
