package domain

import "time"

const dateLayout = "2006-01-02"

// DecodeSex reads the sex digit at offset 9. Even is female, odd is male.
func DecodeSex(s string) Sex {
	if field(s, sexStart, sexEnd)%2 == 0 {
		return SexFemale
	}
	return SexMale
}

// DecodeBirthDate derives the (year, month, day) triple. The century comes from
// the month-field offset.
func DecodeBirthDate(s string) (BirthDate, error) {
	day, err := ValidateDay(s)
	if err != nil {
		return BirthDate{}, err
	}

	m := monthField(s)
	return BirthDate{
		Year:  fullYear(yearField(s), m),
		Month: trueMonth(m),
		Day:   day,
	}, nil
}

// DecodeDate returns the birth date as YYYY-MM-DD.
//
// The formatted triple goes through a strict calendar parse and back. Triples
// that pass ValidateDay but do not exist (September 31, 1900-02-29) fail here
// with KindDateFormat.
func DecodeDate(s string) (string, error) {
	bd, err := DecodeBirthDate(s)
	if err != nil {
		return "", err
	}

	t, err := time.Parse(dateLayout, bd.String())
	if err != nil {
		return "", &ValidationError{Kind: KindDateFormat, Err: err}
	}
	return t.Format(dateLayout), nil
}

// Decode runs the whole pipeline: structure, month, day, sex, date.
// The first failing step wins.
func Decode(s string) (Result, error) {
	if err := CheckStructure(s); err != nil {
		return Result{}, err
	}
	if err := CheckMonth(s); err != nil {
		return Result{}, err
	}
	if _, err := ValidateDay(s); err != nil {
		return Result{}, err
	}

	sex := DecodeSex(s)

	date, err := DecodeDate(s)
	if err != nil {
		return Result{}, err
	}

	return Result{
		PESEL:       s,
		Sex:         sex,
		DateOfBirth: date,
	}, nil
}

// PESEL is an identifier that passed the whole pipeline.
//
// Invariants:
//   - 11 ASCII digits
//   - month-field in 1-12 or 21-32
//   - encodes a real calendar date under the parity day rule
type PESEL struct {
	value string
	date  BirthDate
}

// Parse validates s and returns it as a PESEL.
func Parse(s string) (PESEL, error) {
	if _, err := Decode(s); err != nil {
		return PESEL{}, err
	}
	bd, err := DecodeBirthDate(s)
	if err != nil {
		return PESEL{}, err
	}
	return PESEL{value: s, date: bd}, nil
}

// MustParse is Parse that panics. Use only in tests or with known-valid input.
func MustParse(s string) PESEL {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p PESEL) String() string { return p.value }

// IsZero reports whether p is the uninitialized value.
func (p PESEL) IsZero() bool { return p.value == "" }

func (p PESEL) Sex() Sex { return DecodeSex(p.value) }

func (p PESEL) BirthDate() BirthDate { return p.date }

// Time returns the birth date at midnight UTC.
func (p PESEL) Time() time.Time {
	return time.Date(p.date.Year, time.Month(p.date.Month), p.date.Day, 0, 0, 0, 0, time.UTC)
}
