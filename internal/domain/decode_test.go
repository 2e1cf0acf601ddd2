package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_ValidIdentifiers(t *testing.T) {
	tests := []struct {
		input    string
		wantSex  Sex
		wantDate string
	}{
		{"92063012345", SexFemale, "1992-06-30"},
		{"02242105936", SexMale, "2002-04-21"},
		{"92022912345", SexFemale, "1992-02-29"},
		{"99123012345", SexFemale, "1999-12-30"},
		{"00210112395", SexMale, "2000-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res, err := Decode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.input, res.PESEL)
			assert.Equal(t, tt.wantSex, res.Sex)
			assert.Equal(t, tt.wantDate, res.DateOfBirth)
		})
	}
}

func TestDecode_Labels(t *testing.T) {
	res, err := Decode("92063012345")
	require.NoError(t, err)
	assert.Equal(t, "Kobieta", res.Sex.Label())

	res, err = Decode("02242105936")
	require.NoError(t, err)
	assert.Equal(t, "Mężczyzna", res.Sex.Label())
}

func TestDecode_ErrorMessages(t *testing.T) {
	tests := []struct {
		input   string
		kind    ErrorKind
		message string
	}{
		{"", KindEmptyInput, "Pesel jest pusty!"},
		{"123abc", KindNonDigit, "Pesel ma inne znaki niz cyfry!"},
		{"123456789", KindInvalidLength, "Twoj pesel nie ma 11 znakow"},
		{"92003212345", KindInvalidMonth, "Niepoprawny miesiac"},
		{"92063191345", KindInvalidDay, "Niepoprawny dzien w miesiacu"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			_, err := Decode(tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.kind, KindOf(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestDecode_MonthFieldAcceptance(t *testing.T) {
	for m := 0; m <= 99; m++ {
		s := fmt.Sprintf("92%02d0112345", m)
		_, err := Decode(s)
		if (m >= 1 && m <= 12) || (m >= 21 && m <= 32) {
			assert.NoError(t, err, "month-field %02d", m)
		} else {
			assert.True(t, IsKind(err, KindInvalidMonth), "month-field %02d: %v", m, err)
		}
	}
}

func TestDecode_NonexistentDatesFailRoundTrip(t *testing.T) {
	for _, in := range []string{
		"92093112345", // September 31
		"92113112345", // November 31
		"00022912345", // 1900-02-29
	} {
		t.Run(in, func(t *testing.T) {
			_, err := Decode(in)
			require.Error(t, err)
			assert.True(t, IsKind(err, KindDateFormat))

			var pe *time.ParseError
			assert.ErrorAs(t, err, &pe)
			assert.Contains(t, err.Error(), "Niepoprawny format daty")
		})
	}
}

func TestDecode_IsIdempotent(t *testing.T) {
	first, err := Decode("02242105936")
	require.NoError(t, err)
	second, err := Decode("02242105936")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecodeSex_AllDigits(t *testing.T) {
	for d := 0; d <= 9; d++ {
		s := fmt.Sprintf("920601123%d5", d)
		want := SexFemale
		if d%2 == 1 {
			want = SexMale
		}
		assert.Equal(t, want, DecodeSex(s), "digit %d", d)
	}
}

func TestDecodeSex_IgnoresCheckDigit(t *testing.T) {
	assert.Equal(t, SexFemale, DecodeSex("92063012341"))
	assert.Equal(t, SexFemale, DecodeSex("92063012348"))
}

func TestDecodeDate(t *testing.T) {
	got, err := DecodeDate("92063012345")
	require.NoError(t, err)
	assert.Equal(t, "1992-06-30", got)

	got, err = DecodeDate("02242105936")
	require.NoError(t, err)
	assert.Equal(t, "2002-04-21", got)

	_, err = DecodeDate("92063191345")
	assert.True(t, IsKind(err, KindInvalidDay))
}

func TestDecodeBirthDate(t *testing.T) {
	bd, err := DecodeBirthDate("02242105936")
	require.NoError(t, err)
	assert.Equal(t, BirthDate{Year: 2002, Month: 4, Day: 21}, bd)
	assert.Equal(t, "2002-04-21", bd.String())
}

func TestParse(t *testing.T) {
	p, err := Parse("02242105936")
	require.NoError(t, err)
	assert.False(t, p.IsZero())
	assert.Equal(t, "02242105936", p.String())
	assert.Equal(t, SexMale, p.Sex())
	assert.Equal(t, time.Date(2002, time.April, 21, 0, 0, 0, 0, time.UTC), p.Time())

	_, err = Parse("92093112345")
	assert.True(t, IsKind(err, KindDateFormat))

	assert.True(t, PESEL{}.IsZero())
	assert.Panics(t, func() { MustParse("") })
}
