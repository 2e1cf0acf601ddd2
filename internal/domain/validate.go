package domain

// CheckStructure verifies emptiness, digit-only content and length, in that order.
func CheckStructure(s string) error {
	if len(s) == 0 {
		return newValidationError(KindEmptyInput)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return newValidationError(KindNonDigit)
		}
	}
	if len(s) != Length {
		return newValidationError(KindInvalidLength)
	}
	return nil
}

// CheckMonth accepts month-fields 1-12 and 21-32. 13-20 are rejected.
func CheckMonth(s string) error {
	m := monthField(s)
	if inBounds(minMonth, m, maxMonth1900s) || inBounds(minMonth2000s, m, maxMonth2000s) {
		return nil
	}
	return newValidationError(KindInvalidMonth)
}

// ValidateDay returns the encoded day if it fits the month's bound.
//
// The bound follows month parity rather than the real calendar: February gets
// 28 or 29 (year-within-century divisible by 4), other even months 30, odd
// months 31. August therefore tops out at 30.
func ValidateDay(s string) (int, error) {
	d := dayField(s)
	if !inBounds(1, d, maxDay(yearField(s), trueMonth(monthField(s)))) {
		return 0, newValidationError(KindInvalidDay)
	}
	return d, nil
}

func maxDay(yy, month int) int {
	switch {
	case month == february:
		if yy%4 == 0 {
			return daysFebruaryLeap
		}
		return daysFebruary
	case month%2 == 0:
		return daysEvenMonth
	default:
		return daysOddMonth
	}
}
