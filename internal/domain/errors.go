package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

// Validation kinds. Each one is terminal for the current input.
const (
	KindEmptyInput    ErrorKind = "empty_input"
	KindNonDigit      ErrorKind = "non_digit_character"
	KindInvalidLength ErrorKind = "invalid_length"
	KindInvalidMonth  ErrorKind = "invalid_month"
	KindInvalidDay    ErrorKind = "invalid_day"
	KindDateFormat    ErrorKind = "date_format"
)

// Infrastructure kinds.
const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindExecution     ErrorKind = "execution"
)

var validationMessages = map[ErrorKind]string{
	KindEmptyInput:    "Pesel jest pusty!",
	KindNonDigit:      "Pesel ma inne znaki niz cyfry!",
	KindInvalidLength: "Twoj pesel nie ma 11 znakow",
	KindInvalidMonth:  "Niepoprawny miesiac",
	KindInvalidDay:    "Niepoprawny dzien w miesiacu",
	KindDateFormat:    "Niepoprawny format daty",
}

// ValidationError is returned by every step of the PESEL pipeline.
// Error() yields the fixed user-facing message for Kind.
type ValidationError struct {
	Kind ErrorKind
	Err  error // only set for KindDateFormat
}

func newValidationError(kind ErrorKind) *ValidationError {
	return &ValidationError{Kind: kind}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}

	msg, ok := validationMessages[e.Kind]
	if !ok {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Message returns the fixed message for a validation kind, or "" for other kinds.
func Message(kind ErrorKind) string {
	return validationMessages[kind]
}

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind && kind != ""
}

// KindOf returns the kind of the first ValidationError or OpError in err's chain,
// or "" when there is none.
func KindOf(err error) ErrorKind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return ""
}
