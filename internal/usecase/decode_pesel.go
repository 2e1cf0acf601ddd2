package usecase

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/aalvaropc/pesel/internal/domain"
)

// visiblePrefix is how many leading characters survive masking (the year).
const visiblePrefix = 2

type DecodePESEL struct {
	log     *slog.Logger
	masking bool
}

type DecodeOption func(*DecodePESEL)

func WithLogger(l *slog.Logger) DecodeOption {
	return func(uc *DecodePESEL) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithMasking controls whether identifiers are masked in log output.
func WithMasking(enabled bool) DecodeOption {
	return func(uc *DecodePESEL) { uc.masking = enabled }
}

func NewDecodePESEL(opts ...DecodeOption) *DecodePESEL {
	uc := &DecodePESEL{
		log:     slog.New(slog.NewJSONHandler(io.Discard, nil)),
		masking: true,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs the validation pipeline on one identifier and returns the
// decoded sex and birth date. Validation errors come back unchanged.
func (uc *DecodePESEL) Execute(ctx context.Context, input string) (domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return domain.Result{}, err
	}

	shown := uc.redact(input)
	uc.log.Debug("pesel.decode.start", "pesel", shown, "len", len(input))

	res, err := domain.Decode(input)
	if err != nil {
		uc.log.Info("pesel.decode.failed",
			"pesel", shown,
			"kind", string(domain.KindOf(err)),
			"err", err.Error(),
		)
		return domain.Result{}, err
	}

	uc.log.Info("pesel.decode.ok",
		"pesel", shown,
		"sex", res.Sex.String(),
	)
	return res, nil
}

func (uc *DecodePESEL) redact(s string) string {
	if !uc.masking {
		return s
	}
	return Mask(s)
}

// Mask keeps the year digits and hides the rest, e.g. "92*********".
// It works on runes so malformed input is never split mid-character.
func Mask(s string) string {
	r := []rune(s)
	if len(r) <= visiblePrefix {
		return strings.Repeat("*", len(r))
	}
	return string(r[:visiblePrefix]) + strings.Repeat("*", len(r)-visiblePrefix)
}
