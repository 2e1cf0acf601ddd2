package tui

import (
	"context"
	"errors"

	"github.com/aalvaropc/pesel/internal/domain"
)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		if ve.Kind == domain.KindDateFormat {
			// The wrapped parse error is for logs, not for the screen.
			return domain.Message(domain.KindDateFormat)
		}
		return ve.Error()
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return "Przerwano"
	}

	return "Unexpected error (see logs)"
}
