package ports

import (
	"context"

	"github.com/aalvaropc/pesel/internal/domain"
)

// Decoder validates and decodes one PESEL.
type Decoder interface {
	Execute(ctx context.Context, input string) (domain.Result, error)
}
