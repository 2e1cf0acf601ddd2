package tui

import (
	"log/slog"

	"github.com/aalvaropc/pesel/internal/domain"
	"github.com/aalvaropc/pesel/internal/ports"
)

type Deps struct {
	Decoder ports.Decoder
	Label   func(domain.Sex) string

	Logger *slog.Logger
	Debug  bool
}

func (d Deps) label(s domain.Sex) string {
	if d.Label == nil {
		return s.Label()
	}
	return d.Label(s)
}
