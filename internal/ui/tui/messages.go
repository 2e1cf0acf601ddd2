package tui

import "github.com/aalvaropc/pesel/internal/domain"

type decodedMsg struct {
	input string
	res   domain.Result
	err   error
}
