package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const decodeTimeout = 5 * time.Second

func cmdDecode(deps Deps, input string) tea.Cmd {
	return func() tea.Msg {
		if deps.Decoder == nil {
			return decodedMsg{input: input, err: errors.New("Decoder is nil")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), decodeTimeout)
		defer cancel()

		res, err := deps.Decoder.Execute(ctx, input)
		return decodedMsg{input: input, res: res, err: err}
	}
}
