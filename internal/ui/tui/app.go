package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// inputLimit is generous on purpose: over-long input must reach the validator
// to be reported, not be cut off silently by the widget.
const inputLimit = 64

type model struct {
	theme Theme
	deps  Deps

	input textinput.Model

	decoding bool
	summary  string
	errMsg   string
	toast    string
}

func Run(deps Deps) error {
	m := wrapSafe(newModel(deps), deps.Logger)
	p := tea.NewProgram(m)
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	ti := textinput.New()
	ti.Prompt = "Podaj pesel: "
	ti.Placeholder = "11 cyfr"
	ti.CharLimit = inputLimit
	ti.Focus()

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		input: ti,
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-len(m.input.Prompt)-8, 11)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if m.decoding {
				return m, nil
			}
			m.decoding = true
			m.toast = ""
			return m, cmdDecode(m.deps, m.input.Value())
		}

	case decodedMsg:
		m.decoding = false
		if msg.err != nil {
			if m.deps.Logger != nil && m.deps.Debug {
				m.deps.Logger.Debug("tui.decode.failed", "err", msg.err)
			}
			m.summary = ""
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.summary = msg.res.Summary(m.deps.label(msg.res.Sex))
		m.input.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("PESEL") + "\n" +
		m.theme.Subtitle.Render("Walidacja numeru PESEL: płeć i data urodzenia") + "\n"

	body := m.input.View()

	switch {
	case m.decoding:
		body += "\n\n" + m.theme.Help.Render("…")
	case m.errMsg != "":
		body += "\n\n" + m.theme.Card.Render(m.theme.Error.Render(m.errMsg))
	case m.summary != "":
		body += "\n\n" + m.theme.Card.Render(m.theme.OK.Render(m.summary))
	}

	if m.toast != "" {
		body += "\n\n" + m.theme.Error.Render(m.toast)
	}

	help := m.theme.Help.Render("enter sprawdź • esc/ctrl+c wyjdź")
	return wrap.Render(header + "\n" + body + "\n\n" + help)
}
