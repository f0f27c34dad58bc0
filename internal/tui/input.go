package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/mp3-autotag/internal/resolve"
)

// inputModel is the Bubble Tea model of a free-text prompt.
type inputModel struct {
	label     string
	textInput textinput.Model

	done  bool
	value string
	err   error
}

func newInputModel(label string) inputModel {
	ti := textinput.New()
	ti.Placeholder = "Portishead"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 50

	return inputModel{label: label, textInput: ti}
}

// Init implements tea.Model.
func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			m.done = true
			m.err = resolve.ErrInputClosed
			return m, tea.Quit

		case "enter":
			m.done = true
			m.value = strings.TrimSpace(m.textInput.Value())
			return m, tea.Quit

		case "esc":
			// An empty answer gives up, like a blank line on the console.
			m.done = true
			m.value = ""
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m inputModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(promptStyle.Render(m.label))
	b.WriteString("\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter: search • esc: go back • ctrl+c: quit"))
	b.WriteString("\n")
	return b.String()
}
