package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/mp3-autotag/internal/resolve"
)

// Prompter runs menus and text prompts as Bubble Tea programs.
type Prompter struct {
	options []tea.ProgramOption
}

var _ resolve.Prompter = (*Prompter)(nil)

// NewPrompter returns a Prompter reading keys from in and drawing on out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		options: []tea.ProgramOption{tea.WithInput(in), tea.WithOutput(out)},
	}
}

// Select shows menu until an entry is picked.
func (p *Prompter) Select(menu resolve.Menu) (int, error) {
	final, err := tea.NewProgram(newMenuModel(menu), p.options...).Run()
	if err != nil {
		return 0, fmt.Errorf("running menu: %w", err)
	}

	m, ok := final.(menuModel)
	if !ok || !m.done {
		return 0, resolve.ErrInputClosed
	}
	return m.choice, m.err
}

// Input asks for one line of text.
func (p *Prompter) Input(label string) (string, error) {
	final, err := tea.NewProgram(newInputModel(label), p.options...).Run()
	if err != nil {
		return "", fmt.Errorf("running prompt: %w", err)
	}

	m, ok := final.(inputModel)
	if !ok || !m.done {
		return "", resolve.ErrInputClosed
	}
	return m.value, m.err
}
