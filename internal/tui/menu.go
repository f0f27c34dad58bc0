package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/mp3-autotag/internal/resolve"
)

// menuModel is the Bubble Tea model of one numbered menu.
type menuModel struct {
	menu    resolve.Menu
	cursor  int
	typed   string
	invalid string

	done   bool
	choice int
	err    error
}

func newMenuModel(menu resolve.Menu) menuModel {
	return menuModel{menu: menu}
}

// entries counts the selectable rows, including the back entry.
func (m menuModel) entries() int {
	n := len(m.menu.Items)
	if m.menu.Back != "" {
		n++
	}
	return n
}

// Init implements tea.Model.
func (m menuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c":
		return m.finish(0, resolve.ErrInputClosed)

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.typed = ""

	case "down", "j":
		if m.cursor < m.entries()-1 {
			m.cursor++
		}
		m.typed = ""

	case "esc":
		switch {
		case m.menu.Back != "":
			return m.finish(0, resolve.ErrBack)
		case m.menu.AllowSkip:
			return m.finish(0, resolve.ErrSkipped)
		}

	case "s":
		if m.menu.AllowSkip {
			return m.finish(0, resolve.ErrSkipped)
		}

	case "backspace":
		if m.typed != "" {
			m.typed = m.typed[:len(m.typed)-1]
		}

	case "enter":
		answer := m.typed
		if answer == "" {
			answer = m.cursorAnswer()
		}
		choice, err := m.menu.Choose(answer)
		if errors.Is(err, resolve.ErrInvalidChoice) {
			m.invalid = m.menu.InvalidMessage()
			m.typed = ""
			return m, nil
		}
		return m.finish(choice, err)

	default:
		if r := key.Runes; len(r) == 1 && r[0] >= '0' && r[0] <= '9' {
			m.typed += string(r)
		}
	}

	return m, nil
}

// cursorAnswer returns the number of the highlighted row.
func (m menuModel) cursorAnswer() string {
	if m.entries() == 0 {
		return ""
	}
	if m.cursor == len(m.menu.Items) {
		return "0"
	}
	return fmt.Sprint(m.cursor + 1)
}

func (m menuModel) finish(choice int, err error) (tea.Model, tea.Cmd) {
	m.done = true
	m.choice = choice
	m.err = err
	return m, tea.Quit
}

// View implements tea.Model.
func (m menuModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	if m.menu.Title != "" {
		b.WriteString(titleStyle.Render(m.menu.Title))
		b.WriteString("\n")
	}

	for i, item := range m.menu.Items {
		b.WriteString(m.row(i, fmt.Sprintf("%d. %s", i+1, item)))
	}
	if m.menu.Back != "" {
		b.WriteString(m.row(len(m.menu.Items), "0. "+m.menu.Back))
	}

	b.WriteString("\n")
	b.WriteString(promptStyle.Render(m.menu.Prompt))
	if m.typed != "" {
		b.WriteString(" " + m.typed)
	}
	b.WriteString("\n")

	if m.invalid != "" {
		b.WriteString(errorStyle.Render("❌ " + m.invalid))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(m.helpText()))
	b.WriteString("\n")
	return b.String()
}

func (m menuModel) row(i int, text string) string {
	if i == m.cursor {
		return cursorStyle.Render("> "+text) + "\n"
	}
	return "  " + itemStyle.Render(text) + "\n"
}

func (m menuModel) helpText() string {
	help := []string{"↑/↓: move", "enter: select", "0-9: pick by number"}
	if m.menu.Back != "" {
		help = append(help, "esc: back")
	}
	if m.menu.AllowSkip {
		help = append(help, "s/esc: skip")
	}
	help = append(help, "ctrl+c: quit")
	return strings.Join(help, " • ")
}
