package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/mp3-autotag/internal/resolve"
)

func typeInto(t *testing.T, keys ...tea.KeyMsg) inputModel {
	t.Helper()
	var m tea.Model = newInputModel("Enter artist name:")
	for _, k := range keys {
		m, _ = m.Update(k)
	}
	im, ok := m.(inputModel)
	if !ok {
		t.Fatalf("model is %T", m)
	}
	return im
}

func TestInputModel_Enter(t *testing.T) {
	m := typeInto(t, runes(" Massive Attack "), keyType(tea.KeyEnter))
	if !m.done {
		t.Fatal("prompt should be done")
	}
	if m.value != "Massive Attack" {
		t.Errorf("value = %q", m.value)
	}
	if m.err != nil {
		t.Errorf("err = %v", m.err)
	}
}

func TestInputModel_EscGivesUp(t *testing.T) {
	m := typeInto(t, runes("Portis"), keyType(tea.KeyEsc))
	if !m.done || m.value != "" {
		t.Errorf("done = %v value = %q, want an empty answer", m.done, m.value)
	}
}

func TestInputModel_CtrlC(t *testing.T) {
	m := typeInto(t, keyType(tea.KeyCtrlC))
	if !errors.Is(m.err, resolve.ErrInputClosed) {
		t.Errorf("err = %v, want ErrInputClosed", m.err)
	}
}
