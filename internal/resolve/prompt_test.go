package resolve

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/handiism/mp3-autotag/internal/report"
)

func TestMenu_Choose(t *testing.T) {
	menu := Menu{Items: []string{"a", "b", "c"}}
	withBack := Menu{Items: []string{"a"}, Back: "Back"}
	skippable := Menu{Items: []string{"a", "b"}, AllowSkip: true}

	tests := []struct {
		name    string
		menu    Menu
		answer  string
		want    int
		wantErr error
	}{
		{"first", menu, "1", 1, nil},
		{"last with spaces", menu, "  3 \n", 3, nil},
		{"out of range", menu, "4", 0, ErrInvalidChoice},
		{"zero without back", menu, "0", 0, ErrInvalidChoice},
		{"negative", menu, "-1", 0, ErrInvalidChoice},
		{"plus sign", menu, "+2", 0, ErrInvalidChoice},
		{"text", menu, "two", 0, ErrInvalidChoice},
		{"blank without skip", menu, "", 0, ErrInvalidChoice},
		{"back", withBack, "0", 0, ErrBack},
		{"blank skips", skippable, "   ", 0, ErrSkipped},
		{"skippable still validates", skippable, "3", 0, ErrInvalidChoice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.menu.Choose(tt.answer)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Choose(%q) error = %v, want %v", tt.answer, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Choose(%q) = %d, want %d", tt.answer, got, tt.want)
			}
		})
	}
}

func TestConsole_SelectPrintsMenu(t *testing.T) {
	var out bytes.Buffer
	console := NewConsole(strings.NewReader("2\n"), &out, nil)

	choice, err := console.Select(Menu{
		Title:  "Choose an album to tag files:",
		Items:  []string{"Dummy (1994-08-22)", "Portishead (1997-09-29)"},
		Prompt: "Enter album number:",
		Back:   "Back",
	})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if choice != 2 {
		t.Errorf("choice = %d, want 2", choice)
	}

	for _, line := range []string{
		"Choose an album to tag files:",
		"1. Dummy (1994-08-22)",
		"2. Portishead (1997-09-29)",
		"0. Back",
		"Enter album number: ",
	} {
		if !strings.Contains(out.String(), line) {
			t.Errorf("output misses %q:\n%s", line, out.String())
		}
	}
}

func TestConsole_SelectReprompts(t *testing.T) {
	var out bytes.Buffer
	rec := &report.Recorder{}
	console := NewConsole(strings.NewReader("x\n5\n\n1\n"), &out, rec.Report)

	choice, err := console.Select(Menu{
		Items:   []string{"Auto", "Manual"},
		Invalid: "Invalid selection. Please choose 1 or 2.",
	})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if choice != 1 {
		t.Errorf("choice = %d, want 1", choice)
	}

	errs := rec.Messages(report.LevelError)
	if len(errs) != 3 {
		t.Fatalf("got %d reprompts, want 3: %v", len(errs), errs)
	}
	for _, msg := range errs {
		if msg != "Invalid selection. Please choose 1 or 2." {
			t.Errorf("reprompt message %q", msg)
		}
	}
	if got := strings.Count(out.String(), "1. Auto"); got != 4 {
		t.Errorf("menu printed %d times, want 4", got)
	}
}

func TestConsole_InvalidWithoutReporter(t *testing.T) {
	var out bytes.Buffer
	console := NewConsole(strings.NewReader("9\n1\n"), &out, nil)

	if _, err := console.Select(Menu{Items: []string{"only"}}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Invalid selection. Please try again.") {
		t.Errorf("default reprompt message missing:\n%s", out.String())
	}
}

func TestConsole_InputClosed(t *testing.T) {
	var out bytes.Buffer
	console := NewConsole(strings.NewReader(""), &out, nil)

	if _, err := console.Select(Menu{Items: []string{"a"}}); !errors.Is(err, ErrInputClosed) {
		t.Errorf("Select error = %v, want ErrInputClosed", err)
	}
	if _, err := console.Input("Enter artist name:"); !errors.Is(err, ErrInputClosed) {
		t.Errorf("Input error = %v, want ErrInputClosed", err)
	}
}

func TestConsole_InputLastLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	console := NewConsole(strings.NewReader("  Massive Attack  "), &out, nil)

	name, err := console.Input("Enter artist name:")
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	if name != "Massive Attack" {
		t.Errorf("name = %q", name)
	}
	if out.String() != "Enter artist name: " {
		t.Errorf("prompt = %q", out.String())
	}

	if _, err := console.Input("Enter artist name:"); !errors.Is(err, ErrInputClosed) {
		t.Errorf("second Input error = %v, want ErrInputClosed", err)
	}
}
