package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles for console output
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1A3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A8DADC"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
)

// Console renders events as prefixed lines.
type Console struct {
	out     io.Writer
	verbose bool
}

// NewConsole returns a Console writing to out. Verbose events are dropped
// unless verbose is set.
func NewConsole(out io.Writer, verbose bool) *Console {
	return &Console{out: out, verbose: verbose}
}

// Report writes one event.
func (c *Console) Report(event Event) {
	if event.Level == LevelVerbose && !c.verbose {
		return
	}
	fmt.Fprintln(c.out, Format(event))
}

// Format returns the rendered line for an event.
func Format(event Event) string {
	var style lipgloss.Style
	prefix := ""
	switch event.Level {
	case LevelError:
		style = errorStyle
		prefix = "❌ "
	case LevelWarning:
		style = warningStyle
		prefix = "⚠️  "
	case LevelSuccess:
		style = successStyle
		prefix = "✔ "
	case LevelInfo:
		style = infoStyle
	default:
		style = dimStyle
		prefix = "   "
	}
	return style.Render(prefix + event.Message)
}
