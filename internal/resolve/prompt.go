package resolve

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/handiism/mp3-autotag/internal/report"
)

var (
	// ErrBack is returned by Select when the user picks the back entry.
	ErrBack = errors.New("back")

	// ErrSkipped is returned by Select when the user enters nothing on a
	// menu that allows skipping.
	ErrSkipped = errors.New("skipped")

	// ErrInputClosed means no more input can be read.
	ErrInputClosed = errors.New("input closed")

	// ErrNoAlbumSelected ends a session in which no album could be chosen.
	ErrNoAlbumSelected = errors.New("no album selected")

	// ErrInvalidChoice is returned by Menu.Choose for answers that must be
	// asked again.
	ErrInvalidChoice = errors.New("invalid choice")
)

// Menu is a numbered list of choices.
type Menu struct {
	// Title is printed above the items.
	Title string

	// Items are listed as "1. item", "2. item", ...
	Items []string

	// Prompt is printed before reading a choice.
	Prompt string

	// Back, when set, is listed as "0. Back" and makes 0 a valid choice.
	Back string

	// AllowSkip makes an empty answer valid.
	AllowSkip bool

	// Invalid is shown before asking again.
	Invalid string
}

// InvalidMessage returns the reprompt message of the menu.
func (m Menu) InvalidMessage() string {
	if m.Invalid != "" {
		return m.Invalid
	}
	return "Invalid selection. Please try again."
}

// Choose validates an answer. It returns the 1-based item number, ErrBack,
// ErrSkipped, or ErrInvalidChoice.
func (m Menu) Choose(answer string) (int, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		if m.AllowSkip {
			return 0, ErrSkipped
		}
		return 0, ErrInvalidChoice
	}
	if !isDigits(answer) {
		return 0, ErrInvalidChoice
	}

	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, ErrInvalidChoice
	}
	if n == 0 && m.Back != "" {
		return 0, ErrBack
	}
	if n >= 1 && n <= len(m.Items) {
		return n, nil
	}
	return 0, ErrInvalidChoice
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// Prompter asks the user for choices.
//
// Select returns the 1-based number of the chosen item, or ErrBack,
// ErrSkipped or ErrInputClosed. Invalid answers are asked again and never
// returned. Input returns the trimmed answer, which may be empty.
type Prompter interface {
	Select(menu Menu) (int, error)
	Input(label string) (string, error)
}

// Console is a Prompter reading whole lines.
type Console struct {
	in         *bufio.Reader
	out        io.Writer
	onProgress report.Func
}

var _ Prompter = (*Console)(nil)

// NewConsole returns a Console reading answers from in and writing menus to
// out. Reprompt messages are sent to onProgress at error level, or written
// to out when onProgress is nil.
func NewConsole(in io.Reader, out io.Writer, onProgress report.Func) *Console {
	return &Console{
		in:         bufio.NewReader(in),
		out:        out,
		onProgress: onProgress,
	}
}

// Select prints the menu and reads answers until one is valid.
func (c *Console) Select(menu Menu) (int, error) {
	for {
		c.printMenu(menu)

		answer, err := c.readLine(menu.Prompt)
		if err != nil {
			return 0, err
		}

		choice, err := menu.Choose(answer)
		if !errors.Is(err, ErrInvalidChoice) {
			return choice, err
		}
		c.invalid(menu.InvalidMessage())
	}
}

// Input prints label and reads one answer.
func (c *Console) Input(label string) (string, error) {
	answer, err := c.readLine(label + " ")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

func (c *Console) printMenu(menu Menu) {
	fmt.Fprintln(c.out)
	if menu.Title != "" {
		fmt.Fprintln(c.out, menu.Title)
	}
	for i, item := range menu.Items {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, item)
	}
	if menu.Back != "" {
		fmt.Fprintf(c.out, "0. %s\n", menu.Back)
	}
}

func (c *Console) readLine(prompt string) (string, error) {
	prompt = strings.TrimRight(prompt, " ")
	if prompt == "" {
		prompt = "Enter choice:"
	}
	fmt.Fprint(c.out, prompt+" ")

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return line, nil
			}
			fmt.Fprintln(c.out)
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return line, nil
}

func (c *Console) invalid(message string) {
	if c.onProgress != nil {
		c.onProgress.Send(report.LevelError, message)
		return
	}
	fmt.Fprintln(c.out, message)
}
