package tui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// defaultWidth is the wrap width used when stdout is not a terminal.
const defaultWidth = 80

// NewRenderer returns a function that renders markdown using glamour,
// word wrapped to the current terminal width.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(terminalWidth()),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// terminalWidth reports the stdout width, capped for readability. It falls
// back to defaultWidth when stdout is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	if width > 100 {
		return 100
	}
	return width
}
