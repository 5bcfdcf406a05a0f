package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for the console UI
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headings, rules
	SuccessColor = lipgloss.Color("#43BF6D") // Green - success, checkmarks
	ErrorColor   = lipgloss.Color("#FF5555") // Red - rejected input
	MutedColor   = lipgloss.Color("#626262") // Gray - prompts, hints
)

// Rule widths, in characters
const (
	BannerWidth  = 41
	SectionWidth = 40
	DetailWidth  = 30
	TableWidth   = 47
)

// Markers
const (
	SuccessMarker = "✓"
)

// Styles holds the styles for one output stream. Styles are created from a
// renderer bound to that stream, so colors are only emitted when it is a
// terminal that supports them.
type Styles struct {
	Heading lipgloss.Style // Section titles, e.g. "MAIN MENU"
	Rule    lipgloss.Style // Horizontal rules
	Banner  lipgloss.Style // Centered banner lines
	Prompt  lipgloss.Style // "Enter your choice: "
	Success lipgloss.Style // Registration confirmation
	Error   lipgloss.Style // Rejected input messages
	Muted   lipgloss.Style // Hints such as "Press Enter to continue..."
}

// NewStyles creates styles rendered for w
func NewStyles(w io.Writer) *Styles {
	r := lipgloss.NewRenderer(w)

	return &Styles{
		Heading: r.NewStyle().
			Foreground(PrimaryColor).
			Bold(true),
		Rule: r.NewStyle().
			Foreground(PrimaryColor),
		Banner: r.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Width(BannerWidth).
			Align(lipgloss.Center),
		Prompt: r.NewStyle().
			Bold(true),
		Success: r.NewStyle().
			Foreground(SuccessColor).
			Bold(true),
		Error: r.NewStyle().
			Foreground(ErrorColor),
		Muted: r.NewStyle().
			Foreground(MutedColor),
	}
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
