// Package ui renders mimchine's terminal output: the container listing, the
// version line, and the first-run runtime picker.
package ui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Theme bundles the styles the ui package renders with. The colorless
// variant keeps output readable through pipes and dumb terminals.
type Theme struct {
	color bool

	title  lipgloss.Style
	header lipgloss.Style
	name   lipgloss.Style
	state  lipgloss.Style
	faint  lipgloss.Style

	option       lipgloss.Style
	optionActive lipgloss.Style
	description  lipgloss.Style

	prefixActive   string
	prefixInactive string
}

// NewTheme builds a Theme, colored or plain.
func NewTheme(color bool) Theme {
	if !color {
		return Theme{
			color:          false,
			title:          lipgloss.NewStyle().Bold(true),
			header:         lipgloss.NewStyle().Bold(true),
			name:           lipgloss.NewStyle(),
			state:          lipgloss.NewStyle(),
			faint:          lipgloss.NewStyle().Faint(true),
			option:         lipgloss.NewStyle().PaddingLeft(2),
			optionActive:   lipgloss.NewStyle().PaddingLeft(2).Bold(true),
			description:    lipgloss.NewStyle().Faint(true).PaddingLeft(4),
			prefixActive:   ">",
			prefixInactive: " ",
		}
	}

	accent := lipgloss.Color("#58d4ff")
	muted := lipgloss.Color("#9fb3c8")

	return Theme{
		color:          true,
		title:          lipgloss.NewStyle().Foreground(accent).Bold(true),
		header:         lipgloss.NewStyle().Bold(true),
		name:           lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		state:          lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		faint:          lipgloss.NewStyle().Faint(true),
		option:         lipgloss.NewStyle().PaddingLeft(2),
		optionActive:   lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("#0b1215")).Background(accent).Bold(true),
		description:    lipgloss.NewStyle().Foreground(muted).PaddingLeft(4),
		prefixActive:   lipgloss.NewStyle().Foreground(accent).Render("❯"),
		prefixInactive: lipgloss.NewStyle().Foreground(muted).Render("•"),
	}
}

// SupportsColor reports whether styled output makes sense on out.
func SupportsColor(out io.Writer) bool {
	if strings.EqualFold(os.Getenv("TERM"), "dumb") {
		return false
	}
	f, ok := out.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
