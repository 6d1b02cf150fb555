package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// ContainerRow is one line of the list output.
type ContainerRow struct {
	Name  string
	State string
}

// PrintVersion writes the plain version line.
func PrintVersion(w io.Writer, name, version string) {
	fmt.Fprintf(w, "%s v%s\n", name, version)
}

// PrintContainerList renders the mim container table, or a short message
// when there is nothing to show.
func PrintContainerList(w io.Writer, theme Theme, rows []ContainerRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "no mim containers found")
		return
	}

	nameWidth := len("name")
	for _, row := range rows {
		if len(row.Name) > nameWidth {
			nameWidth = len(row.Name)
		}
	}

	fmt.Fprintln(w, theme.title.Render(fmt.Sprintf("mim containers (%d)", len(rows))))
	fmt.Fprintf(w, "%s  %s\n",
		theme.header.Render(pad("name", nameWidth)),
		theme.header.Render("state"))
	for _, row := range rows {
		fmt.Fprintf(w, "%s  %s\n",
			theme.name.Render(pad(row.Name, nameWidth)),
			theme.state.Render(row.State))
	}
}

func pad(s string, width int) string {
	if lipgloss.Width(s) >= width {
		return s
	}
	return s + spaces(width-lipgloss.Width(s))
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
