package ui

import (
	"context"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/mimchine/mimchine/internal/configstore"
)

type runtimePrompter struct {
	in       io.Reader
	out      io.Writer
	theme    Theme
	fallback configstore.Prompter
}

// NewRuntimePrompter returns the first-run runtime picker. On a terminal it
// runs a full-screen selector; with piped or redirected streams there is
// nobody to ask, so the default runtime is chosen silently.
func NewRuntimePrompter(in io.Reader, out io.Writer) configstore.Prompter {
	return &runtimePrompter{
		in:       in,
		out:      out,
		theme:    NewTheme(SupportsColor(out)),
		fallback: configstore.NewTerminalPrompter(in, out),
	}
}

func (p *runtimePrompter) ChooseRuntime(ctx context.Context) (string, error) {
	if !isTerminal(p.in) || !isTerminal(p.out) {
		return configstore.DefaultRuntime, nil
	}

	model := newPickerModel(p.theme)
	prog := tea.NewProgram(model, tea.WithInput(p.in), tea.WithOutput(p.out), tea.WithContext(ctx))
	final, err := prog.Run()
	if err != nil {
		return p.fallback.ChooseRuntime(ctx)
	}
	m, ok := final.(*pickerModel)
	if !ok || !m.done {
		return p.fallback.ChooseRuntime(ctx)
	}
	return m.choice, nil
}

func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

type pickerOption struct {
	label   string
	desc    string
	runtime string
}

type pickerModel struct {
	theme   Theme
	cursor  int
	options []pickerOption
	choice  string
	done    bool
}

func newPickerModel(theme Theme) *pickerModel {
	return &pickerModel{
		theme: theme,
		options: []pickerOption{
			{
				label:   "podman",
				desc:    "Rootless, keeps your uid via --userns keep-id.",
				runtime: configstore.RuntimePodman,
			},
			{
				label:   "docker",
				desc:    "Identity entries are reconciled inside the container.",
				runtime: configstore.RuntimeDocker,
			},
		},
		choice: configstore.DefaultRuntime,
	}
}

func (m *pickerModel) Init() tea.Cmd {
	return nil
}

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch strings.ToLower(msg.String()) {
		case "ctrl+c", "esc":
			m.choice = configstore.DefaultRuntime
			m.done = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case "enter":
			m.choose(m.cursor)
			return m, tea.Quit
		case "1", "2":
			idx := int(msg.String()[0] - '1')
			m.choose(idx)
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *pickerModel) View() string {
	lines := []string{
		m.theme.title.Render("mimchine setup"),
		m.theme.faint.Render("No config found; pick a container runtime."),
		"",
	}
	for i, opt := range m.options {
		prefix := m.theme.prefixInactive
		style := m.theme.option
		if i == m.cursor {
			prefix = m.theme.prefixActive
			style = m.theme.optionActive
		}
		lines = append(lines, prefix+" "+style.Render(opt.label))
		lines = append(lines, m.theme.description.Render(opt.desc))
	}
	lines = append(lines, "", m.theme.faint.Render("↑/↓ or 1-2 to choose, Enter confirms, Esc keeps the default."))
	return "\n" + lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

func (m *pickerModel) choose(index int) {
	if index < 0 || index >= len(m.options) {
		return
	}
	m.cursor = index
	m.choice = m.options[index].runtime
	m.done = true
}
