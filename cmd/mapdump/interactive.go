package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/vlq/errors"
	"github.com/wippyai/vlq/sourcemap"
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1)

type interactiveModel struct {
	err   error
	base  *sourcemap.SourceMap
	sm    *sourcemap.SourceMap
	input textinput.Model
	st    styles
}

// newInteractiveModel starts from base, whose sources and names are used to
// resolve indices while the mappings are edited.
func newInteractiveModel(base *sourcemap.SourceMap, st styles) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "AAAA;AACA,EAAE"
	ti.Prompt = "mappings: "
	ti.Width = 60
	ti.SetValue(sourcemap.EncodeMappings(base.Mappings))
	ti.Focus()

	m := &interactiveModel{base: base, input: ti, st: st}
	m.decode()
	return m
}

func (m *interactiveModel) decode() {
	mappings, err := sourcemap.DecodeMappings(m.input.Value())
	m.err = err
	if err != nil {
		return
	}
	sm := *m.base
	sm.Mappings = mappings
	m.sm = &sm
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.decode()
	}
	return m, cmd
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(m.st.render(titleStyle, "Mappings Dump"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(m.st.render(errorStyle, "Error: "+m.err.Error()))
		b.WriteString("\n\n")
	case m.sm != nil:
		if err := dump(&b, m.sm, m.st); err != nil {
			b.WriteString(m.st.render(errorStyle, "Error: "+err.Error()))
			b.WriteString("\n\n")
		}
	}

	b.WriteString(m.st.render(helpStyle, "type to edit • esc quit"))
	return b.String()
}

func runInteractive(cfg config) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.InvalidInput(errors.PhaseLoad, "interactive mode requires a terminal")
	}

	base := &sourcemap.SourceMap{Version: sourcemap.Version}
	if cfg.file != "" || cfg.mappings != "" {
		sm, err := load(cfg)
		if err != nil {
			return err
		}
		base = sm
	}

	p := tea.NewProgram(newInteractiveModel(base, newStyles(cfg.color != "never")), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
