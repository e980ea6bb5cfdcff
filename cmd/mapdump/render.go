package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/vlq/sourcemap"
)

const lineRule = "================"

var (
	ruleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	lineStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD580"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// styles applies lipgloss styles only when color output is enabled.
type styles struct {
	enabled bool
}

func newStyles(enabled bool) styles {
	return styles{enabled: enabled}
}

func (s styles) render(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return st.Render(text)
}

// dump writes every line and segment of sm, resolving source and name
// indices when sm carries them.
func dump(w io.Writer, sm *sourcemap.SourceMap, st styles) error {
	bw := bufio.NewWriter(w)

	for i, line := range sm.Mappings {
		fmt.Fprintln(bw, st.render(ruleStyle, lineRule))
		fmt.Fprintln(bw, st.render(lineStyle, fmt.Sprintf("Line %d", i)))

		for _, seg := range line {
			field(bw, st, "column", fmt.Sprint(seg.GeneratedColumn), "")
			if seg.HasSource {
				srcName, _ := sm.Source(seg.Source)
				field(bw, st, "source", fmt.Sprintf("#%d", seg.Source), srcName)
				field(bw, st, "orig line", fmt.Sprint(seg.OriginalLine), "")
				field(bw, st, "orig column", fmt.Sprint(seg.OriginalColumn), "")
				if seg.HasName {
					name, _ := sm.Name(seg.Name)
					field(bw, st, "name", fmt.Sprintf("#%d", seg.Name), name)
				}
			}
			fmt.Fprintln(bw)
		}

		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

func field(w io.Writer, st styles, label, value, resolved string) {
	fmt.Fprintf(w, "   %s %s", st.render(labelStyle, label), st.render(valueStyle, value))
	if resolved != "" {
		fmt.Fprintf(w, " %s", st.render(nameStyle, "("+resolved+")"))
	}
	fmt.Fprintln(w)
}
