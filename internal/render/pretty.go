package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// grid is a simple left-aligned text table. Widths are display columns, so
// combining marks do not count.
type grid struct {
	header []string
	rows   [][]string
	failed []bool
}

func (g *grid) add(failed bool, cells ...string) {
	g.rows = append(g.rows, cells)
	g.failed = append(g.failed, failed)
}

func (g *grid) write(w io.Writer, opts Options) error {
	widths := make([]int, len(g.header))
	for i, h := range g.header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range g.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var sb strings.Builder
	writeRow(&sb, g.header, widths, style(opts, headerStyle))
	rule := make([]string, len(widths))
	for i, n := range widths {
		rule[i] = strings.Repeat("-", n)
	}
	writeRow(&sb, rule, widths, style(opts, dimStyle))
	for i, row := range g.rows {
		st := lipgloss.NewStyle()
		if g.failed[i] {
			st = errorStyle
		}
		writeRow(&sb, row, widths, style(opts, st))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeRow(sb *strings.Builder, cells []string, widths []int, st *lipgloss.Style) {
	var line strings.Builder
	for i, cell := range cells {
		if i > 0 {
			line.WriteString("  ")
		}
		line.WriteString(cell)
		if i < len(cells)-1 {
			line.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)))
		}
	}
	if st != nil {
		sb.WriteString(st.Render(line.String()))
	} else {
		sb.WriteString(line.String())
	}
	sb.WriteString("\n")
}

func style(opts Options, st lipgloss.Style) *lipgloss.Style {
	if !opts.Color {
		return nil
	}
	return &st
}
