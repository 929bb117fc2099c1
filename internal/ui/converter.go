// Package ui is the interactive converter behind `vinculum repl`.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"vinculum/internal/driver"
	"vinculum/internal/numeral"
)

const historySize = 10

type entry struct {
	input  string
	output string
	failed bool
}

type converterModel struct {
	ctx     context.Context
	codec   numeral.Codec
	input   textinput.Model
	history []entry
	preview driver.Result
	width   int
	done    bool
}

// NewConverter returns a Bubble Tea model that converts the typed line live
// and keeps the last confirmed conversions.
func NewConverter(ctx context.Context, codec numeral.Codec) tea.Model {
	ti := textinput.New()
	ti.Placeholder = "1776 or I̅DCCLXXVI"
	ti.Prompt = "› "
	ti.CharLimit = 256
	ti.Focus()
	return &converterModel{ctx: ctx, codec: codec, input: ti, width: 80}
}

func (m *converterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *converterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.confirm()
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

func (m *converterModel) refresh() {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		m.preview = driver.Result{}
		return
	}
	m.preview = driver.Convert(m.ctx, m.codec, value)
}

func (m *converterModel) confirm() {
	m.refresh()
	if m.preview.Input == "" {
		return
	}
	e := entry{input: m.preview.Input, output: m.preview.Output(), failed: m.preview.Err != nil}
	if e.failed {
		e.output = m.preview.Err.Error()
	}
	m.history = append(m.history, e)
	if len(m.history) > historySize {
		m.history = m.history[len(m.history)-historySize:]
	}
	m.input.SetValue("")
	m.preview = driver.Result{}
}

func (m *converterModel) View() string {
	if m.done {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle := lipgloss.NewStyle().Faint(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("vinculum converter"))
	b.WriteString("\n\n")

	width := max(m.width-6, 20)
	for _, e := range m.history {
		style := okStyle
		if e.failed {
			style = errStyle
		}
		line := fmt.Sprintf("%s = %s", e.input, e.output)
		b.WriteString("  ")
		b.WriteString(style.Render(truncate(line, width)))
		b.WriteString("\n")
	}
	if len(m.history) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	switch {
	case m.preview.Input == "":
		b.WriteString(hintStyle.Render("  type a number or a numeral"))
	case m.preview.Err != nil:
		b.WriteString(errStyle.Render("  " + truncate(m.preview.Err.Error(), width)))
	default:
		b.WriteString(okStyle.Render("  = " + truncate(m.preview.Output(), width)))
	}
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("enter keeps the result, esc quits"))
	b.WriteString("\n")
	return b.String()
}

func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
