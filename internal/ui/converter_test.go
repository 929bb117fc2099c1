package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"vinculum/internal/numeral"
)

func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestConverterPreviewAndHistory(t *testing.T) {
	var m tea.Model = NewConverter(context.Background(), numeral.Codec{})
	m = typeText(m, "1776")

	cm := m.(*converterModel)
	if cm.preview.Output() != "I̅DCCLXXVI" {
		t.Fatalf("preview = %+v", cm.preview)
	}
	if !strings.Contains(m.View(), "= I̅DCCLXXVI") {
		t.Fatalf("view should show the live conversion:\n%s", m.View())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	cm = m.(*converterModel)
	if len(cm.history) != 1 || cm.history[0].output != "I̅DCCLXXVI" {
		t.Fatalf("history = %+v", cm.history)
	}
	if cm.input.Value() != "" {
		t.Fatalf("input should be cleared, got %q", cm.input.Value())
	}

	m = typeText(m, "Q")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	cm = m.(*converterModel)
	if len(cm.history) != 2 || !cm.history[1].failed {
		t.Fatalf("failed conversion should be kept as an error: %+v", cm.history)
	}
}

func TestConverterQuit(t *testing.T) {
	var m tea.Model = NewConverter(context.Background(), numeral.Codec{})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("esc should quit")
	}
	if m.View() != "" {
		t.Fatal("view should be empty after quitting")
	}
}

func TestConverterHistoryLimit(t *testing.T) {
	var m tea.Model = NewConverter(context.Background(), numeral.Codec{})
	for i := 0; i < historySize+5; i++ {
		m = typeText(m, "7")
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}
	if n := len(m.(*converterModel).history); n != historySize {
		t.Fatalf("history length = %d, want %d", n, historySize)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("X̅X̅V̅CDLIX", 20); got != "X̅X̅V̅CDLIX" {
		t.Fatalf("short value changed: %q", got)
	}
	if got := truncate("abcdefghij", 6); got != "abc..." {
		t.Fatalf("truncate = %q", got)
	}
}
