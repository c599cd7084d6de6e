package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/lifeterm/internal/life"
	"github.com/san-kum/lifeterm/internal/term"
)

func blinker(t *testing.T) *life.Grid {
	t.Helper()
	g, err := life.Seed("blinker", 5, 5, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestModel_TickAdvances(t *testing.T) {
	g := blinker(t)
	m := NewModel(g, time.Millisecond, term.DefaultPalette())

	next, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Error("expected follow-up tick command")
	}
	nm := next.(Model)
	if nm.Grid().Generation() != 1 {
		t.Errorf("expected generation 1, got %d", nm.Grid().Generation())
	}
	if len(nm.history) != 2 {
		t.Errorf("expected 2 history entries, got %d", len(nm.history))
	}
}

func TestModel_Quit(t *testing.T) {
	tests := []string{"q", "ctrl+c"}
	for _, key := range tests {
		t.Run(key, func(t *testing.T) {
			m := NewModel(blinker(t), time.Second, term.DefaultPalette())
			var msg tea.KeyMsg
			if key == "ctrl+c" {
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			} else {
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
			}
			next, cmd := m.Update(msg)
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("expected tea.QuitMsg")
			}
			if next.(Model).View() != "" {
				t.Error("view should be empty after quit")
			}
		})
	}
}

func TestModel_OtherKeysIgnored(t *testing.T) {
	m := NewModel(blinker(t), time.Second, term.DefaultPalette())
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd != nil {
		t.Error("unexpected command for ignored key")
	}
	if next.(Model).Grid().Generation() != 0 {
		t.Error("ignored key must not advance the board")
	}
}

func TestModel_HistoryBounded(t *testing.T) {
	m := NewModel(blinker(t), time.Millisecond, term.DefaultPalette())
	var tm tea.Model = m
	for i := 0; i < historyCapacity+10; i++ {
		tm, _ = tm.Update(TickMsg(time.Now()))
	}
	if n := len(tm.(Model).history); n != historyCapacity {
		t.Errorf("expected %d history entries, got %d", historyCapacity, n)
	}
}

func TestModel_View(t *testing.T) {
	m := NewModel(blinker(t), time.Second, term.DefaultPalette())
	v := m.View()
	if !strings.Contains(v, "Generation") || !strings.Contains(v, "Population") {
		t.Errorf("status line missing:\n%s", v)
	}
	if strings.Count(v, term.Glyph) < 25 {
		t.Errorf("expected at least 25 glyphs, got %d", strings.Count(v, term.Glyph))
	}
}

func TestSparkline(t *testing.T) {
	if got := sparkline(nil, 4); got != "────" {
		t.Errorf("empty sparkline = %q", got)
	}
	got := sparkline([]int{1, 2, 3, 4, 5, 6}, 3)
	if n := strings.Count(got, "▁") + strings.Count(got, "█") + strings.Count(got, "▄"); n != 3 {
		t.Errorf("expected 3 bars from the last 3 values, got %q", got)
	}
}
