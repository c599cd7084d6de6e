package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/lifeterm/internal/life"
	"github.com/san-kum/lifeterm/internal/term"
)

const historyCapacity = 120

type TickMsg time.Time

// Model shows a board in a bubbletea program and advances it on every tick.
type Model struct {
	grid     *life.Grid
	interval time.Duration
	alive    string
	dead     string
	history  []int
	quitting bool
}

// NewModel pre-renders one glyph per cell state from palette.
func NewModel(g *life.Grid, interval time.Duration, palette term.Palette) Model {
	bg := lipgloss.Color(palette.Background)
	return Model{
		grid:     g,
		interval: interval,
		alive:    lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Alive)).Background(bg).Render(term.Glyph),
		dead:     lipgloss.NewStyle().Foreground(bg).Background(bg).Render(term.Glyph),
		history:  []int{g.Population()},
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// Update advances the board on TickMsg. q and ctrl+c quit; other keys are ignored.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	case TickMsg:
		if m.quitting {
			return m, nil
		}
		m.grid.Tick()
		m.history = append(m.history, m.grid.Population())
		if len(m.history) > historyCapacity {
			m.history = m.history[len(m.history)-historyCapacity:]
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) Grid() *life.Grid { return m.grid }

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var board strings.Builder
	for row := 0; row < m.grid.Height(); row++ {
		for col := 0; col < m.grid.Width(); col++ {
			if m.grid.Cell(row, col) == life.Alive {
				board.WriteString(m.alive)
			} else {
				board.WriteString(m.dead)
			}
		}
		if row < m.grid.Height()-1 {
			board.WriteByte('\n')
		}
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render("LIFE") + "\n\n")
	s.WriteString(labelStyle.Render("Generation") + valueStyle.Render(fmt.Sprintf("%d", m.grid.Generation())) + "\n")
	s.WriteString(labelStyle.Render("Population") + valueStyle.Render(fmt.Sprintf("%d", m.grid.Population())) + "\n")
	s.WriteString(labelStyle.Render("Board") + valueStyle.Render(fmt.Sprintf("%dx%d", m.grid.Width(), m.grid.Height())) + "\n\n")
	s.WriteString(sparkline(m.history, 30) + "\n\n")
	s.WriteString(helpStyle.Render("q: quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, board.String(), statsStyle.Render(s.String()))
}
