// Package tui is the terminal front end of the quiz.
package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"edna-quiz/quiz"
)

type screen int

const (
	screenWater screen = iota
	screenRows
)

// Model is the bubbletea model: a water-type menu, then the rows of the
// open water type.
type Model struct {
	catalog *quiz.Catalog
	session *quiz.Session
	keys    []string

	screen      screen
	waterCursor int
	rowCursor   int
	err         error
}

// New builds the model for one locale and display level.
func New(c *quiz.Catalog, loc quiz.Locale, level quiz.Level) Model {
	return Model{
		catalog: c,
		session: quiz.NewSession(c, loc, level),
		keys:    c.WaterKeys(),
	}
}

// Run starts the terminal quiz and blocks until the user quits.
func Run(c *quiz.Catalog, loc quiz.Locale, level quiz.Level) error {
	p := tea.NewProgram(New(c, loc, level), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
		if m.screen == screenWater {
			return m.updateWater(msg)
		}
		return m.updateRows(msg)
	}
	return m, nil
}

func (m Model) updateWater(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.waterCursor > 0 {
			m.waterCursor--
		}
	case "down", "j":
		if m.waterCursor < len(m.keys)-1 {
			m.waterCursor++
		}
	case "enter":
		if len(m.keys) == 0 {
			return m, nil
		}
		if err := m.session.Open(m.keys[m.waterCursor]); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.rowCursor = 0
		m.screen = screenRows
	}
	return m, nil
}

func (m Model) updateRows(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.rowCursor > 0 {
			m.rowCursor--
		}
	case "down", "j":
		if m.rowCursor < m.session.Len()-1 {
			m.rowCursor++
		}
	case "right", "l":
		m.cycleSpecies(1)
	case "left", "h":
		m.cycleSpecies(-1)
	case "c":
		m.session.Check()
	case "r":
		m.session.Reset()
	case "esc":
		m.screen = screenWater
	}
	return m, nil
}

// cycleSpecies moves the current row's pick through the species list.
// The empty pick sits between the last and the first species.
func (m Model) cycleSpecies(step int) {
	species := m.session.Species()
	if len(species) == 0 || m.session.Len() == 0 {
		return
	}
	pos := slices.Index(species, m.session.Selection(m.rowCursor))
	n := len(species) + 1
	if pos < 0 {
		pos = n - 1
	}
	pos = ((pos+step)%n + n) % n
	pick := ""
	if pos < len(species) {
		pick = species[pos]
	}
	_ = m.session.Select(m.rowCursor, pick)
}

func (m Model) View() string {
	var b strings.Builder
	loc := m.session.Locale()

	if m.screen == screenWater {
		b.WriteString(styleTitle.Render(loc.ChooseWaterLabel()))
		b.WriteString("\n\n")
		for i, key := range m.keys {
			w, _ := m.catalog.Data.WaterType(key)
			cursor := "  "
			line := w.TitleFor(loc)
			if i == m.waterCursor {
				cursor = styleCursor.Render("> ")
				line = styleCursor.Render(line)
			}
			b.WriteString(cursor + line + "\n")
		}
		if m.err != nil {
			b.WriteString(styleError.Render(m.err.Error()))
			b.WriteString("\n")
		}
		b.WriteString("\n" + styleSubtle.Render(loc.HelpWater()) + "\n")
		return b.String()
	}

	b.WriteString(styleTitle.Render(m.session.Title()))
	b.WriteString("\n\n")

	rows := m.session.Rows()
	cellWidth := 0
	for _, r := range rows {
		if w := lipgloss.Width(renderCell(r.Display)); w > cellWidth {
			cellWidth = w
		}
	}
	cleared := m.session.Cleared()
	for i, r := range rows {
		cursor := "  "
		if i == m.rowCursor {
			cursor = styleCursor.Render("> ")
		}
		pick := r.Selected
		if pick == "" {
			pick = loc.Placeholder()
			if cleared {
				pick = ""
			}
			pick = styleSubtle.Render(pick)
		}
		line := cursor + r.Label() + padRight(renderCell(r.Display), cellWidth+2) + "‹ " + pick + " ›"
		if mark := renderMark(loc, r.Mark); mark != "" {
			line += "  " + mark
		}
		b.WriteString(line + "\n")
	}

	chosen, total := m.session.Progress()
	b.WriteString("\n" + formatProgress(chosen, total) + "\n")
	if status := m.session.Status(); status != "" {
		b.WriteString(styleStatus.Render(status) + "\n")
	}
	b.WriteString("\n" + styleSubtle.Render(loc.HelpRows()) + "\n")
	return b.String()
}
