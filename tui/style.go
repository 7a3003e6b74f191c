package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"edna-quiz/quiz"
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleCursor   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	styleSubtle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleCorrect  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleWrong    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleStatus   = lipgloss.NewStyle().Bold(true)
	styleError    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1)
	styleBarGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)

	baseStyles = map[byte]lipgloss.Style{
		'A': lipgloss.NewStyle().Foreground(lipgloss.Color("#d32f2f")).Bold(true),
		'C': lipgloss.NewStyle().Foreground(lipgloss.Color("#1976d2")).Bold(true),
		'G': lipgloss.NewStyle().Foreground(lipgloss.Color("#388e3c")).Bold(true),
		'T': lipgloss.NewStyle().Foreground(lipgloss.Color("#f57c00")).Bold(true),
	}
)

// colorizeSequence paints each base in its color; other runes pass through.
func colorizeSequence(seq string) string {
	var b strings.Builder
	for _, r := range seq {
		if base := quiz.Base(r); base != 0 {
			b.WriteString(baseStyles[base].Render(string(base)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func renderCell(c quiz.Cell) string {
	if c.IsSequence() {
		return colorizeSequence(c.Sequence)
	}
	return c.Icon
}

func renderMark(loc quiz.Locale, m quiz.Mark) string {
	switch m {
	case quiz.MarkCorrect:
		return styleCorrect.Render(loc.MarkText(m))
	case quiz.MarkWrong:
		return styleWrong.Render(loc.MarkText(m))
	}
	return ""
}

// formatProgress draws a bar of chosen rows.
func formatProgress(chosen, total int) string {
	if total <= 0 {
		return ""
	}
	if chosen < 0 {
		chosen = 0
	}
	if chosen > total {
		chosen = total
	}
	barWidth := 20
	filled := chosen * barWidth / total
	bar := "[" + styleBarGreen.Render(strings.Repeat("#", filled)) + strings.Repeat("-", barWidth-filled) + "]"
	return fmt.Sprintf("%s %d/%d", bar, chosen, total)
}

// padRight pads s with spaces up to width terminal cells.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
