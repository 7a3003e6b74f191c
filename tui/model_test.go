package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"edna-quiz/quiz"
)

func testModel(t *testing.T, loc quiz.Locale, level quiz.Level) Model {
	t.Helper()
	c, err := quiz.Load(context.Background(), "../quiz/testdata/data.json", nil)
	if err != nil {
		t.Fatalf("loading dataset: %v", err)
	}
	return New(c, loc, level)
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestPadRight(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"abc", 5, "abc  "},
		{"abcdef", 3, "abcdef"},
		{"", 2, "  "},
		{"🐟", 4, "🐟  "},
	}
	for _, tt := range tests {
		if got := padRight(tt.in, tt.width); got != tt.want {
			t.Fatalf("padRight(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestFormatProgress(t *testing.T) {
	if got := formatProgress(0, 0); got != "" {
		t.Fatalf("expected empty progress for no rows, got %q", got)
	}
	got := formatProgress(1, 2)
	if !strings.HasSuffix(got, "1/2") {
		t.Fatalf("unexpected progress %q", got)
	}
	if !strings.Contains(got, "##########") {
		t.Fatalf("expected half bar, got %q", got)
	}
	if got := formatProgress(5, 2); !strings.HasSuffix(got, "2/2") {
		t.Fatalf("progress should clamp, got %q", got)
	}
}

func TestColorizeSequenceKeepsLetters(t *testing.T) {
	got := colorizeSequence("acGTN")
	if w := lipgloss.Width(got); w != 5 {
		t.Fatalf("expected 5 cells, got %d (%q)", w, got)
	}
	for _, r := range "ACGTN" {
		if !strings.ContainsRune(got, r) {
			t.Fatalf("missing %q in %q", r, got)
		}
	}
}

func TestOpenAndNavigate(t *testing.T) {
	m := testModel(t, quiz.English, quiz.LevelIcons)

	view := m.View()
	if !strings.Contains(view, "River") || !strings.Contains(view, "Pond") {
		t.Fatalf("water menu missing entries:\n%s", view)
	}

	m = press(t, m, keyDown, keyEnter)
	if m.screen != screenRows {
		t.Fatalf("expected rows screen")
	}
	if key, _ := m.session.Current(); key != "pond" {
		t.Fatalf("expected pond, got %q", key)
	}
	view = m.View()
	if !strings.Contains(view, "Results for: Pond") || !strings.Contains(view, "🐸") {
		t.Fatalf("unexpected rows view:\n%s", view)
	}

	m = press(t, m, keyEsc)
	if m.screen != screenWater {
		t.Fatalf("esc should return to the water menu")
	}
}

func TestCycleSpeciesAndCheck(t *testing.T) {
	m := testModel(t, quiz.English, quiz.LevelIcons)
	m = press(t, m, keyDown, keyEnter)

	// en species: Beaver, Crayfish, Frog, Mallard, Otter, Pike.
	m = press(t, m, keyRight, keyRight, keyRight)
	if got := m.session.Selection(0); got != "Frog" {
		t.Fatalf("expected Frog, got %q", got)
	}
	m = press(t, m, keyDown, keyLeft, keyLeft)
	if got := m.session.Selection(1); got != "Otter" {
		t.Fatalf("expected Otter, got %q", got)
	}
	m = press(t, m, keyRight)
	if got := m.session.Selection(1); got != "Pike" {
		t.Fatalf("expected Pike, got %q", got)
	}
	m = press(t, m, keyRight)
	if got := m.session.Selection(1); got != "" {
		t.Fatalf("cycling past the last species should clear, got %q", got)
	}
	m = press(t, m, keyLeft)

	m = press(t, m, runes("c"))
	if got := m.session.Status(); got != "Correct: 2 / 2" {
		t.Fatalf("unexpected status %q", got)
	}
	if !strings.Contains(m.View(), "Correct: 2 / 2") {
		t.Fatalf("status missing from view")
	}

	m = press(t, m, runes("r"))
	if m.session.Status() != "" || m.session.Selection(0) != "" {
		t.Fatalf("reset should clear status and picks")
	}
	if strings.Contains(m.View(), "— choose species —") {
		t.Fatalf("reset rows should show no placeholder")
	}
}

func TestSequencesLevelView(t *testing.T) {
	m := testModel(t, quiz.Czech, quiz.LevelSequences)
	m = press(t, m, keyEnter)

	view := m.View()
	if !strings.Contains(view, "Výsledky pro: Řeka") {
		t.Fatalf("unexpected title:\n%s", view)
	}
	if !strings.Contains(view, "— vyberte druh —") {
		t.Fatalf("placeholder missing:\n%s", view)
	}
	if strings.Contains(view, "🐟") {
		t.Fatalf("sequences level should not show icons:\n%s", view)
	}
}

func TestQuit(t *testing.T) {
	m := testModel(t, quiz.English, quiz.LevelIcons)
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)
		if cmd == nil {
			t.Fatalf("expected quit command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg")
		}
	}
}
