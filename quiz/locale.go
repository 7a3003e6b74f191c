package quiz

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale is the active display language.
type Locale string

const (
	English Locale = "en"
	Czech   Locale = "cz"
)

// Locales lists every supported locale.
var Locales = []Locale{English, Czech}

// DetectLocale derives the locale from the page lang attribute first,
// then from the URL path, defaulting to English.
func DetectLocale(htmlLang, path string) Locale {
	htmlLang = strings.ToLower(strings.TrimSpace(htmlLang))
	if strings.HasPrefix(htmlLang, "cs") || strings.HasPrefix(htmlLang, "cz") {
		return Czech
	}
	if strings.HasPrefix(htmlLang, "en") {
		return English
	}
	path = strings.ToLower(path)
	if strings.Contains(path, "-cz") {
		return Czech
	}
	if strings.Contains(path, "-en") {
		return English
	}
	return English
}

// ParseLocale accepts "en", "cz" or "cs" (any case). Anything else is
// reported as not ok.
func ParseLocale(s string) (Locale, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en":
		return English, true
	case "cz", "cs":
		return Czech, true
	}
	return English, false
}

// Tag is the BCP 47 tag used for collation.
func (l Locale) Tag() language.Tag {
	if l == Czech {
		return language.Czech
	}
	return language.English
}

const (
	msgResultsFor  = "resultsFor"
	msgPlaceholder = "placeholder"
	msgSummary     = "summary"
	msgLoadFailed  = "loadFailed"
	msgCorrectMark = "correctMark"
	msgWrongMark   = "wrongMark"
	msgCorrectAria = "correctAria"
	msgWrongAria   = "wrongAria"
	msgCheck       = "check"
	msgReset       = "reset"
	msgHelpWater   = "helpWater"
	msgHelpRows    = "helpRows"
	msgChooseWater = "chooseWater"
)

var messages = map[Locale]map[string]string{
	English: {
		msgResultsFor:  "Results for: %s",
		msgPlaceholder: "— choose species —",
		msgSummary:     "Correct: %d / %d",
		msgLoadFailed:  "Failed to load data. Please check data.json.",
		msgCorrectMark: "✔️",
		msgWrongMark:   "❌",
		msgCorrectAria: "correct",
		msgWrongAria:   "wrong",
		msgCheck:       "Check",
		msgReset:       "Reset",
		msgChooseWater: "Choose a water type",
		msgHelpWater:   "↑/↓ select · Enter open · q quit",
		msgHelpRows:    "↑/↓ row · ←/→ species · c check · r reset · esc back · q quit",
	},
	Czech: {
		msgResultsFor:  "Výsledky pro: %s",
		msgPlaceholder: "— vyberte druh —",
		msgSummary:     "Správně: %d / %d",
		msgLoadFailed:  "Nepodařilo se načíst data. Zkontrolujte prosím soubor data.json.",
		msgCorrectMark: "✔️",
		msgWrongMark:   "❌",
		msgCorrectAria: "correct",
		msgWrongAria:   "wrong",
		msgCheck:       "Zkontrolovat",
		msgReset:       "Vymazat",
		msgChooseWater: "Vyberte typ vody",
		msgHelpWater:   "↑/↓ výběr · Enter otevřít · q konec",
		msgHelpRows:    "↑/↓ řádek · ←/→ druh · c kontrola · r vymazat · esc zpět · q konec",
	},
}

func (l Locale) text(key string) string {
	if m, ok := messages[l]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := messages[English][key]; ok {
		return v
	}
	return key
}

// ResultsTitle is the heading shown above the rows of an open water type.
func (l Locale) ResultsTitle(title string) string {
	return fmt.Sprintf(l.text(msgResultsFor), title)
}

// Placeholder is the disabled first option of every species dropdown.
func (l Locale) Placeholder() string { return l.text(msgPlaceholder) }

// Summary formats the "Correct: X / Y" line.
func (l Locale) Summary(correct, total int) string {
	return fmt.Sprintf(l.text(msgSummary), correct, total)
}

// LoadFailed is shown in the title region when the dataset cannot be loaded.
func (l Locale) LoadFailed() string { return l.text(msgLoadFailed) }

func (l Locale) CheckLabel() string       { return l.text(msgCheck) }
func (l Locale) ResetLabel() string       { return l.text(msgReset) }
func (l Locale) ChooseWaterLabel() string { return l.text(msgChooseWater) }
func (l Locale) HelpWater() string        { return l.text(msgHelpWater) }
func (l Locale) HelpRows() string         { return l.text(msgHelpRows) }

// MarkText returns the visible indicator for a marker.
func (l Locale) MarkText(m Mark) string {
	switch m {
	case MarkCorrect:
		return l.text(msgCorrectMark)
	case MarkWrong:
		return l.text(msgWrongMark)
	}
	return ""
}

// MarkAria returns the aria-label for a marker.
func (l Locale) MarkAria(m Mark) string {
	switch m {
	case MarkCorrect:
		return l.text(msgCorrectAria)
	case MarkWrong:
		return l.text(msgWrongAria)
	}
	return ""
}
