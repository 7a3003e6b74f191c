package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLocale(t *testing.T) {
	cases := []struct {
		lang, path string
		want       Locale
	}{
		{"cs-CZ", "/", Czech},
		{"cz", "/", Czech},
		{"en-GB", "/analyzer-cz", English},
		{"", "/analyzer-cz.html", Czech},
		{"", "/ANALYZER-CZ", Czech},
		{"", "/analyzer-en", English},
		{"de", "/", English},
		{"", "", English},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DetectLocale(tc.lang, tc.path), "lang=%q path=%q", tc.lang, tc.path)
	}
}

func TestLocalizedStrings(t *testing.T) {
	assert.Equal(t, "Results for: River", English.ResultsTitle("River"))
	assert.Equal(t, "Výsledky pro: Řeka", Czech.ResultsTitle("Řeka"))
	assert.Equal(t, "— choose species —", English.Placeholder())
	assert.Equal(t, "— vyberte druh —", Czech.Placeholder())
	assert.Equal(t, "Correct: 2 / 2", English.Summary(2, 2))
	assert.Equal(t, "Správně: 1 / 3", Czech.Summary(1, 3))
	assert.Equal(t, "Nepodařilo se načíst data. Zkontrolujte prosím soubor data.json.", Czech.LoadFailed())
	assert.Equal(t, "✔️", English.MarkText(MarkCorrect))
	assert.Equal(t, "wrong", Czech.MarkAria(MarkWrong))
	assert.Empty(t, English.MarkText(MarkNone))
}
