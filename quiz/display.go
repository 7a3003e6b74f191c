package quiz

import "strings"

// Level selects how entries are shown.
type Level string

const (
	LevelIcons     Level = "icons"
	LevelSequences Level = "sequences"
)

// ParseLevel maps the level query parameter; anything but "sequences"
// selects icons.
func ParseLevel(s string) Level {
	if s == string(LevelSequences) {
		return LevelSequences
	}
	return LevelIcons
}

// Cell is the content of a row's display cell.
type Cell struct {
	// Sequence is set when the cell shows a colorized sequence.
	Sequence string
	// Icon is set otherwise; it may be empty for malformed entries.
	Icon string
}

// IsSequence reports whether the cell should be colorized.
func (c Cell) IsSequence() bool { return c.Sequence != "" }

// DisplayFor applies the display policy: sequences mode shows a non-empty
// sequence, every other case falls back to the icon.
func DisplayFor(e CodeEntry, level Level) Cell {
	if level == LevelSequences && e.Sequence != "" {
		return Cell{Sequence: e.Sequence}
	}
	return Cell{Icon: e.Icon}
}

// Base identifies a nucleotide for coloring, or 0 for any other rune.
func Base(r rune) byte {
	switch r {
	case 'A', 'a':
		return 'A'
	case 'C', 'c':
		return 'C'
	case 'G', 'g':
		return 'G'
	case 'T', 't':
		return 'T'
	}
	return 0
}

// BaseClass is the CSS class suffix for a base, e.g. "base-a".
func BaseClass(b byte) string {
	return "base-" + strings.ToLower(string(b))
}
