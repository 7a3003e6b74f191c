package quiz

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrUnknownWaterType = errors.New("unknown water type")
	ErrNoWaterType      = errors.New("no water type open")
	ErrRowOutOfRange    = errors.New("row index out of range")
)

// Mark is the per-row result marker.
type Mark int

const (
	MarkNone Mark = iota
	MarkCorrect
	MarkWrong
)

// Row is the render view of one entry of the open water type.
type Row struct {
	Index    int // 0-based
	Display  Cell
	Selected string
	Mark     Mark
}

// Label is the 1-based row label, e.g. "3. ".
func (r Row) Label() string { return fmt.Sprintf("%d. ", r.Index+1) }

// Report is the outcome of a check.
type Report struct {
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
	Marks   []Mark `json:"marks"`
	Summary string `json:"summary"`
}

// Session holds the open water type and the per-row state bound to it.
type Session struct {
	catalog *Catalog
	locale  Locale
	level   Level

	currentKey string
	open       bool
	codes      []CodeEntry
	picks      []string
	marks      []Mark
	status     string
	// cleared is set by Reset: no option selected, placeholder included.
	cleared bool
	mu      sync.Mutex
}

func NewSession(c *Catalog, loc Locale, level Level) *Session {
	return &Session{
		catalog: c,
		locale:  loc,
		level:   level,
	}
}

func (s *Session) Locale() Locale { return s.locale }
func (s *Session) Level() Level   { return s.level }

// Species returns the dropdown options for the session locale.
func (s *Session) Species() []string { return s.catalog.Species(s.locale) }

// Open makes key the current water type. All row state is reset.
func (s *Session) Open(key string) error {
	w, ok := s.catalog.Data.WaterType(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownWaterType, key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentKey = key
	s.open = true
	s.codes = append([]CodeEntry(nil), w.Codes...)
	s.picks = make([]string, len(s.codes))
	s.marks = make([]Mark, len(s.codes))
	s.status = ""
	s.cleared = false
	return nil
}

// Current returns the open water type key.
func (s *Session) Current() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentKey, s.open
}

// Title is the localized results heading for the open water type.
func (s *Session) Title() string {
	s.mu.Lock()
	key := s.currentKey
	s.mu.Unlock()
	w, _ := s.catalog.Data.WaterType(key)
	return s.locale.ResultsTitle(w.TitleFor(s.locale))
}

// Codes returns a copy of the open water type's entries.
func (s *Session) Codes() []CodeEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CodeEntry, len(s.codes))
	copy(out, s.codes)
	return out
}

// Len is the number of rows.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.codes)
}

// Select records the dropdown value of row i. An empty species means no
// option chosen.
func (s *Session) Select(i int, species string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return ErrNoWaterType
	}
	if i < 0 || i >= len(s.picks) {
		return fmt.Errorf("%w: %d", ErrRowOutOfRange, i)
	}
	s.picks[i] = species
	return nil
}

// Selection returns the dropdown value of row i.
func (s *Session) Selection(i int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.picks) {
		return ""
	}
	return s.picks[i]
}

// Cleared reports whether the last action was a reset, i.e. no option is
// selected in any dropdown, not even the placeholder.
func (s *Session) Cleared() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cleared
}

// Status is the summary line of the last check, empty after a reset.
func (s *Session) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Check compares every selection with the entry's answer for the session
// locale. Equality is exact: no trimming, no case folding.
func (s *Session) Check() Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	rep := Report{
		Total: len(s.codes),
		Marks: make([]Mark, len(s.codes)),
	}
	for i, e := range s.codes {
		if s.picks[i] == e.SpeciesFor(s.locale) {
			rep.Marks[i] = MarkCorrect
			rep.Correct++
		} else {
			rep.Marks[i] = MarkWrong
		}
	}
	copy(s.marks, rep.Marks)
	rep.Summary = s.locale.Summary(rep.Correct, rep.Total)
	s.status = rep.Summary
	return rep
}

// Reset clears every selection, marker and the status line.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.picks {
		s.picks[i] = ""
		s.marks[i] = MarkNone
	}
	s.status = ""
	s.cleared = true
}

// Progress returns how many rows have a species chosen.
func (s *Session) Progress() (chosen, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.picks {
		if p != "" {
			chosen++
		}
	}
	return chosen, len(s.picks)
}

// Rows returns the render view of the open water type.
func (s *Session) Rows() []Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]Row, len(s.codes))
	for i, e := range s.codes {
		rows[i] = Row{
			Index:    i,
			Display:  DisplayFor(e, s.level),
			Selected: s.picks[i],
			Mark:     s.marks[i],
		}
	}
	return rows
}

func (m Mark) String() string {
	switch m {
	case MarkCorrect:
		return "correct"
	case MarkWrong:
		return "wrong"
	}
	return "none"
}

func (m Mark) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mark) UnmarshalText(text []byte) error {
	switch string(text) {
	case "correct":
		*m = MarkCorrect
	case "wrong":
		*m = MarkWrong
	case "none", "":
		*m = MarkNone
	default:
		return fmt.Errorf("unknown mark %q", text)
	}
	return nil
}
