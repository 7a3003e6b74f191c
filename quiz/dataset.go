package quiz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ExtrasKey is the reserved dataset key holding species that belong to no
// water type.
const ExtrasKey = "extras"

const dnaMarker = "🧬"

var (
	ErrInvalidJSON = errors.New("invalid dataset JSON")
	ErrNotObject   = errors.New("dataset must be a JSON object")
)

// CodeEntry is one quiz item, normalized from either entry shape.
type CodeEntry struct {
	Sequence string            `json:"sequence"`
	Icon     string            `json:"icon"`
	Species  map[Locale]string `json:"species"`
}

// SpeciesFor returns the answer for the locale, or "" when absent.
func (e CodeEntry) SpeciesFor(loc Locale) string {
	return e.Species[loc]
}

// WaterType is a named group of entries shown as one button.
type WaterType struct {
	Key   string            `json:"key"`
	Title map[Locale]string `json:"title"`
	Codes []CodeEntry       `json:"codes"`
}

// TitleFor returns the localized title, falling back to the key.
func (w WaterType) TitleFor(loc Locale) string {
	if t := w.Title[loc]; t != "" {
		return t
	}
	return w.Key
}

// Dataset is the parsed data file.
type Dataset struct {
	// Keys holds water-type keys in document order, extras excluded.
	Keys   []string
	Water  map[string]WaterType
	Extras []CodeEntry
	Raw    []byte
}

// HasExtras reports whether the file carried an extras bucket.
func (d *Dataset) HasExtras() bool { return len(d.Extras) > 0 }

// WaterType looks up a water type by key. Extras is never a water type.
func (d *Dataset) WaterType(key string) (WaterType, bool) {
	if key == ExtrasKey {
		return WaterType{}, false
	}
	w, ok := d.Water[key]
	return w, ok
}

// Parse decodes the data file. Keys keep their order in the document;
// malformed entries degrade to empty values rather than failing.
func Parse(data []byte) (*Dataset, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	ds := &Dataset{
		Water: make(map[string]WaterType),
		Raw:   data,
	}
	root := gjson.ParseBytes(data)
	if root.Type == gjson.Null {
		return ds, nil
	}
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: got %s", ErrNotObject, root.Type)
	}

	root.ForEach(func(k, v gjson.Result) bool {
		key := k.String()
		if key == ExtrasKey {
			ds.Extras = parseCodes(v.Get("codes"))
			return true
		}
		if _, seen := ds.Water[key]; !seen {
			ds.Keys = append(ds.Keys, key)
		}
		ds.Water[key] = WaterType{
			Key:   key,
			Title: parseLocalized(v.Get("title")),
			Codes: parseCodes(v.Get("codes")),
		}
		return true
	})
	return ds, nil
}

func parseCodes(v gjson.Result) []CodeEntry {
	if !v.IsArray() {
		return nil
	}
	var codes []CodeEntry
	v.ForEach(func(_, e gjson.Result) bool {
		seq, icon := Normalize(e)
		codes = append(codes, CodeEntry{
			Sequence: seq,
			Icon:     icon,
			Species:  parseLocalized(e.Get("species")),
		})
		return true
	})
	return codes
}

// parseLocalized reads the "en" and "cz" keys of a localized object.
// Keys are matched exactly; anything else is ignored.
func parseLocalized(v gjson.Result) map[Locale]string {
	out := make(map[Locale]string)
	if !v.IsObject() {
		return out
	}
	for _, loc := range Locales {
		if s := v.Get(string(loc)); s.Exists() {
			out[loc] = stringValue(s)
		}
	}
	return out
}

// Normalize extracts the sequence and icon from a raw entry of either
// shape: {sequence, icon, species} or the legacy {code: "🧬ACGT | 🐟"}.
func Normalize(entry gjson.Result) (sequence, icon string) {
	seq, icn := entry.Get("sequence"), entry.Get("icon")
	if seq.Exists() || icn.Exists() {
		return stringValue(seq), stringValue(icn)
	}
	code := stringValue(entry.Get("code"))
	if code == "" {
		return "", ""
	}
	return splitLegacyCode(code)
}

func splitLegacyCode(code string) (sequence, icon string) {
	cleaned := strings.TrimSpace(code)
	if rest, ok := strings.CutPrefix(cleaned, dnaMarker); ok {
		cleaned = strings.TrimLeft(rest, " \t\r\n")
	}
	seq, icn, _ := strings.Cut(cleaned, "|")
	return strings.TrimSpace(seq), strings.TrimSpace(icn)
}

// stringValue mirrors a falsy-to-empty read: null, false and missing give "".
func stringValue(v gjson.Result) string {
	switch v.Type {
	case gjson.Null, gjson.False:
		return ""
	case gjson.Number:
		if v.Num == 0 {
			return ""
		}
		return v.Raw
	}
	if v.IsObject() || v.IsArray() {
		return ""
	}
	return v.String()
}
