package quiz

import (
	"slices"

	"golang.org/x/text/collate"
)

// BuildSpeciesList collects the answer of every entry of every water type
// and of the extras bucket, deduplicated and sorted with the locale's
// collation.
func BuildSpeciesList(ds *Dataset, loc Locale) []string {
	seen := make(map[string]struct{})
	list := make([]string, 0)
	collect := func(codes []CodeEntry) {
		for _, e := range codes {
			name := e.SpeciesFor(loc)
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			list = append(list, name)
		}
	}

	for _, key := range ds.Keys {
		collect(ds.Water[key].Codes)
	}
	collect(ds.Extras)

	c := collate.New(loc.Tag())
	slices.SortStableFunc(list, func(a, b string) int {
		return c.CompareString(a, b)
	})
	return list
}

// Catalog is a loaded dataset together with its species index, built once
// per locale when the catalog is created and read-only afterwards.
type Catalog struct {
	Data    *Dataset
	species map[Locale][]string
}

// NewCatalog indexes ds for every supported locale.
func NewCatalog(ds *Dataset) *Catalog {
	c := &Catalog{
		Data:    ds,
		species: make(map[Locale][]string, len(Locales)),
	}
	for _, loc := range Locales {
		c.species[loc] = BuildSpeciesList(ds, loc)
	}
	return c
}

// Species returns the dropdown options for loc. The slice is shared and
// must not be modified.
func (c *Catalog) Species(loc Locale) []string {
	return c.species[loc]
}

// WaterKeys returns the button keys in dataset order.
func (c *Catalog) WaterKeys() []string {
	return c.Data.Keys
}
