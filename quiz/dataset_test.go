package quiz

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func loadTestdata(t *testing.T) *Dataset {
	t.Helper()
	data, err := os.ReadFile("testdata/data.json")
	require.NoError(t, err)
	ds, err := Parse(data)
	require.NoError(t, err)
	return ds
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		name     string
		entry    string
		wantSeq  string
		wantIcon string
	}{
		{"current shape", `{"sequence":"ACGT","icon":"🐟"}`, "ACGT", "🐟"},
		{"empty current fields", `{"sequence":"","icon":""}`, "", ""},
		{"only icon present", `{"icon":"🐸","code":"🧬AAAA | 🐟"}`, "", "🐸"},
		{"only sequence present", `{"sequence":"GATTACA"}`, "GATTACA", ""},
		{"null sequence still counts as present", `{"sequence":null,"code":"AC|🐟"}`, "", ""},
		{"legacy with marker and spaces", `{"code":"🧬ACGT | 🐟"}`, "ACGT", "🐟"},
		{"legacy without marker or spaces", `{"code":"ACGT|🐟"}`, "ACGT", "🐟"},
		{"legacy marker followed by space", `{"code":"  🧬  ACGT |🐟  "}`, "ACGT", "🐟"},
		{"legacy without icon", `{"code":"🧬ACGT"}`, "ACGT", ""},
		{"legacy splits once", `{"code":"AC|🐟|x"}`, "AC", "🐟|x"},
		{"empty legacy code", `{"code":""}`, "", ""},
		{"neither shape", `{"species":{"en":"Pike"}}`, "", ""},
		{"not an object", `42`, "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seq, icon := Normalize(gjson.Parse(tc.entry))
			assert.Equal(t, tc.wantSeq, seq)
			assert.Equal(t, tc.wantIcon, icon)
		})
	}
}

func TestParseKeepsDocumentOrderAndSeparatesExtras(t *testing.T) {
	ds := loadTestdata(t)

	assert.Equal(t, []string{"river", "pond"}, ds.Keys)
	require.Len(t, ds.Extras, 2)
	assert.True(t, ds.HasExtras())

	river, ok := ds.WaterType("river")
	require.True(t, ok)
	assert.Equal(t, "Řeka", river.TitleFor(Czech))
	require.Len(t, river.Codes, 3)

	legacy := river.Codes[2]
	assert.Equal(t, "TTAGCCAT", legacy.Sequence)
	assert.Equal(t, "🦆", legacy.Icon)
	assert.Equal(t, "Kachna divoká", legacy.SpeciesFor(Czech))

	_, ok = ds.WaterType(ExtrasKey)
	assert.False(t, ok, "extras must never be a water type")
}

func TestParseTolerance(t *testing.T) {
	t.Run("null gives an empty dataset", func(t *testing.T) {
		ds, err := Parse([]byte(`null`))
		require.NoError(t, err)
		assert.Empty(t, ds.Keys)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := Parse([]byte(`{"river":`))
		assert.ErrorIs(t, err, ErrInvalidJSON)
	})

	t.Run("non-object root", func(t *testing.T) {
		_, err := Parse([]byte(`[1,2,3]`))
		assert.ErrorIs(t, err, ErrNotObject)
	})

	t.Run("missing title and codes degrade", func(t *testing.T) {
		ds, err := Parse([]byte(`{"lake":{}}`))
		require.NoError(t, err)
		lake, ok := ds.WaterType("lake")
		require.True(t, ok)
		assert.Equal(t, "lake", lake.TitleFor(English))
		assert.Empty(t, lake.Codes)
	})

	t.Run("only exact en and cz keys are read", func(t *testing.T) {
		ds, err := Parse([]byte(`{"lake":{"title":{"cs":"Jezero","EN":"Lake","Cz":"Jezírko"},` +
			`"codes":[{"icon":"🐟","species":{"cs":"Štika","en":"Pike"}}]}}`))
		require.NoError(t, err)
		lake := ds.Water["lake"]
		assert.Empty(t, lake.Title)
		assert.Equal(t, "lake", lake.TitleFor(Czech))
		require.Len(t, lake.Codes, 1)
		assert.Equal(t, "Pike", lake.Codes[0].SpeciesFor(English))
		assert.Empty(t, lake.Codes[0].SpeciesFor(Czech))
	})
}
