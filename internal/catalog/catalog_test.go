package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielokoye/bloodlens/internal/report"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	require.NotNil(t, c)
	assert.Greater(t, c.Len(), 80)

	for _, e := range c.Entries() {
		assert.NotEmpty(t, e.ID)
		assert.NotEmpty(t, e.Synonyms, "entry %s", e.ID)
		assert.NotEmpty(t, e.DisplayName(), "entry %s", e.ID)
	}
}

func TestLookup(t *testing.T) {
	c := Default()

	e, ok := c.Lookup("HGB")
	require.True(t, ok)
	assert.Equal(t, "Hemoglobin", e.DisplayName())
	assert.Equal(t, "13.5-17.5", e.RangeString())
	assert.Equal(t, "g/dL", e.DefaultUnit())

	_, ok = c.Lookup("NOPE")
	assert.False(t, ok)
}

func TestEntryWithoutRange(t *testing.T) {
	c := Default()
	e, ok := c.Lookup("RDW")
	require.True(t, ok)
	assert.Equal(t, report.RangeUnknown, e.RangeString())
	assert.Equal(t, "", e.DefaultUnit())
}

func TestNewRejectsInvalidEntries(t *testing.T) {
	_, err := New([]Entry{{ID: "", Synonyms: []string{"x"}}})
	assert.Error(t, err)

	_, err = New([]Entry{{ID: "X"}})
	assert.Error(t, err)
}

func TestMergeOverlay(t *testing.T) {
	c := Default()
	before := c.Len()

	merged, err := c.Merge([]Entry{
		{ID: "LP-A", Synonyms: []string{"lipoprotein(a)", "lp(a)"}, Range: rng(0, 30, "mg/dL")},
		{ID: "HGB", Synonyms: []string{"hemoglobin"}, Range: rng(12.0, 16.0, "g/dL")},
	})
	require.NoError(t, err)
	assert.Equal(t, before+1, merged.Len())

	e, ok := merged.Lookup("HGB")
	require.True(t, ok)
	assert.Equal(t, "12-16", e.RangeString())

	_, ok = merged.Lookup("LP-A")
	assert.True(t, ok)

	// The original catalog is untouched.
	e, _ = c.Lookup("HGB")
	assert.Equal(t, "13.5-17.5", e.RangeString())
}

func TestCompile(t *testing.T) {
	c := Default()
	sets := Compile(c)
	require.Len(t, sets, c.Len())
	for _, ps := range sets {
		require.NotNil(t, ps.Primary, "entry %s", ps.ID)
		require.NotNil(t, ps.Secondary, "entry %s", ps.ID)
	}
}

func TestPrimaryPatternCaptures(t *testing.T) {
	c, err := New([]Entry{{ID: "HGB", Synonyms: []string{"hemoglobin", "hgb"}, Range: rng(13.5, 17.5, "g/dL")}})
	require.NoError(t, err)
	ps := Compile(c)[0]

	m := ps.Primary.FindStringSubmatch("Hemoglobin: 14.5 g/dL (13.5-17.5)")
	require.NotNil(t, m)
	assert.Equal(t, "14.5", m[ps.Primary.SubexpIndex("value")])
	assert.Equal(t, "g/dL", m[ps.Primary.SubexpIndex("units")])
	assert.Equal(t, "13.5-17.5", m[ps.Primary.SubexpIndex("range")])

	// Case-insensitive, separator optional.
	assert.NotNil(t, ps.Primary.FindStringSubmatch("HGB 12.1"))
	assert.Nil(t, ps.Primary.FindStringSubmatch("ferritin 30"))
}

func TestPatternQuotesMetaCharacters(t *testing.T) {
	c, err := New([]Entry{{ID: "LP-A", Synonyms: []string{"lp(a)"}}})
	require.NoError(t, err)
	ps := Compile(c)[0]

	m := ps.Secondary.FindStringSubmatch("Lp(a): 18")
	require.NotNil(t, m)
	assert.Equal(t, "18", m[ps.Secondary.SubexpIndex("value")])
}
