// Package catalog holds the reference data driving specialized extraction:
// canonical test identifiers, their synonym lists, and normal ranges with
// units. Adding a test is a data change here (or in a YAML overlay), never a
// code change.
package catalog

import (
	"fmt"
	"strings"

	"github.com/danielokoye/bloodlens/internal/common"
	"github.com/danielokoye/bloodlens/internal/report"
)

// NormalRange is the normal numeric band and default unit for a test.
type NormalRange struct {
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
	Unit string  `yaml:"unit"`
}

// Entry maps a canonical test id to its synonyms and, when known, its normal
// range. Synonym lists are non-empty; the first synonym, title-cased, is the
// display name.
type Entry struct {
	ID       string       `yaml:"id"`
	Synonyms []string     `yaml:"synonyms"`
	Range    *NormalRange `yaml:"range,omitempty"`
}

// DisplayName returns the canonical display name for the entry.
func (e Entry) DisplayName() string {
	return titleCase(e.Synonyms[0])
}

// RangeString renders the entry's normal range in canonical "low-high" form,
// or the unknown-range sentinel when no range is on file.
func (e Entry) RangeString() string {
	if e.Range == nil {
		return report.RangeUnknown
	}
	return report.FormatRange(e.Range.Low, e.Range.High)
}

// DefaultUnit returns the unit used when none is captured from text.
func (e Entry) DefaultUnit() string {
	if e.Range == nil {
		return ""
	}
	return e.Range.Unit
}

// Catalog is an immutable, ordered set of entries. It is constructed once at
// startup and passed into the extractor components; nothing mutates it after
// construction.
type Catalog struct {
	entries []Entry
	byID    map[string]int
}

// New validates entries and builds a catalog. Entry order is preserved; it
// determines extraction scan order and therefore output order.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e.ID == "" {
			return nil, common.NewAppError("CATALOG_ERROR", "entry without id", common.ErrInvalidInput)
		}
		if len(e.Synonyms) == 0 {
			return nil, common.NewAppError("CATALOG_ERROR",
				fmt.Sprintf("entry %s has no synonyms", e.ID), common.ErrInvalidInput)
		}
		syns := make([]string, len(e.Synonyms))
		for i, s := range e.Synonyms {
			syns[i] = strings.ToLower(strings.TrimSpace(s))
		}
		e.Synonyms = syns
		if idx, ok := c.byID[e.ID]; ok {
			c.entries[idx] = e // later entries override earlier ones (overlay semantics)
			continue
		}
		c.byID[e.ID] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultEntries)
	if err != nil {
		// The built-in data is validated by tests; reaching this is a bug.
		panic(err)
	}
	return c
}

// Entries returns the ordered entry list. Callers must not modify it.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Lookup finds an entry by canonical id.
func (c *Catalog) Lookup(id string) (Entry, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[idx], true
}

// Len reports the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Merge returns a new catalog with overlay entries applied: an overlay entry
// with a known id replaces it, a new id is appended.
func (c *Catalog) Merge(overlay []Entry) (*Catalog, error) {
	merged := make([]Entry, 0, len(c.entries)+len(overlay))
	merged = append(merged, c.entries...)
	merged = append(merged, overlay...)
	return New(merged)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 {
			r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
