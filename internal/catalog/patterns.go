package catalog

import (
	"regexp"
	"strings"
)

// PatternSet is the compiled pattern pair for one catalog entry. Primary
// captures value, optional units and optional parenthesized range; secondary
// is the value-only fallback for lines where units or range are garbled.
type PatternSet struct {
	ID        string
	Primary   *regexp.Regexp
	Secondary *regexp.Regexp
}

// Compile builds pattern sets for every entry, in catalog order. Synonyms are
// quoted into a single alternation, so construction cannot fail for any
// non-empty synonym list. Matching is case-insensitive and deliberately avoids
// word boundaries stricter than whitespace and punctuation: OCR output is too
// noisy for them.
func Compile(c *Catalog) []PatternSet {
	sets := make([]PatternSet, 0, c.Len())
	for _, e := range c.Entries() {
		alt := synonymAlternation(e.Synonyms)
		primary := regexp.MustCompile(
			`(?i)(?P<test>` + alt + `)[:\s]*(?P<value>\d+\.?\d*)\s*(?P<units>\w+(?:/\w+)?)?(?:\s*\(?(?P<range>\d+\.?\d*\s*-\s*\d+\.?\d*)\)?)?`)
		secondary := regexp.MustCompile(
			`(?i)(?P<test>` + alt + `)[:\s]*(?P<value>\d+\.?\d*)`)
		sets = append(sets, PatternSet{ID: e.ID, Primary: primary, Secondary: secondary})
	}
	return sets
}

func synonymAlternation(synonyms []string) string {
	quoted := make([]string, len(synonyms))
	for i, s := range synonyms {
		quoted[i] = regexp.QuoteMeta(strings.ToLower(s))
	}
	return strings.Join(quoted, "|")
}
