// Package merge reconciles the per-strategy tables that survived filtering
// into one canonical table.
package merge

import (
	"strings"

	"github.com/danielokoye/bloodlens/internal/report"
)

// Candidate is one strategy's filtered table. Candidates are passed in
// preference order: the earlier strategy is authoritative for any test that
// more than one strategy reports.
type Candidate struct {
	Strategy string
	Rows     []report.TestResult
}

// Combine walks strategies in order and rows in original order, deduplicating
// by normalized test name (marker characters stripped, case-insensitive).
// The first strategy to report a test wins; later duplicates are discarded.
// The result carries the source strategy on every row. Output is strictly
// deterministic for a given input; callers rely on that for reproducible
// tables and for idempotent re-merging.
func Combine(candidates []Candidate) []report.TestResult {
	var combined []report.TestResult
	seen := make(map[string]struct{})

	for _, cand := range candidates {
		for _, row := range cand.Rows {
			name := NormalizeName(row.Test)
			if name == "" {
				continue
			}
			key := strings.ToLower(name)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			row.Test = name
			row.Source = cand.Strategy
			combined = append(combined, row)
		}
	}
	return combined
}

// NormalizeName strips the *, # markers labs attach to flagged values and
// trims whitespace, so "Hemoglobin*" and "Hemoglobin" collapse to one entry.
func NormalizeName(name string) string {
	name = strings.ReplaceAll(name, "*", "")
	name = strings.ReplaceAll(name, "#", "")
	return strings.TrimSpace(name)
}
