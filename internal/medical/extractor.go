// Package medical implements the catalog-driven specialized extractor: it
// scans OCR text against the compiled synonym patterns and resolves every
// match to its canonical test with catalog defaults for units and range.
package medical

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/danielokoye/bloodlens/internal/catalog"
	"github.com/danielokoye/bloodlens/internal/report"
)

// StrategyName tags rows produced by this extractor after reconciliation.
const StrategyName = "Specialized Medical Extraction"

var reWhitespace = regexp.MustCompile(`\s+`)

type Extractor struct {
	cat      *catalog.Catalog
	patterns []catalog.PatternSet
	logger   *slog.Logger
}

func NewExtractor(cat *catalog.Catalog, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		cat:      cat,
		patterns: catalog.Compile(cat),
		logger:   logger,
	}
}

// Extract scans the whole normalized text for every catalog entry, primary
// pattern first, then the value-only fallback. All non-overlapping matches are
// considered, not just the first. A match that fails numeric parsing is
// skipped silently; an empty result is a valid outcome, not an error.
func (e *Extractor) Extract(ocrText string) report.ExtractionResult {
	start := time.Now()
	text := normalizeText(ocrText)

	var rows []report.TestResult
	for _, ps := range e.patterns {
		entry, ok := e.cat.Lookup(ps.ID)
		if !ok {
			continue
		}
		rows = append(rows, e.scan(ps.Primary, entry, text)...)
		rows = append(rows, e.scan(ps.Secondary, entry, text)...)
	}

	rows = dedupeByTest(rows)

	e.logger.Debug("medical.extract.done",
		"rows", len(rows),
		"text_bytes", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	if len(rows) == 0 {
		return report.ExtractionResult{Message: "no known parameters matched"}
	}
	return report.ExtractionResult{Rows: rows, Message: "ok"}
}

func (e *Extractor) scan(re *regexp.Regexp, entry catalog.Entry, text string) []report.TestResult {
	valueIdx := re.SubexpIndex("value")
	unitsIdx := re.SubexpIndex("units")
	rangeIdx := re.SubexpIndex("range")

	var rows []report.TestResult
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		value, err := strconv.ParseFloat(m[valueIdx], 64)
		if err != nil {
			continue
		}

		units := ""
		if unitsIdx >= 0 && unitsIdx < len(m) {
			units = strings.TrimSpace(m[unitsIdx])
		}
		if units == "" {
			units = entry.DefaultUnit()
		}

		refRange := ""
		if rangeIdx >= 0 && rangeIdx < len(m) {
			refRange = strings.TrimSpace(m[rangeIdx])
		}
		if refRange == "" {
			refRange = entry.RangeString()
		}

		rows = append(rows, report.TestResult{
			Test:           entry.DisplayName(),
			Value:          value,
			Units:          units,
			ReferenceRange: refRange,
			Status:         report.Classify(value, refRange),
		})
	}
	return rows
}

// dedupeByTest keeps the first occurrence per test name. Primary matches are
// appended before secondary ones, so they take precedence.
func dedupeByTest(rows []report.TestResult) []report.TestResult {
	if len(rows) == 0 {
		return rows
	}
	out := rows[:0]
	seen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.Test]; ok {
			continue
		}
		seen[r.Test] = struct{}{}
		out = append(out, r)
	}
	return out
}

// normalizeText collapses runs of whitespace so patterns can cross the ragged
// line breaks OCR tends to produce.
func normalizeText(s string) string {
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}
