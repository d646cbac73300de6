// Package parser holds the two generic line parsers. Neither relies on a
// known-test catalog: they pull arbitrary "name value units (range)" shapes
// out of one OCR line at a time, with no cross-line state. The strict parser
// wants a well-formed line; the tolerant one accepts messier names and makes
// the units run optional-ish. Report layouts vary wildly, so running both
// raises the odds that at least one captures real data; reconciliation sorts
// out disagreement downstream.
package parser

import (
	"strconv"
	"strings"

	"github.com/danielokoye/bloodlens/internal/report"
)

// StrictStrategyName tags rows produced by ParseStrict.
const StrictStrategyName = "Generic Line Parser (strict)"

// ParseStrict extracts test lines of the form
// "<name> <value> <units> (<low>-<high>)" where the range is optional.
// Lines whose value token does not parse as a float, or is the bare OCR
// artifact ".", are skipped. Zero matches is success with zero rows.
func ParseStrict(text string) report.ExtractionResult {
	var rows []report.TestResult
	for _, line := range strings.Split(text, "\n") {
		m := reStrictLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		valStr := m[2]
		if valStr == "" || valStr == "." {
			continue
		}
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			continue
		}
		units := strings.TrimSpace(m[3])
		refRange := m[4]
		if refRange == "" {
			refRange = report.RangeUnknown
		}
		rows = append(rows, report.TestResult{
			Test:           name,
			Value:          val,
			Units:          units,
			ReferenceRange: refRange,
			Status:         report.Classify(val, refRange),
		})
	}
	if len(rows) == 0 {
		return report.ExtractionResult{Message: "no test lines matched"}
	}
	return report.ExtractionResult{Rows: rows, Message: "ok"}
}
