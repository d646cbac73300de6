package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/danielokoye/bloodlens/internal/report"
)

// TolerantStrategyName tags rows produced by ParseTolerant.
const TolerantStrategyName = "Generic Line Parser (tolerant)"

var (
	reStrictLine = regexp.MustCompile(
		`([A-Za-z\s]+)\s+(\d+\.?\d*)\s+([A-Za-z/%]+)(?:\s+\(?([\d.\-]+\s*-\s*[\d.]+)\)?)?`)

	reTolerantLine = regexp.MustCompile(
		`([A-Za-z0-9\s\-()]+?)\s+((?:\d+\.?\d*)|(?:\.\d+))\s*([A-Za-z0-9/%\s]+)(?:[\s:]*([\d.\-]+\s*-\s*[\d.]+))?`)

	// Administrative lines that look like test lines but aren't.
	tolerantSkipTerms = []string{"date", "patient", "doctor", "page", "reference", "report"}
)

// ParseTolerant extracts test lines using a permissive name character class
// (digits, hyphens and parentheses allowed) and an explicit skip-list of
// administrative keywords matched as substrings of the candidate name.
// Names shorter than 2 characters are rejected.
func ParseTolerant(text string) report.ExtractionResult {
	var rows []report.TestResult
	for _, line := range strings.Split(text, "\n") {
		m := reTolerantLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if len(name) < 2 || hasSkipTerm(name) {
			continue
		}
		val, err := strconv.ParseFloat(strings.TrimSpace(m[2]), 64)
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

func hasSkipTerm(name string) bool {
	lower := strings.ToLower(name)
	for _, term := range tolerantSkipTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
