// Package qa answers free-text questions about a canonical result table. The
// deterministic responder here is the fallback; the model-backed responder in
// gemini.go takes precedence when configured.
package qa

import (
	"fmt"
	"strings"

	"github.com/danielokoye/bloodlens/internal/report"
)

// Answer is the deterministic responder. It recognizes questions about
// abnormal results, a specific test by name, and the highest/lowest value;
// anything else gets an "unrecognized question" message.
func Answer(rows []report.TestResult, question string) string {
	if len(rows) == 0 {
		return "No blood test data available to answer questions."
	}
	q := strings.ToLower(question)

	if strings.Contains(q, "abnormal") || strings.Contains(q, "concerning") {
		return describeAbnormal(rows)
	}

	for _, r := range rows {
		if strings.Contains(q, strings.ToLower(r.Test)) {
			return fmt.Sprintf("%s: %v %s (Reference Range: %s, Status: %s)",
				r.Test, r.Value, r.Units, r.ReferenceRange, r.Status)
		}
	}

	// Stable max/min over table order: ties go to the first occurrence.
	if strings.Contains(q, "highest") {
		best := rows[0]
		for _, r := range rows[1:] {
			if r.Value > best.Value {
				best = r
			}
		}
		return fmt.Sprintf("The highest value is for %s: %v %s", best.Test, best.Value, best.Units)
	}
	if strings.Contains(q, "lowest") {
		best := rows[0]
		for _, r := range rows[1:] {
			if r.Value < best.Value {
				best = r
			}
		}
		return fmt.Sprintf("The lowest value is for %s: %v %s", best.Test, best.Value, best.Units)
	}

	return "I couldn't understand your question. Please try to ask about specific tests or abnormal values."
}

func describeAbnormal(rows []report.TestResult) string {
	var b strings.Builder
	for _, r := range rows {
		if r.Status == report.StatusNormal {
			continue
		}
		fmt.Fprintf(&b, "- %s: %v %s (Reference: %s)\n", r.Test, r.Value, r.Units, r.ReferenceRange)
	}
	if b.Len() == 0 {
		return "All test results are within normal ranges."
	}
	return "The following test results are outside normal ranges:\n" + b.String()
}
