package report

import "fmt"

// Status classifies a measured value against its reference range.
type Status string

// Stable values (these exact strings appear in persisted rows and exports).
const (
	StatusNormal Status = "Normal"
	StatusLow    Status = "Low"
	StatusHigh   Status = "High"
)

// RangeUnknown is the sentinel reference range for rows without a known range.
const RangeUnknown = "N/A"

// TestResult is one row of an extracted result table.
type TestResult struct {
	Test           string  `json:"test"`
	Value          float64 `json:"value"`
	Units          string  `json:"units"`
	ReferenceRange string  `json:"reference_range"` // "low-high" or RangeUnknown
	Status         Status  `json:"status"`
	Source         string  `json:"source,omitempty"` // set during reconciliation only
}

// ExtractionResult is what one strategy produced for one document: an ordered
// row set plus a human-readable status message. A hard strategy failure is an
// error at the call site, not an ExtractionResult.
type ExtractionResult struct {
	Rows    []TestResult
	Message string
}

// Empty reports whether the strategy found no qualifying rows. That is a valid
// terminal condition, not a failure.
func (r ExtractionResult) Empty() bool {
	return len(r.Rows) == 0
}

// Columns is the ordered canonical table schema. Source is only meaningful
// post-reconciliation; per-strategy tables leave it empty.
func Columns() []string {
	return []string{"Test", "Value", "Units", "Reference Range", "Status", "Source"}
}

// DedupeColumns disambiguates repeated column names by suffixing an
// incrementing counter. The fixed schema never collides; tables assembled
// from multiple sources can.
func DedupeColumns(cols []string) []string {
	out := make([]string, 0, len(cols))
	seen := make(map[string]int, len(cols))
	for _, c := range cols {
		if n, ok := seen[c]; ok {
			seen[c] = n + 1
			out = append(out, fmt.Sprintf("%s_%d", c, n+1))
			continue
		}
		seen[c] = 0
		out = append(out, c)
	}
	return out
}
