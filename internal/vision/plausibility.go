package vision

import "strings"

type sanityBand struct {
	min, max float64
}

// plausibilityBands are wide physiological sanity bands for a fixed set of
// well-known tests. They catch gross vision-model misreads without needing a
// full reference-range table: a hemoglobin of 142 is an OCR-style misread, not
// a result. Tests outside this set are never range-rejected here.
var plausibilityBands = map[string]sanityBand{
	"hemoglobin":  {1, 25},
	"wbc":         {0.1, 100},
	"rbc":         {0.5, 10},
	"platelets":   {1, 1000},
	"glucose":     {10, 600},
	"cholesterol": {50, 600},
	"sodium":      {100, 180},
	"potassium":   {1, 10},
}

func plausible(name string, value float64) bool {
	lower := strings.ToLower(name)
	for keyword, band := range plausibilityBands {
		if strings.Contains(lower, keyword) && (value < band.min || value > band.max) {
			return false
		}
	}
	return true
}
