package report

import (
	"strconv"
	"strings"
)

// Classify compares a value against a "low-high" reference range.
// The boundary values themselves are Normal: High only when value > high,
// Low only when value < low. A missing or unparsable range always yields
// Normal, never an error.
func Classify(value float64, refRange string) Status {
	low, high, ok := ParseRange(refRange)
	if !ok {
		return StatusNormal
	}
	if value < low {
		return StatusLow
	}
	if value > high {
		return StatusHigh
	}
	return StatusNormal
}

// ParseRange splits "low-high" into numeric bounds. Returns ok=false for the
// RangeUnknown sentinel and for anything that does not parse as two floats.
func ParseRange(refRange string) (low, high float64, ok bool) {
	s := strings.TrimSpace(refRange)
	if s == "" || s == RangeUnknown {
		return 0, 0, false
	}
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	low, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	high, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	return low, high, true
}

// FormatRange renders catalog bounds in the canonical "low-high" form.
func FormatRange(low, high float64) string {
	return trimFloat(low) + "-" + trimFloat(high)
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
