package medical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielokoye/bloodlens/internal/catalog"
	"github.com/danielokoye/bloodlens/internal/report"
)

func findRow(t *testing.T, rows []report.TestResult, name string) report.TestResult {
	t.Helper()
	for _, r := range rows {
		if r.Test == name {
			return r
		}
	}
	t.Fatalf("no row named %q in %v", name, rows)
	return report.TestResult{}
}

func TestExtractCapturesUnitsAndRange(t *testing.T) {
	e := NewExtractor(catalog.Default(), nil)

	res := e.Extract("Hemoglobin: 14.5 g/dL (13.5-17.5)")
	require.False(t, res.Empty())
	assert.Equal(t, "ok", res.Message)

	row := findRow(t, res.Rows, "Hemoglobin")
	assert.Equal(t, 14.5, row.Value)
	assert.Equal(t, "g/dL", row.Units)
	assert.Equal(t, "13.5-17.5", row.ReferenceRange)
	assert.Equal(t, report.StatusNormal, row.Status)
}

func TestExtractFallsBackToCatalogDefaults(t *testing.T) {
	e := NewExtractor(catalog.Default(), nil)

	res := e.Extract("Glucose 120")
	require.False(t, res.Empty())

	row := findRow(t, res.Rows, "Glucose")
	assert.Equal(t, 120.0, row.Value)
	assert.Equal(t, "mg/dL", row.Units)
	assert.Equal(t, "70-99", row.ReferenceRange)
	assert.Equal(t, report.StatusHigh, row.Status)
}

func TestExtractKeepsFirstMatchPerTest(t *testing.T) {
	e := NewExtractor(catalog.Default(), nil)

	res := e.Extract("Glucose 120 mg/dL\nGlucose 95 mg/dL")
	require.False(t, res.Empty())

	count := 0
	for _, r := range res.Rows {
		if r.Test == "Glucose" {
			count++
			assert.Equal(t, 120.0, r.Value)
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractMatchesSynonymsCaseInsensitively(t *testing.T) {
	e := NewExtractor(catalog.Default(), nil)

	res := e.Extract("HAEMOGLOBIN 12.1 g/dL")
	require.False(t, res.Empty())
	row := findRow(t, res.Rows, "Hemoglobin")
	assert.Equal(t, 12.1, row.Value)
	assert.Equal(t, report.StatusLow, row.Status)
}

func TestExtractCrossesLineBreaks(t *testing.T) {
	e := NewExtractor(catalog.Default(), nil)

	// OCR often splits a test line across rows; the scan runs on collapsed text.
	res := e.Extract("Serum\nCreatinine\n1.4")
	require.False(t, res.Empty())
	row := findRow(t, res.Rows, "Creatinine")
	assert.Equal(t, 1.4, row.Value)
	assert.Equal(t, report.StatusHigh, row.Status)
}

func TestExtractNoMatches(t *testing.T) {
	e := NewExtractor(catalog.Default(), nil)

	res := e.Extract("nothing clinical in here")
	assert.True(t, res.Empty())
	assert.Equal(t, "no known parameters matched", res.Message)

	res = e.Extract("")
	assert.True(t, res.Empty())
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "a b c", normalizeText("  a\n\tb \r\n c "))
}
