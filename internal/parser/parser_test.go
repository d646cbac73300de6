package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielokoye/bloodlens/internal/report"
)

func TestParseStrictWellFormedLine(t *testing.T) {
	res := ParseStrict("Hemoglobin 14.5 g/dL (13.5-17.5)")
	require.Len(t, res.Rows, 1)

	row := res.Rows[0]
	assert.Equal(t, "Hemoglobin", row.Test)
	assert.Equal(t, 14.5, row.Value)
	assert.Equal(t, "g/dL", row.Units)
	assert.Equal(t, "13.5-17.5", row.ReferenceRange)
	assert.Equal(t, report.StatusNormal, row.Status)
}

func TestParseStrictLowValue(t *testing.T) {
	res := ParseStrict("Hemoglobin 11.0 g/dL (13.5-17.5)")
	require.Len(t, res.Rows, 1)
	assert.Equal(t, report.StatusLow, res.Rows[0].Status)
}

func TestParseStrictRangeOptional(t *testing.T) {
	res := ParseStrict("Glucose 95 mg/dL")
	require.Len(t, res.Rows, 1)
	assert.Equal(t, report.RangeUnknown, res.Rows[0].ReferenceRange)
	assert.Equal(t, report.StatusNormal, res.Rows[0].Status)
}

func TestParseStrictSkipsLinesWithoutValue(t *testing.T) {
	res := ParseStrict("RBC . (an OCR artifact)\nNo numbers here either")
	assert.True(t, res.Empty())
	assert.Equal(t, "no test lines matched", res.Message)
}

func TestParseStrictMultipleLines(t *testing.T) {
	text := "White Blood Cells 6.2 K/uL (4.5-11.0)\nPlatelets 520 K/uL (150-450)\n--- PAGE 2 ---"
	res := ParseStrict(text)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, report.StatusNormal, res.Rows[0].Status)
	assert.Equal(t, report.StatusHigh, res.Rows[1].Status)
}

func TestParseTolerantAcceptsMessyNames(t *testing.T) {
	res := ParseTolerant("HbA1c (Glycated) 5.8 %")
	require.Len(t, res.Rows, 1)

	row := res.Rows[0]
	assert.Equal(t, "HbA1c (Glycated)", row.Test)
	assert.Equal(t, 5.8, row.Value)
	assert.Equal(t, "%", row.Units)
	assert.Equal(t, report.RangeUnknown, row.ReferenceRange)
}

func TestParseTolerantLeadingDotValue(t *testing.T) {
	res := ParseTolerant("Basophils .5 %")
	require.Len(t, res.Rows, 1)
	assert.Equal(t, 0.5, res.Rows[0].Value)
}

func TestParseTolerantSkipsAdministrativeLines(t *testing.T) {
	text := "Date 12 2023\nPatient ID 44532\nDoctor Room 12\nPage 1 of 2"
	res := ParseTolerant(text)
	assert.True(t, res.Empty())
}

func TestParseTolerantRejectsShortNames(t *testing.T) {
	res := ParseTolerant("X 5 mg")
	assert.True(t, res.Empty())
}

func TestParseTolerantColonSeparatedRange(t *testing.T) {
	res := ParseTolerant("Ferritin 30 ng/mL: 12-300")
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "12-300", res.Rows[0].ReferenceRange)
	assert.Equal(t, report.StatusNormal, res.Rows[0].Status)
}
