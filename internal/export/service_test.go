package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/danielokoye/bloodlens/internal/report"
)

func TestResultsXLSX(t *testing.T) {
	rows := []report.TestResult{
		{Test: "Hemoglobin", Value: 14.5, Units: "g/dL", ReferenceRange: "13.5-17.5", Status: report.StatusNormal, Source: "Gemini Vision"},
		{Test: "Glucose", Value: 120, Units: "mg/dL", ReferenceRange: "70-99", Status: report.StatusHigh, Source: "Specialized Medical Extraction"},
	}

	data, err := NewService(nil).ResultsXLSX(rows)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Blood Tests")
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, []string{"Test", "Value", "Units", "Reference Range", "Status", "Source"}, got[0])
	assert.Equal(t, "Hemoglobin", got[1][0])
	assert.Equal(t, "14.5", got[1][1])
	assert.Equal(t, "Normal", got[1][4])
	assert.Equal(t, "Glucose", got[2][0])
	assert.Equal(t, "High", got[2][4])
}

func TestResultsXLSXEmptyTable(t *testing.T) {
	data, err := NewService(nil).ResultsXLSX(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Blood Tests")
	require.NoError(t, err)
	require.Len(t, got, 1)
}
