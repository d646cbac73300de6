package qa

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danielokoye/bloodlens/internal/report"
)

func sampleRows() []report.TestResult {
	return []report.TestResult{
		{Test: "Hemoglobin", Value: 14.5, Units: "g/dL", ReferenceRange: "13.5-17.5", Status: report.StatusNormal},
		{Test: "Glucose", Value: 120, Units: "mg/dL", ReferenceRange: "70-99", Status: report.StatusHigh},
		{Test: "Sodium", Value: 134, Units: "mmol/L", ReferenceRange: "136-145", Status: report.StatusLow},
	}
}

func TestAnswerNoData(t *testing.T) {
	got := Answer(nil, "what is abnormal?")
	assert.Equal(t, "No blood test data available to answer questions.", got)
}

func TestAnswerAbnormal(t *testing.T) {
	got := Answer(sampleRows(), "Which results are abnormal?")
	assert.Contains(t, got, "outside normal ranges")
	assert.Contains(t, got, "Glucose")
	assert.Contains(t, got, "Sodium")
	assert.NotContains(t, got, "Hemoglobin")
}

func TestAnswerAllNormal(t *testing.T) {
	rows := []report.TestResult{
		{Test: "Hemoglobin", Value: 14.5, Units: "g/dL", ReferenceRange: "13.5-17.5", Status: report.StatusNormal},
	}
	got := Answer(rows, "anything concerning?")
	assert.Equal(t, "All test results are within normal ranges.", got)
}

func TestAnswerSpecificTest(t *testing.T) {
	got := Answer(sampleRows(), "What is my glucose level?")
	assert.Contains(t, got, "Glucose: 120 mg/dL")
	assert.Contains(t, got, "Status: High")
}

func TestAnswerHighestLowest(t *testing.T) {
	got := Answer(sampleRows(), "which test has the highest value?")
	assert.Contains(t, got, "Sodium")
	assert.Contains(t, got, "134")

	got = Answer(sampleRows(), "and the lowest?")
	assert.Contains(t, got, "Hemoglobin")
}

func TestAnswerUnrecognized(t *testing.T) {
	got := Answer(sampleRows(), "tell me a joke")
	assert.Contains(t, got, "couldn't understand")
}
