package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielokoye/bloodlens/internal/report"
)

func TestCombineFirstStrategyWins(t *testing.T) {
	vision := Candidate{
		Strategy: "Gemini Vision",
		Rows: []report.TestResult{
			{Test: "Hemoglobin*", Value: 14.2, Units: "g/dL", ReferenceRange: "13.5-17.5", Status: report.StatusNormal},
		},
	}
	specialized := Candidate{
		Strategy: "Specialized Medical Extraction",
		Rows: []report.TestResult{
			{Test: "Hemoglobin", Value: 14.5, Units: "g/dL", ReferenceRange: "13.5-17.5", Status: report.StatusNormal},
			{Test: "Glucose", Value: 95, Units: "mg/dL", ReferenceRange: "70-99", Status: report.StatusNormal},
		},
	}

	combined := Combine([]Candidate{vision, specialized})
	require.Len(t, combined, 2)

	assert.Equal(t, "Hemoglobin", combined[0].Test)
	assert.Equal(t, 14.2, combined[0].Value)
	assert.Equal(t, "Gemini Vision", combined[0].Source)

	assert.Equal(t, "Glucose", combined[1].Test)
	assert.Equal(t, "Specialized Medical Extraction", combined[1].Source)
}

func TestCombineDedupesCaseInsensitively(t *testing.T) {
	combined := Combine([]Candidate{
		{Strategy: "a", Rows: []report.TestResult{{Test: "GLUCOSE", Value: 1}}},
		{Strategy: "b", Rows: []report.TestResult{{Test: "Glucose", Value: 2}}},
	})
	require.Len(t, combined, 1)
	assert.Equal(t, 1.0, combined[0].Value)
}

func TestCombineStripsMarkerCharacters(t *testing.T) {
	combined := Combine([]Candidate{
		{Strategy: "a", Rows: []report.TestResult{
			{Test: "#Platelets#", Value: 300},
			{Test: "**", Value: 1},
		}},
	})
	require.Len(t, combined, 1)
	assert.Equal(t, "Platelets", combined[0].Test)
}

func TestCombineIsIdempotentOverItsOwnOutput(t *testing.T) {
	first := Combine([]Candidate{
		{Strategy: "a", Rows: []report.TestResult{
			{Test: "Hemoglobin", Value: 14.2},
			{Test: "Glucose", Value: 95},
		}},
	})
	second := Combine([]Candidate{{Strategy: "a", Rows: first}})
	assert.Equal(t, first, second)
}

func TestCombineEmptyInput(t *testing.T) {
	assert.Empty(t, Combine(nil))
	assert.Empty(t, Combine([]Candidate{{Strategy: "a"}}))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "Hemoglobin", NormalizeName(" Hemoglobin* "))
	assert.Equal(t, "RBC", NormalizeName("#RBC"))
	assert.Equal(t, "", NormalizeName("*#*"))
}
