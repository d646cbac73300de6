package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		refRange string
		want     Status
	}{
		{"below low bound", 13.4, "13.5-17.5", StatusLow},
		{"on low bound", 13.5, "13.5-17.5", StatusNormal},
		{"inside range", 14.5, "13.5-17.5", StatusNormal},
		{"on high bound", 17.5, "13.5-17.5", StatusNormal},
		{"above high bound", 17.6, "13.5-17.5", StatusHigh},
		{"range with spaces", 3.0, "3.5 - 5.1", StatusLow},
		{"unknown range sentinel", 999, RangeUnknown, StatusNormal},
		{"empty range", 999, "", StatusNormal},
		{"malformed range", 999, "high", StatusNormal},
		{"half range", 999, "10-", StatusNormal},
		{"negative low bound", -5, "-10-10", StatusNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.value, tt.refRange))
		})
	}
}

func TestParseRange(t *testing.T) {
	low, high, ok := ParseRange("4.5-11")
	require.True(t, ok)
	assert.Equal(t, 4.5, low)
	assert.Equal(t, 11.0, high)

	_, _, ok = ParseRange(RangeUnknown)
	assert.False(t, ok)

	_, _, ok = ParseRange("abc-def")
	assert.False(t, ok)
}

func TestFormatRange(t *testing.T) {
	assert.Equal(t, "4.5-11", FormatRange(4.5, 11.0))
	assert.Equal(t, "70-99", FormatRange(70, 99))
	assert.Equal(t, "0.6-1.2", FormatRange(0.6, 1.2))
}

func TestDedupeColumns(t *testing.T) {
	got := DedupeColumns([]string{"Test", "Value", "Test", "Test"})
	assert.Equal(t, []string{"Test", "Value", "Test_1", "Test_2"}, got)

	// The canonical schema has no collisions.
	assert.Equal(t, Columns(), DedupeColumns(Columns()))
}

func TestMarshalTableRoundTrip(t *testing.T) {
	rows := []TestResult{
		{Test: "Hemoglobin", Value: 14.5, Units: "g/dL", ReferenceRange: "13.5-17.5", Status: StatusNormal, Source: "Gemini Vision"},
		{Test: "Glucose", Value: 120, Units: "mg/dL", ReferenceRange: "70-99", Status: StatusHigh},
	}
	b, err := MarshalTable(rows)
	require.NoError(t, err)

	back, err := UnmarshalTable(b)
	require.NoError(t, err)
	assert.Equal(t, rows, back)
}

func TestMarshalTableEmpty(t *testing.T) {
	b, err := MarshalTable(nil)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(b))
}

func TestUnmarshalTableRejectsInvalid(t *testing.T) {
	_, err := UnmarshalTable([]byte(`[{"test":"Hemoglobin","value":"NaN","units":"g/dL","reference_range":"13.5-17.5","status":"Normal"}]`))
	assert.Error(t, err)

	_, err = UnmarshalTable([]byte(`[{"test":"Hemoglobin","value":14.5,"units":"g/dL","reference_range":"13.5-17.5","status":"Weird"}]`))
	assert.Error(t, err)
}
