package cache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielokoye/bloodlens/internal/report"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cache.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestGetMiss(t *testing.T) {
	s := openTestStore(t)

	rows, ok, err := s.Get(context.Background(), "deadbeef:model")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, rows)
}

func TestPutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rows := []report.TestResult{
		{Test: "Hemoglobin", Value: 14.5, Units: "g/dL", ReferenceRange: "13.5-17.5", Status: report.StatusNormal, Source: "Gemini Vision"},
		{Test: "Glucose", Value: 120, Units: "mg/dL", ReferenceRange: "70-99", Status: report.StatusHigh, Source: "Specialized Medical Extraction"},
	}
	require.NoError(t, s.Put(ctx, "hash1:model", rows))

	got, ok, err := s.Get(ctx, "hash1:model")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, rows, got)
}

func TestPutOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := []report.TestResult{{Test: "Glucose", Value: 95, Units: "mg/dL", ReferenceRange: "70-99", Status: report.StatusNormal}}
	second := []report.TestResult{{Test: "Glucose", Value: 120, Units: "mg/dL", ReferenceRange: "70-99", Status: report.StatusHigh}}

	require.NoError(t, s.Put(ctx, "k", first))
	require.NoError(t, s.Put(ctx, "k", second))

	got, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, second, got)
}

func TestKeysAreIndependent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rows := []report.TestResult{{Test: "Sodium", Value: 140, Units: "mmol/L", ReferenceRange: "136-145", Status: report.StatusNormal}}
	require.NoError(t, s.Put(ctx, "hash:model-a", rows))

	_, ok, err := s.Get(ctx, "hash:model-b")
	require.NoError(t, err)
	assert.False(t, ok)
}
