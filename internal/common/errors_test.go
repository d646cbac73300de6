package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewAppError("DB_ERROR", "failed to connect", cause)

	assert.Equal(t, "DB_ERROR: failed to connect: connection refused", err.Error())
	assert.True(t, errors.Is(err, cause))

	err = NewAppError("CONFIG_ERROR", "missing value", nil)
	assert.Equal(t, "CONFIG_ERROR: missing value", err.Error())
}

func TestWrapError(t *testing.T) {
	cause := errors.New("disk full")
	err := WrapError(ErrDatabase, "cache write failed", cause)

	assert.True(t, errors.Is(err, ErrDatabase))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "cache write failed")

	err = WrapError(ErrNotFound, "report not found", nil)
	assert.True(t, errors.Is(err, ErrNotFound))
}
