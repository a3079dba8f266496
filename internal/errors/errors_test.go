package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidInputIsFatal(t *testing.T) {
	err := InvalidInput("duration out of range")
	assert.True(t, IsFatal(err))
	assert.Equal(t, "INVALID_INPUT: duration out of range", err.Error())
}

func TestExtractionIsLocalized(t *testing.T) {
	cause := errors.New("tool exited 1")
	err := Extraction(4200, cause)
	require.False(t, IsFatal(err))
	assert.Contains(t, err.Error(), "offset: 4200ms")
	assert.Equal(t, cause, err.Unwrap())
}

func TestScratchIOIsFatal(t *testing.T) {
	err := ScratchIO("directory not writable", errors.New("permission denied"))
	assert.True(t, IsFatal(err))
}

func TestIsFatalFalseForPlainError(t *testing.T) {
	assert.False(t, IsFatal(errors.New("some other error")))
}

func TestWithDetails(t *testing.T) {
	err := Internal("invariant violated").WithDetails("hitIndex out of range")
	assert.Equal(t, "hitIndex out of range", err.Details)
}
