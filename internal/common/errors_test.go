package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_MatchesBothSentinels(t *testing.T) {
	err := NewValidationError(ErrNotCSV, "please select a %s file", "CSV")

	assert.Equal(t, "please select a CSV file", err.Error())
	assert.True(t, errors.Is(err, ErrValidation))
	assert.True(t, errors.Is(err, ErrNotCSV))
	assert.False(t, errors.Is(err, ErrTransport))
}

func TestValidationError_WrappedStillExtractable(t *testing.T) {
	wrapped := fmt.Errorf("select: %w", NewValidationError(ErrNoFileSelected, "no file selected"))

	var ve *ValidationError
	require.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "no file selected", ve.Message)
	assert.True(t, errors.Is(wrapped, ErrNoFileSelected))
}

func TestValidationError_NilSentinel(t *testing.T) {
	err := &ValidationError{Message: "bad"}

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Len(t, err.Unwrap(), 1)
}
