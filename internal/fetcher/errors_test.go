package fetcher

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyHTTPError(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorType
	}{
		{429, ErrorTypeRateLimit},
		{401, ErrorTypeAuth},
		{403, ErrorTypeAuth},
		{500, ErrorTypeServer},
		{503, ErrorTypeServer},
		{400, ErrorTypeClient},
		{404, ErrorTypeClient},
		{302, ErrorTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status_%d", tt.status), func(t *testing.T) {
			err := ClassifyHTTPError("fmp", tt.status)
			assert.Equal(t, tt.want, err.Type)
			assert.Equal(t, tt.status, err.StatusCode)
			assert.Equal(t, "fmp", err.Provider)
		})
	}
}

func TestFetchError_Error(t *testing.T) {
	err := ClassifyHTTPError("fred", 500)
	assert.Equal(t, "fred server error (status 500): server returned an error", err.Error())

	v := NewValidationError("", "unexpected payload")
	assert.Equal(t, "validation error: unexpected payload", v.Error())
}

func TestNewNetworkError_DeadlineIsTimeout(t *testing.T) {
	err := NewNetworkError("fmp", fmt.Errorf("get: %w", context.DeadlineExceeded))
	assert.Equal(t, ErrorTypeTimeout, err.Type)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	plain := NewNetworkError("fmp", errors.New("connection refused"))
	assert.Equal(t, ErrorTypeNetwork, plain.Type)
	assert.Contains(t, plain.Error(), "connection refused")
}

func TestFetchError_As(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", ClassifyHTTPError("fmp", 401))

	var fe *FetchError
	require.ErrorAs(t, wrapped, &fe)
	assert.Equal(t, ErrorTypeAuth, fe.Type)
}
