package errorwrapper

import (
	"errors"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name            string
		originalError   error
		message         string
		expectedMessage string
	}{
		{
			name:            "wrap simple error",
			originalError:   errors.New("original error"),
			message:         "wrapper message",
			expectedMessage: "wrapper message: original error",
		},
		{
			name:            "wrap nil error",
			originalError:   nil,
			message:         "wrapper message",
			expectedMessage: "wrapper message: <nil>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrappedError := WrapError(tt.originalError, tt.message)
			assert.Error(t, wrappedError)
			assert.Equal(t, tt.expectedMessage, wrappedError.Error())
			if tt.originalError != nil {
				assert.ErrorIs(t, wrappedError, tt.originalError)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("color", "ZZZZZZ", "not a hex color")

	assert.Equal(t, "validation error: field 'color' with value 'ZZZZZZ': not a hex color", err.Error())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidationError_WithCause(t *testing.T) {
	_, cause := strconv.ParseInt("ZZ", 16, 32)
	err := NewValidationErrorWithCause("color", "ZZ", "not a hex color", cause)

	var numErr *strconv.NumError
	require.ErrorAs(t, err, &numErr)
	assert.Equal(t, "ZZ", numErr.Num)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

func TestNetworkError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNetworkError("http://127.0.0.1:1", "request failed", cause)

	assert.Contains(t, err.Error(), "http://127.0.0.1:1")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)

	bare := NewNetworkError("http://example.invalid", "no response", nil)
	assert.ErrorIs(t, bare, ErrNetworkFailure)
}

func TestHTTPError(t *testing.T) {
	err := NewHTTPErrorWithURL(http.StatusNotFound, "Not Found", "https://example.com/hook")

	assert.Equal(t, "HTTP 404 error for URL 'https://example.com/hook': Not Found", err.Error())

	var target *HTTPError
	require.ErrorAs(t, WrapError(err, "send failed"), &target)
	assert.Equal(t, http.StatusNotFound, target.StatusCode)
	assert.Equal(t, "Not Found", target.Status)

	noURL := &HTTPError{StatusCode: 500, Status: "Internal Server Error"}
	assert.Equal(t, "HTTP 500 error: Internal Server Error", noURL.Error())
}

func TestErrorCollector(t *testing.T) {
	var collector ErrorCollector
	assert.NoError(t, collector.Error())

	collector.Add(nil)
	assert.NoError(t, collector.Error())

	first := errors.New("first")
	collector.Add(first)
	assert.Same(t, first, collector.Error())

	collector.Add(errors.New("second"))
	assert.Equal(t, "multiple errors occurred: [first; second]", collector.Error().Error())
}
