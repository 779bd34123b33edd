package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"creator-api/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected int
	}{
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeIntegrationNotLinked, http.StatusBadRequest},
		{ErrCodeUnmappedCategory, http.StatusBadRequest},
		{ErrCodeCompletionService, http.StatusInternalServerError},
		{ErrCodeMalformedResponse, http.StatusInternalServerError},
		{ErrCodeWorkspaceService, http.StatusInternalServerError},
		{ErrCodeIntegrationLookupFailed, http.StatusInternalServerError},
		{ErrCodeEndpointDisabled, http.StatusServiceUnavailable},
		{ErrorCode("SOMETHING_NEW"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.code))
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, Normalize(nil))
	})

	t.Run("wrapped standard error is unwrapped", func(t *testing.T) {
		original := NewUnmappedCategoryError("IDEA")
		wrapped := fmt.Errorf("dispatch: %w", original)

		got := Normalize(wrapped)
		assert.Same(t, original, got)
		assert.True(t, Is(wrapped, ErrCodeUnmappedCategory))
	})

	t.Run("plain error becomes internal error", func(t *testing.T) {
		got := Normalize(stderrors.New("boom"))
		assert.Equal(t, ErrCodeInternal, got.Code)
		assert.Equal(t, DefaultMessage, got.Message)
		assert.Equal(t, "boom", got.Details)
	})
}

func TestNewValidationError(t *testing.T) {
	assert.Equal(t, "Invalid body", NewValidationError("").Message)
	assert.Equal(t, "Invalid body: userId: must be a valid UUID", NewValidationError("userId: must be a valid UUID").Message)
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeValidation))
	assert.Equal(t, "INTEGRATION", GetErrorCategory(ErrCodeIntegrationNotLinked))
	assert.Equal(t, "INTEGRATION", GetErrorCategory(ErrCodeUnmappedCategory))
	assert.Equal(t, "AI", GetErrorCategory(ErrCodeMalformedResponse))
	assert.Equal(t, "WORKSPACE", GetErrorCategory(ErrCodeWorkspaceService))
	assert.Equal(t, "OTHER", GetErrorCategory(ErrCodeInternal))
}

func TestErrorHandler_HandleRequestError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "not linked",
			err:             NewIntegrationNotLinkedError("0b0d2f7e-8a37-4f63-9f5b-0f6f7d3f2c11"),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Notion not linked",
		},
		{
			name:            "workspace failure",
			err:             NewWorkspaceServiceError(stderrors.New("status 401")),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Workspace service error",
		},
		{
			name:            "unknown error is flattened",
			err:             stderrors.New("nil pointer somewhere"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: DefaultMessage,
		},
		{
			name:            "empty message falls back",
			err:             &StandardError{Code: ErrCodeCompletionService},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: DefaultMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewErrorHandler(logger.NewTestLogger(t))
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/notion/sort", nil)

			h.HandleRequestError(rec, req, "triage-sort", tt.err)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "error", body["status"])
			assert.Equal(t, tt.expectedMessage, body["message"])
		})
	}
}
