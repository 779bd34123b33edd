// Package errors provides the standardized error taxonomy shared by every endpoint
// and its mapping onto HTTP responses.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	ErrCodeIntegrationNotLinked    ErrorCode = "INTEGRATION_NOT_LINKED"
	ErrCodeUnmappedCategory        ErrorCode = "UNMAPPED_CATEGORY"
	ErrCodeIntegrationLookupFailed ErrorCode = "INTEGRATION_LOOKUP_FAILED"

	ErrCodeCompletionService ErrorCode = "COMPLETION_SERVICE_ERROR"
	ErrCodeMalformedResponse ErrorCode = "MALFORMED_RESPONSE"

	ErrCodeWorkspaceService ErrorCode = "WORKSPACE_SERVICE_ERROR"

	ErrCodeEndpointDisabled ErrorCode = "ENDPOINT_DISABLED"
	ErrCodeInternal         ErrorCode = "INTERNAL_ERROR"
)

// DefaultMessage is surfaced when an error carries no usable message.
const DefaultMessage = "Server error"

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("StandardError[%s]: %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// HTTPStatus returns the response status for the error's code.
func (e *StandardError) HTTPStatus() int {
	return HTTPStatus(e.Code)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewValidationError reports a malformed or incomplete request body.
func NewValidationError(details string) *StandardError {
	message := "Invalid body"
	if details != "" {
		message = fmt.Sprintf("Invalid body: %s", details)
	}
	return &StandardError{
		Code:      ErrCodeValidation,
		Message:   message,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewIntegrationNotLinkedError reports a user with no stored workspace token.
func NewIntegrationNotLinkedError(userID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeIntegrationNotLinked,
		Message:   "Notion not linked",
		Details:   fmt.Sprintf("userId: %s", userID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnmappedCategoryError reports a classified category with no destination database.
func NewUnmappedCategoryError(category string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnmappedCategory,
		Message:   "No database mapped",
		Details:   fmt.Sprintf("category: %q", category),
		Retryable: false,
		Metadata:  map[string]interface{}{"category": category},
		Timestamp: time.Now().UTC(),
	}
}

// NewIntegrationLookupFailedError reports a backing store failure (not absence).
func NewIntegrationLookupFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeIntegrationLookupFailed,
		Message:   "Failed to load integration settings",
		Details:   errDetails(err),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCompletionServiceError wraps a transport or API failure from the completion service.
func NewCompletionServiceError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCompletionService,
		Message:   "Completion service error",
		Details:   errDetails(err),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewMalformedResponseError reports completion content that is not a usable JSON object.
func NewMalformedResponseError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedResponse,
		Message:   "Completion service returned malformed JSON",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewWorkspaceServiceError wraps any failure from the workspace client.
func NewWorkspaceServiceError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeWorkspaceService,
		Message:   "Workspace service error",
		Details:   errDetails(err),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewEndpointDisabledError(endpoint string) *StandardError {
	return &StandardError{
		Code:      ErrCodeEndpointDisabled,
		Message:   "Endpoint disabled",
		Details:   fmt.Sprintf("endpoint: %s", endpoint),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   DefaultMessage,
		Details:   errDetails(err),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func errDetails(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// ==========================
// 3. HTTP Mapping
// ==========================

// HTTPStatusMapping maps internal error codes to response status codes.
var HTTPStatusMapping = map[ErrorCode]int{
	ErrCodeValidation:              http.StatusBadRequest,
	ErrCodeIntegrationNotLinked:    http.StatusBadRequest,
	ErrCodeUnmappedCategory:        http.StatusBadRequest,
	ErrCodeIntegrationLookupFailed: http.StatusInternalServerError,
	ErrCodeCompletionService:       http.StatusInternalServerError,
	ErrCodeMalformedResponse:       http.StatusInternalServerError,
	ErrCodeWorkspaceService:        http.StatusInternalServerError,
	ErrCodeEndpointDisabled:        http.StatusServiceUnavailable,
	ErrCodeInternal:                http.StatusInternalServerError,
}

// HTTPStatus returns the response status for code, defaulting to 500.
func HTTPStatus(code ErrorCode) int {
	if status, ok := HTTPStatusMapping[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Normalize ensures we always have a StandardError.
func Normalize(err error) *StandardError {
	if err == nil {
		return nil
	}
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}
	return NewInternalError(err)
}

// Is reports whether err is a StandardError with the given code.
func Is(err error, code ErrorCode) bool {
	var stdErr *StandardError
	return stderrors.As(err, &stdErr) && stdErr.Code == code
}

// ==========================
// 4. Utility Functions
// ==========================

// IsClientError reports whether the code maps to a 4xx status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatus(code)
	return status >= 400 && status < 500
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "VALIDATION"):
		return "VALIDATION"
	case strings.Contains(codeStr, "INTEGRATION") || strings.Contains(codeStr, "CATEGORY"):
		return "INTEGRATION"
	case strings.Contains(codeStr, "COMPLETION") || strings.Contains(codeStr, "MALFORMED"):
		return "AI"
	case strings.Contains(codeStr, "WORKSPACE"):
		return "WORKSPACE"
	default:
		return "OTHER"
	}
}
