package errors

import (
	"net/http"

	apphttp "creator-api/internal/common/http"
	"creator-api/internal/common/metrics"
)

// ErrorHandler turns pipeline errors into the uniform error envelope.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// HandleRequestError logs err, counts it and writes {status:"error", message}.
func (h *ErrorHandler) HandleRequestError(w http.ResponseWriter, r *http.Request, endpoint string, err error) {
	stdErr := Normalize(err)
	if stdErr == nil {
		stdErr = NewInternalError(nil)
	}
	status := stdErr.HTTPStatus()

	h.logError(r, endpoint, stdErr, status)
	metrics.RequestErrors.WithLabelValues(endpoint, string(stdErr.Code)).Inc()

	message := stdErr.Message
	if message == "" {
		message = DefaultMessage
	}
	apphttp.WriteError(w, status, message)
}

func (h *ErrorHandler) logError(r *http.Request, endpoint string, stdErr *StandardError, status int) {
	fields := map[string]interface{}{
		"endpoint":      endpoint,
		"path":          r.URL.Path,
		"status":        status,
		"errorCode":     string(stdErr.Code),
		"message":       stdErr.Message,
		"details":       stdErr.Details,
		"errorCategory": GetErrorCategory(stdErr.Code),
		"requestId":     r.Header.Get(apphttp.RequestIDHeader),
	}
	if IsClientError(stdErr.Code) {
		h.logger.Warn("Request rejected", fields)
		return
	}
	h.logger.Error("Request failed", fields)
}
