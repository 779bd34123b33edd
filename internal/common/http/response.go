package http

import (
	"encoding/json"
	"net/http"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"

	RequestIDHeader = "X-Request-ID"
)

// ErrorEnvelope is the uniform failure body.
type ErrorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// WriteJSON encodes body with the given status code.
func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorEnvelope{Status: StatusError, Message: message})
}

// WithStatus copies payload into a new map and sets the status discriminator last,
// so a payload key named "status" never overrides it.
func WithStatus(payload map[string]interface{}, status string) map[string]interface{} {
	out := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		out[k] = v
	}
	out["status"] = status
	return out
}
