package http

import (
	"encoding/json"
	"fmt"
	"io"
)

// MaxBodyBytes caps inbound request bodies.
const MaxBodyBytes = 1 << 20

// DecodeJSONObject reads body as a single JSON object. Any other JSON value,
// trailing data or a body over MaxBodyBytes is an error.
func DecodeJSONObject(body io.Reader) (map[string]interface{}, error) {
	if body == nil {
		return nil, fmt.Errorf("request body is empty")
	}

	decoder := json.NewDecoder(io.LimitReader(body, MaxBodyBytes+1))
	var decoded interface{}
	if err := decoder.Decode(&decoded); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("request body is empty")
		}
		return nil, fmt.Errorf("malformed JSON: %w", err)
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after JSON object")
	}
	if decoder.InputOffset() > MaxBodyBytes {
		return nil, fmt.Errorf("request body exceeds %d bytes", MaxBodyBytes)
	}

	obj, ok := decoded.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("request body must be a JSON object")
	}
	return obj, nil
}
