// Package completion sends prompts to the chat completion service and decodes
// the JSON object it returns.
package completion

import (
	"context"
	"encoding/json"
	"strings"

	"creator-api/internal/common/errors"
)

// SystemInstruction is sent ahead of every prompt.
const SystemInstruction = "Return strictly JSON; no markdown."

// Outcome classifies decoded completion content.
type Outcome int

const (
	// Empty content decodes to an empty object and is not a failure.
	Empty Outcome = iota
	Valid
	Malformed
)

func (o Outcome) String() string {
	switch o {
	case Empty:
		return "empty"
	case Valid:
		return "valid"
	case Malformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Request is one two-message exchange: a system instruction and the user prompt.
type Request struct {
	System string
	User   string
}

// Result is a decoded completion. Object is never nil for Empty or Valid outcomes.
type Result struct {
	Outcome Outcome
	Object  map[string]interface{}
	Raw     string
}

// Completer is the completion service boundary used by every endpoint.
type Completer interface {
	Complete(ctx context.Context, req Request) (*Result, error)
}

// Decode parses raw completion content. Blank content yields Empty with an
// empty object; anything other than a JSON object is a MALFORMED_RESPONSE error.
func Decode(raw string) (*Result, error) {
	if strings.TrimSpace(raw) == "" {
		return &Result{Outcome: Empty, Object: map[string]interface{}{}, Raw: raw}, nil
	}

	var decoded interface{}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return &Result{Outcome: Malformed, Raw: raw}, errors.NewMalformedResponseError(err.Error())
	}

	obj, ok := decoded.(map[string]interface{})
	if !ok {
		return &Result{Outcome: Malformed, Raw: raw}, errors.NewMalformedResponseError("content is not a JSON object")
	}

	return &Result{Outcome: Valid, Object: obj, Raw: raw}, nil
}
