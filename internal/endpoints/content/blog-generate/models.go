package bloggenerate

import (
	"creator-api/internal/common/completion"
	"creator-api/internal/common/logger"
)

type Input struct {
	UserID  string `json:"userId"`
	Keyword string `json:"keyword"`
	Tone    string `json:"tone"`
}

// Output is the completion object as returned by the model. Keys are passed
// through untouched.
type Output map[string]interface{}

type ServiceDependencies struct {
	Completer completion.Completer
	Logger    logger.Logger
}
