package videogenerate

import (
	"creator-api/internal/common/completion"
	"creator-api/internal/common/logger"
)

const (
	VideoTypeShort = "short"
	VideoTypeLong  = "long"
)

type Input struct {
	UserID    string `json:"userId"`
	Topic     string `json:"topic"`
	VideoType string `json:"videoType"`
}

type Output map[string]interface{}

type ServiceDependencies struct {
	Completer completion.Completer
	Logger    logger.Logger
}
