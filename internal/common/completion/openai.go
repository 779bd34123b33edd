package completion

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"creator-api/internal/common/errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// Recorder receives one observation per completion call.
type Recorder interface {
	RecordCompletion(ctx context.Context, model, outcome string, duration time.Duration)
}

type OpenAIConfig struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// OpenAIClient implements Completer with the official openai-go SDK. It asks
// for json_object output and never retries.
type OpenAIClient struct {
	client   openai.Client
	model    string
	recorder Recorder
}

func NewOpenAIClient(cfg OpenAIConfig, recorder Recorder) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, stderrors.New("openai api key missing; provide apis.openai.api_key")
	}
	if cfg.Model == "" {
		return nil, stderrors.New("openai model is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	return &OpenAIClient{
		client:   openai.NewClient(opts...),
		model:    cfg.Model,
		recorder: recorder,
	}, nil
}

// Complete sends req and decodes the first choice. Transport and API failures
// are COMPLETION_SERVICE_ERROR; undecodable content is MALFORMED_RESPONSE.
func (c *OpenAIClient) Complete(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	system := req.System
	if system == "" {
		system = SystemInstruction
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(req.User),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		c.record(ctx, "error", start)
		return nil, errors.NewCompletionServiceError(err)
	}
	if len(resp.Choices) == 0 {
		c.record(ctx, "error", start)
		return nil, errors.NewCompletionServiceError(stderrors.New("openai: empty choices"))
	}

	result, err := Decode(resp.Choices[0].Message.Content)
	c.record(ctx, result.Outcome.String(), start)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *OpenAIClient) record(ctx context.Context, outcome string, start time.Time) {
	if c.recorder == nil {
		return
	}
	c.recorder.RecordCompletion(ctx, c.model, outcome, time.Since(start))
}
