package llm

import (
	"context"
	"errors"

	"github.com/futig/study-portal-ai/internal/config"
	"github.com/futig/study-portal-ai/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"go.uber.org/zap"
)

// OpenAIConnector uses the official OpenAI SDK against any compatible base URL
type OpenAIConnector struct {
	config config.LLMConnectorConfig
	client openai.Client
}

func NewOpenAIConnector(cfg config.LLMConnectorConfig) *OpenAIConnector {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.Token),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(cfg.RequestTimeout),
	}
	if cfg.Url != "" {
		opts = append(opts, option.WithBaseURL(cfg.Url+"/"))
	}

	return &OpenAIConnector{
		config: cfg,
		client: openai.NewClient(opts...),
	}
}

func (c *OpenAIConnector) Provider() string {
	return config.ProviderOpenAI
}

func (c *OpenAIConnector) Configured() bool {
	return c.config.Token != ""
}

func (c *OpenAIConnector) Complete(ctx context.Context, req *entity.CompletionRequest) (string, error) {
	ctxzap.Debug(ctx, "requesting openai chat completion",
		zap.String("model", c.config.Model),
		zap.Int("message_count", len(req.Messages)),
	)

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, msg := range req.Messages {
		if msg.Role == entity.RoleModel {
			messages = append(messages, openai.AssistantMessage(msg.Content))
		} else {
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.config.Model),
		Messages:    messages,
		Temperature: openai.Float(req.Temperature),
		MaxTokens:   openai.Int(int64(req.MaxTokens)),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", entity.ClassifyStatus(apiErr.StatusCode, apiErr.Message)
		}
		return "", &entity.UpstreamError{Kind: entity.ErrUpstream, Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}
