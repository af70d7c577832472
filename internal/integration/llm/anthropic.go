package llm

import (
	"context"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/futig/study-portal-ai/internal/config"
	"github.com/futig/study-portal-ai/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// AnthropicConnector calls the Anthropic Messages API
type AnthropicConnector struct {
	config config.LLMConnectorConfig
	client anthropic.Client
}

func NewAnthropicConnector(cfg config.LLMConnectorConfig) *AnthropicConnector {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.Token),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(cfg.RequestTimeout),
	}
	if cfg.Url != "" {
		opts = append(opts, option.WithBaseURL(cfg.Url+"/"))
	}

	return &AnthropicConnector{
		config: cfg,
		client: anthropic.NewClient(opts...),
	}
}

func (c *AnthropicConnector) Provider() string {
	return config.ProviderAnthropic
}

func (c *AnthropicConnector) Configured() bool {
	return c.config.Token != ""
}

func (c *AnthropicConnector) Complete(ctx context.Context, req *entity.CompletionRequest) (string, error) {
	ctxzap.Debug(ctx, "requesting anthropic message",
		zap.String("model", c.config.Model),
		zap.Int("message_count", len(req.Messages)),
	)

	messages := make([]anthropic.MessageParam, 0, len(req.Messages))
	for _, msg := range req.Messages {
		block := anthropic.NewTextBlock(msg.Content)
		if msg.Role == entity.RoleModel {
			messages = append(messages, anthropic.NewAssistantMessage(block))
		} else {
			messages = append(messages, anthropic.NewUserMessage(block))
		}
	}

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.config.Model),
		MaxTokens:   int64(req.MaxTokens),
		Temperature: anthropic.Float(req.Temperature),
		Messages:    messages,
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", entity.ClassifyStatus(apiErr.StatusCode, apiErr.Error())
		}
		return "", &entity.UpstreamError{Kind: entity.ErrUpstream, Err: err}
	}

	for _, block := range resp.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}

	return "", nil
}
