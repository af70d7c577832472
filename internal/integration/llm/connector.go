package llm

import (
	"context"
	"net/http"

	"github.com/futig/study-portal-ai/internal/config"
	"github.com/futig/study-portal-ai/internal/entity"
	"github.com/futig/study-portal-ai/internal/integration/common"
	pkghttp "github.com/futig/study-portal-ai/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []chatCompletionMessage `json:"messages"`
	Temperature float64                 `json:"temperature"`
	MaxTokens   int                     `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message *struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Connector talks to an OpenAI-compatible chat-completion endpoint
type Connector struct {
	config    config.LLMConnectorConfig
	connector *pkghttp.Connector
}

func NewConnector(cfg config.LLMConnectorConfig) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, pkghttp.WithAuthToken(cfg.Token)),
		config:    cfg,
	}
}

func (c *Connector) Provider() string {
	return config.ProviderChatCompletions
}

func (c *Connector) Configured() bool {
	return c.config.Token != ""
}

// Complete sends one chat-completion call and returns the first choice's content
func (c *Connector) Complete(ctx context.Context, req *entity.CompletionRequest) (string, error) {
	ctxzap.Debug(ctx, "requesting chat completion",
		zap.String("model", c.config.Model),
		zap.Int("message_count", len(req.Messages)),
	)

	body := chatCompletionRequest{
		Model:       c.config.Model,
		Messages:    make([]chatCompletionMessage, 0, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	for _, msg := range req.Messages {
		body.Messages = append(body.Messages, chatCompletionMessage{
			Role:    chatCompletionRole(msg.Role),
			Content: msg.Content,
		})
	}

	var resp chatCompletionResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, c.config.CompletionsEndpoint, body, &resp)

	return completionText(ctx, resp.firstContent(), err)
}

func (r *chatCompletionResponse) firstContent() string {
	if len(r.Choices) == 0 || r.Choices[0].Message == nil || r.Choices[0].Message.Content == nil {
		return ""
	}
	return *r.Choices[0].Message.Content
}

// chatCompletionRole maps the normalized model role onto the OpenAI schema's label
func chatCompletionRole(role string) string {
	if role == entity.RoleModel {
		return entity.RoleAssistant
	}
	return role
}
