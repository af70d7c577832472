package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/futig/study-portal-ai/internal/config"
	"github.com/futig/study-portal-ai/internal/entity"
	"github.com/futig/study-portal-ai/internal/integration/common"
	pkghttp "github.com/futig/study-portal-ai/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content *geminiContent `json:"content"`
	} `json:"candidates"`
}

// GeminiConnector calls Google's generative-language generateContent API directly
type GeminiConnector struct {
	config    config.LLMConnectorConfig
	connector *pkghttp.Connector
}

func NewGeminiConnector(cfg config.LLMConnectorConfig) *GeminiConnector {
	return &GeminiConnector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, pkghttp.WithQueryToken("key", cfg.Token)),
		config:    cfg,
	}
}

func (c *GeminiConnector) Provider() string {
	return config.ProviderGemini
}

func (c *GeminiConnector) Configured() bool {
	return c.config.Token != ""
}

// Complete sends the conversation as generateContent contents and returns the first candidate's first part
func (c *GeminiConnector) Complete(ctx context.Context, req *entity.CompletionRequest) (string, error) {
	ctxzap.Debug(ctx, "requesting gemini generation",
		zap.String("model", c.config.Model),
		zap.Int("message_count", len(req.Messages)),
	)

	body := geminiRequest{
		Contents: make([]geminiContent, 0, len(req.Messages)),
		GenerationConfig: geminiGenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		},
	}
	for _, msg := range req.Messages {
		body.Contents = append(body.Contents, geminiContent{
			Role:  msg.Role,
			Parts: []geminiPart{{Text: msg.Content}},
		})
	}

	endpoint := fmt.Sprintf("/models/%s:generateContent", url.PathEscape(c.config.Model))

	var resp geminiResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, endpoint, body, &resp)

	return completionText(ctx, resp.firstText(), err)
}

func (r *geminiResponse) firstText() string {
	if len(r.Candidates) == 0 || r.Candidates[0].Content == nil || len(r.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	return r.Candidates[0].Content.Parts[0].Text
}
