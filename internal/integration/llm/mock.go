package llm

import (
	"context"
	"strings"

	"github.com/futig/study-portal-ai/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const (
	mockFlashcards = `[
  {"front": "Photosynthesis", "back": "Process by which plants convert light energy into chemical energy"},
  {"front": "Chlorophyll", "back": "Green pigment that absorbs light"}
]`
	mockQuiz = `[
  {
    "question": "Which organelle performs photosynthesis?",
    "type": "multiple-choice",
    "options": ["Mitochondrion", "Chloroplast", "Nucleus", "Ribosome"],
    "correctAnswer": "Chloroplast",
    "explanation": "Chloroplasts contain chlorophyll."
  }
]`
	mockPresentation = `[
  {"title": "Introduction", "content": ["What the topic is", "Why it matters"], "notes": "Open with a question."},
  {"title": "Summary", "content": ["Key takeaways"], "notes": "Recap the main points."}
]`
	mockSummary   = "Summary (MOCK): the notes cover the main concepts, key definitions and their relationships."
	mockStudyPlan = `Study plan (MOCK)

1. Overview of key concepts
2. Week 1-2: fundamentals
3. Week 3: practice problems
4. Week 4: review and self-test`
	mockChat = "This is a mock tutor reply. Ask me anything about your notes."
)

// MockConnector answers with canned text and never touches the network
type MockConnector struct{}

func NewMockConnector() *MockConnector {
	return &MockConnector{}
}

func (m *MockConnector) Provider() string {
	return "mock"
}

func (m *MockConnector) Configured() bool {
	return true
}

func (m *MockConnector) Complete(ctx context.Context, req *entity.CompletionRequest) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating completion", zap.Int("message_count", len(req.Messages)))

	if len(req.Messages) != 1 {
		return mockChat, nil
	}

	prompt := req.Messages[0].Content
	switch {
	case strings.Contains(prompt, "flashcards"):
		return mockFlashcards, nil
	case strings.Contains(prompt, "presentation outline"):
		return mockPresentation, nil
	case strings.Contains(prompt, "correctAnswer"):
		return mockQuiz, nil
	case strings.HasPrefix(prompt, "Please provide a clear and concise summary"):
		return mockSummary, nil
	case strings.HasPrefix(prompt, "Create a comprehensive study plan"):
		return mockStudyPlan, nil
	default:
		return mockChat, nil
	}
}
