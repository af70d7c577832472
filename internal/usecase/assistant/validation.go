package assistant

import (
	"strings"

	"github.com/futig/study-portal-ai/internal/entity"
)

func validateRequest(req entity.AiRequest) error {
	switch r := req.(type) {
	case entity.SummarizeRequest:
		return requireText("notes", r.Notes)
	case entity.FlashcardsRequest:
		return requireText("notes", r.Notes)
	case entity.PresentationRequest:
		return requireText("notes", r.Notes)
	case entity.StudyPlanRequest:
		return requireText("topic", r.Topic)
	case entity.QuizRequest:
		if err := requireText("notes", r.Notes); err != nil {
			return err
		}
		if r.NumQuestions <= 0 {
			return entity.NewValidationError("numQuestions must be a positive integer, got %d", r.NumQuestions)
		}
		return nil
	case entity.ChatRequest:
		if len(r.History) == 0 {
			return entity.NewValidationError("messages are required")
		}
		for i, turn := range r.History {
			if strings.TrimSpace(turn.Content) == "" {
				return entity.NewValidationError("messages[%d] has empty content", i)
			}
		}
		return nil
	default:
		return entity.ErrInvalidRequestType
	}
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return entity.NewValidationError("%s must not be empty", field)
	}
	return nil
}
