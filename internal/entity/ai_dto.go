package entity

import "time"

// AiRequestBody is the wire shape of POST /ai. Only the fields of the selected type are read.
type AiRequestBody struct {
	Type         string     `json:"type"`
	Notes        string     `json:"notes,omitempty"`
	Topic        string     `json:"topic,omitempty"`
	QuizType     string     `json:"quizType,omitempty"`
	NumQuestions int        `json:"numQuestions,omitempty"`
	Messages     []ChatTurn `json:"messages,omitempty"`
}

// ToRequest selects the variant named by Type. Unknown types map to UnsupportedRequest
// so the translator reports them after its own precondition checks.
func (b *AiRequestBody) ToRequest() AiRequest {
	switch OperationKind(b.Type) {
	case OperationSummarize:
		return SummarizeRequest{Notes: b.Notes}
	case OperationQuiz:
		return QuizRequest{Notes: b.Notes, QuizType: QuizType(b.QuizType), NumQuestions: b.NumQuestions}
	case OperationFlashcards:
		return FlashcardsRequest{Notes: b.Notes}
	case OperationPresentation:
		return PresentationRequest{Notes: b.Notes}
	case OperationChat:
		return ChatRequest{History: b.Messages}
	case OperationStudyPlan:
		return StudyPlanRequest{Topic: b.Topic}
	default:
		return UnsupportedRequest{Type: b.Type}
	}
}

const (
	DefaultGenerationsLimit = 20
	MaxGenerationsLimit     = 100
	MaxGenerationsOffset    = 1_000_000
)

type ListGenerationsRequest struct {
	Limit  int
	Offset int
}

func (lg *ListGenerationsRequest) Normalize() {
	if lg.Limit <= 0 {
		lg.Limit = DefaultGenerationsLimit
	}
	lg.Limit = min(lg.Limit, MaxGenerationsLimit)

	lg.Offset = max(0, min(lg.Offset, MaxGenerationsOffset))
}

type ListGenerationsResponse struct {
	Generations []*GenerationSummary `json:"generations"`
}

type GenerationSummary struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	Provider     string    `json:"provider"`
	ResultLength int       `json:"result_length"`
	Attempts     int       `json:"attempts"`
	DurationMs   int64     `json:"duration_ms"`
	CreatedAt    time.Time `json:"created_at"`
}
