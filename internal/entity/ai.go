package entity

// OperationKind discriminates the AI-assistance operations
type OperationKind string

const (
	OperationSummarize    OperationKind = "summarize"
	OperationQuiz         OperationKind = "quiz"
	OperationFlashcards   OperationKind = "flashcards"
	OperationPresentation OperationKind = "presentation"
	OperationChat         OperationKind = "chat"
	OperationStudyPlan    OperationKind = "study-plan"

	// OperationUnknown labels requests whose type names none of the operations
	OperationUnknown OperationKind = "unknown"
)

// QuizType selects the question style of a generated quiz.
// Values outside the known set are kept as-is and fall back to multiple answer questions.
type QuizType string

const (
	QuizTypeMixed          QuizType = "mixed"
	QuizTypeMultipleChoice QuizType = "multiple-choice"
	QuizTypeTrueFalse      QuizType = "true-false"
	QuizTypeMultipleAnswer QuizType = "multiple-answer"
)

// Chat roles. RoleAssistant is what callers send, RoleModel is the normalized form.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleModel     = "model"
)

// AiRequest is one of the six operation variants
type AiRequest interface {
	Kind() OperationKind
}

type SummarizeRequest struct {
	Notes string
}

type QuizRequest struct {
	Notes        string
	QuizType     QuizType
	NumQuestions int
}

type FlashcardsRequest struct {
	Notes string
}

type PresentationRequest struct {
	Notes string
}

type ChatRequest struct {
	History []ChatTurn
}

type StudyPlanRequest struct {
	Topic string
}

// UnsupportedRequest carries a type name outside the six operations. It never passes validation.
type UnsupportedRequest struct {
	Type string
}

func (SummarizeRequest) Kind() OperationKind    { return OperationSummarize }
func (QuizRequest) Kind() OperationKind         { return OperationQuiz }
func (FlashcardsRequest) Kind() OperationKind   { return OperationFlashcards }
func (PresentationRequest) Kind() OperationKind { return OperationPresentation }
func (ChatRequest) Kind() OperationKind         { return OperationChat }
func (StudyPlanRequest) Kind() OperationKind    { return OperationStudyPlan }
func (UnsupportedRequest) Kind() OperationKind  { return OperationUnknown }

// ChatTurn is a caller-side chat entry with role user or assistant
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatMessage is the normalized message forwarded upstream (role user or model)
type ChatMessage struct {
	Role    string
	Content string
}

// CompletionRequest is what an upstream driver receives; the driver supplies the model id
type CompletionRequest struct {
	Messages    []ChatMessage
	Temperature float64
	MaxTokens   int
}

// Result is a successful translation outcome
type Result struct {
	Text string `json:"result"`
}
