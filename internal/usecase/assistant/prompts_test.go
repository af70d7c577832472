package assistant

import (
	"errors"
	"strings"
	"testing"

	"github.com/futig/study-portal-ai/internal/entity"
)

func TestQuizInstruction(t *testing.T) {
	tests := map[entity.QuizType]string{
		entity.QuizTypeMixed:          "a mixture of multiple choice, true/false, and multiple answer questions",
		entity.QuizTypeMultipleChoice: "multiple choice questions with 4 options each",
		entity.QuizTypeTrueFalse:      "true or false questions",
		entity.QuizTypeMultipleAnswer: "multiple answer questions (select all that apply) with 5 options each",
		"essay":                       "multiple answer questions (select all that apply) with 5 options each",
		"":                            "multiple answer questions (select all that apply) with 5 options each",
	}

	for quizType, want := range tests {
		if got := QuizInstruction(quizType); got != want {
			t.Errorf("QuizInstruction(%q) = %q, want %q", quizType, got, want)
		}
	}
}

func TestBuildMessages_Templates(t *testing.T) {
	tests := []struct {
		name     string
		req      entity.AiRequest
		prefix   string
		contains []string
	}{
		{
			name:   "summarize",
			req:    entity.SummarizeRequest{Notes: "Cells divide."},
			prefix: "Please provide a clear and concise summary of the following notes:\n\nCells divide.",
		},
		{
			name:   "quiz",
			req:    entity.QuizRequest{Notes: "Cells divide.", QuizType: entity.QuizTypeTrueFalse, NumQuestions: 7},
			prefix: "Based on the following notes, generate 7 true or false questions.\n\nNotes:\nCells divide.\n\nFormat your response as a JSON array with the following structure:\n[",
			contains: []string{
				`"correctAnswer": "Option text" | ["Option 1", "Option 2"] (for multiple-answer)`,
				"\n\nMake sure questions test understanding, not just memorization.",
			},
		},
		{
			name:   "flashcards",
			req:    entity.FlashcardsRequest{Notes: "Mitosis"},
			prefix: "Based on the following notes, generate 10 flashcards for studying.\n\nNotes:\nMitosis\n\nFormat your response as a JSON array:\n[",
			contains: []string{
				`"front": "Question or concept"`,
				"Focus on key concepts, definitions, and important facts.",
			},
		},
		{
			name:   "presentation",
			req:    entity.PresentationRequest{Notes: "Mitosis"},
			prefix: "Based on the following notes, create a presentation outline with 5-8 slides.\n\nNotes:\nMitosis\n\nFormat your response as a JSON array:\n[",
			contains: []string{
				`"notes": "Speaker notes for this slide"`,
				"Make it clear, concise, and engaging.",
			},
		},
		{
			name:   "study plan",
			req:    entity.StudyPlanRequest{Topic: "Thermodynamics"},
			prefix: "Create a comprehensive study plan for learning: Thermodynamics\n\nPlease include:\n1. Overview of key concepts",
			contains: []string{
				"5. Milestones and checkpoints\n\nMake it practical and actionable for a student.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages, err := BuildMessages(tt.req)
			if err != nil {
				t.Fatalf("build failed: %v", err)
			}
			if len(messages) != 1 || messages[0].Role != entity.RoleUser {
				t.Fatalf("expected a single user message, got %+v", messages)
			}
			content := messages[0].Content
			if !strings.HasPrefix(content, tt.prefix) {
				t.Errorf("prompt does not start with expected text:\n%s", content)
			}
			for _, want := range tt.contains {
				if !strings.Contains(content, want) {
					t.Errorf("prompt is missing %q", want)
				}
			}
		})
	}
}

func TestBuildMessages_NotesAreInsertedVerbatim(t *testing.T) {
	notes := "100% of {students} pass %d tests"
	messages, err := BuildMessages(entity.SummarizeRequest{Notes: notes})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if !strings.HasSuffix(messages[0].Content, notes) {
		t.Errorf("notes were altered: %q", messages[0].Content)
	}
}

func TestBuildMessages_Chat(t *testing.T) {
	history := []entity.ChatTurn{
		{Role: "user", Content: "one"},
		{Role: "assistant", Content: "two"},
		{Role: "user", Content: "three"},
		{Role: "user", Content: "three"},
		{Role: "system", Content: "four"},
	}

	messages, err := BuildMessages(entity.ChatRequest{History: history})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	want := []entity.ChatMessage{
		{Role: entity.RoleUser, Content: "one"},
		{Role: entity.RoleModel, Content: "two"},
		{Role: entity.RoleUser, Content: "three"},
		{Role: entity.RoleUser, Content: "three"},
		{Role: entity.RoleModel, Content: "four"},
	}
	if len(messages) != len(want) {
		t.Fatalf("expected %d messages, got %d", len(want), len(messages))
	}
	for i := range want {
		if messages[i] != want[i] {
			t.Errorf("message %d = %+v, want %+v", i, messages[i], want[i])
		}
	}
}

func TestBuildMessages_UnknownVariant(t *testing.T) {
	_, err := BuildMessages(unknownRequest{})
	if !errors.Is(err, entity.ErrInvalidRequestType) {
		t.Errorf("expected invalid request type, got %v", err)
	}
}
