package handlers

import (
	"errors"
	"testing"

	"github.com/futig/study-portal-ai/internal/entity"
)

func TestParseQuizArgs(t *testing.T) {
	tests := []struct {
		args string
		want entity.QuizRequest
	}{
		{
			args: "Cells divide by mitosis.",
			want: entity.QuizRequest{Notes: "Cells divide by mitosis.", QuizType: entity.QuizTypeMixed, NumQuestions: 5},
		},
		{
			args: "8 Cells divide.",
			want: entity.QuizRequest{Notes: "Cells divide.", QuizType: entity.QuizTypeMixed, NumQuestions: 8},
		},
		{
			args: "true-false Cells divide.",
			want: entity.QuizRequest{Notes: "Cells divide.", QuizType: entity.QuizTypeTrueFalse, NumQuestions: 5},
		},
		{
			args: "3 multiple-answer Line one\nLine two",
			want: entity.QuizRequest{Notes: "Line one\nLine two", QuizType: entity.QuizTypeMultipleAnswer, NumQuestions: 3},
		},
		{
			args: "30 mixed Cells divide.",
			want: entity.QuizRequest{Notes: "Cells divide.", QuizType: entity.QuizTypeMixed, NumQuestions: 20},
		},
	}

	for _, tt := range tests {
		got, err := parseQuizArgs(tt.args)
		if err != nil {
			t.Fatalf("parseQuizArgs(%q): %v", tt.args, err)
		}
		if got != tt.want {
			t.Errorf("parseQuizArgs(%q) = %+v, want %+v", tt.args, got, tt.want)
		}
	}
}

func TestParseQuizArgs_Errors(t *testing.T) {
	if _, err := parseQuizArgs("5 mixed"); !errors.Is(err, errMissingInput) {
		t.Errorf("expected missing input, got %v", err)
	}
	if _, err := parseQuizArgs("0 notes"); !errors.Is(err, entity.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestBuildCommandRequest(t *testing.T) {
	req, err := buildCommandRequest("flashcards", "  Mitosis  ")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if req != (entity.FlashcardsRequest{Notes: "Mitosis"}) {
		t.Errorf("unexpected request %#v", req)
	}

	if _, err := buildCommandRequest("plan", "   "); !errors.Is(err, errMissingInput) {
		t.Errorf("expected missing input, got %v", err)
	}
}
