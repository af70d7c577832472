package entity

import (
	"math"
	"testing"
)

func TestListGenerationsRequest_Normalize(t *testing.T) {
	tests := []struct {
		in   ListGenerationsRequest
		want ListGenerationsRequest
	}{
		{ListGenerationsRequest{}, ListGenerationsRequest{Limit: 20}},
		{ListGenerationsRequest{Limit: 500, Offset: -4}, ListGenerationsRequest{Limit: 100}},
		{ListGenerationsRequest{Limit: 5, Offset: 40}, ListGenerationsRequest{Limit: 5, Offset: 40}},
		{ListGenerationsRequest{Limit: 5, Offset: math.MaxInt}, ListGenerationsRequest{Limit: 5, Offset: MaxGenerationsOffset}},
	}

	for _, tt := range tests {
		got := tt.in
		got.Normalize()
		if got != tt.want {
			t.Errorf("Normalize(%+v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestAiRequestBody_ToRequest(t *testing.T) {
	tests := []struct {
		body AiRequestBody
		want OperationKind
	}{
		{AiRequestBody{Type: "summarize", Notes: "n"}, OperationSummarize},
		{AiRequestBody{Type: "quiz", Notes: "n", QuizType: "true-false", NumQuestions: 3}, OperationQuiz},
		{AiRequestBody{Type: "study-plan", Topic: "t"}, OperationStudyPlan},
		{AiRequestBody{Type: "translate"}, OperationUnknown},
		{AiRequestBody{}, OperationUnknown},
	}

	for _, tt := range tests {
		if got := tt.body.ToRequest().Kind(); got != tt.want {
			t.Errorf("ToRequest(%q) kind = %s, want %s", tt.body.Type, got, tt.want)
		}
	}

	req, ok := (&AiRequestBody{Type: "translate"}).ToRequest().(UnsupportedRequest)
	if !ok || req.Type != "translate" {
		t.Errorf("unknown types must keep their name, got %#v", req)
	}
}
