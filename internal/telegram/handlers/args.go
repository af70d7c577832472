package handlers

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/futig/study-portal-ai/internal/entity"
)

const (
	defaultQuizQuestions = 5
	maxQuizQuestions     = 20
)

var errMissingInput = errors.New("missing command input")

var quizTypes = map[entity.QuizType]bool{
	entity.QuizTypeMixed:          true,
	entity.QuizTypeMultipleChoice: true,
	entity.QuizTypeTrueFalse:      true,
	entity.QuizTypeMultipleAnswer: true,
}

// buildCommandRequest turns a generation command and its arguments into a request
func buildCommandRequest(command, args string) (entity.AiRequest, error) {
	args = strings.TrimSpace(args)
	if args == "" {
		return nil, errMissingInput
	}

	switch command {
	case "summarize":
		return entity.SummarizeRequest{Notes: args}, nil
	case "flashcards":
		return entity.FlashcardsRequest{Notes: args}, nil
	case "presentation":
		return entity.PresentationRequest{Notes: args}, nil
	case "plan":
		return entity.StudyPlanRequest{Topic: args}, nil
	case "quiz":
		return parseQuizArgs(args)
	default:
		return nil, entity.ErrInvalidRequestType
	}
}

// parseQuizArgs reads "[n] [type] <notes>". Notes keep their line breaks.
func parseQuizArgs(args string) (entity.QuizRequest, error) {
	req := entity.QuizRequest{
		QuizType:     entity.QuizTypeMixed,
		NumQuestions: defaultQuizQuestions,
	}

	token, rest := nextToken(args)
	if n, err := strconv.Atoi(token); err == nil {
		if n < 1 {
			return req, entity.NewValidationError("number of questions must be positive, got %d", n)
		}
		req.NumQuestions = min(n, maxQuizQuestions)
		args = rest
		token, rest = nextToken(args)
	}

	if quizTypes[entity.QuizType(token)] {
		req.QuizType = entity.QuizType(token)
		args = rest
	}

	req.Notes = strings.TrimSpace(args)
	if req.Notes == "" {
		return req, errMissingInput
	}
	return req, nil
}

func nextToken(s string) (token, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := strings.IndexFunc(s, unicode.IsSpace)
	if end < 0 {
		return s, ""
	}
	return s[:end], s[end:]
}
