package assistant

import (
	"fmt"

	"github.com/futig/study-portal-ai/internal/entity"
)

const summarizePrompt = "Please provide a clear and concise summary of the following notes:\n\n%s"

const quizPrompt = `Based on the following notes, generate %d %s.

Notes:
%s

Format your response as a JSON array with the following structure:
[
  {
    "question": "Question text",
    "type": "multiple-choice" | "true-false" | "multiple-answer",
    "options": ["Option 1", "Option 2", ...],
    "correctAnswer": "Option text" | ["Option 1", "Option 2"] (for multiple-answer),
    "explanation": "Brief explanation of the correct answer"
  }
]

Make sure questions test understanding, not just memorization.`

const flashcardsPrompt = `Based on the following notes, generate 10 flashcards for studying.

Notes:
%s

Format your response as a JSON array:
[
  {
    "front": "Question or concept",
    "back": "Answer or explanation"
  }
]

Focus on key concepts, definitions, and important facts.`

const presentationPrompt = `Based on the following notes, create a presentation outline with 5-8 slides.

Notes:
%s

Format your response as a JSON array:
[
  {
    "title": "Slide title",
    "content": ["Bullet point 1", "Bullet point 2", "Bullet point 3"],
    "notes": "Speaker notes for this slide"
  }
]

Make it clear, concise, and engaging.`

const studyPlanPrompt = `Create a comprehensive study plan for learning: %s

Please include:
1. Overview of key concepts
2. Suggested timeline (weeks/days)
3. Learning resources
4. Practice exercises or projects
5. Milestones and checkpoints

Make it practical and actionable for a student.`

// QuizInstruction is the question-style phrase embedded in the quiz prompt.
// Unknown quiz types, multiple-answer included, share the default branch.
func QuizInstruction(quizType entity.QuizType) string {
	switch quizType {
	case entity.QuizTypeMixed:
		return "a mixture of multiple choice, true/false, and multiple answer questions"
	case entity.QuizTypeMultipleChoice:
		return "multiple choice questions with 4 options each"
	case entity.QuizTypeTrueFalse:
		return "true or false questions"
	default:
		return "multiple answer questions (select all that apply) with 5 options each"
	}
}

// BuildMessages maps a validated request onto the normalized upstream conversation
func BuildMessages(req entity.AiRequest) ([]entity.ChatMessage, error) {
	var prompt string

	switch r := req.(type) {
	case entity.SummarizeRequest:
		prompt = fmt.Sprintf(summarizePrompt, r.Notes)
	case entity.QuizRequest:
		prompt = fmt.Sprintf(quizPrompt, r.NumQuestions, QuizInstruction(r.QuizType), r.Notes)
	case entity.FlashcardsRequest:
		prompt = fmt.Sprintf(flashcardsPrompt, r.Notes)
	case entity.PresentationRequest:
		prompt = fmt.Sprintf(presentationPrompt, r.Notes)
	case entity.StudyPlanRequest:
		prompt = fmt.Sprintf(studyPlanPrompt, r.Topic)
	case entity.ChatRequest:
		return normalizeHistory(r.History), nil
	default:
		return nil, entity.ErrInvalidRequestType
	}

	return []entity.ChatMessage{{Role: entity.RoleUser, Content: prompt}}, nil
}

// normalizeHistory keeps order and length; every non-user role becomes the model role
func normalizeHistory(history []entity.ChatTurn) []entity.ChatMessage {
	messages := make([]entity.ChatMessage, 0, len(history))
	for _, turn := range history {
		role := entity.RoleModel
		if turn.Role == entity.RoleUser {
			role = entity.RoleUser
		}
		messages = append(messages, entity.ChatMessage{Role: role, Content: turn.Content})
	}
	return messages
}
