package render

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/futig/study-portal-ai/internal/entity"
)

// MaxMessageLength is Telegram's limit for one text message
const MaxMessageLength = 4096

const (
	MsgWelcome = `👋 Hi! I am your study assistant.

Send me your notes and I can:
• summarize them
• build a quiz or flashcards
• outline a presentation
• plan how to learn a topic

Or just write a message to chat. /help lists all commands.`

	MsgHelp = `Commands:

/summarize <notes> - concise summary
/quiz [n] [type] <notes> - quiz with n questions (default 5)
    types: mixed, multiple-choice, true-false, multiple-answer
/flashcards <notes> - 10 flashcards
/presentation <notes> - 5-8 slide outline
/plan <topic> - study plan
/reset - forget our conversation

Any other text continues the chat.`

	MsgReset       = "🧹 Conversation cleared."
	MsgExportHint  = "Download as a file:"
	MsgNothingSave = "Nothing to export yet. Generate something first."

	ErrGeneric        = "❌ Something went wrong. Please try again."
	ErrUnknownCommand = "❌ Unknown command. See /help"
	ErrTimeout        = "⏱ The AI service took too long. Please try again."
	ErrRateLimited    = "⏳ The AI service is busy right now. Please try again in a minute."
	ErrQuota          = "💳 The AI usage quota is exhausted. Please contact the administrator."
	ErrNotConfigured  = "⚙️ The AI service is not configured."
	ErrTooFast        = "⚠️ Too many requests. Please wait a little."
)

// UsageFor returns the usage hint for a command that was sent without input
func UsageFor(command string) string {
	switch command {
	case "quiz":
		return "Usage: /quiz [n] [type] <notes>\nExample: /quiz 5 true-false Photosynthesis converts light into chemical energy."
	case "plan":
		return "Usage: /plan <topic>\nExample: /plan Thermodynamics"
	default:
		return fmt.Sprintf("Usage: /%s <notes>", command)
	}
}

// TitleFor names an exported document after the operation that produced it
func TitleFor(kind entity.OperationKind, topic string) string {
	switch kind {
	case entity.OperationSummarize:
		return "Summary"
	case entity.OperationQuiz:
		return "Quiz"
	case entity.OperationFlashcards:
		return "Flashcards"
	case entity.OperationPresentation:
		return "Presentation outline"
	case entity.OperationStudyPlan:
		if topic != "" {
			return "Study plan: " + topic
		}
		return "Study plan"
	default:
		return "Study notes"
	}
}

// ClassifyError turns a translator error into a message for the user
func ClassifyError(err error) string {
	switch {
	case errors.Is(err, entity.ErrValidation):
		return "❌ " + err.Error()
	case errors.Is(err, entity.ErrRateLimited):
		return ErrRateLimited
	case errors.Is(err, entity.ErrQuotaExhausted):
		return ErrQuota
	case errors.Is(err, entity.ErrConfiguration):
		return ErrNotConfigured
	case errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout
	default:
		return ErrGeneric
	}
}

// SplitMessage cuts text into chunks that fit into one Telegram message,
// preferring line breaks as cut points.
func SplitMessage(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var chunks []string
	runes := []rune(text)
	for len(runes) > limit {
		cut := limit
		if i := lastIndexRune(runes[:limit], '\n'); i > limit/2 {
			cut = i + 1
		}
		chunks = append(chunks, strings.TrimRight(string(runes[:cut]), "\n"))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}

func lastIndexRune(runes []rune, r rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == r {
			return i
		}
	}
	return -1
}
