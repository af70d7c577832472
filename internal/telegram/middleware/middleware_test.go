package middleware

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingNotifier struct {
	texts []string
}

func (n *recordingNotifier) Send(chatID int64, text string, markup any) error {
	n.texts = append(n.texts, text)
	return nil
}

type denyAfter struct {
	left int
}

func (d *denyAfter) Allow(key string) bool {
	if d.left == 0 {
		return false
	}
	d.left--
	return true
}

func textUpdate(userID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: 1,
		Message: &tgbotapi.Message{
			From: &tgbotapi.User{ID: userID},
			Chat: &tgbotapi.Chat{ID: userID},
			Text: text,
		},
	}
}

func TestRateLimiter_WarnsOnce(t *testing.T) {
	notifier := &recordingNotifier{}
	rl := NewRateLimiterMiddleware(&denyAfter{left: 1}, notifier, zap.NewNop())

	handled := 0
	for i := 0; i < 4; i++ {
		rl.Handle(textUpdate(5, "hi"), func(tgbotapi.Update) { handled++ })
	}

	if handled != 1 {
		t.Errorf("expected one handled update, got %d", handled)
	}
	if len(notifier.texts) != 1 {
		t.Errorf("expected a single warning, got %d", len(notifier.texts))
	}
}

func TestRecovery(t *testing.T) {
	notifier := &recordingNotifier{}
	core, logs := observer.New(zap.ErrorLevel)
	m := NewRecoveryMiddleware(zap.New(core), notifier)

	m.Handle(textUpdate(5, "hi"), func(tgbotapi.Update) { panic("boom") })

	if logs.FilterMessage("panic recovered in telegram handler").Len() != 1 {
		t.Error("panic must be logged")
	}
	if len(notifier.texts) != 1 {
		t.Error("user must be told about the failure")
	}
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	m := NewLoggingMiddleware(zap.New(core))

	m.Handle(textUpdate(5, "secret notes"), func(tgbotapi.Update) {})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["type"] != "text" || fields["user_id"] != int64(5) {
		t.Errorf("unexpected fields %v", fields)
	}
	for _, v := range fields {
		if v == "secret notes" {
			t.Error("message text must not be logged")
		}
	}
}
