package handlers

import (
	"context"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Telegram drops the typing status after 5 seconds
const typingInterval = 4 * time.Second

// TypingNotifier keeps the "typing" status visible while a generation runs
type TypingNotifier struct {
	sender Sender
	chatID int64
	done   chan struct{}
}

func NewTypingNotifier(sender Sender, chatID int64) *TypingNotifier {
	return &TypingNotifier{
		sender: sender,
		chatID: chatID,
		done:   make(chan struct{}),
	}
}

func (t *TypingNotifier) Start(ctx context.Context) {
	t.send(ctx)

	go func() {
		ticker := time.NewTicker(typingInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				t.send(ctx)
			case <-t.done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop must be called exactly once after Start
func (t *TypingNotifier) Stop() {
	close(t.done)
}

func (t *TypingNotifier) send(ctx context.Context) {
	if err := t.sender.Typing(t.chatID); err != nil {
		ctxzap.Debug(ctx, "failed to send typing action", zap.Error(err), zap.Int64("chat_id", t.chatID))
	}
}
