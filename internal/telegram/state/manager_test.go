package state

import (
	"fmt"
	"testing"
	"time"

	"github.com/futig/study-portal-ai/internal/entity"
)

func turn(role, content string) entity.ChatTurn {
	return entity.ChatTurn{Role: role, Content: content}
}

func TestManager_HistoryIsCapped(t *testing.T) {
	m := NewManager(NewCacheStorage(time.Hour), 4)

	for i := 0; i < 3; i++ {
		m.AppendHistory(42,
			turn(entity.RoleUser, fmt.Sprintf("q%d", i)),
			turn(entity.RoleAssistant, fmt.Sprintf("a%d", i)),
		)
	}

	history := m.History(42)
	if len(history) != 4 {
		t.Fatalf("expected 4 turns, got %d", len(history))
	}
	if history[0].Content != "q1" || history[3].Content != "a2" {
		t.Errorf("oldest turns must be dropped first: %+v", history)
	}
}

func TestManager_HistoryStartsWithUser(t *testing.T) {
	m := NewManager(NewCacheStorage(time.Hour), 3)

	m.AppendHistory(1, turn(entity.RoleUser, "q0"), turn(entity.RoleAssistant, "a0"))
	m.AppendHistory(1, turn(entity.RoleUser, "q1"), turn(entity.RoleAssistant, "a1"))

	history := m.History(1)
	if len(history) != 2 || history[0].Content != "q1" {
		t.Errorf("history must not start with an assistant turn: %+v", history)
	}
}

func TestManager_HistoryIsCopied(t *testing.T) {
	m := NewManager(NewCacheStorage(time.Hour), 10)
	m.AppendHistory(1, turn(entity.RoleUser, "q"))

	history := m.History(1)
	history[0].Content = "changed"

	if m.History(1)[0].Content != "q" {
		t.Error("callers must not mutate stored history")
	}
}

func TestManager_Reset(t *testing.T) {
	m := NewManager(NewCacheStorage(time.Hour), 10)
	m.AppendHistory(1, turn(entity.RoleUser, "q"))
	m.SetLastResult(1, &LastResult{Kind: entity.OperationSummarize, Text: "s"})
	m.AppendHistory(2, turn(entity.RoleUser, "other"))

	m.Reset(1)

	if len(m.History(1)) != 0 {
		t.Error("history must be cleared")
	}
	if _, ok := m.LastResult(1); ok {
		t.Error("last result must be cleared")
	}
	if len(m.History(2)) != 1 {
		t.Error("other chats must be untouched")
	}
}

func TestCacheStorage_Expires(t *testing.T) {
	s := NewCacheStorage(10 * time.Millisecond)
	s.Set(1, &ChatState{History: []entity.ChatTurn{turn(entity.RoleUser, "q")}})

	time.Sleep(30 * time.Millisecond)

	if _, ok := s.Get(1); ok {
		t.Error("idle chat state must expire")
	}
}
