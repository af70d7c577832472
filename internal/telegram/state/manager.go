package state

import (
	"sync"

	"github.com/futig/study-portal-ai/internal/entity"
)

// Manager serializes read-modify-write access to chat state
type Manager struct {
	storage    Storage
	maxHistory int
	mu         sync.Mutex
}

// NewManager creates a state manager that keeps at most maxHistory chat turns per chat
func NewManager(storage Storage, maxHistory int) *Manager {
	return &Manager{
		storage:    storage,
		maxHistory: maxHistory,
	}
}

// History returns a copy of the chat's conversation
func (m *Manager) History(chatID int64) []entity.ChatTurn {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.storage.Get(chatID)
	if !ok {
		return nil
	}
	return append([]entity.ChatTurn(nil), st.History...)
}

// AppendHistory adds turns and drops the oldest ones beyond the limit.
// History never starts with an assistant turn.
func (m *Manager) AppendHistory(chatID int64, turns ...entity.ChatTurn) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := m.load(chatID)
	st.History = append(st.History, turns...)

	if m.maxHistory > 0 && len(st.History) > m.maxHistory {
		st.History = st.History[len(st.History)-m.maxHistory:]
	}
	for len(st.History) > 0 && st.History[0].Role != entity.RoleUser {
		st.History = st.History[1:]
	}

	m.storage.Set(chatID, st)
}

func (m *Manager) SetLastResult(chatID int64, result *LastResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := m.load(chatID)
	st.LastResult = result
	m.storage.Set(chatID, st)
}

func (m *Manager) LastResult(chatID int64) (*LastResult, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.storage.Get(chatID)
	if !ok || st.LastResult == nil {
		return nil, false
	}
	return st.LastResult, true
}

// Reset forgets everything about the chat
func (m *Manager) Reset(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.storage.Delete(chatID)
}

func (m *Manager) load(chatID int64) *ChatState {
	if st, ok := m.storage.Get(chatID); ok {
		return st
	}
	return &ChatState{}
}
