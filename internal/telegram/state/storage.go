package state

import (
	"strconv"
	"time"

	"github.com/futig/study-portal-ai/internal/entity"
	"github.com/patrickmn/go-cache"
)

// ChatState is everything the bot remembers about one chat
type ChatState struct {
	History    []entity.ChatTurn
	LastResult *LastResult
}

// LastResult is the most recent generated text, kept for export buttons
type LastResult struct {
	Kind  entity.OperationKind
	Title string
	Text  string
}

// Storage keeps chat state by chat ID
type Storage interface {
	Get(chatID int64) (*ChatState, bool)
	Set(chatID int64, st *ChatState)
	Delete(chatID int64)
}

var _ Storage = &CacheStorage{}

// CacheStorage keeps chat state in process memory. Idle chats expire after ttl.
type CacheStorage struct {
	store *cache.Cache
}

func NewCacheStorage(ttl time.Duration) *CacheStorage {
	return &CacheStorage{
		store: cache.New(ttl, ttl/2),
	}
}

func (s *CacheStorage) Get(chatID int64) (*ChatState, bool) {
	v, ok := s.store.Get(key(chatID))
	if !ok {
		return nil, false
	}
	st, ok := v.(*ChatState)
	return st, ok
}

func (s *CacheStorage) Set(chatID int64, st *ChatState) {
	s.store.SetDefault(key(chatID), st)
}

func (s *CacheStorage) Delete(chatID int64) {
	s.store.Delete(key(chatID))
}

func key(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}
