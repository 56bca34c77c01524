package storage

import (
	"sync"
	"time"

	"github.com/aliskhannn/cow-flashcards-bot/internal/domain/entities"
)

// Session is the round a chat is playing and when it was last touched.
type Session struct {
	State     entities.RoundState
	UpdatedAt time.Time
}

// RoundStorage provides in-memory storage for round sessions by chat ID.
type RoundStorage struct {
	mu       sync.RWMutex
	sessions map[int64]Session
}

// NewRoundStorage creates a new RoundStorage.
func NewRoundStorage() *RoundStorage {
	return &RoundStorage{
		sessions: make(map[int64]Session),
	}
}

// Get retrieves the session for a given chat ID.
func (s *RoundStorage) Get(chatID int64) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[chatID]
	return sess, ok
}

// Put saves the session for a given chat ID.
func (s *RoundStorage) Put(chatID int64, sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = sess
}

// Delete removes the session for a given chat ID.
func (s *RoundStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}

// Len returns the number of stored sessions.
func (s *RoundStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// EvictIdle removes sessions last updated before the given time and
// returns how many were removed.
func (s *RoundStorage) EvictIdle(before time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for chatID, sess := range s.sessions {
		if sess.UpdatedAt.Before(before) {
			delete(s.sessions, chatID)
			evicted++
		}
	}
	return evicted
}
