package storage

import (
	"context"
	"sync"

	"github.com/aliskhannn/cow-flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/cow-flashcards-bot/internal/repository"
)

// UserStorage keeps known users in memory. It is used when no database
// is configured and mirrors repository.UserRepository.
type UserStorage struct {
	mu    sync.RWMutex
	users map[int64]entities.User
}

// NewUserStorage creates a new UserStorage.
func NewUserStorage() *UserStorage {
	return &UserStorage{
		users: make(map[int64]entities.User),
	}
}

// Save stores the user unless it is already known.
func (s *UserStorage) Save(_ context.Context, user *entities.User) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; ok {
		return false, nil
	}
	s.users[user.ID] = *user
	return true, nil
}

// Exists checks if a user with the given ID is stored.
func (s *UserStorage) Exists(_ context.Context, userID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[userID]
	return ok, nil
}

// GetByID retrieves a user by ID.
func (s *UserStorage) GetByID(_ context.Context, userID int64) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}
