package service

import (
	"context"

	"github.com/aliskhannn/cow-flashcards-bot/internal/domain/entities"
)

type UserService struct {
	repository UserRepository
}

func NewUserService(repository UserRepository) *UserService {
	return &UserService{repository: repository}
}

// EnsureUser records the user on first contact and reports whether the
// user is new.
func (s *UserService) EnsureUser(ctx context.Context, userID, chatID int64) (bool, error) {
	user := entities.NewUser(userID, chatID)
	return s.repository.Save(ctx, user)
}
