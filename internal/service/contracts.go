package service

import (
	"context"
	"time"

	"github.com/aliskhannn/cow-flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/cow-flashcards-bot/internal/storage"
)

// Catalog is the read-only cow table a round draws from.
type Catalog interface {
	Size() int
	EntryAt(index int) (entities.Cow, error)
}

// IndexPicker draws an index uniformly from [0, n).
type IndexPicker interface {
	Pick(n int) int
}

type RoundStore interface {
	Get(chatID int64) (storage.Session, bool)
	Put(chatID int64, sess storage.Session)
}

// IdleEvicter drops sessions that have not been touched since before.
type IdleEvicter interface {
	EvictIdle(before time.Time) int
}

type UserRepository interface {
	Save(ctx context.Context, user *entities.User) (bool, error)
}
