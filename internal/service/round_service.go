package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aliskhannn/cow-flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/cow-flashcards-bot/internal/storage"
)

var ErrStaleRound = errors.New("round has already moved on")

// RoundView is what a chat should display after an action.
type RoundView struct {
	State   entities.RoundState
	Cow     entities.Cow // cow on screen now
	Checked entities.Cow // cow the last check was made against, zero if nothing was checked
}

// RoundService runs one round per chat on top of the pure reducer.
type RoundService struct {
	catalog Catalog
	picker  IndexPicker
	rounds  RoundStore
	now     func() time.Time
}

func NewRoundService(catalog Catalog, picker IndexPicker, rounds RoundStore) *RoundService {
	return &RoundService{
		catalog: catalog,
		picker:  picker,
		rounds:  rounds,
		now:     time.Now,
	}
}

// Start begins a fresh round for the chat, discarding any round in progress.
func (s *RoundService) Start(ctx context.Context, chatID int64) (*RoundView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	state := NewRound(s.catalog, s.picker)
	return s.save(chatID, state, entities.Cow{})
}

// Current returns the chat's round, starting one if there is none.
func (s *RoundService) Current(ctx context.Context, chatID int64) (*RoundView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sess, ok := s.rounds.Get(chatID)
	if !ok {
		return s.Start(ctx, chatID)
	}

	cow, err := s.catalog.EntryAt(sess.State.CurrentIndex)
	if err != nil {
		return nil, err
	}
	return &RoundView{State: sess.State, Cow: cow}, nil
}

// Guess types text into the chat's answer field and checks it. A chat
// without a round gets a fresh one instead, unchecked.
func (s *RoundService) Guess(ctx context.Context, chatID int64, text string) (*RoundView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sess, ok := s.rounds.Get(chatID)
	if !ok {
		// Nothing has been shown yet, so there is nothing to check against.
		return s.Start(ctx, chatID)
	}
	state := sess.State

	checked, err := s.catalog.EntryAt(state.CurrentIndex)
	if err != nil {
		return nil, err
	}

	for _, ev := range []Event{InputChanged(text), Check()} {
		state, err = Reduce(state, ev, s.catalog, s.picker)
		if err != nil {
			return nil, fmt.Errorf("apply event %d: %w", ev.Kind, err)
		}
	}

	return s.save(chatID, state, checked)
}

// Reveal shows the name of the chat's current cow. It has no effect until
// the player has guessed wrong at least once.
func (s *RoundService) Reveal(ctx context.Context, chatID int64) (*RoundView, error) {
	return s.RevealAt(ctx, chatID, -1)
}

// RevealAt is Reveal for a button issued while the cow at index was shown.
// A negative index skips the check. Buttons from an earlier cow return
// ErrStaleRound.
func (s *RoundService) RevealAt(ctx context.Context, chatID int64, index int) (*RoundView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sess, ok := s.rounds.Get(chatID)
	if !ok {
		return s.Start(ctx, chatID)
	}
	state := sess.State
	if index >= 0 && index != state.CurrentIndex {
		return nil, ErrStaleRound
	}

	state, err := Reduce(state, Reveal(), s.catalog, s.picker)
	if err != nil {
		return nil, err
	}

	return s.save(chatID, state, entities.Cow{})
}

func (s *RoundService) save(chatID int64, state entities.RoundState, checked entities.Cow) (*RoundView, error) {
	cow, err := s.catalog.EntryAt(state.CurrentIndex)
	if err != nil {
		return nil, err
	}

	s.rounds.Put(chatID, storage.Session{State: state, UpdatedAt: s.now()})

	return &RoundView{State: state, Cow: cow, Checked: checked}, nil
}
