package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/aliskhannn/cow-flashcards-bot/internal/domain/entities"
)

var ErrUnknownEvent = errors.New("unknown round event")

// EventKind identifies what the player did.
type EventKind int

const (
	EventInputChanged EventKind = iota + 1
	EventCheck
	EventReveal
)

// Event is a single player action applied to a round.
type Event struct {
	Kind EventKind
	Text string // new input text, for EventInputChanged
}

func InputChanged(text string) Event {
	return Event{Kind: EventInputChanged, Text: text}
}

func Check() Event {
	return Event{Kind: EventCheck}
}

func Reveal() Event {
	return Event{Kind: EventReveal}
}

// NewRound starts a round on a randomly drawn cow with all flags cleared.
func NewRound(catalog Catalog, picker IndexPicker) entities.RoundState {
	return entities.NewRoundState(picker.Pick(catalog.Size()))
}

// Reduce applies ev to s and returns the next state. The input state is
// never modified. The picker is consulted only when a correct check starts
// the next round.
func Reduce(s entities.RoundState, ev Event, catalog Catalog, picker IndexPicker) (entities.RoundState, error) {
	switch ev.Kind {
	case EventInputChanged:
		// The reveal button survives editing; only the result message goes away.
		s.InputText = ev.Text
		s.Result = entities.ResultNone
		return s, nil

	case EventCheck:
		cow, err := catalog.EntryAt(s.CurrentIndex)
		if err != nil {
			return s, fmt.Errorf("current cow: %w", err)
		}

		if !CheckAnswer(cow.Name, s.InputText) {
			s.Result = entities.ResultWrong
			s.RevealAvailable = true
			return s, nil
		}

		next := NewRound(catalog, picker)
		next.Result = entities.ResultCorrect
		return next, nil

	case EventReveal:
		if s.RevealAvailable {
			s.NameRevealed = true
		}
		return s, nil

	default:
		return s, fmt.Errorf("%w: %d", ErrUnknownEvent, ev.Kind)
	}
}

// RandomPicker is an IndexPicker backed by a seeded math/rand source.
type RandomPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewIndexPicker creates a picker seeded with seed, or with the current
// time when seed is zero.
func NewIndexPicker(seed int64) *RandomPicker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomPicker{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns a uniformly distributed index in [0, n). It panics if n <= 0.
func (p *RandomPicker) Pick(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Intn(n)
}
