package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/cow-flashcards-bot/internal/service"
)

// Bot is the part of *tgbotapi.BotAPI the handler uses.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type UserService interface {
	EnsureUser(ctx context.Context, userID, chatID int64) (bool, error)
}

type RoundService interface {
	Start(ctx context.Context, chatID int64) (*service.RoundView, error)
	Current(ctx context.Context, chatID int64) (*service.RoundView, error)
	Guess(ctx context.Context, chatID int64, text string) (*service.RoundView, error)
	Reveal(ctx context.Context, chatID int64) (*service.RoundView, error)
	RevealAt(ctx context.Context, chatID int64, index int) (*service.RoundView, error)
}
