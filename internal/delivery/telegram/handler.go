package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Handler struct {
	bot          Bot
	logger       *zap.Logger
	roundService RoundService
	userService  UserService
	imagesDir    string
}

func NewHandler(
	bot Bot,
	logger *zap.Logger,
	roundService RoundService,
	userService UserService,
	imagesDir string,
) *Handler {
	return &Handler{
		bot:          bot,
		logger:       logger,
		roundService: roundService,
		userService:  userService,
		imagesDir:    imagesDir,
	}
}

// Run processes updates one at a time until ctx is cancelled.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID
	if from := update.Message.From; from != nil {
		h.ensureUser(ctx, from.ID, chatID)
	}

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			_ = h.withErrorHandling(h.handleStart())(ctx, chatID)

		case "cow":
			_ = h.withErrorHandling(h.handleCow())(ctx, chatID)

		case "reveal":
			_ = h.withErrorHandling(h.handleReveal())(ctx, chatID)

		case "help":
			h.send(newHTMLMessage(chatID, esc(msgHelp)))

		default:
			h.send(newHTMLMessage(chatID, esc(msgUnknownCommand)))
		}

		return
	}

	if update.Message.Text == "" {
		h.send(newPlainMessage(chatID, msgTextOnly))
		return
	}

	_ = h.withErrorHandling(h.handleGuess(update.Message.Text))(ctx, chatID)
}

func (h *Handler) ensureUser(ctx context.Context, userID, chatID int64) {
	created, err := h.userService.EnsureUser(ctx, userID, chatID)
	if err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return
	}
	if created {
		h.logger.Info("new user", zap.Int64("user_id", userID))
	}
}

func (h *Handler) sendError(chatID int64, text string) {
	h.send(newPlainMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}

// sendErr is send for handlers that must fail when delivery fails.
func (h *Handler) sendErr(c tgbotapi.Chattable) error {
	_, err := h.bot.Send(c)
	return err
}
