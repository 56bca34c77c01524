package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/cow-flashcards-bot/internal/service"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// Remove the user's "clock" whatever happens below.
	notice := ""
	defer func() {
		if _, err := h.bot.Request(tgbotapi.NewCallback(cb.ID, notice)); err != nil {
			h.logger.Warn("callback answer error", zap.Error(err))
		}
	}()

	if cb.Message == nil || cb.Message.Chat == nil {
		h.logger.Debug("callback without message", zap.String("data", cb.Data))
		return
	}
	chatID := cb.Message.Chat.ID

	data := decodeCallback(cb.Data)
	switch data.Action {
	case actionReveal:
		index, ok := data.revealIndex()
		if !ok {
			h.logger.Warn("invalid reveal callback", zap.String("data", cb.Data))
			return
		}

		view, err := h.roundService.RevealAt(ctx, chatID, index)
		if errors.Is(err, service.ErrStaleRound) {
			notice = msgStaleButton
			h.clearKeyboard(chatID, cb.Message.MessageID)
			return
		}
		if err != nil {
			h.logger.Error("reveal failed",
				zap.Int64("chat_id", chatID),
				zap.Int("index", index),
				zap.Error(err),
			)
			h.sendError(chatID, msgInternalError)
			return
		}

		h.clearKeyboard(chatID, cb.Message.MessageID)

		if err := h.showReveal(chatID, view); err != nil {
			h.logger.Error("show reveal failed",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendError(chatID, msgInternalError)
		}

	default:
		h.logger.Debug("unknown callback action", zap.String("data", cb.Data))
	}
}

// clearKeyboard removes the inline keyboard from a message so the button
// cannot be pressed twice.
func (h *Handler) clearKeyboard(chatID int64, messageID int) {
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{},
	})
	if _, err := h.bot.Request(edit); err != nil {
		h.logger.Warn("failed to clear keyboard", zap.Error(err))
	}
}
