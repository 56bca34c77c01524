package telegram

import (
	"path/filepath"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/cow-flashcards-bot/internal/service"
)

// renderCow builds the photo of the round's cow. The name is written in the
// caption only once it has been revealed.
func (h *Handler) renderCow(chatID int64, view *service.RoundView) tgbotapi.PhotoConfig {
	path := filepath.Join(h.imagesDir, view.Cow.Image)

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(path))
	photo.ParseMode = tgbotapi.ModeHTML
	if view.State.NameRevealed {
		photo.Caption = bold(view.Cow.Name)
	} else {
		photo.Caption = esc(msgWhoIsThis)
	}

	return photo
}

// renderResult builds the "Correct!"/"Wrong!" message for a checked guess.
// A wrong answer carries the reveal button, unless the name is already shown.
func renderResult(chatID int64, view *service.RoundView) tgbotapi.MessageConfig {
	msg := newPlainMessage(chatID, view.State.Result.String())
	if view.State.RevealAvailable && !view.State.NameRevealed {
		msg.ReplyMarkup = buildRevealKeyboard(view.State.CurrentIndex)
	}
	return msg
}
