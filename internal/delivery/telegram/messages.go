// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	msgWelcome = "🐄 <b>Cow Flashcards</b>\n\n" +
		"I show you a cow, you tell me its name.\n" +
		"Type the name and send it to check. Capital letters don't matter.\n\n" +
		"Guessed wrong? Press <b>Reveal</b> or use /reveal to see who it is."
	msgHelp = "/start - start over with a new cow\n" +
		"/cow - show the current cow again\n" +
		"/reveal - show the name after a wrong guess\n" +
		"/help - this message\n\n" +
		"Any other text is a guess."
	msgWhoIsThis       = "Who is this cow?"
	msgNothingToReveal = "Make a guess first. The name can be revealed after a wrong answer."
	msgTextOnly        = "Send the cow's name as text."
	msgStaleButton     = "That cow is gone already."
	msgInternalError   = "Something went wrong. Please try again later."
	msgUnknownCommand  = "Unknown command.\n\n" + msgHelp
)

// esc escapes plain text for HTML parse mode.
func esc(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}

func bold(s string) string {
	return "<b>" + esc(s) + "</b>"
}

// newHTMLMessage creates a message with HTML parse mode.
func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

// newPlainMessage creates a plain message without parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}
