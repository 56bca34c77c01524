package telegram

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/cow-flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/cow-flashcards-bot/internal/service"
)

// handleStart greets the player and deals a fresh cow.
func (h *Handler) handleStart() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		view, err := h.roundService.Start(ctx, chatID)
		if err != nil {
			return err
		}

		h.send(newHTMLMessage(chatID, msgWelcome))

		if err := h.sendErr(h.renderCow(chatID, view)); err != nil {
			return fmt.Errorf("send cow %q: %w", view.Cow.Image, err)
		}
		return nil
	}
}

// handleCow shows the current cow again, with its name if revealed.
func (h *Handler) handleCow() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		view, err := h.roundService.Current(ctx, chatID)
		if err != nil {
			return err
		}

		if err := h.sendErr(h.renderCow(chatID, view)); err != nil {
			return fmt.Errorf("send cow %q: %w", view.Cow.Image, err)
		}
		return nil
	}
}

// handleReveal shows the current cow's name after a wrong guess.
func (h *Handler) handleReveal() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		view, err := h.roundService.Reveal(ctx, chatID)
		if err != nil {
			return err
		}

		return h.showReveal(chatID, view)
	}
}

// handleGuess checks text against the current cow.
func (h *Handler) handleGuess(text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		view, err := h.roundService.Guess(ctx, chatID, text)
		if err != nil {
			return err
		}

		switch view.State.Result {
		case entities.ResultCorrect:
			h.logger.Info("correct guess",
				zap.Int64("chat_id", chatID),
				zap.String("cow", view.Checked.Name),
				zap.Int("next_index", view.State.CurrentIndex),
			)
			h.send(renderResult(chatID, view))

		case entities.ResultWrong:
			h.logger.Debug("wrong guess",
				zap.Int64("chat_id", chatID),
				zap.Int("index", view.State.CurrentIndex),
			)
			h.send(renderResult(chatID, view))
			return nil

		default:
			// No round was in progress; a new one has been dealt.
		}

		if err := h.sendErr(h.renderCow(chatID, view)); err != nil {
			return fmt.Errorf("send cow %q: %w", view.Cow.Image, err)
		}
		return nil
	}
}

func (h *Handler) showReveal(chatID int64, view *service.RoundView) error {
	if !view.State.NameRevealed {
		h.send(newPlainMessage(chatID, msgNothingToReveal))
		return nil
	}

	if err := h.sendErr(h.renderCow(chatID, view)); err != nil {
		return fmt.Errorf("send cow %q: %w", view.Cow.Image, err)
	}
	return nil
}
