package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/wordwheel-backend/internal/apperror"
	"github.com/rocketscienceinc/wordwheel-backend/internal/provider"
)

const hintPlaceholder = "Hidden word"

// Hint - buys a hint for the first word not found yet. The coins are spent before
// the provider is asked and are kept even if it fails.
func (that *LevelController) Hint() error {
	that.mu.Lock()
	defer that.unlock()

	log := that.logger.With("method", "Hint")

	if err := that.requireActive(); err != nil {
		return err
	}

	if that.hintPending {
		return apperror.ErrHintPending
	}

	if err := that.user.Spend(that.config.HintCost); err != nil {
		that.queue(EventNotice, NoticePayload{Text: NoticeNotEnoughCoins})

		return fmt.Errorf("failed to buy hint: %w", err)
	}

	that.userChanged()

	placement, ok := that.level.FirstUnfound()
	if !ok {
		return nil
	}

	word := placement.Word
	token := that.hintTokens.Next()
	that.hintPending = true
	that.queue(EventLevelState, that.snapshot())

	log.Debug("hint requested", "coins", that.user.Coins)

	go func() {
		text := that.fetchHint(word)

		that.mu.Lock()
		defer that.unlock()

		if that.state == StateClosed || !that.hintTokens.IsCurrent(token) {
			that.logger.Debug("discarding stale hint")

			return
		}

		that.hintPending = false

		message := fmt.Sprintf("Hint for %d letter word: %s", len([]rune(word)), text)
		that.queue(EventHint, HintPayload{Length: len([]rune(word)), Text: message})
		that.queue(EventNotice, NoticePayload{Text: message})
	}()

	return nil
}

func (that *LevelController) fetchHint(word string) string {
	ctx, cancel := context.WithTimeout(that.ctx, that.config.ProviderTimeout)
	defer cancel()

	text, err := that.hints.Hint(ctx, word)
	if err != nil {
		that.logger.Warn("failed to get hint, using placeholder", "error", err)

		return hintPlaceholder
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return provider.MysteryHint
	}

	return text
}
