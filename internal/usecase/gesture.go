package usecase

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/wordwheel-backend/internal/apperror"
	"github.com/rocketscienceinc/wordwheel-backend/internal/matcher"
	"github.com/rocketscienceinc/wordwheel-backend/internal/wheel"
)

// PointerDown - begins a gesture on the wheel. Pointer events are only accepted
// while a level is active.
func (that *LevelController) PointerDown(p wheel.Point, viewport wheel.Viewport) error {
	that.mu.Lock()
	defer that.unlock()

	if err := that.requireActive(); err != nil {
		return err
	}

	that.wheel.PointerDown(p, viewport)
	if that.wheel.IsActive() {
		that.queue(EventLevelState, that.snapshot())
	}

	return nil
}

// PointerMove - extends the gesture in progress, if any.
func (that *LevelController) PointerMove(p wheel.Point, viewport wheel.Viewport) error {
	that.mu.Lock()
	defer that.unlock()

	if err := that.requireActive(); err != nil {
		return err
	}

	if !that.wheel.IsActive() {
		return nil
	}

	that.wheel.PointerMove(p, viewport)
	that.queue(EventLevelState, that.snapshot())

	return nil
}

// PointerUp - ends the gesture and submits the traced word.
func (that *LevelController) PointerUp() (matcher.Result, error) {
	that.mu.Lock()
	defer that.unlock()

	if err := that.requireActive(); err != nil {
		return matcher.Result{Kind: matcher.NoMatch}, err
	}

	return that.endGesture(that.wheel.PointerUp()), nil
}

// PointerLeave - ends the gesture the same way PointerUp does.
func (that *LevelController) PointerLeave() (matcher.Result, error) {
	that.mu.Lock()
	defer that.unlock()

	if err := that.requireActive(); err != nil {
		return matcher.Result{Kind: matcher.NoMatch}, err
	}

	return that.endGesture(that.wheel.PointerLeave()), nil
}

func (that *LevelController) requireActive() error {
	switch that.state {
	case StateClosed:
		return apperror.ErrSessionClosed
	case StateActive:
		return nil
	default:
		return fmt.Errorf("%w: %s", apperror.ErrLevelNotActive, that.state)
	}
}

func (that *LevelController) endGesture(candidate string) matcher.Result {
	if candidate == "" {
		that.queue(EventLevelState, that.snapshot())

		return matcher.Result{Kind: matcher.NoMatch}
	}

	return that.submit(candidate)
}

func (that *LevelController) submit(candidate string) matcher.Result {
	log := that.logger.With("method", "submit", "level", that.level.ID)

	result := matcher.Submit(candidate, that.level.Words)

	switch result.Kind {
	case matcher.NewMatch:
		log.Debug("word found", "word", result.Word)

		that.queue(EventWordFound, WordPayload{
			Word:  result.Word,
			Found: that.level.FoundCount(),
			Total: len(that.level.Words),
		})
		that.queue(EventLevelState, that.snapshot())

		if matcher.Complete(that.level.Words) {
			that.complete()
		}
	case matcher.AlreadyFound:
		that.queue(EventWordAlreadyFound, WordPayload{Word: result.Word})
		that.queue(EventNotice, NoticePayload{Text: NoticeAlreadyFound})
		that.queue(EventLevelState, that.snapshot())
	default:
		that.queue(EventWordMiss, WordPayload{Word: result.Word})
		that.queue(EventLevelState, that.snapshot())
	}

	return result
}

// complete awards the level reward once and schedules the advance to the next level.
func (that *LevelController) complete() {
	that.state = StateCompleting

	that.user.Reward(that.config.LevelReward)
	that.user.UnlockTheme(that.level.Theme)

	that.logger.Info("level complete", "id", that.level.ID, "coins", that.user.Coins)

	that.queue(EventLevelComplete, CompletePayload{
		LevelID: that.level.ID,
		Reward:  that.config.LevelReward,
		Coins:   that.user.Coins,
	})
	that.queue(EventNotice, NoticePayload{Text: fmt.Sprintf("Level Complete! +%d Coins", that.config.LevelReward)})
	that.userChanged()

	token := that.loads.Next()
	that.advance = time.AfterFunc(that.config.AdvanceDelay, func() {
		that.advanceLevel(token)
	})
}

func (that *LevelController) advanceLevel(token Token) {
	that.mu.Lock()
	defer that.unlock()

	if that.state != StateCompleting || !that.loads.IsCurrent(token) {
		return
	}

	that.advance = nil
	that.state = StateAdvancing

	that.user.AdvanceLevel()
	that.userChanged()

	that.load(that.user.CurrentLevelIndex)
}
