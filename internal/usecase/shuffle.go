package usecase

import (
	"math/rand/v2"
	"slices"

	"github.com/rocketscienceinc/wordwheel-backend/internal/apperror"
)

// Shuffle - permutes the wheel letters of the loaded level. Placements and found
// flags are untouched. Not allowed mid-gesture.
func (that *LevelController) Shuffle() error {
	that.mu.Lock()
	defer that.unlock()

	switch {
	case that.state == StateClosed:
		return apperror.ErrSessionClosed
	case that.level == nil:
		return apperror.ErrLevelNotActive
	case that.wheel.IsActive():
		return apperror.ErrGestureActive
	}

	that.level.Letters = shuffled(that.level.Letters)
	that.wheel.Reset(that.level.Letters)

	that.queue(EventLevelState, that.snapshot())

	return nil
}

// shuffled returns a Fisher-Yates permutation of letters that differs from the input
// whenever the letters are not all equal.
func shuffled(letters []string) []string {
	result := slices.Clone(letters)

	rand.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})

	// rotating by one changes any sequence that is not uniform
	if slices.Equal(result, letters) && len(result) > 1 {
		result = append(result[1:], result[0])
	}

	return result
}
