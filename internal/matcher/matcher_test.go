package matcher

import (
	"testing"

	"github.com/rocketscienceinc/wordwheel-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placements() []entity.Placement {
	return []entity.Placement{
		{Word: "DOGS", StartX: 0, StartY: 1, Direction: entity.Horizontal},
		{Word: "DOG", StartX: 0, StartY: 1, Direction: entity.Horizontal},
		{Word: "GOD", StartX: 2, StartY: 1, Direction: entity.Vertical},
	}
}

func TestSubmit(t *testing.T) {
	t.Run("New match marks the placement found", func(t *testing.T) {
		// Given: fresh placements
		words := placements()

		// When: the player submits "dog" in lowercase
		result := Submit(" dog", words)

		// Then: only DOG is found, DOGS is a different word
		assert.Equal(t, NewMatch, result.Kind)
		assert.True(t, result.IsNewMatch())
		assert.Equal(t, "DOG", result.Word)
		assert.Equal(t, []int{1}, result.Placements)
		assert.False(t, words[0].Found)
		assert.True(t, words[1].Found)
		assert.False(t, words[2].Found)
	})

	t.Run("Resubmitting a found word yields AlreadyFound without mutation", func(t *testing.T) {
		// Given: DOG already found
		words := placements()
		Submit("DOG", words)
		before := append([]entity.Placement(nil), words...)

		// When: DOG is submitted again
		result := Submit("DOG", words)

		// Then: the result is AlreadyFound and nothing changed
		assert.Equal(t, AlreadyFound, result.Kind)
		assert.Empty(t, result.Placements)
		assert.Equal(t, before, words)
	})

	t.Run("Unknown words are NoMatch", func(t *testing.T) {
		words := placements()
		before := append([]entity.Placement(nil), words...)

		assert.Equal(t, NoMatch, Submit("SOD", words).Kind)
		assert.Equal(t, NoMatch, Submit("", words).Kind)
		assert.Equal(t, NoMatch, Submit("   ", words).Kind)
		assert.Equal(t, before, words)
	})

	t.Run("Identical word text at different positions is found together", func(t *testing.T) {
		// Given: the same word placed twice
		words := []entity.Placement{
			{Word: "TEA", StartX: 0, StartY: 0, Direction: entity.Horizontal},
			{Word: "ATE", StartX: 2, StartY: 0, Direction: entity.Vertical},
			{Word: "TEA", StartX: 0, StartY: 2, Direction: entity.Horizontal},
		}

		// When: TEA is submitted once
		result := Submit("TEA", words)

		// Then: both TEA placements are found
		require.Equal(t, NewMatch, result.Kind)
		assert.Equal(t, []int{0, 2}, result.Placements)
		assert.True(t, words[0].Found)
		assert.False(t, words[1].Found)
		assert.True(t, words[2].Found)

		// Then: a second submission is AlreadyFound
		assert.Equal(t, AlreadyFound, Submit("TEA", words).Kind)
	})
}

func TestComplete(t *testing.T) {
	words := placements()
	assert.False(t, Complete(words))

	for _, w := range []string{"DOGS", "DOG", "GOD"} {
		Submit(w, words)
	}

	assert.True(t, Complete(words))
	assert.False(t, Complete(nil))
}
