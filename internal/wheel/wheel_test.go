package wheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var letters = []string{"W", "A", "T", "E", "R"}

func TestPositionOf(t *testing.T) {
	t.Run("First letter sits at the top of the wheel", func(t *testing.T) {
		p := PositionOf(0, 3)

		assert.InDelta(t, Center, p.X, 1e-9)
		assert.InDelta(t, Center-Radius, p.Y, 1e-9)
	})

	t.Run("Letters advance clockwise", func(t *testing.T) {
		// Given: four letters, the second one is 90 degrees clockwise from the top
		p := PositionOf(1, 4)

		// Then: it sits on the right
		assert.InDelta(t, Center+Radius, p.X, 1e-9)
		assert.InDelta(t, Center, p.Y, 1e-9)
	})

	t.Run("Every letter stays on the circle", func(t *testing.T) {
		for total := 3; total <= 7; total++ {
			for i := 0; i < total; i++ {
				p := PositionOf(i, total)
				assert.InDelta(t, Radius, p.distance(Point{X: Center, Y: Center}), 1e-9)
			}
		}
	})
}

func TestHitTest(t *testing.T) {
	t.Run("Returns the letter under the point", func(t *testing.T) {
		for i := range letters {
			assert.Equal(t, i, HitTest(PositionOf(i, len(letters)), len(letters)))
		}
	})

	t.Run("Returns NoLetter in the middle of the wheel", func(t *testing.T) {
		assert.Equal(t, NoLetter, HitTest(Point{X: Center, Y: Center}, len(letters)))
	})

	t.Run("Hit radius is exclusive", func(t *testing.T) {
		top := PositionOf(0, 3)

		assert.Equal(t, 0, HitTest(Point{X: top.X, Y: top.Y - HitRadius + 0.01}, 3))
		assert.Equal(t, NoLetter, HitTest(Point{X: top.X, Y: top.Y - HitRadius}, 3))
	})

	t.Run("Points between neighbours resolve to the nearer letter", func(t *testing.T) {
		// Given: a point between two neighbouring letters of seven
		a, b := PositionOf(0, 7), PositionOf(1, 7)
		closerToB := Point{X: a.X + (b.X-a.X)*0.6, Y: a.Y + (b.Y-a.Y)*0.6}

		// Then: the point resolves to the closer letter
		assert.Equal(t, 1, HitTest(closerToB, 7))
	})
}

func TestViewport_ToLogical(t *testing.T) {
	// Given: a wheel rendered at twice the logical size
	viewport := Viewport{Width: 520, Height: 520}

	// When: the pointer is at the top letter in rendered pixels
	p := viewport.ToLogical(Point{X: 260, Y: 100})

	// Then: it maps back onto the top letter
	assert.Equal(t, Point{X: 130, Y: 50}, p)
	assert.Equal(t, 0, HitTest(p, 3))

	assert.Equal(t, Point{X: 3, Y: 4}, Viewport{}.ToLogical(Point{X: 3, Y: 4}))
}

func TestSelection(t *testing.T) {
	t.Run("Begin ignores misses", func(t *testing.T) {
		selection := NewSelection()

		selection.Begin(NoLetter)

		assert.False(t, selection.IsActive())
	})

	t.Run("Extend appends new letters and builds the word", func(t *testing.T) {
		// Given: a selection started on W
		selection := NewSelection()
		selection.Begin(0)

		// When: the pointer passes over A, T, E
		selection.Extend(1)
		selection.Extend(2)
		selection.Extend(3)

		// Then: the word is the join of the tracked letters
		assert.Equal(t, []int{0, 1, 2, 3}, selection.Indices())
		assert.Equal(t, "WATE", selection.Word(letters))
	})

	t.Run("Sliding back to the second-to-last letter retracts exactly one", func(t *testing.T) {
		// Given: W A T selected
		selection := NewSelection()
		selection.Begin(0)
		selection.Extend(1)
		selection.Extend(2)

		// When: the pointer slides back onto A
		selection.Extend(1)

		// Then: only T is dropped
		assert.Equal(t, []int{0, 1}, selection.Indices())
		assert.Equal(t, "WA", selection.Word(letters))

		// When: the pointer slides back onto W
		selection.Extend(0)

		// Then: only A is dropped
		assert.Equal(t, []int{0}, selection.Indices())
	})

	t.Run("Revisiting an earlier letter is a no-op", func(t *testing.T) {
		// Given: W A T E selected
		selection := NewSelection()
		selection.Begin(0)
		selection.Extend(1)
		selection.Extend(2)
		selection.Extend(3)

		// When: the pointer crosses W and A again, and stays on E
		selection.Extend(0)
		selection.Extend(1)
		selection.Extend(3)
		selection.Extend(NoLetter)

		// Then: the selection is unchanged
		assert.Equal(t, []int{0, 1, 2, 3}, selection.Indices())
	})

	t.Run("End returns the word and resets", func(t *testing.T) {
		selection := NewSelection()
		selection.Begin(4)
		selection.Extend(1)
		selection.Extend(3)

		word := selection.End(letters)

		assert.Equal(t, "RAE", word)
		assert.False(t, selection.IsActive())
		assert.Equal(t, "", selection.End(letters))
	})

	t.Run("Word skips indices outside the letter set", func(t *testing.T) {
		selection := NewSelection()
		selection.Begin(0)
		selection.Extend(9)

		assert.Equal(t, "A", selection.Word([]string{"A", "C", "T"}))
	})
}

func TestWheel(t *testing.T) {
	viewport := Viewport{Width: CanvasSize, Height: CanvasSize}
	at := func(i int) Point { return PositionOf(i, len(letters)) }

	t.Run("Traces a word from pointer events", func(t *testing.T) {
		// Given: a wheel with WATER
		w := New(letters)

		// When: the player traces W-A-R and lifts the pointer
		w.PointerDown(at(0), viewport)
		w.PointerMove(Point{X: Center, Y: Center}, viewport)
		w.PointerMove(at(1), viewport)
		w.PointerMove(at(4), viewport)

		// Then: the current word and the path follow the gesture
		assert.True(t, w.IsActive())
		assert.Equal(t, "WAR", w.CurrentWord())
		require.Len(t, w.Path(), 4)
		assert.Equal(t, at(4), w.Path()[3])

		assert.Equal(t, "WAR", w.PointerUp())
		assert.False(t, w.IsActive())
		assert.Nil(t, w.Path())
	})

	t.Run("Moves without a started gesture are ignored", func(t *testing.T) {
		// Given: a press outside every letter
		w := New(letters)
		w.PointerDown(Point{X: Center, Y: Center}, viewport)

		// When: the pointer then moves over letters
		w.PointerMove(at(1), viewport)
		w.PointerMove(at(2), viewport)

		// Then: nothing is selected
		assert.Equal(t, "", w.PointerLeave())
	})

	t.Run("Reset drops the selection of the previous letter set", func(t *testing.T) {
		w := New(letters)
		w.PointerDown(at(3), viewport)

		w.Reset([]string{"A", "C", "T"})

		assert.False(t, w.IsActive())
		assert.Equal(t, []string{"A", "C", "T"}, w.Letters())
		assert.Empty(t, w.Selected())
	})
}
