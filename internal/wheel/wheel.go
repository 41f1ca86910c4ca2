package wheel

import "slices"

// Wheel turns pointer events on the rendered letter wheel into a candidate word.
type Wheel struct {
	letters   []string
	selection *Selection
	pointer   *Point
}

func New(letters []string) *Wheel {
	return &Wheel{
		letters:   slices.Clone(letters),
		selection: NewSelection(),
	}
}

// Reset swaps the letter set and drops any gesture in progress so no stale index survives.
func (that *Wheel) Reset(letters []string) {
	that.letters = slices.Clone(letters)
	that.selection.Reset()
	that.pointer = nil
}

// PointerDown - begins a gesture if the pointer lands on a letter.
func (that *Wheel) PointerDown(p Point, viewport Viewport) {
	logical := viewport.ToLogical(p)

	that.selection.Begin(HitTest(logical, len(that.letters)))
	if that.selection.IsActive() {
		that.pointer = &logical
	}
}

// PointerMove - extends the gesture. Moves are ignored while no gesture is active.
func (that *Wheel) PointerMove(p Point, viewport Viewport) {
	if !that.selection.IsActive() {
		return
	}

	logical := viewport.ToLogical(p)
	that.pointer = &logical
	that.selection.Extend(HitTest(logical, len(that.letters)))
}

// PointerUp - ends the gesture and returns the candidate word, possibly empty.
func (that *Wheel) PointerUp() string {
	that.pointer = nil

	return that.selection.End(that.letters)
}

// PointerLeave behaves like PointerUp.
func (that *Wheel) PointerLeave() string {
	return that.PointerUp()
}

func (that *Wheel) IsActive() bool {
	return that.selection.IsActive()
}

func (that *Wheel) CurrentWord() string {
	return that.selection.Word(that.letters)
}

func (that *Wheel) Letters() []string {
	return slices.Clone(that.letters)
}

func (that *Wheel) Selected() []int {
	return that.selection.Indices()
}

// Path - returns the canvas points of the connection line: every selected letter,
// then the live pointer position.
func (that *Wheel) Path() []Point {
	indices := that.selection.Indices()
	if len(indices) == 0 {
		return nil
	}

	path := make([]Point, 0, len(indices)+1)
	for _, i := range indices {
		path = append(path, PositionOf(i, len(that.letters)))
	}

	if that.pointer != nil {
		path = append(path, *that.pointer)
	}

	return path
}
