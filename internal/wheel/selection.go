package wheel

import (
	"slices"
	"strings"
)

// Selection tracks the ordered letter indices of the gesture in progress.
type Selection struct {
	indices []int
}

func NewSelection() *Selection {
	return &Selection{}
}

// Begin starts a new selection at hit. A miss leaves the selection untouched.
func (that *Selection) Begin(hit int) {
	if hit == NoLetter {
		return
	}

	that.indices = append(that.indices[:0], hit)
}

// Extend applies one pointer-move hit. Sliding back onto the second-to-last letter
// retracts the last one; a new letter is appended; anything else is ignored.
func (that *Selection) Extend(hit int) {
	if hit == NoLetter {
		return
	}

	if n := len(that.indices); n >= 2 && that.indices[n-2] == hit {
		that.indices = that.indices[:n-1]
		return
	}

	if slices.Contains(that.indices, hit) {
		return
	}

	that.indices = append(that.indices, hit)
}

// Word - returns the letters at the selected indices joined in order.
func (that *Selection) Word(letters []string) string {
	var builder strings.Builder
	for _, i := range that.indices {
		if i >= 0 && i < len(letters) {
			builder.WriteString(letters[i])
		}
	}

	return builder.String()
}

// End - returns the candidate word and clears the selection.
func (that *Selection) End(letters []string) string {
	word := that.Word(letters)
	that.Reset()

	return word
}

func (that *Selection) Reset() {
	that.indices = that.indices[:0]
}

func (that *Selection) Indices() []int {
	return slices.Clone(that.indices)
}

func (that *Selection) Len() int {
	return len(that.indices)
}

func (that *Selection) IsActive() bool {
	return len(that.indices) > 0
}

func (that *Selection) Contains(index int) bool {
	return slices.Contains(that.indices, index)
}
