package matcher

import (
	"strings"

	"github.com/rocketscienceinc/wordwheel-backend/internal/entity"
)

type Kind string

const (
	NewMatch     Kind = "new_match"
	AlreadyFound Kind = "already_found"
	NoMatch      Kind = "no_match"
)

type Result struct {
	Kind Kind
	Word string
	// Placements holds the indices marked found by a NewMatch, in declaration order.
	Placements []int
}

func (that Result) IsNewMatch() bool {
	return that.Kind == NewMatch
}

// Normalize - trims and upper-cases a candidate word.
func Normalize(candidate string) string {
	return strings.ToUpper(strings.TrimSpace(candidate))
}

// Submit matches a candidate against the level's placements.
// A new match marks every placement carrying the same word text as found;
// AlreadyFound and NoMatch leave the placements untouched.
func Submit(candidate string, placements []entity.Placement) Result {
	word := Normalize(candidate)
	if word == "" {
		return Result{Kind: NoMatch}
	}

	var (
		unfound []int
		matched bool
	)

	for i := range placements {
		if placements[i].Word != word {
			continue
		}

		matched = true
		if !placements[i].Found {
			unfound = append(unfound, i)
		}
	}

	switch {
	case !matched:
		return Result{Kind: NoMatch, Word: word}
	case len(unfound) == 0:
		return Result{Kind: AlreadyFound, Word: word}
	}

	for _, i := range unfound {
		placements[i].MarkFound()
	}

	return Result{Kind: NewMatch, Word: word, Placements: unfound}
}

// Complete reports whether every placement has been found.
func Complete(placements []entity.Placement) bool {
	if len(placements) == 0 {
		return false
	}

	for _, placement := range placements {
		if !placement.Found {
			return false
		}
	}

	return true
}
