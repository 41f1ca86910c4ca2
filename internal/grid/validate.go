package grid

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/rocketscienceinc/wordwheel-backend/internal/apperror"
	"github.com/rocketscienceinc/wordwheel-backend/internal/entity"
)

var (
	ErrMissingField     = errors.New("missing required field")
	ErrBadLetter        = errors.New("letter must be a single uppercase character")
	ErrLetterNotOnWheel = errors.New("word uses letters outside the wheel")
	ErrBadDirection     = errors.New("unknown word direction")
	ErrCountOutOfRange  = errors.New("count out of range")
)

// Rules bound the shape of a level. Zero bounds are not enforced.
type Rules struct {
	MinLetters int
	MaxLetters int
	MinWords   int
	MaxWords   int
}

// GeneratedRules are the bounds a generated level has to respect.
var GeneratedRules = Rules{MinLetters: 5, MaxLetters: 7, MinWords: 4, MaxWords: 6}

// Validate - checks that a level is playable. Every failure wraps apperror.ErrInvalidLevel.
func Validate(level *entity.Level, rules Rules) error {
	if err := validate(level, rules); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidLevel, err)
	}

	return nil
}

func validate(level *entity.Level, rules Rules) error {
	if level == nil {
		return fmt.Errorf("%w: level", ErrMissingField)
	}

	if len(level.Letters) == 0 {
		return fmt.Errorf("%w: letters", ErrMissingField)
	}

	if len(level.Words) == 0 {
		return fmt.Errorf("%w: words", ErrMissingField)
	}

	if err := checkRange("letters", len(level.Letters), rules.MinLetters, rules.MaxLetters); err != nil {
		return err
	}

	if err := checkRange("words", len(level.Words), rules.MinWords, rules.MaxWords); err != nil {
		return err
	}

	wheel := make(map[rune]int, len(level.Letters))
	for _, letter := range level.Letters {
		char, size := utf8.DecodeRuneInString(letter)
		if size == 0 || size != len(letter) || !unicode.IsUpper(char) {
			return fmt.Errorf("%w: %q", ErrBadLetter, letter)
		}
		wheel[char]++
	}

	for _, placement := range level.Words {
		if placement.Word == "" {
			return fmt.Errorf("%w: word", ErrMissingField)
		}

		if !placement.Direction.IsValid() {
			return fmt.Errorf("%w: %q for %s", ErrBadDirection, placement.Direction, placement.Word)
		}

		// each wheel letter can be traced once per gesture
		used := make(map[rune]int, len(placement.Word))
		for _, char := range placement.Word {
			used[char]++
			if used[char] > wheel[char] {
				return fmt.Errorf("%w: %s", ErrLetterNotOnWheel, placement.Word)
			}
		}
	}

	if _, err := Occupied(level.Words); err != nil {
		return err
	}

	return nil
}

func checkRange(field string, n, lo, hi int) error {
	if (lo > 0 && n < lo) || (hi > 0 && n > hi) {
		return fmt.Errorf("%w: %d %s, want %d-%d", ErrCountOutOfRange, n, field, lo, hi)
	}

	return nil
}
