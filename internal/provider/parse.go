package provider

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/wordwheel-backend/internal/apperror"
	"github.com/rocketscienceinc/wordwheel-backend/internal/entity"
	"github.com/rocketscienceinc/wordwheel-backend/internal/grid"
)

const defaultLevelName = "AI Generated"

type generatedLevel struct {
	Name    string   `json:"name"`
	Letters []string `json:"letters"`
	Words   []struct {
		Word      *string `json:"word"`
		StartX    *int    `json:"startX"`
		StartY    *int    `json:"startY"`
		Direction string  `json:"direction"`
	} `json:"words"`
}

// ParseLevel - decodes a generated level reply, normalizes it and checks it is playable.
func ParseLevel(data []byte, theme entity.Theme, id int) (*entity.Level, error) {
	var raw generatedLevel
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: malformed level: %w", apperror.ErrInvalidLevel, err)
	}

	level := &entity.Level{
		ID:      id,
		Theme:   theme,
		Name:    raw.Name,
		Letters: raw.Letters,
		Words:   make([]entity.Placement, 0, len(raw.Words)),
	}

	if level.Name == "" {
		level.Name = defaultLevelName
	}

	for i, word := range raw.Words {
		if word.Word == nil || word.StartX == nil || word.StartY == nil {
			return nil, fmt.Errorf("%w: word %d: %w", apperror.ErrInvalidLevel, i, grid.ErrMissingField)
		}

		level.Words = append(level.Words, entity.Placement{
			Word:      *word.Word,
			StartX:    *word.StartX,
			StartY:    *word.StartY,
			Direction: entity.Orientation(word.Direction),
		})
	}

	level.Normalize()

	if err := grid.Validate(level, grid.GeneratedRules); err != nil {
		return nil, err
	}

	return level, nil
}
