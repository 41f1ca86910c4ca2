package catalog

import (
	"github.com/rocketscienceinc/wordwheel-backend/internal/entity"
)

// starter levels, played in order before generated ones take over
var levels = []entity.Level{
	{
		ID:      1,
		Theme:   entity.ThemePine,
		Name:    "Pine 1",
		Letters: []string{"A", "C", "T"},
		Words: []entity.Placement{
			{Word: "ACT", StartX: 0, StartY: 0, Direction: entity.Horizontal},
			{Word: "CAT", StartX: 1, StartY: 0, Direction: entity.Vertical},
		},
	},
	{
		ID:      2,
		Theme:   entity.ThemePine,
		Name:    "Pine 2",
		Letters: []string{"D", "O", "G", "S"},
		Words: []entity.Placement{
			{Word: "DOGS", StartX: 0, StartY: 1, Direction: entity.Horizontal},
			{Word: "DOG", StartX: 0, StartY: 1, Direction: entity.Horizontal},
			{Word: "GOD", StartX: 2, StartY: 1, Direction: entity.Vertical},
			{Word: "SO", StartX: 3, StartY: 1, Direction: entity.Vertical},
		},
	},
	{
		ID:      3,
		Theme:   entity.ThemeForest,
		Name:    "Forest 1",
		Letters: []string{"E", "A", "R", "N"},
		Words: []entity.Placement{
			{Word: "EARN", StartX: 0, StartY: 0, Direction: entity.Horizontal},
			{Word: "NEAR", StartX: 3, StartY: 0, Direction: entity.Vertical},
			{Word: "ARE", StartX: 1, StartY: 0, Direction: entity.Vertical},
			{Word: "ERA", StartX: 0, StartY: 0, Direction: entity.Vertical},
		},
	},
	{
		ID:      4,
		Theme:   entity.ThemeOcean,
		Name:    "Ocean 1",
		Letters: []string{"W", "A", "T", "E", "R"},
		Words: []entity.Placement{
			{Word: "WATER", StartX: 0, StartY: 2, Direction: entity.Horizontal},
			{Word: "RAW", StartX: 0, StartY: 0, Direction: entity.Vertical},
			{Word: "WAR", StartX: 4, StartY: 0, Direction: entity.Vertical},
			{Word: "RATE", StartX: 2, StartY: 0, Direction: entity.Vertical},
			{Word: "EAT", StartX: 3, StartY: 2, Direction: entity.Vertical},
		},
	},
}

// Summary describes a catalog level without its solution.
type Summary struct {
	Index   int          `json:"index"`
	ID      int          `json:"id"`
	Theme   entity.Theme `json:"theme"`
	Name    string       `json:"name"`
	Letters int          `json:"letters"`
	Words   int          `json:"words"`
}

func Len() int {
	return len(levels)
}

// Level - returns a fresh copy of the catalog level at index.
func Level(index int) (*entity.Level, bool) {
	if index < 0 || index >= len(levels) {
		return nil, false
	}

	return levels[index].Clone(), true
}

// Fallback - returns a fresh copy of a catalog level renumbered for the global level index.
func Fallback(index int) *entity.Level {
	slot := index % len(levels)
	if slot < 0 {
		slot += len(levels)
	}

	return levels[slot].Renumbered(index + 1)
}

func Summaries() []Summary {
	summaries := make([]Summary, 0, len(levels))
	for i, level := range levels {
		summaries = append(summaries, Summary{
			Index:   i,
			ID:      level.ID,
			Theme:   level.Theme,
			Name:    level.Name,
			Letters: len(level.Letters),
			Words:   len(level.Words),
		})
	}

	return summaries
}
