package entity

import (
	"fmt"
	"strings"
)

type Theme string

const (
	ThemePine     Theme = "PINE"
	ThemeForest   Theme = "FOREST"
	ThemeOcean    Theme = "OCEAN"
	ThemeMountain Theme = "MOUNTAIN"
)

// Themes lists every theme in rotation order.
var Themes = []Theme{ThemePine, ThemeForest, ThemeOcean, ThemeMountain}

// ThemeForIndex - returns the theme a generated level at the given global index uses.
func ThemeForIndex(index int) Theme {
	if index < 0 {
		index = -index
	}

	return Themes[index%len(Themes)]
}

func (that Theme) IsValid() bool {
	for _, theme := range Themes {
		if theme == that {
			return true
		}
	}

	return false
}

type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

func (that Orientation) IsValid() bool {
	return that == Horizontal || that == Vertical
}

// Placement is a single word positioned on the grid.
type Placement struct {
	Word      string      `json:"word"`
	StartX    int         `json:"startX"`
	StartY    int         `json:"startY"`
	Direction Orientation `json:"direction"`
	Found     bool        `json:"found"`
}

// CellAt - returns the grid coordinate of the i-th letter of the placement.
func (that *Placement) CellAt(i int) (int, int) {
	if that.Direction == Vertical {
		return that.StartX, that.StartY + i
	}

	return that.StartX + i, that.StartY
}

// MarkFound latches the placement as found. It never reverts.
func (that *Placement) MarkFound() {
	that.Found = true
}

type Level struct {
	ID      int         `json:"id"`
	Theme   Theme       `json:"theme"`
	Name    string      `json:"name"`
	Letters []string    `json:"letters"`
	Words   []Placement `json:"words"`
}

// Clone - returns a copy of the level that shares no mutable state with the original.
func (that *Level) Clone() *Level {
	if that == nil {
		return nil
	}

	clone := *that
	clone.Letters = append([]string(nil), that.Letters...)
	clone.Words = append([]Placement(nil), that.Words...)

	return &clone
}

// Renumbered - returns a clone carrying the id and default name of another level slot.
func (that *Level) Renumbered(id int) *Level {
	clone := that.Clone()
	clone.ID = id
	clone.Name = fmt.Sprintf("Level %d", id)

	return clone
}

func (that *Level) IsComplete() bool {
	if len(that.Words) == 0 {
		return false
	}

	for _, word := range that.Words {
		if !word.Found {
			return false
		}
	}

	return true
}

// FirstUnfound - returns the first placement in declaration order that is not found yet.
func (that *Level) FirstUnfound() (*Placement, bool) {
	for i := range that.Words {
		if !that.Words[i].Found {
			return &that.Words[i], true
		}
	}

	return nil, false
}

func (that *Level) FoundCount() int {
	count := 0
	for _, word := range that.Words {
		if word.Found {
			count++
		}
	}

	return count
}

// Normalize upper-cases letters and words in place.
func (that *Level) Normalize() {
	for i, letter := range that.Letters {
		that.Letters[i] = strings.ToUpper(strings.TrimSpace(letter))
	}

	for i := range that.Words {
		that.Words[i].Word = strings.ToUpper(strings.TrimSpace(that.Words[i].Word))
		that.Words[i].Direction = Orientation(strings.ToLower(string(that.Words[i].Direction)))
	}
}
