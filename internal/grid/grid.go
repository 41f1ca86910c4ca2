package grid

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/wordwheel-backend/internal/entity"
)

var ErrCellConflict = errors.New("placements disagree on a shared cell")

type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Cell is one square of the rendered grid. Blank squares are unoccupied.
type Cell struct {
	Blank    bool   `json:"blank"`
	Char     string `json:"char,omitempty"`
	Revealed bool   `json:"revealed"`
}

// Grid is the bounding box over every occupied cell, row-major.
type Grid struct {
	MinX   int      `json:"minX"`
	MinY   int      `json:"minY"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rows   [][]Cell `json:"rows"`
}

func (that *Grid) IsEmpty() bool {
	return that.Width == 0 || that.Height == 0
}

// Cell - looks up a cell by absolute grid coordinates.
func (that *Grid) Cell(x, y int) (Cell, bool) {
	col, row := x-that.MinX, y-that.MinY
	if row < 0 || row >= that.Height || col < 0 || col >= that.Width {
		return Cell{Blank: true}, false
	}

	return that.Rows[row][col], true
}

// RevealedCount - number of occupied cells currently shown.
func (that *Grid) RevealedCount() int {
	count := 0
	for _, row := range that.Rows {
		for _, cell := range row {
			if !cell.Blank && cell.Revealed {
				count++
			}
		}
	}

	return count
}

// Occupied - returns the cell-to-character map of the placements.
// Two placements writing different characters to one cell are a construction error.
func Occupied(placements []entity.Placement) (map[Coord]string, error) {
	chars := make(map[Coord]string)

	for _, placement := range placements {
		for i, char := range []rune(placement.Word) {
			x, y := placement.CellAt(i)
			coord := Coord{X: x, Y: y}

			if existing, ok := chars[coord]; ok && existing != string(char) {
				return nil, fmt.Errorf("%w: (%d,%d) is %q in one word and %q in %s",
					ErrCellConflict, x, y, existing, string(char), placement.Word)
			}

			chars[coord] = string(char)
		}
	}

	return chars, nil
}

// Revealed - returns the cells covered by at least one found placement.
func Revealed(placements []entity.Placement) map[Coord]bool {
	revealed := make(map[Coord]bool)

	for _, placement := range placements {
		if !placement.Found {
			continue
		}

		for i := range []rune(placement.Word) {
			x, y := placement.CellAt(i)
			revealed[Coord{X: x, Y: y}] = true
		}
	}

	return revealed
}

// Build derives the rendered grid from the placements. It is recomputed in full on
// every change and never mutates the placements.
func Build(placements []entity.Placement) (*Grid, error) {
	chars, err := Occupied(placements)
	if err != nil {
		return nil, err
	}

	if len(chars) == 0 {
		return &Grid{}, nil
	}

	revealed := Revealed(placements)

	first := true
	var minX, maxX, minY, maxY int
	for coord := range chars {
		if first {
			minX, maxX, minY, maxY = coord.X, coord.X, coord.Y, coord.Y
			first = false
			continue
		}

		minX, maxX = min(minX, coord.X), max(maxX, coord.X)
		minY, maxY = min(minY, coord.Y), max(maxY, coord.Y)
	}

	result := &Grid{
		MinX:   minX,
		MinY:   minY,
		Width:  maxX - minX + 1,
		Height: maxY - minY + 1,
		Rows:   make([][]Cell, maxY-minY+1),
	}

	for row := range result.Rows {
		result.Rows[row] = make([]Cell, result.Width)
		for col := range result.Rows[row] {
			coord := Coord{X: minX + col, Y: minY + row}

			char, ok := chars[coord]
			if !ok {
				result.Rows[row][col] = Cell{Blank: true}
				continue
			}

			result.Rows[row][col] = Cell{Char: char, Revealed: revealed[coord]}
		}
	}

	return result, nil
}
