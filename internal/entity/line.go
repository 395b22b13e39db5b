package entity

import "fmt"

// Size is the side length of the board.
const Size = 3

type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Coord) InBounds() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Coord) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Line is a winning combination of three cells.
type Line [3]Coord

// AllLines returns the eight winning lines: rows top to bottom, columns left to right,
// then the main diagonal and the anti-diagonal. Evaluation reports the first complete
// line in this order.
func AllLines() []Line {
	lines := make([]Line, 0, 2*Size+2)

	for row := 0; row < Size; row++ {
		lines = append(lines, Line{{row, 0}, {row, 1}, {row, 2}})
	}

	for col := 0; col < Size; col++ {
		lines = append(lines, Line{{0, col}, {1, col}, {2, col}})
	}

	lines = append(lines,
		Line{{0, 0}, {1, 1}, {2, 2}},
		Line{{0, 2}, {1, 1}, {2, 0}},
	)

	return lines
}

func (that Line) Start() Coord {
	return that[0]
}

func (that Line) End() Coord {
	return that[len(that)-1]
}
