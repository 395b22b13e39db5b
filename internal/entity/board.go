package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

// Board owns the 3x3 grid. A cell that holds a mark is never overwritten; only Reset clears it.
type Board struct {
	cells [Size][Size]Cell
	moves int
}

func NewBoard() *Board {
	return &Board{}
}

// PlaceMark sets an empty cell to mark. It knows nothing about turn order or playability.
func (that *Board) PlaceMark(row, col int, mark Mark) error {
	pos := Coord{Row: row, Col: col}
	if !pos.InBounds() {
		return fmt.Errorf("%w: cell %s", apperror.ErrOutOfBounds, pos)
	}

	if !mark.Valid() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	if !that.cells[row][col].IsEmpty() {
		return fmt.Errorf("%w: cell %s", apperror.ErrCellOccupied, pos)
	}

	that.cells[row][col] = mark.Cell()
	that.moves++

	return nil
}

// CellValue returns the cell at (row, col). Coordinates outside the grid read as empty.
func (that *Board) CellValue(row, col int) Cell {
	if !(Coord{Row: row, Col: col}).InBounds() {
		return EmptyCell
	}
	return that.cells[row][col]
}

// EvaluateLines scans lines in order and returns the first one whose cells all hold the same mark.
func (that *Board) EvaluateLines(lines []Line) (Line, bool) {
	for _, line := range lines {
		if that.isComplete(line) {
			return line, true
		}
	}
	return Line{}, false
}

func (that *Board) isComplete(line Line) bool {
	a, b, c := that.at(line[0]), that.at(line[1]), that.at(line[2])
	return !a.IsEmpty() && a == b && b == c
}

func (that *Board) at(pos Coord) Cell {
	return that.CellValue(pos.Row, pos.Col)
}

// Moves is the number of marks placed since the board was created or reset.
func (that *Board) Moves() int {
	return that.moves
}

func (that *Board) Full() bool {
	return that.moves == Size*Size
}

// Cells returns a copy of the grid.
func (that *Board) Cells() [Size][Size]Cell {
	return that.cells
}

func (that *Board) Reset() {
	that.cells = [Size][Size]Cell{}
	that.moves = 0
}
