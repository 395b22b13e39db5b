package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeAll(t *testing.T, board *Board, marks map[Coord]Mark) {
	t.Helper()

	for pos, mark := range marks {
		require.NoError(t, board.PlaceMark(pos.Row, pos.Col, mark))
	}
}

func TestNewBoard(t *testing.T) {
	// Given: a new board
	board := NewBoard()

	// Then: every cell is empty and no moves have been made
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			assert.Equal(t, EmptyCell, board.CellValue(row, col))
		}
	}
	assert.Equal(t, 0, board.Moves())
	assert.False(t, board.Full())
}

func TestBoard_PlaceMark(t *testing.T) {
	t.Run("Successful Placement", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: X is placed at (1,2)
		err := board.PlaceMark(1, 2, PlayerX)

		// Then: the cell holds X
		require.NoError(t, err)
		assert.Equal(t, CellX, board.CellValue(1, 2))
		assert.Equal(t, 1, board.Moves())
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: a board with X at (0,0)
		board := NewBoard()
		require.NoError(t, board.PlaceMark(0, 0, PlayerX))

		// When: O is placed on the same cell
		err := board.PlaceMark(0, 0, PlayerO)

		// Then: ErrCellOccupied is returned and the cell keeps X
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, CellX, board.CellValue(0, 0))
		assert.Equal(t, 1, board.Moves())
	})

	t.Run("Same Mark Cannot Overwrite Either", func(t *testing.T) {
		board := NewBoard()
		require.NoError(t, board.PlaceMark(2, 2, PlayerO))

		err := board.PlaceMark(2, 2, PlayerO)

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, CellO, board.CellValue(2, 2))
	})

	t.Run("Error on Out of Bounds", func(t *testing.T) {
		board := NewBoard()

		for _, pos := range []Coord{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}} {
			// When: a coordinate outside the grid is used
			err := board.PlaceMark(pos.Row, pos.Col, PlayerX)

			// Then: ErrOutOfBounds is returned
			require.ErrorIs(t, err, apperror.ErrOutOfBounds, "coord %s", pos)
		}
		assert.Equal(t, 0, board.Moves())
	})

	t.Run("Error on Invalid Mark", func(t *testing.T) {
		board := NewBoard()

		err := board.PlaceMark(0, 0, Mark("Z"))

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
		assert.Equal(t, EmptyCell, board.CellValue(0, 0))
	})
}

func TestBoard_CellValue(t *testing.T) {
	// Given: a board with an O in the center
	board := NewBoard()
	require.NoError(t, board.PlaceMark(1, 1, PlayerO))

	// Then: out of range coordinates read as empty
	assert.Equal(t, CellO, board.CellValue(1, 1))
	assert.Equal(t, EmptyCell, board.CellValue(-1, 1))
	assert.Equal(t, EmptyCell, board.CellValue(1, 3))
}

func TestBoard_EvaluateLines(t *testing.T) {
	lines := AllLines()

	t.Run("Main Diagonal", func(t *testing.T) {
		// Given: X on the main diagonal and nothing else
		board := NewBoard()
		placeAll(t, board, map[Coord]Mark{
			{0, 0}: PlayerX,
			{1, 1}: PlayerX,
			{2, 2}: PlayerX,
		})

		// When: evaluating all lines
		line, ok := board.EvaluateLines(lines)

		// Then: the main diagonal is reported
		require.True(t, ok)
		assert.Equal(t, Line{{0, 0}, {1, 1}, {2, 2}}, line)
	})

	t.Run("Anti Diagonal", func(t *testing.T) {
		board := NewBoard()
		placeAll(t, board, map[Coord]Mark{
			{0, 2}: PlayerO,
			{1, 1}: PlayerO,
			{2, 0}: PlayerO,
		})

		line, ok := board.EvaluateLines(lines)

		require.True(t, ok)
		assert.Equal(t, Line{{0, 2}, {1, 1}, {2, 0}}, line)
	})

	t.Run("Column", func(t *testing.T) {
		board := NewBoard()
		placeAll(t, board, map[Coord]Mark{
			{0, 1}: PlayerO,
			{1, 1}: PlayerO,
			{2, 1}: PlayerO,
			{0, 0}: PlayerX,
			{2, 2}: PlayerX,
		})

		line, ok := board.EvaluateLines(lines)

		require.True(t, ok)
		assert.Equal(t, Line{{0, 1}, {1, 1}, {2, 1}}, line)
	})

	t.Run("Mixed Marks Do Not Complete", func(t *testing.T) {
		board := NewBoard()
		placeAll(t, board, map[Coord]Mark{
			{0, 0}: PlayerX,
			{0, 1}: PlayerO,
			{0, 2}: PlayerX,
		})

		_, ok := board.EvaluateLines(lines)

		assert.False(t, ok)
	})

	t.Run("Row Wins Over Diagonal When Both Complete", func(t *testing.T) {
		// Given: X completes row 0 and the main diagonal at once
		board := NewBoard()
		placeAll(t, board, map[Coord]Mark{
			{0, 0}: PlayerX,
			{0, 1}: PlayerX,
			{0, 2}: PlayerX,
			{1, 1}: PlayerX,
			{2, 2}: PlayerX,
		})

		// When: evaluating all lines
		line, ok := board.EvaluateLines(lines)

		// Then: the row is reported because rows come first
		require.True(t, ok)
		assert.Equal(t, Line{{0, 0}, {0, 1}, {0, 2}}, line)
	})

	t.Run("Column Wins Over Diagonal When Both Complete", func(t *testing.T) {
		board := NewBoard()
		placeAll(t, board, map[Coord]Mark{
			{0, 2}: PlayerO,
			{1, 2}: PlayerO,
			{2, 2}: PlayerO,
			{1, 1}: PlayerO,
			{0, 0}: PlayerO,
		})

		line, ok := board.EvaluateLines(lines)

		require.True(t, ok)
		assert.Equal(t, Line{{0, 2}, {1, 2}, {2, 2}}, line)
	})

	t.Run("Malformed Line Never Completes", func(t *testing.T) {
		board := NewBoard()
		placeAll(t, board, map[Coord]Mark{{0, 0}: PlayerX})

		_, ok := board.EvaluateLines([]Line{{{0, 0}, {5, 5}, {-1, 0}}})

		assert.False(t, ok)
	})

	t.Run("No Line Before Fifth Move", func(t *testing.T) {
		// Given: every four-move prefix of a game where X takes row 0
		moves := []struct {
			pos  Coord
			mark Mark
		}{
			{Coord{0, 0}, PlayerX},
			{Coord{1, 0}, PlayerO},
			{Coord{0, 1}, PlayerX},
			{Coord{1, 1}, PlayerO},
			{Coord{0, 2}, PlayerX},
		}

		board := NewBoard()
		for i, move := range moves {
			require.NoError(t, board.PlaceMark(move.pos.Row, move.pos.Col, move.mark))

			_, ok := board.EvaluateLines(lines)

			// Then: only the fifth move completes a line
			assert.Equal(t, i == len(moves)-1, ok, "after move %d", i+1)
		}
	})
}

func TestBoard_Reset(t *testing.T) {
	// Given: a board with marks
	board := NewBoard()
	require.NoError(t, board.PlaceMark(0, 0, PlayerX))
	require.NoError(t, board.PlaceMark(1, 1, PlayerO))

	// When: reset
	board.Reset()

	// Then: the grid is empty again and cells can be reused
	assert.Equal(t, [Size][Size]Cell{}, board.Cells())
	assert.Equal(t, 0, board.Moves())
	require.NoError(t, board.PlaceMark(0, 0, PlayerO))
}

func TestBoard_Full(t *testing.T) {
	// Given: a board filled without a winner
	board := NewBoard()
	placeAll(t, board, map[Coord]Mark{
		{0, 0}: PlayerX, {0, 1}: PlayerO, {0, 2}: PlayerX,
		{1, 0}: PlayerX, {1, 1}: PlayerO, {1, 2}: PlayerO,
		{2, 0}: PlayerO, {2, 1}: PlayerX, {2, 2}: PlayerX,
	})

	// Then: it is full and no line completes
	assert.True(t, board.Full())
	_, ok := board.EvaluateLines(AllLines())
	assert.False(t, ok)
}
