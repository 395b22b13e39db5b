package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllLines(t *testing.T) {
	// When: enumerating the winning lines
	lines := AllLines()

	// Then: rows, columns and diagonals come in a fixed order
	expected := []Line{
		{{0, 0}, {0, 1}, {0, 2}},
		{{1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {2, 1}, {2, 2}},
		{{0, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}},
		{{0, 2}, {1, 2}, {2, 2}},
		{{0, 0}, {1, 1}, {2, 2}},
		{{0, 2}, {1, 1}, {2, 0}},
	}
	require.Equal(t, expected, lines)

	for _, line := range lines {
		seen := make(map[Coord]bool, len(line))
		for _, pos := range line {
			assert.True(t, pos.InBounds(), "line %v", line)
			assert.False(t, seen[pos], "duplicate coord in line %v", line)
			seen[pos] = true
		}
	}
}

func TestMark(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Other())
	assert.Equal(t, PlayerX, PlayerO.Other())
	assert.True(t, PlayerX.Valid())
	assert.False(t, Mark("").Valid())

	mark, ok := CellO.Mark()
	assert.True(t, ok)
	assert.Equal(t, PlayerO, mark)

	_, ok = EmptyCell.Mark()
	assert.False(t, ok)
}
