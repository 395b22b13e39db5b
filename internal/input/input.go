// Package input translates raw pointer events into move requests for the game controller.
package input

import (
	"math"
	"time"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// MarkFor maps the primary button to X and the secondary button to O. Whether the mark may
// move now is decided by the controller, so callers forward every click.
func MarkFor(button Button) (entity.Mark, bool) {
	switch button {
	case ButtonPrimary:
		return entity.PlayerX, true
	case ButtonSecondary:
		return entity.PlayerO, true
	default:
		return "", false
	}
}

type Click struct {
	X, Y   float64
	Button Button
}

type MoveRequest struct {
	Row  int
	Col  int
	Mark entity.Mark
}

// Grid is the square layout of the board on screen, with the top-left cell at the origin.
type Grid struct {
	CellSize float64
}

func (that Grid) Size() float64 {
	return that.CellSize * entity.Size
}

// CellAt returns the cell under (x, y). Points outside the board give out-of-range
// coordinates rather than being clamped.
func (that Grid) CellAt(x, y float64) (row, col int) {
	return int(math.Floor(y / that.CellSize)), int(math.Floor(x / that.CellSize))
}

func (that Grid) CellCenter(pos entity.Coord) (x, y float64) {
	return (float64(pos.Col) + 0.5) * that.CellSize, (float64(pos.Row) + 0.5) * that.CellSize
}

// Translate turns a click into a move request. Unknown buttons are dropped.
func (that Grid) Translate(click Click) (MoveRequest, bool) {
	mark, ok := MarkFor(click.Button)
	if !ok {
		return MoveRequest{}, false
	}

	row, col := that.CellAt(click.X, click.Y)

	return MoveRequest{Row: row, Col: col, Mark: mark}, true
}

// Stroke is a segment in screen coordinates.
type Stroke struct {
	X0, Y0, X1, Y1 float64
}

// WinStroke is the win indicator drawn from the center of the line's first cell towards the
// center of its last cell, progress in [0, 1].
func (that Grid) WinStroke(line entity.Line, progress float64) Stroke {
	progress = clamp(progress)

	x0, y0 := that.CellCenter(line.Start())
	x1, y1 := that.CellCenter(line.End())

	return Stroke{
		X0: x0,
		Y0: y0,
		X1: x0 + (x1-x0)*progress,
		Y1: y0 + (y1-y0)*progress,
	}
}

// Progress is the completed fraction of an animation lasting duration.
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	return clamp(float64(elapsed) / float64(duration))
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
