package gui

import (
	"fmt"
	"image/color"
	"log/slog"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/input"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

const statusBarHeight = 28

var (
	colorBackground = color.RGBA{R: 0x7f, G: 0xff, B: 0xd4, A: 0xff}
	colorGrid       = color.Black
	colorMark       = color.RGBA{R: 0xd2, G: 0x69, B: 0x1e, A: 0xff}
	colorWinLine    = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	colorStatusBar  = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	colorStatusText = color.Black
)

var mouseButtons = []struct {
	ebiten ebiten.MouseButton
	button input.Button
}{
	{ebiten.MouseButtonLeft, input.ButtonPrimary},
	{ebiten.MouseButtonRight, input.ButtonSecondary},
}

type gameController interface {
	RequestMove(row, col int, mark entity.Mark) tictactoe.Event
	Reset()
	State() tictactoe.State
}

type winAnimation struct {
	line    entity.Line
	started time.Time
}

// Window draws the board and forwards left clicks as X and right clicks as O.
type Window struct {
	logger     *slog.Logger
	controller gameController

	title     string
	grid      input.Grid
	animation time.Duration
	face      text.Face

	mu     sync.Mutex
	win    *winAnimation
	status string
}

func New(logger *slog.Logger, controller gameController, conf config.Window) *Window {
	return &Window{
		logger:     logger.With("component", "window"),
		controller: controller,
		title:      conf.Title,
		grid:       input.Grid{CellSize: float64(conf.CellSize)},
		animation:  conf.WinAnimation,
		face:       text.NewGoXFace(basicfont.Face7x13),
		status:     "X to move (left click)",
	}
}

// Run opens the window and blocks until it is closed.
func (that *Window) Run() error {
	width, height := that.Layout(0, 0)

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(that.title)

	if err := ebiten.RunGame(that); err != nil {
		return fmt.Errorf("failed to run window: %w", err)
	}

	return nil
}

func (that *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		that.controller.Reset()
	}

	x, y := ebiten.CursorPosition()
	for _, mb := range mouseButtons {
		if !inpututil.IsMouseButtonJustPressed(mb.ebiten) {
			continue
		}

		req, ok := that.grid.Translate(input.Click{X: float64(x), Y: float64(y), Button: mb.button})
		if !ok {
			continue
		}

		that.controller.RequestMove(req.Row, req.Col, req.Mark)
	}

	return nil
}

// Notify keeps the status line and win animation in step with the controller.
func (that *Window) Notify(event tictactoe.Event) {
	that.mu.Lock()
	defer that.mu.Unlock()

	switch e := event.(type) {
	case tictactoe.MoveAccepted:
		that.status = fmt.Sprintf("%s to move (%s click)", e.NextTurn, buttonName(e.NextTurn))
	case tictactoe.MoveRejected:
		that.logger.Debug("move rejected", "reason", e.Reason, "row", e.Row, "col", e.Col)
	case tictactoe.GameWon:
		that.win = &winAnimation{line: e.Line, started: time.Now()}
		that.status = fmt.Sprintf("%s wins! R to play again", e.Mark)
	case tictactoe.GameDrawn:
		that.status = "Draw. R to play again"
	case tictactoe.GameReset:
		that.win = nil
		that.status = "X to move (left click)"
	}
}

func buttonName(mark entity.Mark) string {
	if mark == entity.PlayerO {
		return "right"
	}
	return "left"
}

func (that *Window) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	state := that.controller.State()
	size := float32(that.grid.Size())
	cell := float32(that.grid.CellSize)

	for i := 1; i < entity.Size; i++ {
		offset := float32(i) * cell
		vector.StrokeLine(screen, offset, 0, offset, size, 2, colorGrid, true)
		vector.StrokeLine(screen, 0, offset, size, offset, 2, colorGrid, true)
	}
	vector.StrokeRect(screen, 0, 0, size, size, 2, colorGrid, true)

	for row := 0; row < entity.Size; row++ {
		for col := 0; col < entity.Size; col++ {
			that.drawMark(screen, entity.Coord{Row: row, Col: col}, state.Cells[row][col])
		}
	}

	that.mu.Lock()
	win, status := that.win, that.status
	that.mu.Unlock()

	if win != nil {
		stroke := that.grid.WinStroke(win.line, input.Progress(time.Since(win.started), that.animation))
		vector.StrokeLine(screen, float32(stroke.X0), float32(stroke.Y0), float32(stroke.X1), float32(stroke.Y1), cell/20, colorWinLine, true)
	}

	vector.DrawFilledRect(screen, 0, size, size, statusBarHeight, colorStatusBar, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, float64(size)+8)
	op.ColorScale.ScaleWithColor(colorStatusText)
	text.Draw(screen, status, that.face, op)
}

func (that *Window) drawMark(screen *ebiten.Image, pos entity.Coord, value entity.Cell) {
	mark, ok := value.Mark()
	if !ok {
		return
	}

	cx, cy := that.grid.CellCenter(pos)
	x, y := float32(cx), float32(cy)
	r := float32(that.grid.CellSize) * 0.3
	width := float32(that.grid.CellSize) / 16

	switch mark {
	case entity.PlayerX:
		vector.StrokeLine(screen, x-r, y-r, x+r, y+r, width, colorMark, true)
		vector.StrokeLine(screen, x-r, y+r, x+r, y-r, width, colorMark, true)
	case entity.PlayerO:
		vector.StrokeCircle(screen, x, y, r, width, colorMark, true)
	}
}

func (that *Window) Layout(_, _ int) (int, int) {
	size := int(that.grid.Size())
	return size, size + statusBarHeight
}
