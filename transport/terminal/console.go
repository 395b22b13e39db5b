package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

type gameController interface {
	RequestMove(row, col int, mark entity.Mark) tictactoe.Event
	Reset()
	State() tictactoe.State
}

type styles struct {
	x, o   termenv.Style
	win    termenv.Style
	faint  termenv.Style
	header termenv.Style
}

// Console is a line-oriented front end. It reads commands from in and prints every
// controller event to out.
type Console struct {
	logger     *slog.Logger
	controller gameController
	in         io.Reader

	mu     sync.Mutex
	out    *termenv.Output
	styles styles
}

func New(logger *slog.Logger, controller gameController, in io.Reader, out io.Writer, plain bool) *Console {
	var output *termenv.Output
	if plain {
		output = termenv.NewOutput(out, termenv.WithProfile(termenv.Ascii))
	} else {
		output = termenv.NewOutput(out)
	}

	return &Console{
		logger:     logger.With("component", "console"),
		controller: controller,
		in:         in,
		out:        output,
		styles: styles{
			x:      output.String().Foreground(output.Color("1")).Bold(),
			o:      output.String().Foreground(output.Color("4")).Bold(),
			win:    output.String().Reverse().Bold(),
			faint:  output.String().Faint(),
			header: output.String().Underline(),
		},
	}
}

// Run reads commands until quit, EOF, or ctx is done.
func (that *Console) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	that.printf("%s\n", helpText)
	that.renderBoard(that.controller.State())

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info("console stopped", "reason", ctx.Err())
			return nil
		case line, ok := <-lines:
			if !ok {
				return that.inputClosed(scanErr)
			}

			if quit := that.handleLine(line); quit {
				return nil
			}
		}
	}
}

func (that *Console) inputClosed(scanErr <-chan error) error {
	select {
	case err := <-scanErr:
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	default:
	}

	that.logger.Info("input closed")

	return nil
}

func (that *Console) handleLine(line string) bool {
	cmd, err := parseCommand(line)
	if err != nil {
		that.logger.Debug("bad command", "line", line, "error", err)
		that.printf("%s\n", that.styles.faint.Styled(err.Error()+" (type help)"))
		return false
	}

	switch cmd.kind {
	case commandMove:
		that.controller.RequestMove(cmd.row, cmd.col, cmd.mark)
	case commandReset:
		that.controller.Reset()
	case commandBoard:
		that.renderBoard(that.controller.State())
	case commandHelp:
		that.printf("%s\n", helpText)
	case commandQuit:
		that.printf("bye\n")
		return true
	}

	return false
}

// Notify prints controller events.
func (that *Console) Notify(event tictactoe.Event) {
	switch e := event.(type) {
	case tictactoe.MoveAccepted:
		that.renderBoard(that.controller.State())
		that.printf("%s played %s, %s to move\n", that.mark(e.Mark), entity.Coord{Row: e.Row, Col: e.Col}, that.mark(e.NextTurn))
	case tictactoe.MoveRejected:
		that.printf("%s\n", that.styles.faint.Styled(rejectMessage(e)))
	case tictactoe.GameWon:
		that.renderBoard(that.controller.State())
		that.printf("%s wins on %s %s %s, type reset to play again\n", that.mark(e.Mark), e.Line[0], e.Line[1], e.Line[2])
	case tictactoe.GameDrawn:
		that.printf("board is full with no line, draw. type reset to play again\n")
	case tictactoe.GameReset:
		that.printf("new match %s\n", e.MatchID)
		that.renderBoard(that.controller.State())
	}
}

func rejectMessage(e tictactoe.MoveRejected) string {
	switch e.Reason {
	case tictactoe.ReasonNotYourTurn:
		return fmt.Sprintf("not %s's turn", e.Mark)
	case tictactoe.ReasonCellOccupied:
		return fmt.Sprintf("cell (%d,%d) is taken", e.Row, e.Col)
	case tictactoe.ReasonOutOfBounds:
		return fmt.Sprintf("cell (%d,%d) is off the board", e.Row, e.Col)
	case tictactoe.ReasonGameOver:
		return "game is over, type reset"
	default:
		return string(e.Reason)
	}
}

func (that *Console) renderBoard(state tictactoe.State) {
	winning := make(map[entity.Coord]bool, len(state.WinningLine))
	if state.Status == tictactoe.StatusWon {
		for _, pos := range state.WinningLine {
			winning[pos] = true
		}
	}

	var sb strings.Builder

	sb.WriteString("    " + that.styles.header.Styled("0   1   2") + "\n")
	for row := 0; row < entity.Size; row++ {
		cells := make([]string, 0, entity.Size)
		for col := 0; col < entity.Size; col++ {
			pos := entity.Coord{Row: row, Col: col}
			cells = append(cells, that.cell(state.Cells[row][col], winning[pos]))
		}

		fmt.Fprintf(&sb, " %d  %s\n", row, strings.Join(cells, " | "))
		if row < entity.Size-1 {
			sb.WriteString("   ---+---+---\n")
		}
	}

	that.printf("%s", sb.String())
}

func (that *Console) cell(value entity.Cell, highlight bool) string {
	mark, ok := value.Mark()
	if !ok {
		return " "
	}

	if highlight {
		return that.styles.win.Styled(mark.String())
	}

	return that.mark(mark)
}

func (that *Console) mark(mark entity.Mark) string {
	switch mark {
	case entity.PlayerX:
		return that.styles.x.Styled(mark.String())
	case entity.PlayerO:
		return that.styles.o.Styled(mark.String())
	default:
		return mark.String()
	}
}

func (that *Console) printf(format string, args ...any) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
