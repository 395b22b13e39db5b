package terminal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/input"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("bad arguments")
)

type commandKind int

const (
	commandMove commandKind = iota
	commandReset
	commandBoard
	commandHelp
	commandQuit
)

type command struct {
	kind commandKind
	row  int
	col  int
	mark entity.Mark
}

const helpText = `commands:
  x <row> <col>       place X
  o <row> <col>       place O
  left <row> <col>    primary click, places X
  right <row> <col>   secondary click, places O
  reset               start a new match
  board               show the board
  quit                exit`

// parseCommand reads one console line. Coordinates are passed through unchecked so the
// controller decides whether they are on the board.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return command{kind: commandBoard}, nil
	}

	name, args := fields[0], fields[1:]

	switch name {
	case "x", "o":
		return parseMove(entity.Mark(strings.ToUpper(name)), args)
	case "left", "l":
		mark, _ := input.MarkFor(input.ButtonPrimary)
		return parseMove(mark, args)
	case "right", "r":
		mark, _ := input.MarkFor(input.ButtonSecondary)
		return parseMove(mark, args)
	case "reset", "new":
		return command{kind: commandReset}, nil
	case "board", "show":
		return command{kind: commandBoard}, nil
	case "help", "?":
		return command{kind: commandHelp}, nil
	case "quit", "exit", "q":
		return command{kind: commandQuit}, nil
	default:
		return command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
}

func parseMove(mark entity.Mark, args []string) (command, error) {
	if len(args) != 2 {
		return command{}, fmt.Errorf("%w: want <row> <col>, got %d values", ErrBadArguments, len(args))
	}

	row, err := strconv.Atoi(args[0])
	if err != nil {
		return command{}, fmt.Errorf("%w: row %q", ErrBadArguments, args[0])
	}

	col, err := strconv.Atoi(args[1])
	if err != nil {
		return command{}, fmt.Errorf("%w: col %q", ErrBadArguments, args[1])
	}

	return command{kind: commandMove, row: row, col: col, mark: mark}, nil
}
