package tictactoe

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
)

// State is a snapshot of the match.
type State struct {
	MatchID     string                                `json:"match_id"`
	Status      Status                                `json:"status"`
	Turn        entity.Mark                           `json:"turn,omitempty"`
	Winner      entity.Mark                           `json:"winner,omitempty"`
	WinningLine entity.Line                           `json:"winning_line"`
	Cells       [entity.Size][entity.Size]entity.Cell `json:"cells"`
	Moves       int                                   `json:"moves"`
	Full        bool                                  `json:"full"`
}

// Playable reports whether the match still accepts moves. Only a completed line ends it.
func (that State) Playable() bool {
	return that.Status == StatusInProgress
}

// Drawn reports a full board without a completed line.
func (that State) Drawn() bool {
	return that.Full && that.Status == StatusInProgress
}

// GameController enforces turn order and the playability lock, and reports every outcome.
type GameController struct {
	logger *slog.Logger

	mu          sync.Mutex
	board       *entity.Board
	lines       []entity.Line
	matchID     string
	status      Status
	turn        entity.Mark
	winner      entity.Mark
	winningLine entity.Line

	listenersMu sync.RWMutex
	listeners   []Listener
}

func NewGameController(logger *slog.Logger, listeners ...Listener) *GameController {
	that := &GameController{
		logger:    logger.With("component", "game_controller"),
		board:     entity.NewBoard(),
		lines:     entity.AllLines(),
		listeners: listeners,
	}
	that.reset()

	return that
}

// Subscribe adds a listener for subsequent events.
func (that *GameController) Subscribe(listener Listener) {
	that.listenersMu.Lock()
	defer that.listenersMu.Unlock()

	that.listeners = append(that.listeners, listener)
}

// RequestMove applies a move for mark at (row, col). Every outcome, including rejections,
// is returned and delivered to the listeners. Filling the last cell without a line is
// accepted like any other move; listeners additionally get a GameDrawn after it.
func (that *GameController) RequestMove(row, col int, mark entity.Mark) Event {
	events := that.applyMove(row, col, mark)
	for _, event := range events {
		that.notify(event)
	}

	return events[0]
}

func (that *GameController) applyMove(row, col int, mark entity.Mark) []Event {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "RequestMove", "match_id", that.matchID, "row", row, "col", col, "mark", mark)

	if that.status != StatusInProgress {
		log.Debug("move rejected", "reason", ReasonGameOver)
		return []Event{that.rejected(row, col, mark, ReasonGameOver, apperror.ErrGameOver)}
	}

	if mark != that.turn {
		log.Debug("move rejected", "reason", ReasonNotYourTurn, "turn", that.turn)
		return []Event{that.rejected(row, col, mark, ReasonNotYourTurn, apperror.ErrNotYourTurn)}
	}

	if err := that.board.PlaceMark(row, col, mark); err != nil {
		reason := rejectReason(err)
		log.Debug("move rejected", "reason", reason, "error", err)
		return []Event{that.rejected(row, col, mark, reason, err)}
	}

	move := entity.Coord{Row: row, Col: col}

	if line, ok := that.board.EvaluateLines(that.lines); ok {
		that.status = StatusWon
		that.winner = mark
		that.winningLine = line
		that.turn = ""

		log.Info("game won", "line", line)

		return []Event{GameWon{MatchID: that.matchID, Line: line, Mark: mark, Move: move}}
	}

	that.turn = mark.Other()

	log.Debug("move accepted", "next_turn", that.turn)

	events := []Event{MoveAccepted{MatchID: that.matchID, Row: row, Col: col, Mark: mark, NextTurn: that.turn}}
	if that.board.Full() {
		log.Info("board full without a line")
		events = append(events, GameDrawn{MatchID: that.matchID, Mark: mark, Move: move})
	}

	return events
}

func (that *GameController) rejected(row, col int, mark entity.Mark, reason Reason, err error) MoveRejected {
	return MoveRejected{
		MatchID: that.matchID,
		Row:     row,
		Col:     col,
		Mark:    mark,
		Reason:  reason,
		Err:     fmt.Errorf("move %s at (%d,%d) rejected: %w", mark, row, col, err),
	}
}

func rejectReason(err error) Reason {
	switch {
	case errors.Is(err, apperror.ErrOutOfBounds):
		return ReasonOutOfBounds
	case errors.Is(err, apperror.ErrCellOccupied):
		return ReasonCellOccupied
	default:
		return ReasonInvalidMove
	}
}

// Reset starts a new match: empty board, X to move, playable again.
func (that *GameController) Reset() {
	that.mu.Lock()
	that.reset()
	event := GameReset{MatchID: that.matchID}
	that.mu.Unlock()

	that.logger.Info("new match", "match_id", event.MatchID)

	that.notify(event)
}

func (that *GameController) reset() {
	that.board.Reset()
	that.matchID = uuid.NewString()
	that.status = StatusInProgress
	that.turn = entity.PlayerX
	that.winner = ""
	that.winningLine = entity.Line{}
}

func (that *GameController) State() State {
	that.mu.Lock()
	defer that.mu.Unlock()

	return State{
		MatchID:     that.matchID,
		Status:      that.status,
		Turn:        that.turn,
		Winner:      that.winner,
		WinningLine: that.winningLine,
		Cells:       that.board.Cells(),
		Moves:       that.board.Moves(),
		Full:        that.board.Full(),
	}
}

func (that *GameController) CellValue(row, col int) entity.Cell {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.board.CellValue(row, col)
}

func (that *GameController) notify(event Event) {
	that.listenersMu.RLock()
	listeners := make([]Listener, len(that.listeners))
	copy(listeners, that.listeners)
	that.listenersMu.RUnlock()

	for _, listener := range listeners {
		listener.Notify(event)
	}
}
