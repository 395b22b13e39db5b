package tictactoe

import "github.com/rocketscienceinc/tictactoe/internal/entity"

// Reason explains why a move request was rejected.
type Reason string

const (
	ReasonNotYourTurn  Reason = "not_your_turn"
	ReasonGameOver     Reason = "game_over"
	ReasonCellOccupied Reason = "cell_occupied"
	ReasonOutOfBounds  Reason = "out_of_bounds"
	ReasonInvalidMove  Reason = "invalid_move"
)

// Event is an outcome reported by the controller to its listeners.
type Event interface {
	event()
}

// Listener receives controller outcomes. Notify is called after the transition is committed,
// outside the controller lock.
type Listener interface {
	Notify(event Event)
}

type ListenerFunc func(event Event)

func (that ListenerFunc) Notify(event Event) {
	that(event)
}

type MoveAccepted struct {
	MatchID  string      `json:"match_id"`
	Row      int         `json:"row"`
	Col      int         `json:"col"`
	Mark     entity.Mark `json:"mark"`
	NextTurn entity.Mark `json:"next_turn"`
}

// MoveRejected carries the rejection reason and an error wrapping the matching apperror sentinel.
type MoveRejected struct {
	MatchID string      `json:"match_id"`
	Row     int         `json:"row"`
	Col     int         `json:"col"`
	Mark    entity.Mark `json:"mark"`
	Reason  Reason      `json:"reason"`
	Err     error       `json:"-"`
}

// GameWon reports the winning line. Move is the cell that completed it.
type GameWon struct {
	MatchID string       `json:"match_id"`
	Line    entity.Line  `json:"line"`
	Mark    entity.Mark  `json:"mark"`
	Move    entity.Coord `json:"move"`
}

// GameDrawn follows the MoveAccepted that filled the last empty cell without completing a
// line. It is informational: the match stays in progress and later requests are rejected by
// the usual turn and occupancy rules.
type GameDrawn struct {
	MatchID string       `json:"match_id"`
	Mark    entity.Mark  `json:"mark"`
	Move    entity.Coord `json:"move"`
}

type GameReset struct {
	MatchID string `json:"match_id"`
}

func (MoveAccepted) event() {}
func (MoveRejected) event() {}
func (GameWon) event()      {}
func (GameDrawn) event()    {}
func (GameReset) event()    {}
