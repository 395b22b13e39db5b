package apperror

import "errors"

var (
	ErrGameOver     = errors.New("game is already over")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrOutOfBounds  = errors.New("cell is out of bounds")
	ErrInvalidMark  = errors.New("invalid mark")
)
