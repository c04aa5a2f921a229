package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrOutOfBounds      = errors.New("cell is outside the board")
	ErrNoCaptures       = errors.New("move does not capture any discs")
	ErrMoveAvailable    = errors.New("cannot pass with a legal move available")
	ErrNothingToRevert  = errors.New("no moves to revert")
	ErrInvalidBoardSize = errors.New("board size must be an even number of at least 4")
)
