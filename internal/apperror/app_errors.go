package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrInvalidSetting   = errors.New("invalid setting")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrStaleSession     = errors.New("session is no longer active")
	ErrNoLegalMoves     = errors.New("no legal moves left")
	ErrBoardTerminal    = errors.New("board already has a winner")
	ErrNotFound         = errors.New("not found")
	ErrUnknownAction    = errors.New("unknown action")
)
