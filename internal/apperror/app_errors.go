package apperror

import "errors"

var (
	ErrOutOfRange   = errors.New("position is off the board")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrGameFinished = errors.New("game is already finished")
	ErrInvalidInput = errors.New("move is not a number")
	ErrInputClosed  = errors.New("input closed")
)

// IsRecoverable reports whether the player may simply be asked for another move.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrCellOccupied) ||
		errors.Is(err, ErrInvalidInput)
}

// Diagnostic - returns the message shown to a player whose move was rejected.
func Diagnostic(err error) string {
	switch {
	case errors.Is(err, ErrOutOfRange):
		return "Invalid position."
	case errors.Is(err, ErrCellOccupied):
		return "That position is occupied."
	case errors.Is(err, ErrInvalidInput):
		return "Please enter a number from 1 to 9."
	default:
		return err.Error()
	}
}
