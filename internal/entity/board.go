package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
)

const (
	BoardSize = 3

	BorderMin = 0             // First index of the board
	BorderMax = BoardSize - 1 // Last index of the board
)

type Status string

const (
	StatusInProgress Status = "in-progress"
	StatusFinished   Status = "finished"
)

// Grid is the 3x3 arrangement of cells, indexed by [row][col].
type Grid [BoardSize][BoardSize]Cell

// Board owns the grid and whose turn it is.
type Board struct {
	grid    Grid
	current Player
}

// NewBoard - creates an empty board where starting moves first.
func NewBoard(starting Player) *Board {
	return &Board{current: starting}
}

// DecodeMove - converts a move number in [1,9] into a (row, col) pair.
//
//	  0   1   2
//	| 1 | 2 | 3 | 0
//	| 4 | 5 | 6 | 1
//	| 7 | 8 | 9 | 2
func DecodeMove(move int) (int, int, error) {
	if move < 1 || move > BoardSize*BoardSize {
		return 0, 0, fmt.Errorf("%w: move %d", apperror.ErrOutOfRange, move)
	}

	index := move - 1
	col := index % BoardSize
	row := (index - col) / BoardSize

	return row, col, nil
}

// EncodeMove is the inverse of DecodeMove.
func EncodeMove(row, col int) int {
	return row*BoardSize + col + 1
}

func (that *Board) CurrentPlayer() Player {
	return that.current
}

// Grid returns a copy of the grid.
func (that *Board) Grid() Grid {
	return that.grid
}

// IsFull - true when no empty cell is left.
func (that *Board) IsFull() bool {
	for row := range BoardSize {
		for col := range BoardSize {
			if that.grid[row][col].IsEmpty() {
				return false
			}
		}
	}

	return true
}

// Winner - checks every row, then every column, then both diagonals.
func (that *Board) Winner() (Player, bool) {
	for row := range BoardSize {
		if winner, ok := that.line(row, BorderMin, 0, 1); ok {
			return winner, true
		}
	}

	for col := range BoardSize {
		if winner, ok := that.line(BorderMin, col, 1, 0); ok {
			return winner, true
		}
	}

	// top left to bottom right
	if winner, ok := that.line(BorderMin, BorderMin, 1, 1); ok {
		return winner, true
	}

	// top right to bottom left
	return that.line(BorderMin, BorderMax, 1, -1)
}

// line reports the player holding every cell from (row, col) stepping by (dRow, dCol).
// Three empty cells are not a line.
func (that *Board) line(row, col, dRow, dCol int) (Player, bool) {
	first := that.grid[row][col]
	if first.IsEmpty() {
		return "", false
	}

	for step := 1; step < BoardSize; step++ {
		if that.grid[row+step*dRow][col+step*dCol] != first {
			return "", false
		}
	}

	return first.Player()
}

// ValidatePosition - nil when (row, col) is on the board and still empty.
func (that *Board) ValidatePosition(row, col int) error {
	if row < BorderMin || row > BorderMax || col < BorderMin || col > BorderMax {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfRange, row, col)
	}

	if !that.grid[row][col].IsEmpty() {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	return nil
}

// ApplyMove - places the player's mark. The grid is left untouched on error.
func (that *Board) ApplyMove(row, col int, player Player) error {
	if err := that.ValidatePosition(row, col); err != nil {
		return err
	}

	if player != that.current {
		return apperror.ErrNotYourTurn
	}

	that.grid[row][col] = CellOf(player)

	return nil
}

// NextTurn - hands the turn to the other player and returns them.
func (that *Board) NextTurn() Player {
	that.current = that.current.Opponent()
	return that.current
}

func (that *Board) Status() Status {
	if _, ok := that.Winner(); ok || that.IsFull() {
		return StatusFinished
	}
	return StatusInProgress
}
