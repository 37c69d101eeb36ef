package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

// Outcome summarises how a game ended.
type Outcome struct {
	Finished bool
	Winner   entity.Player
	Tie      bool
}

func (that Outcome) String() string {
	switch {
	case that.Tie:
		return "Tie Game."
	case that.Winner != "":
		return fmt.Sprintf("Player %s wins.", that.Winner)
	default:
		return "Game in progress."
	}
}

// GameController plays move numbers on a board on behalf of whoever's turn it is.
type GameController struct {
	board *entity.Board
}

func NewGameController(board *entity.Board) *GameController {
	return &GameController{board: board}
}

func (that *GameController) Board() *entity.Board {
	return that.board
}

// MakeTurn - decodes a 1..9 move, plays it for the current player and passes the turn.
// The turn stays with the last mover once the game is finished.
func (that *GameController) MakeTurn(move int) error {
	if that.board.Status() == entity.StatusFinished {
		return apperror.ErrGameFinished
	}

	row, col, err := entity.DecodeMove(move)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	if err = that.board.ApplyMove(row, col, that.board.CurrentPlayer()); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	if that.board.Status() == entity.StatusInProgress {
		that.board.NextTurn()
	}

	return nil
}

// Outcome - reads the result straight from the board.
func (that *GameController) Outcome() Outcome {
	if winner, ok := that.board.Winner(); ok {
		return Outcome{Finished: true, Winner: winner}
	}

	if that.board.IsFull() {
		return Outcome{Finished: true, Tie: true}
	}

	return Outcome{}
}
