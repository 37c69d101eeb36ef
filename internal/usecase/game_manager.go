package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tictactoe"
)

type renderer interface {
	Render(grid entity.Grid) string
}

type moveReader interface {
	ReadMove() (int, error)
}

// GameManager drives a single game: it shows the board, asks for moves and announces the result.
type GameManager struct {
	logger   *slog.Logger
	renderer renderer
	input    moveReader
	out      io.Writer
}

func NewGameManager(logger *slog.Logger, renderer renderer, input moveReader, out io.Writer) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		renderer: renderer,
		input:    input,
		out:      out,
	}
}

// Play - runs a game to the end. Rejected moves are explained and the same player is asked again.
func (that *GameManager) Play(ctx context.Context, starting entity.Player) (tictactoe.Outcome, error) {
	log := that.logger.With("game_id", uuid.NewString())
	controller := tictactoe.NewGameController(entity.NewBoard(starting))

	log.Info("game started", "starting_player", starting)

	that.print("Starting tic-tac-toe...\n")
	that.display(controller.Board())

	for controller.Board().Status() == entity.StatusInProgress {
		if err := ctx.Err(); err != nil {
			return tictactoe.Outcome{}, fmt.Errorf("game interrupted: %w", err)
		}

		if err := that.playTurn(log, controller); err != nil {
			return tictactoe.Outcome{}, err
		}

		that.display(controller.Board())
	}

	outcome := controller.Outcome()
	log.Info("game finished", "winner", outcome.Winner, "tie", outcome.Tie)

	that.print(outcome.String() + "\n")
	that.print("Game Over!\n")

	return outcome, nil
}

func (that *GameManager) playTurn(log *slog.Logger, controller *tictactoe.GameController) error {
	player := controller.Board().CurrentPlayer()

	for {
		that.print(fmt.Sprintf("Player %s: Where would you like to play?\n", player))

		move, err := that.input.ReadMove()
		if err != nil {
			if !apperror.IsRecoverable(err) {
				return fmt.Errorf("failed to play turn: %w", err)
			}

			log.Info("input rejected", "player", player, "error", err)
			that.print(apperror.Diagnostic(err) + "\n")
			continue
		}

		switch err = controller.MakeTurn(move); {
		case err == nil:
			log.Debug("move applied", "player", player, "move", move)
			return nil
		case apperror.IsRecoverable(err):
			log.Info("move rejected", "player", player, "move", move, "error", err)
			that.print(apperror.Diagnostic(err) + "\n")
		default:
			return fmt.Errorf("failed to play turn: %w", err)
		}
	}
}

func (that *GameManager) display(board *entity.Board) {
	that.print(that.renderer.Render(board.Grid()) + "\n")
}

func (that *GameManager) print(text string) {
	if _, err := io.WriteString(that.out, text); err != nil {
		that.logger.Error("could not write to terminal", "error", err)
	}
}
