package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/transport/terminal"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/usecase"
)

// RunApp - runs one game on the process terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	stopSignals := watchSignals(ctx, log, cancel)
	defer stopSignals()

	starting, err := startingPlayer(conf.StartingPlayer)
	if err != nil {
		return fmt.Errorf("could not pick starting player: %w", err)
	}

	renderer := terminal.NewRenderer(os.Stdout, !conf.NoColor)
	input := terminal.NewInput(os.Stdin)
	gameManager := usecase.NewGameManager(logger, renderer, input, os.Stdout)

	// the game blocks on stdin, so it runs beside the signal watcher
	gameErrCh := make(chan error, 1)
	go func() {
		_, playErr := gameManager.Play(ctx, starting)
		gameErrCh <- playErr
	}()

	select {
	case err = <-gameErrCh:
		if errors.Is(err, apperror.ErrInputClosed) {
			log.Info("Input closed before the game finished")
			return nil
		}
		if err != nil {
			return fmt.Errorf("game error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// watchSignals - cancels on SIGINT or SIGTERM. The returned stop cancels too and waits for the watcher to exit.
func watchSignals(ctx context.Context, log *slog.Logger, cancel context.CancelFunc) func() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)

		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return func() {
		signal.Stop(sigs)
		cancel()
		<-done
	}
}

func startingPlayer(setting string) (entity.Player, error) {
	if strings.EqualFold(setting, config.StartingPlayerRandom) {
		return entity.RandomPlayer(), nil
	}

	return entity.ParsePlayer(setting)
}
