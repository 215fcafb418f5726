package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - runs the game on stdin and stdout until the players stop or the process is interrupted.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Play(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Play wires the console to a round manager and runs a session.
func Play(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	term := console.New(logger, conf.Console, in, out)
	defer term.Close()

	manager := usecase.NewRoundManager(logger, term, term, term)

	scoreboard, err := manager.PlaySession(ctx)
	switch {
	case err == nil:
		log.Info("Session complete", "rounds", scoreboard.Rounds())
		return nil
	case errors.Is(err, console.ErrInputClosed), errors.Is(err, context.Canceled):
		log.Info("Session abandoned", "rounds", scoreboard.Rounds(), "reason", err)
		return nil
	default:
		return fmt.Errorf("session failed: %w", err)
	}
}
