package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

// moveSource supplies a raw position in [1,9]; it retries bad input itself.
type moveSource interface {
	NextMove(ctx context.Context, player entity.Player) (int, error)
}

type presenter interface {
	ShowWelcome() error
	ShowBoard(game entity.Game) error
	ShowAccepted() error
	ShowRejected(err error) error
	ShowOutcome(outcome tictactoe.Outcome) error
	ShowSummary(scoreboard entity.Scoreboard) error
}

type roundPrompter interface {
	AskPlayAgain(ctx context.Context) (bool, error)
}

type RoundManager struct {
	logger *slog.Logger

	moves  moveSource
	view   presenter
	prompt roundPrompter
}

func NewRoundManager(logger *slog.Logger, moves moveSource, view presenter, prompt roundPrompter) *RoundManager {
	return &RoundManager{
		logger: logger.With("component", "round_manager"),

		moves:  moves,
		view:   view,
		prompt: prompt,
	}
}

// PlaySession plays rounds until the players decline another one and returns the tally.
func (that *RoundManager) PlaySession(ctx context.Context) (entity.Scoreboard, error) {
	log := that.logger.With("method", "PlaySession")

	var scoreboard entity.Scoreboard

	if err := that.view.ShowWelcome(); err != nil {
		return scoreboard, fmt.Errorf("failed to show welcome: %w", err)
	}

	for {
		outcome, err := that.PlayRound(ctx)
		if err != nil {
			return scoreboard, fmt.Errorf("failed to play round: %w", err)
		}

		scoreboard.Record(outcome.Status, outcome.Winner)

		again, err := that.prompt.AskPlayAgain(ctx)
		if err != nil {
			return scoreboard, fmt.Errorf("failed to ask for another round: %w", err)
		}

		if !again {
			break
		}
	}

	log.Info("session finished", "rounds", scoreboard.Rounds(), "x_wins", scoreboard.XWins,
		"o_wins", scoreboard.OWins, "draws", scoreboard.Draws)

	if err := that.view.ShowSummary(scoreboard); err != nil {
		return scoreboard, fmt.Errorf("failed to show summary: %w", err)
	}

	return scoreboard, nil
}

// PlayRound runs one round from the initial state to a win or a draw.
func (that *RoundManager) PlayRound(ctx context.Context) (tictactoe.Outcome, error) {
	log := that.logger.With("method", "PlayRound", "round", uuid.NewString())

	game := tictactoe.CreateGame()
	log.Info("round started")

	for {
		position, err := that.moves.NextMove(ctx, game.Turn)
		if err != nil {
			return tictactoe.Continue, fmt.Errorf("failed to get next move: %w", err)
		}

		next, outcome, err := tictactoe.SubmitMove(game, position)
		if err != nil {
			if !apperror.IsRecoverable(err) {
				return outcome, fmt.Errorf("failed to submit move: %w", err)
			}

			log.Debug("move rejected", "player", game.Turn.String(), "position", position, "error", err)

			if err = that.rejectMove(game, err); err != nil {
				return tictactoe.Continue, err
			}

			continue
		}

		log.Debug("move accepted", "player", game.Turn.String(), "position", position)

		game = next
		if err = that.acceptMove(game); err != nil {
			return outcome, err
		}

		if outcome.IsTerminal() {
			log.Info("round finished", "outcome", outcome.String())

			if err = that.view.ShowOutcome(outcome); err != nil {
				return outcome, fmt.Errorf("failed to show outcome: %w", err)
			}

			return outcome, nil
		}
	}
}

func (that *RoundManager) acceptMove(game entity.Game) error {
	if err := that.view.ShowAccepted(); err != nil {
		return fmt.Errorf("failed to show accepted move: %w", err)
	}

	if err := that.view.ShowBoard(game); err != nil {
		return fmt.Errorf("failed to show board: %w", err)
	}

	return nil
}

// rejectMove shows the reason and the unchanged board so the player can retry.
func (that *RoundManager) rejectMove(game entity.Game, reason error) error {
	if err := that.view.ShowRejected(reason); err != nil {
		return fmt.Errorf("failed to show rejected move: %w", err)
	}

	if err := that.view.ShowBoard(game); err != nil {
		return fmt.Errorf("failed to show board: %w", err)
	}

	return nil
}
