package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/othello-desktop/internal/entity"
	"github.com/rocketscienceinc/othello-desktop/internal/othello"
)

// GameSession - a single sit-down game between two players at one keyboard.
// It is the only thing the front end talks to: every action goes through
// here so that each one is validated by the rules and logged.
type GameSession struct {
	logger *slog.Logger
	game   *entity.Game
}

func NewGameSession(logger *slog.Logger, game *entity.Game) *GameSession {
	return &GameSession{
		logger: logger.With("component", "session"),
		game:   game,
	}
}

func (that *GameSession) Game() *entity.Game {
	return that.game
}

// PlaceDisc - plays the current player's disc at the given cell.
func (that *GameSession) PlaceDisc(row, col int) error {
	log := that.logger.With("method", "PlaceDisc")

	player := that.game.Turn
	log.Debug("placing disc", "player", player, "row", row, "col", col)

	flips, err := othello.ApplyMove(that.game, row, col)
	if err != nil {
		log.Warn("move rejected", "player", player, "row", row, "col", col, "error", err)
		return fmt.Errorf("failed to place disc: %w", err)
	}

	log.Info("disc placed", "player", player, "row", row, "col", col, "flipped", len(flips))

	if that.game.IsFinished() {
		log.Info("game finished", "winner", that.game.Winner)
	}

	return nil
}

// Pass - forfeits the current player's turn.
func (that *GameSession) Pass() error {
	log := that.logger.With("method", "Pass")

	player := that.game.Turn
	if err := othello.Pass(that.game); err != nil {
		log.Warn("pass rejected", "player", player, "error", err)
		return fmt.Errorf("failed to pass: %w", err)
	}

	log.Info("turn passed", "player", player)

	if that.game.IsFinished() {
		log.Info("game finished", "winner", that.game.Winner)
	}

	return nil
}

// Revert - undoes the most recent move or pass.
func (that *GameSession) Revert() error {
	log := that.logger.With("method", "Revert")

	if err := othello.Revert(that.game); err != nil {
		log.Warn("revert rejected", "error", err)
		return fmt.Errorf("failed to revert: %w", err)
	}

	log.Info("reverted to previous state", "player_turn", that.game.Turn)

	return nil
}

// Scores - the current disc counts.
func (that *GameSession) Scores() (black, white int) {
	return that.game.Score()
}

// MustPass - reports whether the current player has no legal move left.
func (that *GameSession) MustPass() bool {
	return that.game.IsOngoing() && !othello.HasLegalMove(that.game, that.game.Turn)
}
