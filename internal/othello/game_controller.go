package othello

import (
	"fmt"

	"github.com/rocketscienceinc/othello-desktop/internal/apperror"
	"github.com/rocketscienceinc/othello-desktop/internal/entity"
)

// Cell - a board coordinate, row and column both starting at zero.
type Cell struct {
	Row int
	Col int
}

// The eight ray directions a placed disc captures along.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// ApplyMove - places a disc for the side to move and flips every captured
// disc. The previous state is recorded so the move can be reverted.
// Returns the cells that were flipped.
func ApplyMove(gameInstance *entity.Game, row, col int) ([]Cell, error) {
	if gameInstance.IsFinished() {
		return nil, apperror.ErrGameFinished
	}

	if err := validateCell(gameInstance, row, col); err != nil {
		return nil, fmt.Errorf("invalid move: %w", err)
	}

	flips := flipsFor(gameInstance, gameInstance.Turn, row, col)
	if len(flips) == 0 {
		return nil, fmt.Errorf("%w: row %d col %d", apperror.ErrNoCaptures, row, col)
	}

	gameInstance.PushHistory()

	gameInstance.Board[row][col] = gameInstance.Turn
	for _, cell := range flips {
		gameInstance.Board[cell.Row][cell.Col] = gameInstance.Turn
	}

	updateGameStatus(gameInstance)

	return flips, nil
}

// Pass - forfeits the turn. Passing is only a legal turn when the side to
// move has no legal move, per the game rules.
func Pass(gameInstance *entity.Game) error {
	if gameInstance.IsFinished() {
		return apperror.ErrGameFinished
	}

	if HasLegalMove(gameInstance, gameInstance.Turn) {
		return apperror.ErrMoveAvailable
	}

	gameInstance.PushHistory()
	updateGameStatus(gameInstance)

	return nil
}

// Revert - discards the last move or pass and restores the previous state.
func Revert(gameInstance *entity.Game) error {
	if !gameInstance.PopHistory() {
		return apperror.ErrNothingToRevert
	}

	return nil
}

// FlipsFor - the discs the side to move would capture by playing (row, col).
func FlipsFor(gameInstance *entity.Game, row, col int) []Cell {
	return flipsFor(gameInstance, gameInstance.Turn, row, col)
}

// LegalMoves - every cell where the side to move captures at least one disc.
func LegalMoves(gameInstance *entity.Game) []Cell {
	var moves []Cell

	for row := 0; row < gameInstance.Size; row++ {
		for col := 0; col < gameInstance.Size; col++ {
			if len(flipsFor(gameInstance, gameInstance.Turn, row, col)) > 0 {
				moves = append(moves, Cell{Row: row, Col: col})
			}
		}
	}

	return moves
}

// HasLegalMove - reports whether the given player has any legal move.
func HasLegalMove(gameInstance *entity.Game, player string) bool {
	for row := 0; row < gameInstance.Size; row++ {
		for col := 0; col < gameInstance.Size; col++ {
			if len(flipsFor(gameInstance, player, row, col)) > 0 {
				return true
			}
		}
	}

	return false
}

// validateCell - checks that the cell exists and is free.
func validateCell(gameInstance *entity.Game, row, col int) error {
	if row < 0 || row >= gameInstance.Size || col < 0 || col >= gameInstance.Size {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrOutOfBounds, row, col)
	}

	if gameInstance.Board[row][col] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// flipsFor - walks each ray from (row, col): a maximal run of opponent discs
// closed off by one of the player's own discs is captured. Rays that leave
// the board or end on an empty cell capture nothing.
func flipsFor(gameInstance *entity.Game, player string, row, col int) []Cell {
	if row < 0 || row >= gameInstance.Size || col < 0 || col >= gameInstance.Size {
		return nil
	}

	if gameInstance.Board[row][col] != entity.EmptyCell {
		return nil
	}

	opponent := entity.Opponent(player)

	var flips []Cell
	for _, dir := range directions {
		var run []Cell

		r, c := row+dir[0], col+dir[1]
		for r >= 0 && r < gameInstance.Size && c >= 0 && c < gameInstance.Size && gameInstance.Board[r][c] == opponent {
			run = append(run, Cell{Row: r, Col: c})
			r += dir[0]
			c += dir[1]
		}

		if len(run) == 0 {
			continue
		}

		if r >= 0 && r < gameInstance.Size && c >= 0 && c < gameInstance.Size && gameInstance.Board[r][c] == player {
			flips = append(flips, run...)
		}
	}

	return flips
}

// updateGameStatus - hands the turn to the opponent and checks whether the
// game is over: when neither side has a legal move, the majority wins.
func updateGameStatus(gameInstance *entity.Game) {
	gameInstance.Turn = entity.Opponent(gameInstance.Turn)

	if HasLegalMove(gameInstance, gameInstance.Turn) || HasLegalMove(gameInstance, entity.Opponent(gameInstance.Turn)) {
		return
	}

	black, white := gameInstance.Score()
	switch {
	case black > white:
		gameInstance.Winner = entity.PlayerBlack
	case white > black:
		gameInstance.Winner = entity.PlayerWhite
	default:
		gameInstance.Winner = entity.PlayerTie
	}

	gameInstance.Status = entity.StatusFinished
	gameInstance.Turn = ""
}
