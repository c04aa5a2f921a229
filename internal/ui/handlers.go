package ui

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/othello-desktop/internal/apperror"
)

// handleKey - dispatches a key press. Returns true when the player quits.
//
// The command surface is the classic one: p passes, q quits, r reverts the
// last move, s shows the scores. Discs are placed with a mouse click or by
// moving the cursor with the arrow keys and pressing Enter.
func (that *UI) handleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		that.moveCursor(-1, 0)
	case tcell.KeyDown:
		that.moveCursor(1, 0)
	case tcell.KeyLeft:
		that.moveCursor(0, -1)
	case tcell.KeyRight:
		that.moveCursor(0, 1)
	case tcell.KeyEnter:
		that.place(that.cursorRow, that.cursorCol)
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			return true
		case 'p':
			that.pass()
		case 'r':
			that.revert()
		case 's':
			that.toggleScores()
		}
	}

	return false
}

// handleMouse - a left click places the current player's disc on the
// clicked cell.
func (that *UI) handleMouse(event *tcell.EventMouse) {
	if event.Buttons()&tcell.Button1 == 0 {
		return
	}

	x, y := event.Position()

	row, col, ok := that.board.cellAt(x, y)
	if !ok {
		return
	}

	that.cursorRow, that.cursorCol = row, col
	that.place(row, col)
}

func (that *UI) moveCursor(dRow, dCol int) {
	row, col := that.cursorRow+dRow, that.cursorCol+dCol
	if row < 0 || row >= that.board.size || col < 0 || col >= that.board.size {
		return
	}

	that.cursorRow, that.cursorCol = row, col
}

func (that *UI) place(row, col int) {
	if err := that.session.PlaceDisc(row, col); err != nil {
		that.message = rejectionText(err)
		return
	}

	that.message = ""
}

func (that *UI) pass() {
	if err := that.session.Pass(); err != nil {
		that.message = rejectionText(err)
		return
	}

	that.message = "turn passed"
}

func (that *UI) revert() {
	if err := that.session.Revert(); err != nil {
		that.message = rejectionText(err)
		return
	}

	that.message = "reverted last move"
}

func (that *UI) toggleScores() {
	that.showScores = !that.showScores

	if that.showScores {
		black, white := that.session.Scores()
		that.logger.Info("current scores", "black", black, "white", white)
	}
}

// rejectionText - a short status-line explanation for a rejected action.
func rejectionText(err error) string {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return "that cell is occupied"
	case errors.Is(err, apperror.ErrNoCaptures):
		return "a move must capture at least one disc"
	case errors.Is(err, apperror.ErrMoveAvailable):
		return "a legal move is available, you cannot pass"
	case errors.Is(err, apperror.ErrNothingToRevert):
		return "nothing to revert"
	case errors.Is(err, apperror.ErrGameFinished):
		return "the game is over"
	case errors.Is(err, apperror.ErrOutOfBounds):
		return "that cell is outside the board"
	default:
		return err.Error()
	}
}
