package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/othello-desktop/internal/entity"
)

const (
	boardLeft  = 3
	boardTop   = 1
	cellWidth  = 4
	cellHeight = 2

	discRune = '●'
)

var (
	boardStyle  = tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorBlack)
	blackStyle  = boardStyle.Foreground(tcell.ColorBlack)
	whiteStyle  = boardStyle.Foreground(tcell.ColorWhite)
	cursorStyle = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	textStyle   = tcell.StyleDefault
)

// geometry - maps between board cells and screen coordinates.
type geometry struct {
	size int
}

// cellAt - the board cell under a screen position. Grid lines count toward
// the cell to their right and below. ok is false outside the board.
func (that geometry) cellAt(x, y int) (row, col int, ok bool) {
	if x < boardLeft || y < boardTop {
		return 0, 0, false
	}

	col = (x - boardLeft) / cellWidth
	row = (y - boardTop) / cellHeight

	if row >= that.size || col >= that.size {
		return 0, 0, false
	}

	return row, col, true
}

// discPosition - the screen position of the disc at the center of a cell.
func (that geometry) discPosition(row, col int) (x, y int) {
	return boardLeft + col*cellWidth + 2, boardTop + row*cellHeight + 1
}

// bottom - the screen row of the lowest grid line.
func (that geometry) bottom() int {
	return boardTop + that.size*cellHeight
}

func (that *UI) draw() {
	that.screen.Clear()

	game := that.session.Game()

	that.drawLabels()
	that.drawGrid()
	that.drawDiscs(game)
	that.drawCursor(game)
	that.drawStatus(game)

	that.screen.Show()
}

// drawLabels - column letters along the top, row numbers down the left side.
func (that *UI) drawLabels() {
	for col := 0; col < that.board.size; col++ {
		x, _ := that.board.discPosition(0, col)
		that.screen.SetContent(x, 0, rune('a'+col), nil, textStyle)
	}

	for row := 0; row < that.board.size; row++ {
		_, y := that.board.discPosition(row, 0)
		that.drawText(0, y, textStyle, fmt.Sprintf("%2d", row+1))
	}
}

func (that *UI) drawGrid() {
	width := that.board.size * cellWidth
	height := that.board.size * cellHeight

	for y := 0; y <= height; y++ {
		for x := 0; x <= width; x++ {
			onHorizontal := y%cellHeight == 0
			onVertical := x%cellWidth == 0

			var cell rune
			switch {
			case onHorizontal && onVertical:
				cell = '+'
			case onHorizontal:
				cell = '-'
			case onVertical:
				cell = '|'
			default:
				cell = ' '
			}

			that.screen.SetContent(boardLeft+x, boardTop+y, cell, nil, boardStyle)
		}
	}
}

func (that *UI) drawDiscs(game *entity.Game) {
	for row := 0; row < game.Size; row++ {
		for col := 0; col < game.Size; col++ {
			disc := game.Board[row][col]
			if disc == entity.EmptyCell {
				continue
			}

			style := blackStyle
			if disc == entity.PlayerWhite {
				style = whiteStyle
			}

			x, y := that.board.discPosition(row, col)
			that.screen.SetContent(x, y, discRune, nil, style)
		}
	}
}

// drawCursor - highlights the cell the arrow keys have selected.
func (that *UI) drawCursor(game *entity.Game) {
	x, y := that.board.discPosition(that.cursorRow, that.cursorCol)

	cell := ' '
	style := cursorStyle

	switch game.Board[that.cursorRow][that.cursorCol] {
	case entity.PlayerBlack:
		cell = discRune
		style = cursorStyle.Foreground(tcell.ColorBlack)
	case entity.PlayerWhite:
		cell = discRune
		style = cursorStyle.Foreground(tcell.ColorWhite)
	}

	that.screen.SetContent(x-1, y, ' ', nil, cursorStyle)
	that.screen.SetContent(x, y, cell, nil, style)
	that.screen.SetContent(x+1, y, ' ', nil, cursorStyle)
}

func (that *UI) drawStatus(game *entity.Game) {
	statusY := that.board.bottom() + 1

	status := that.statusText(game)
	if that.message != "" {
		status += " — " + that.message
	}
	that.drawText(0, statusY, textStyle, status)

	if that.showScores {
		black, white := game.Score()
		that.drawText(0, statusY+1, textStyle, fmt.Sprintf("score · black %d · white %d", black, white))
	}

	that.drawText(0, statusY+2, textStyle, "p pass · r revert · s scores · q quit")
}

func (that *UI) statusText(game *entity.Game) string {
	if game.IsFinished() {
		black, white := game.Score()
		switch game.Winner {
		case entity.PlayerBlack:
			return fmt.Sprintf("game over · black wins %d:%d", black, white)
		case entity.PlayerWhite:
			return fmt.Sprintf("game over · white wins %d:%d", white, black)
		default:
			return fmt.Sprintf("game over · draw %d:%d", black, white)
		}
	}

	status := playerName(game.Turn) + " to move"
	if that.session.MustPass() {
		status += " · no legal moves, press p to pass"
	}

	return status
}

func (that *UI) drawText(x, y int, style tcell.Style, text string) {
	for i, cell := range []rune(text) {
		that.screen.SetContent(x+i, y, cell, nil, style)
	}
}

func playerName(player string) string {
	if player == entity.PlayerWhite {
		return "white"
	}
	return "black"
}
