package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerBlack = "B"
	PlayerWhite = "W"
	PlayerTie   = "-"

	EmptyCell = ""
)

type Game struct {
	Board  [][]string `json:"board"`
	Size   int        `json:"size"`
	Turn   string     `json:"player_turn"`
	Winner string     `json:"winner"`
	Status string     `json:"status"`

	history []snapshot
}

// snapshot - a full copy of the mutable game state, kept on the undo stack.
type snapshot struct {
	board  [][]string
	turn   string
	winner string
	status string
}

// NewGame - creates a game with the standard opening layout: white on the
// main diagonal of the center square, black on the other one, black to move.
func NewGame(size int) *Game {
	board := make([][]string, size)
	for row := range board {
		board[row] = make([]string, size)
	}

	mid := size/2 - 1
	board[mid][mid] = PlayerWhite
	board[mid][mid+1] = PlayerBlack
	board[mid+1][mid] = PlayerBlack
	board[mid+1][mid+1] = PlayerWhite

	return &Game{
		Board:  board,
		Size:   size,
		Turn:   PlayerBlack,
		Status: StatusOngoing,
	}
}

// Opponent - returns the other player's disc color.
func Opponent(player string) string {
	if player == PlayerBlack {
		return PlayerWhite
	}
	return PlayerBlack
}

// Score - counts the discs of each color on the board.
func (that *Game) Score() (black, white int) {
	for _, row := range that.Board {
		for _, cell := range row {
			switch cell {
			case PlayerBlack:
				black++
			case PlayerWhite:
				white++
			}
		}
	}

	return black, white
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// PushHistory - records the current state on the undo stack.
func (that *Game) PushHistory() {
	that.history = append(that.history, snapshot{
		board:  copyBoard(that.Board),
		turn:   that.Turn,
		winner: that.Winner,
		status: that.Status,
	})
}

// PopHistory - restores the most recently recorded state.
// Returns false when there is nothing to restore.
func (that *Game) PopHistory() bool {
	if len(that.history) == 0 {
		return false
	}

	last := that.history[len(that.history)-1]
	that.history = that.history[:len(that.history)-1]

	that.Board = last.board
	that.Turn = last.turn
	that.Winner = last.winner
	that.Status = last.status

	return true
}

func (that *Game) HistoryLen() int {
	return len(that.history)
}

func copyBoard(board [][]string) [][]string {
	clone := make([][]string, len(board))
	for row := range board {
		clone[row] = make([]string, len(board[row]))
		copy(clone[row], board[row])
	}

	return clone
}
