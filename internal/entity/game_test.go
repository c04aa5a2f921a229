package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	t.Run("Standard opening layout on 8x8", func(t *testing.T) {
		// Given: a new game of the default size
		game := NewGame(8)

		// Then: the four center cells hold the opening discs
		assert.Equal(t, PlayerWhite, game.Board[3][3])
		assert.Equal(t, PlayerBlack, game.Board[3][4])
		assert.Equal(t, PlayerBlack, game.Board[4][3])
		assert.Equal(t, PlayerWhite, game.Board[4][4])

		// Then: black moves first and the game is running
		assert.Equal(t, PlayerBlack, game.Turn)
		assert.Equal(t, StatusOngoing, game.Status)
		assert.Equal(t, "", game.Winner)
		assert.Equal(t, 0, game.HistoryLen())
	})

	t.Run("Layout scales with the board size", func(t *testing.T) {
		// Given: a small 4x4 game
		game := NewGame(4)

		// Then: the center square sits in the middle of the smaller board
		assert.Equal(t, PlayerWhite, game.Board[1][1])
		assert.Equal(t, PlayerBlack, game.Board[1][2])
		assert.Equal(t, PlayerBlack, game.Board[2][1])
		assert.Equal(t, PlayerWhite, game.Board[2][2])
	})
}

func TestOpponent(t *testing.T) {
	assert.Equal(t, PlayerWhite, Opponent(PlayerBlack))
	assert.Equal(t, PlayerBlack, Opponent(PlayerWhite))
}

func TestGame_Score(t *testing.T) {
	t.Run("Opening score is two against two", func(t *testing.T) {
		// Given: a new game
		game := NewGame(8)

		// When: counting the discs
		black, white := game.Score()

		// Then: both sides own two discs
		assert.Equal(t, 2, black)
		assert.Equal(t, 2, white)
	})

	t.Run("Counts every disc of each color", func(t *testing.T) {
		// Given: a game with extra discs placed
		game := NewGame(8)
		game.Board[0][0] = PlayerBlack
		game.Board[0][1] = PlayerBlack
		game.Board[7][7] = PlayerWhite

		// When: counting the discs
		black, white := game.Score()

		// Then: the added discs are included
		assert.Equal(t, 4, black)
		assert.Equal(t, 3, white)
	})
}

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsOngoing returns true while the game runs", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}
		assert.True(t, game.IsOngoing())
		assert.False(t, game.IsFinished())
	})

	t.Run("IsFinished returns true when the game is over", func(t *testing.T) {
		game := &Game{Status: StatusFinished}
		assert.True(t, game.IsFinished())
		assert.False(t, game.IsOngoing())
	})
}

func TestGame_History(t *testing.T) {
	t.Run("PopHistory restores the recorded state", func(t *testing.T) {
		// Given: a game with its opening state recorded
		game := NewGame(8)
		game.PushHistory()

		// When: the state is mutated and then restored
		game.Board[0][0] = PlayerBlack
		game.Turn = PlayerWhite
		game.Status = StatusFinished
		game.Winner = PlayerBlack

		restored := game.PopHistory()

		// Then: board, turn, status and winner are back to the snapshot
		require.True(t, restored)
		assert.Equal(t, EmptyCell, game.Board[0][0])
		assert.Equal(t, PlayerBlack, game.Turn)
		assert.Equal(t, StatusOngoing, game.Status)
		assert.Equal(t, "", game.Winner)
	})

	t.Run("Snapshots are deep copies of the board", func(t *testing.T) {
		// Given: a recorded state
		game := NewGame(8)
		game.PushHistory()

		// When: the live board changes after the snapshot
		game.Board[5][5] = PlayerWhite
		game.PopHistory()

		// Then: the change is not part of the restored board
		assert.Equal(t, EmptyCell, game.Board[5][5])
	})

	t.Run("PopHistory on an empty stack reports false", func(t *testing.T) {
		// Given: a game with no history
		game := NewGame(8)

		// Then: there is nothing to restore
		assert.False(t, game.PopHistory())
	})

	t.Run("HistoryLen follows pushes and pops", func(t *testing.T) {
		game := NewGame(8)
		game.PushHistory()
		game.PushHistory()
		require.Equal(t, 2, game.HistoryLen())

		game.PopHistory()
		assert.Equal(t, 1, game.HistoryLen())
	})
}
