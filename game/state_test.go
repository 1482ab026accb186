package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGameStatePlay(t *testing.T) {
	t.Run("legal move hands the turn over", func(t *testing.T) {
		gs, err := NewGameState(8)
		require.NoError(t, err)
		require.Equal(t, Black, gs.Current, "Black always starts")

		next, ok := gs.Play(Move{2, 3})
		require.True(t, ok)
		require.Equal(t, White, next.Current)
		require.Equal(t, Empty, gs.Board.Cell(2, 3), "the original state is untouched")
	})

	t.Run("illegal move returns the same state", func(t *testing.T) {
		gs, err := NewGameState(8)
		require.NoError(t, err)

		same, ok := gs.Play(Move{0, 0})
		require.False(t, ok)
		require.Same(t, gs, same)
		require.Equal(t, Black, same.Current)
	})
}

func TestGameStatePass(t *testing.T) {
	gs, err := NewGameState(8)
	require.NoError(t, err)

	passed := gs.Pass()
	require.Equal(t, White, passed.Current)
	require.True(t, gs.Board.Equal(passed.Board))
}

func TestGameStateWinner(t *testing.T) {
	t.Run("live game has no winner", func(t *testing.T) {
		gs, err := NewGameState(8)
		require.NoError(t, err)
		_, over := gs.Winner()
		require.False(t, over)
	})

	t.Run("terminal majority wins", func(t *testing.T) {
		b, err := ParseGrid(fullGrid(4, 1))
		require.NoError(t, err)
		gs := &GameState{Board: b, Current: White}

		winner, over := gs.Winner()
		require.True(t, over)
		require.Equal(t, Black, winner)
	})

	t.Run("terminal tie reports Empty", func(t *testing.T) {
		grid := fullGrid(4, 1)
		grid[2] = []int{-1, -1, -1, -1}
		grid[3] = []int{-1, -1, -1, -1}
		b, err := ParseGrid(grid)
		require.NoError(t, err)
		gs := &GameState{Board: b, Current: Black}

		winner, over := gs.Winner()
		require.True(t, over)
		require.Equal(t, Empty, winner)
	})
}

func TestGameStateHash(t *testing.T) {
	gs, err := NewGameState(8)
	require.NoError(t, err)

	require.Equal(t, gs.Hash(), gs.Copy().Hash(), "equal positions hash equally")
	require.NotEqual(t, gs.Hash(), gs.Pass().Hash(), "player to move is part of the position")

	next, ok := gs.Play(Move{2, 3})
	require.True(t, ok)
	require.NotEqual(t, gs.Hash(), next.Hash())
}
