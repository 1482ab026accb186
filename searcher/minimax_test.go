package searcher

import (
	"math"
	"testing"
	"time"

	"othello/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// plainMinimax is the no-pruning reference: identical recursion, identical
// pass handling, no alpha-beta window. Pruned search must pick the same move.
func plainMinimax(b *game.Board, player game.Disc, depth int, maximizing bool) int {
	if depth == 0 || b.IsTerminal() {
		return game.Evaluate(b, player)
	}
	actor := player
	if !maximizing {
		actor = player.Opponent()
	}
	moves := b.LegalMoves(actor)
	if len(moves) == 0 {
		return plainMinimax(b, player, depth-1, !maximizing)
	}
	best := math.MinInt
	if !maximizing {
		best = math.MaxInt
	}
	for _, mv := range moves {
		next := b.Clone()
		next.Apply(mv, actor)
		score := plainMinimax(next, player, depth-1, !maximizing)
		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}
	return best
}

func plainBestMove(b *game.Board, player game.Disc, depth int) (game.Move, bool) {
	moves := b.LegalMoves(player)
	if len(moves) == 0 {
		return game.Move{}, false
	}
	best := moves[0]
	bestScore := math.MinInt
	for _, mv := range moves {
		next := b.Clone()
		next.Apply(mv, player)
		if score := plainMinimax(next, player, depth, false); score > bestScore {
			bestScore = score
			best = mv
		}
	}
	return best, true
}

// samplePositions plays a short deterministic opening to get varied
// mid-game boards.
func samplePositions(t *testing.T) []*game.Board {
	t.Helper()

	boards := []*game.Board{}

	initial8, err := game.NewBoard(8)
	require.NoError(t, err)
	boards = append(boards, initial8)

	initial4, err := game.NewBoard(4)
	require.NoError(t, err)
	boards = append(boards, initial4)

	evolved := initial8.Clone()
	player := game.Black
	for i := 0; i < 6; i++ {
		moves := evolved.LegalMoves(player)
		if len(moves) == 0 {
			player = player.Opponent()
			continue
		}
		require.True(t, evolved.Apply(moves[0], player))
		player = player.Opponent()
		boards = append(boards, evolved.Clone())
	}
	return boards
}

func TestClampDifficulty(t *testing.T) {
	require.Equal(t, MinDifficulty, ClampDifficulty(0))
	require.Equal(t, MinDifficulty, ClampDifficulty(-3))
	require.Equal(t, 3, ClampDifficulty(3))
	require.Equal(t, MaxDifficulty, ClampDifficulty(9))
}

func TestFindMoveNoLegalMove(t *testing.T) {
	// A board fully occupied by Black leaves White nothing to do at any tier.
	grid := make([][]int, 4)
	for r := range grid {
		grid[r] = []int{1, 1, 1, 1}
	}
	b, err := game.ParseGrid(grid)
	require.NoError(t, err)

	for difficulty := MinDifficulty; difficulty <= MaxDifficulty; difficulty++ {
		_, ok := New(difficulty).FindMove(b, game.White)
		require.False(t, ok, "difficulty %d should report no move, not an error", difficulty)
	}
}

func TestRandomTier(t *testing.T) {
	b, err := game.NewBoard(8)
	require.NoError(t, err)
	legal := b.LegalMoves(game.Black)

	m := New(1, WithRand(rand.New(rand.NewSource(42))))
	for i := 0; i < 50; i++ {
		move, ok := m.FindMove(b, game.Black)
		require.True(t, ok)
		require.Contains(t, legal, move, "random tier must stay within legal moves")
	}
}

func TestGreedyTier(t *testing.T) {
	t.Run("never returns a dominated move", func(t *testing.T) {
		for i, b := range samplePositions(t) {
			move, ok := New(2).FindMove(b, game.Black)
			if !ok {
				continue
			}

			chosen := b.Clone()
			require.True(t, chosen.Apply(move, game.Black))
			chosenScore := game.Evaluate(chosen, game.Black)

			for _, alt := range b.LegalMoves(game.Black) {
				next := b.Clone()
				require.True(t, next.Apply(alt, game.Black))
				require.LessOrEqual(t, game.Evaluate(next, game.Black), chosenScore,
					"position %d: move %v strictly dominates the greedy pick %v", i, alt, move)
			}
		}
	})

	t.Run("ties break to the first move in enumeration order", func(t *testing.T) {
		// The opening is fully symmetric: all four replies evaluate equally,
		// so the row-major first must win.
		b, err := game.NewBoard(8)
		require.NoError(t, err)

		move, ok := New(2).FindMove(b, game.Black)
		require.True(t, ok)
		require.Equal(t, game.Move{Row: 2, Col: 3}, move)
	})
}

func TestMinimaxMatchesUnprunedReference(t *testing.T) {
	for difficulty := 3; difficulty <= MaxDifficulty; difficulty++ {
		depth := difficulty - 1
		for i, b := range samplePositions(t) {
			for _, player := range []game.Disc{game.Black, game.White} {
				want, wantOK := plainBestMove(b, player, depth)
				got, gotOK := New(difficulty).FindMove(b, player)

				require.Equal(t, wantOK, gotOK,
					"position %d depth %d player %s: move availability", i, depth, player)
				if wantOK {
					require.Equal(t, want, got,
						"position %d depth %d player %s: pruning changed the chosen move", i, depth, player)
				}
			}
		}
	}
}

func TestMinimaxPrunes(t *testing.T) {
	b, err := game.NewBoard(8)
	require.NoError(t, err)

	_, ok, metrics := New(5).Search(b, game.Black)
	require.True(t, ok)
	require.Greater(t, metrics.Nodes, 0)
	require.Greater(t, metrics.Prunes, 0, "depth-4 search of the opening should take beta cutoffs")
}

func TestSearchBudget(t *testing.T) {
	b, err := game.NewBoard(8)
	require.NoError(t, err)

	m := New(5, WithBudget(time.Nanosecond))
	move, ok, metrics := m.Search(b, game.Black)
	require.True(t, ok, "a budget never turns into a failure")
	require.Contains(t, b.LegalMoves(game.Black), move)
	require.True(t, metrics.Truncated, "a nanosecond budget must truncate the search")
}

func TestSearchIsPure(t *testing.T) {
	b, err := game.NewBoard(8)
	require.NoError(t, err)
	before := b.Clone()

	_, ok := New(4).FindMove(b, game.Black)
	require.True(t, ok)
	require.True(t, b.Equal(before), "search must not mutate the caller's board")
}
