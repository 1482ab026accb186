package engine

import "othello/game"

// MaxMoves caps a game loop; an Othello game on any supported board finishes
// far below this.
const MaxMoves = 10000

// Agent selects a move for one side. ok=false means the agent has no legal
// move and must pass. searcher.Minimax satisfies this directly.
type Agent interface {
	FindMove(b *game.Board, player game.Disc) (game.Move, bool)
}

// Result summarizes a finished game.
type Result struct {
	Winner game.Disc // Empty on a tie
	Tie    bool
	Black  int
	White  int
	Moves  int
	Passes int
}
