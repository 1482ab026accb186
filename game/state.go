package game

import (
	"encoding/binary"
	"hash/fnv"
)

// GameState is a board plus the player to move. Play and Pass return fresh
// copies; a state held by one component is never mutated by another.
type GameState struct {
	Board   *Board
	Current Disc
}

// NewGameState returns the initial position with Black to move.
func NewGameState(size int) (*GameState, error) {
	b, err := NewBoard(size)
	if err != nil {
		return nil, err
	}
	return &GameState{Board: b, Current: Black}, nil
}

func (gs *GameState) Copy() *GameState {
	return &GameState{Board: gs.Board.Clone(), Current: gs.Current}
}

// LegalMoves returns the moves available to the player to move.
func (gs *GameState) LegalMoves() []Move {
	return gs.Board.LegalMoves(gs.Current)
}

// Play applies m for the player to move and hands the turn to the opponent.
// It reports whether the move was legal; an illegal move returns the
// receiver unchanged.
func (gs *GameState) Play(m Move) (*GameState, bool) {
	next := gs.Copy()
	if !next.Board.Apply(m, next.Current) {
		return gs, false
	}
	next.Current = next.Current.Opponent()
	return next, true
}

// Pass hands the turn to the opponent without a move. The caller decides when
// a pass is forced (no legal moves for the player to move).
func (gs *GameState) Pass() *GameState {
	next := gs.Copy()
	next.Current = next.Current.Opponent()
	return next
}

// Winner returns the leading player once the position is terminal. The bool
// is false while the game is still live; a terminal tie returns Empty, true.
func (gs *GameState) Winner() (Disc, bool) {
	if !gs.Board.IsTerminal() {
		return Empty, false
	}
	black, white := gs.Board.Score()
	switch {
	case black > white:
		return Black, true
	case white > black:
		return White, true
	default:
		return Empty, true
	}
}

// Hash folds the position and the player to move into a 64-bit fnv-1a value.
func (gs *GameState) Hash() uint64 {
	h := fnv.New64a()
	binary.Write(h, binary.LittleEndian, int64(gs.Current))
	binary.Write(h, binary.LittleEndian, int64(gs.Board.size))
	for _, d := range gs.Board.cells {
		binary.Write(h, binary.LittleEndian, int64(d))
	}
	return h.Sum64()
}
