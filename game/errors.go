package game

import "errors"

var (
	// ErrMalformedBoard marks input rejected at the boundary: inconsistent
	// grid dimensions, cell values outside the disc domain, or an unknown
	// player id. Well-formed boards never produce it.
	ErrMalformedBoard = errors.New("malformed board")

	// ErrInvalidMove marks a move that is out of bounds, targets an occupied
	// cell, or flips nothing. Board methods report this condition as a bool;
	// the error exists for boundaries that need to surface it to callers.
	ErrInvalidMove = errors.New("invalid move")
)
