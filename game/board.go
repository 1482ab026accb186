package game

import (
	"fmt"
	"strings"
)

// Disc is the content of a single cell. Black and White double as player
// identities; Empty is only ever a cell value.
type Disc int8

const (
	Empty Disc = iota
	Black
	White
)

func (d Disc) String() string {
	switch d {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Empty"
	}
}

// Opponent returns the other player. Empty has no opponent.
func (d Disc) Opponent() Disc {
	switch d {
	case Black:
		return White
	case White:
		return Black
	}
	panic("game: Empty has no opponent")
}

const (
	MinBoardSize     = 4
	DefaultBoardSize = 8
)

// The 8 compass directions a flip line can run in.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board owns a size×size grid of discs. Apply mutates only the receiver and
// Clone returns a fully independent copy, so a searcher can explore
// hypothetical positions without shared state. Create boards via NewBoard or
// ParseGrid; the zero value is not usable.
type Board struct {
	size  int
	cells []Disc
}

// NewBoard returns a board of the given even size (at least MinBoardSize)
// with the four center cells set in the classic alternating pattern.
func NewBoard(size int) (*Board, error) {
	if size < MinBoardSize || size%2 != 0 {
		return nil, fmt.Errorf("%w: size %d must be even and at least %d", ErrMalformedBoard, size, MinBoardSize)
	}
	b := &Board{size: size, cells: make([]Disc, size*size)}
	c := size / 2
	b.set(c-1, c-1, White)
	b.set(c-1, c, Black)
	b.set(c, c-1, Black)
	b.set(c, c, White)
	return b, nil
}

func (b *Board) Size() int { return b.size }

// Cell returns the disc at (row, col). Out-of-bounds coordinates read Empty.
func (b *Board) Cell(row, col int) Disc {
	if !b.inBounds(row, col) {
		return Empty
	}
	return b.cells[row*b.size+col]
}

func (b *Board) set(row, col int, d Disc) {
	b.cells[row*b.size+col] = d
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// IsLegal reports whether placing player's disc at m flips at least one
// opposing line.
func (b *Board) IsLegal(m Move, player Disc) bool {
	if !b.inBounds(m.Row, m.Col) || b.Cell(m.Row, m.Col) != Empty {
		return false
	}
	for _, dir := range directions {
		if b.flipsInDirection(m, dir[0], dir[1], player) {
			return true
		}
	}
	return false
}

// flipsInDirection walks from m one step at a time: an opponent run must be
// immediately adjacent and terminated by one of player's own discs before any
// gap or the board edge.
func (b *Board) flipsInDirection(m Move, dr, dc int, player Disc) bool {
	r, c := m.Row+dr, m.Col+dc
	sawOpponent := false
	for b.inBounds(r, c) {
		switch b.Cell(r, c) {
		case Empty:
			return false
		case player:
			return sawOpponent
		default:
			sawOpponent = true
		}
		r += dr
		c += dc
	}
	return false
}

// Apply re-validates m and, if legal, places player's disc and flips every
// bounded opponent run in all 8 directions. It reports whether the move was
// applied; an illegal move leaves the board untouched.
func (b *Board) Apply(m Move, player Disc) bool {
	if !b.IsLegal(m, player) {
		return false
	}
	b.set(m.Row, m.Col, player)
	for _, dir := range directions {
		if b.flipsInDirection(m, dir[0], dir[1], player) {
			b.flipDirection(m, dir[0], dir[1], player)
		}
	}
	return true
}

func (b *Board) flipDirection(m Move, dr, dc int, player Disc) {
	r, c := m.Row+dr, m.Col+dc
	for b.inBounds(r, c) && b.Cell(r, c) != player {
		b.set(r, c, player)
		r += dr
		c += dc
	}
}

// LegalMoves enumerates cells in row-major order and keeps the legal ones.
// The order is deterministic; the searcher's first-max tie-breaking depends
// on it.
func (b *Board) LegalMoves(player Disc) []Move {
	var moves []Move
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			m := Move{Row: r, Col: c}
			if b.IsLegal(m, player) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// HasLegalMove is LegalMoves without the allocation, for terminal checks and
// mobility counting.
func (b *Board) HasLegalMove(player Disc) bool {
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.IsLegal(Move{Row: r, Col: c}, player) {
				return true
			}
		}
	}
	return false
}

func (b *Board) countLegalMoves(player Disc) int {
	n := 0
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.IsLegal(Move{Row: r, Col: c}, player) {
				n++
			}
		}
	}
	return n
}

// Score returns the disc counts for Black and White.
func (b *Board) Score() (black, white int) {
	for _, d := range b.cells {
		switch d {
		case Black:
			black++
		case White:
			white++
		}
	}
	return black, white
}

// IsTerminal reports whether neither player has a legal move. This covers
// both the full board and stalemates where empty cells remain but nothing
// flips.
func (b *Board) IsTerminal() bool {
	return !b.HasLegalMove(Black) && !b.HasLegalMove(White)
}

// Clone returns an independent deep copy.
func (b *Board) Clone() *Board {
	cells := make([]Disc, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

// Equal reports whether two boards have identical size and cell contents.
func (b *Board) Equal(other *Board) bool {
	if b.size != other.size {
		return false
	}
	for i, d := range b.cells {
		if other.cells[i] != d {
			return false
		}
	}
	return true
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for c := 0; c < b.size; c++ {
		fmt.Fprintf(&sb, "%d ", c)
	}
	sb.WriteByte('\n')
	for r := 0; r < b.size; r++ {
		fmt.Fprintf(&sb, "%d ", r)
		for c := 0; c < b.size; c++ {
			switch b.Cell(r, c) {
			case Black:
				sb.WriteString("B ")
			case White:
				sb.WriteString("W ")
			default:
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
