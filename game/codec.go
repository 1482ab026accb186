package game

import "fmt"

// Wire representation of cells and players: 1 Black, -1 White, 0 Empty. This
// matches what frontends exchange with the API; nothing inside the package
// leans on the numeric values.
const (
	wireEmpty = 0
	wireBlack = 1
	wireWhite = -1
)

// ParseDisc converts a wire cell value, rejecting anything outside the
// domain.
func ParseDisc(v int) (Disc, error) {
	switch v {
	case wireBlack:
		return Black, nil
	case wireWhite:
		return White, nil
	case wireEmpty:
		return Empty, nil
	}
	return Empty, fmt.Errorf("%w: unknown cell value %d", ErrMalformedBoard, v)
}

// ParsePlayer converts a wire player id. Unlike ParseDisc it rejects the
// empty value: a move always belongs to a concrete player.
func ParsePlayer(v int) (Disc, error) {
	switch v {
	case wireBlack:
		return Black, nil
	case wireWhite:
		return White, nil
	}
	return Empty, fmt.Errorf("%w: unknown player id %d", ErrMalformedBoard, v)
}

// WireValue converts a disc back to its wire form.
func WireValue(d Disc) int {
	switch d {
	case Black:
		return wireBlack
	case White:
		return wireWhite
	default:
		return wireEmpty
	}
}

// ParseGrid validates a grid snapshot and builds a Board from it. The grid
// must be square, of a supported size, and hold only recognized cell values;
// anything else is rejected with ErrMalformedBoard before the position can
// reach the searcher.
func ParseGrid(grid [][]int) (*Board, error) {
	size := len(grid)
	if size < MinBoardSize || size%2 != 0 {
		return nil, fmt.Errorf("%w: grid has %d rows, want an even count of at least %d", ErrMalformedBoard, size, MinBoardSize)
	}
	b := &Board{size: size, cells: make([]Disc, size*size)}
	for r, row := range grid {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedBoard, r, len(row), size)
		}
		for c, v := range row {
			d, err := ParseDisc(v)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			b.set(r, c, d)
		}
	}
	return b, nil
}

// Grid renders the board as a wire grid snapshot.
func (b *Board) Grid() [][]int {
	grid := make([][]int, b.size)
	for r := 0; r < b.size; r++ {
		row := make([]int, b.size)
		for c := 0; c < b.size; c++ {
			row[c] = WireValue(b.Cell(r, c))
		}
		grid[r] = row
	}
	return grid
}
