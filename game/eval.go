package game

import "sync"

// Heuristic weights. WinScore must dominate any reachable heuristic sum so a
// decided game always outranks heuristic noise.
const (
	WinScore       = 1000
	pieceWeight    = 10
	mobilityWeight = 5
)

// positionWeights8 is the canonical table for the standard board: corners
// dominate, cells giving a corner away are penalized, edges are mildly good,
// the interior is near-neutral.
var positionWeights8 = [64]int{
	100, -20, 10, 5, 5, 10, -20, 100,
	-20, -50, -2, -2, -2, -2, -50, -20,
	10, -2, -1, -1, -1, -1, -2, 10,
	5, -2, -1, -1, -1, -1, -2, 5,
	5, -2, -1, -1, -1, -1, -2, 5,
	10, -2, -1, -1, -1, -1, -2, 10,
	-20, -50, -2, -2, -2, -2, -50, -20,
	100, -20, 10, 5, 5, 10, -20, 100,
}

var (
	weightMu    sync.Mutex
	weightCache = map[int][]int{}
)

// positionWeights returns the weight table for a board size. Size 8 uses the
// canonical table; other sizes synthesize a table with the same structure
// (corner, X-square, C-square, edge, ring, interior) rather than misapplying
// the 8×8 constants.
func positionWeights(size int) []int {
	weightMu.Lock()
	defer weightMu.Unlock()
	if w, ok := weightCache[size]; ok {
		return w
	}
	var w []int
	if size == DefaultBoardSize {
		w = positionWeights8[:]
	} else {
		w = buildPositionWeights(size)
	}
	weightCache[size] = w
	return w
}

func buildPositionWeights(size int) []int {
	w := make([]int, size*size)
	last := size - 1
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			w[r*size+c] = cellWeight(r, c, last)
		}
	}
	return w
}

func cellWeight(r, c, last int) int {
	dr := min(r, last-r)
	dc := min(c, last-c)
	switch {
	case dr == 0 && dc == 0: // corner
		return 100
	case dr == 1 && dc == 1: // X-square, hands the corner over diagonally
		return -50
	case dr+dc == 1: // C-square, edge cell next to a corner
		return -20
	case dr == 0 || dc == 0: // remaining edge
		if dr == 2 || dc == 2 {
			return 10
		}
		return 5
	case dr == 1 || dc == 1: // ring inside the edge
		return -2
	default:
		return -1
	}
}

// Evaluate scores the board from perspective's viewpoint; larger is better.
// Terminal positions collapse to ±WinScore (0 for an exact tie). Live
// positions combine disc differential, positional weight, and mobility.
func Evaluate(b *Board, perspective Disc) int {
	black, white := b.Score()
	diff := black - white
	if perspective == White {
		diff = -diff
	}

	if b.IsTerminal() {
		switch {
		case diff > 0:
			return WinScore
		case diff < 0:
			return -WinScore
		default:
			return 0
		}
	}

	score := diff * pieceWeight

	opponent := perspective.Opponent()
	weights := positionWeights(b.size)
	for i, d := range b.cells {
		switch d {
		case perspective:
			score += weights[i]
		case opponent:
			score -= weights[i]
		}
	}

	mobility := b.countLegalMoves(perspective) - b.countLegalMoves(opponent)
	score += mobility * mobilityWeight

	return score
}
