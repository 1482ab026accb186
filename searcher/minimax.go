package searcher

import (
	"math"
	"time"

	"othello/game"

	"golang.org/x/exp/rand"
)

// Difficulty tiers: 1 picks uniformly at random, 2 is a one-ply greedy pick
// by the evaluator, 3 and up run alpha-beta minimax at depth difficulty-1.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// ClampDifficulty forces a difficulty into [MinDifficulty, MaxDifficulty].
// Boundaries (API, CLI) clamp before constructing a searcher; the searcher
// itself never sees out-of-range values.
func ClampDifficulty(d int) int {
	if d < MinDifficulty {
		return MinDifficulty
	}
	if d > MaxDifficulty {
		return MaxDifficulty
	}
	return d
}

// Evaluator scores a board from one player's perspective, larger = better.
type Evaluator func(*game.Board, game.Disc) int

type Option func(*Minimax)

// WithRand replaces the random source used by the random tier.
func WithRand(rng *rand.Rand) Option {
	return func(m *Minimax) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithEvaluator replaces the position evaluator.
func WithEvaluator(evaluate Evaluator) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithBudget bounds a single Search call. The deadline is consulted at each
// recursive entry; once past it, remaining subtrees are scored statically so
// the search still returns the best move found so far instead of failing.
func WithBudget(budget time.Duration) Option {
	return func(m *Minimax) {
		if budget > 0 {
			m.budget = budget
		}
	}
}

// Minimax selects moves for one difficulty tier. A Minimax value holds no
// game state: Search is a pure function of (board, player) and every
// hypothetical move runs on a fresh clone, so one instance is safe to reuse
// across games.
type Minimax struct {
	difficulty int
	evaluate   Evaluator
	rng        *rand.Rand
	budget     time.Duration
}

func New(difficulty int, options ...Option) *Minimax {
	m := &Minimax{
		difficulty: ClampDifficulty(difficulty),
		evaluate:   game.Evaluate,
		rng:        rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Difficulty() int { return m.difficulty }

// FindMove returns the chosen move for player, or ok=false when player has
// no legal move. A pass is a normal outcome, not an error.
func (m *Minimax) FindMove(b *game.Board, player game.Disc) (game.Move, bool) {
	move, ok, _ := m.Search(b, player)
	return move, ok
}

// Search is FindMove plus the metrics of the run.
func (m *Minimax) Search(b *game.Board, player game.Disc) (game.Move, bool, Metrics) {
	start := time.Now()
	metrics := Metrics{Difficulty: m.difficulty}

	moves := b.LegalMoves(player)
	if len(moves) == 0 {
		metrics.Elapsed = time.Since(start)
		return game.Move{}, false, metrics
	}

	var move game.Move
	switch {
	case m.difficulty <= 1:
		move = moves[m.rng.Intn(len(moves))]
	case m.difficulty == 2:
		move = m.greedy(b, player, moves, &metrics)
	default:
		move = m.alphaBeta(b, player, moves, &metrics)
	}

	metrics.Elapsed = time.Since(start)
	return move, true, metrics
}

// greedy scores each move one ply ahead and keeps the first strict maximum,
// so ties resolve to the earliest move in board enumeration order.
func (m *Minimax) greedy(b *game.Board, player game.Disc, moves []game.Move, metrics *Metrics) game.Move {
	best := moves[0]
	bestScore := math.MinInt
	for _, mv := range moves {
		next := b.Clone()
		next.Apply(mv, player)
		metrics.Nodes++
		if score := m.evaluate(next, player); score > bestScore {
			bestScore = score
			best = mv
		}
	}
	return best
}

// alphaBeta runs the root ply of minimax. The root scores each candidate
// with a full (-inf, +inf) window, matching the unpruned reference move for
// move; pruning only happens below the root.
func (m *Minimax) alphaBeta(b *game.Board, player game.Disc, moves []game.Move, metrics *Metrics) game.Move {
	depth := m.difficulty - 1
	var deadline time.Time
	if m.budget > 0 {
		deadline = time.Now().Add(m.budget)
	}

	best := moves[0]
	bestScore := math.MinInt
	for _, mv := range moves {
		next := b.Clone()
		next.Apply(mv, player)
		score := m.minimax(next, player, depth, math.MinInt, math.MaxInt, false, deadline, metrics)
		if score > bestScore {
			bestScore = score
			best = mv
		}
	}
	return best
}

// minimax explores to the given depth with alpha-beta pruning. The actor to
// move is player when maximizing, the opponent when minimizing. A forced
// pass flips the actor and still costs one ply of depth.
func (m *Minimax) minimax(b *game.Board, player game.Disc, depth, alpha, beta int, maximizing bool, deadline time.Time, metrics *Metrics) int {
	metrics.Nodes++

	if !deadline.IsZero() && time.Now().After(deadline) {
		metrics.Truncated = true
		return m.evaluate(b, player)
	}
	if depth == 0 || b.IsTerminal() {
		return m.evaluate(b, player)
	}

	actor := player
	if !maximizing {
		actor = player.Opponent()
	}
	moves := b.LegalMoves(actor)
	if len(moves) == 0 {
		return m.minimax(b, player, depth-1, alpha, beta, !maximizing, deadline, metrics)
	}

	if maximizing {
		best := math.MinInt
		for _, mv := range moves {
			next := b.Clone()
			next.Apply(mv, actor)
			score := m.minimax(next, player, depth-1, alpha, beta, false, deadline, metrics)
			best = max(best, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				metrics.Prunes++
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for _, mv := range moves {
		next := b.Clone()
		next.Apply(mv, actor)
		score := m.minimax(next, player, depth-1, alpha, beta, true, deadline, metrics)
		best = min(best, score)
		beta = min(beta, score)
		if beta <= alpha {
			metrics.Prunes++
			break
		}
	}
	return best
}
