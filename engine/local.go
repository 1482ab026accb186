package engine

import (
	"fmt"

	"othello/game"

	"github.com/rs/zerolog/log"
)

// Engine runs a complete game between two agents in-process. State is owned
// by the engine; agents only ever see cloned boards.
type Engine struct {
	State  *game.GameState
	agents map[game.Disc]Agent
}

// Local builds an engine for a fresh game of the given board size.
func Local(size int, black, white Agent) (*Engine, error) {
	if black == nil || white == nil {
		return nil, fmt.Errorf("engine: both agents are required")
	}
	state, err := game.NewGameState(size)
	if err != nil {
		return nil, err
	}
	return &Engine{
		State:  state,
		agents: map[game.Disc]Agent{game.Black: black, game.White: white},
	}, nil
}

// Run plays until the position is terminal and returns the result.
func (e *Engine) Run() Result {
	var result Result
	for moves := 0; moves < MaxMoves; moves++ {
		winner, over := e.State.Winner()
		if over {
			black, white := e.State.Board.Score()
			result.Winner = winner
			result.Tie = winner == game.Empty
			result.Black = black
			result.White = white
			log.Info().
				Str("winner", winner.String()).
				Int("black", black).
				Int("white", white).
				Int("moves", result.Moves).
				Msg("game over")
			return result
		}

		current := e.State.Current
		agent := e.agents[current]
		move, ok := agent.FindMove(e.State.Board.Clone(), current)
		if !ok {
			log.Debug().Str("player", current.String()).Msg("no legal move, passing")
			e.State = e.State.Pass()
			result.Passes++
			continue
		}

		next, applied := e.State.Play(move)
		if !applied {
			// A misbehaving agent returned an illegal move; fall back to the
			// first legal one rather than aborting the game.
			log.Warn().
				Str("player", current.String()).
				Str("move", move.String()).
				Msg("agent returned illegal move, using first legal move")
			legal := e.State.LegalMoves()
			if len(legal) == 0 {
				e.State = e.State.Pass()
				result.Passes++
				continue
			}
			next, _ = e.State.Play(legal[0])
		}
		e.State = next
		result.Moves++
	}

	log.Error().Int("max_moves", MaxMoves).Msg("game did not finish within move cap")
	return result
}
