// Package experiments pits searcher difficulties against each other over many
// games and records per-game and per-move metrics as CSV.
package experiments

import (
	"fmt"

	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

const NumGames = 20 // Per matchup

// RunDifficultyLadder plays every difficulty against every higher difficulty
// on the standard board and writes the results.
func RunDifficultyLadder() error {
	configs := []metrics.AgentConfig{}
	for d := searcher.MinDifficulty; d <= searcher.MaxDifficulty; d++ {
		configs = append(configs, metrics.AgentConfig{ID: d, Difficulty: d})
	}

	matchUps := [][2]metrics.AgentConfig{}
	for i, a := range configs {
		for _, b := range configs[i+1:] {
			matchUps = append(matchUps, [2]metrics.AgentConfig{a, b})
		}
	}

	return runExperiment("difficulty_ladder", configs, matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) error {
	writer, err := metrics.NewWriter(name)
	if err != nil {
		return err
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	gameID := 0
	for _, matchUp := range matchUps {
		log.Info().
			Int("black", matchUp[0].ID).
			Int("white", matchUp[1].ID).
			Msgf("running matchup for %d games", NumGames)

		for i := 0; i < NumGames; i++ {
			gameID++
			// Alternate colors each game so neither config always moves first
			blackCfg, whiteCfg := matchUp[0], matchUp[1]
			if i%2 == 1 {
				blackCfg, whiteCfg = whiteCfg, blackCfg
			}

			record, moves, err := runGame(gameID, blackCfg, whiteCfg)
			if err != nil {
				return err
			}
			gameRecords = append(gameRecords, record)
			moveRecords = append(moveRecords, moves...)
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	log.Info().Str("dir", writer.BaseDir()).Msg("experiment results written")
	return nil
}

func runGame(gameID int, blackCfg, whiteCfg metrics.AgentConfig) (metrics.GameRecord, []metrics.MoveRecord, error) {
	recorder := &moveRecorder{game: gameID}
	black := recorder.agent(searcher.New(blackCfg.Difficulty))
	white := recorder.agent(searcher.New(whiteCfg.Difficulty))

	e, err := engine.Local(game.DefaultBoardSize, black, white)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	result := e.Run()

	record := metrics.GameRecord{
		ID:     gameID,
		Black:  blackCfg.ID,
		White:  whiteCfg.ID,
		Winner: result.Winner.String(),
		Score:  fmt.Sprintf("%d-%d", result.Black, result.White),
		Moves:  result.Moves,
		Passes: result.Passes,
	}
	return record, recorder.records, nil
}

// moveRecorder wraps searchers for one game and captures their metrics.
type moveRecorder struct {
	game    int
	step    int
	records []metrics.MoveRecord
}

func (r *moveRecorder) agent(m *searcher.Minimax) engine.Agent {
	return &recordingAgent{recorder: r, searcher: m}
}

type recordingAgent struct {
	recorder *moveRecorder
	searcher *searcher.Minimax
}

func (a *recordingAgent) FindMove(b *game.Board, player game.Disc) (game.Move, bool) {
	move, ok, met := a.searcher.Search(b, player)
	a.recorder.step++
	a.recorder.records = append(a.recorder.records, metrics.MoveRecord{
		Game:       a.recorder.game,
		Step:       a.recorder.step,
		Player:     player.String(),
		Difficulty: met.Difficulty,
		Nodes:      met.Nodes,
		Prunes:     met.Prunes,
		ElapsedUs:  met.Elapsed.Microseconds(),
	})
	return move, ok
}
