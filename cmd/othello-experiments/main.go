package main

import (
	"othello/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if err := experiments.RunDifficultyLadder(); err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}
