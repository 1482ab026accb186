package server

import "othello/game"

// Wire DTOs. Cells and players travel as ints (1 Black, -1 White, 0 Empty)
// and moves as [row, col] pairs, matching what the frontend exchanges.

type BoardState struct {
	Board         [][]int  `json:"board"`
	CurrentPlayer int      `json:"current_player"`
	BlackScore    int      `json:"black_score"`
	WhiteScore    int      `json:"white_score"`
	GameOver      bool     `json:"game_over"`
	Winner        *int     `json:"winner"`
	ValidMoves    [][2]int `json:"valid_moves"`
}

type MoveRequest struct {
	Board  [][]int `json:"board"`
	Row    int     `json:"row"`
	Col    int     `json:"col"`
	Player int     `json:"player"`
}

type CPUMoveRequest struct {
	Board      [][]int `json:"board"`
	Player     int     `json:"player"`
	Difficulty int     `json:"difficulty"`
}

type CPUMoveResponse struct {
	Move       *[2]int  `json:"move"`
	NewBoard   [][]int  `json:"new_board"`
	BlackScore int      `json:"black_score"`
	WhiteScore int      `json:"white_score"`
	ValidMoves [][2]int `json:"valid_moves"`
}

type ValidMovesResponse struct {
	ValidMoves [][2]int `json:"valid_moves"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func movePairs(moves []game.Move) [][2]int {
	pairs := make([][2]int, 0, len(moves))
	for _, m := range moves {
		pairs = append(pairs, [2]int{m.Row, m.Col})
	}
	return pairs
}

// boardState builds the full snapshot DTO for a board with nextPlayer to
// move.
func boardState(b *game.Board, nextPlayer game.Disc) BoardState {
	black, white := b.Score()
	state := BoardState{
		Board:         b.Grid(),
		CurrentPlayer: game.WireValue(nextPlayer),
		BlackScore:    black,
		WhiteScore:    white,
		GameOver:      b.IsTerminal(),
		ValidMoves:    movePairs(b.LegalMoves(nextPlayer)),
	}
	if state.GameOver && black != white {
		winner := game.WireValue(game.Black)
		if white > black {
			winner = game.WireValue(game.White)
		}
		state.Winner = &winner
	}
	return state
}
