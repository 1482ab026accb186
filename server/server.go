package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"othello/game"
	"othello/searcher"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

const defaultDifficulty = 4

// Server exposes the game core over HTTP. It owns the "current game"
// singleton the stateless endpoints fall back to; the core itself holds no
// session state.
type Server struct {
	mu      sync.RWMutex
	current *game.Board
	size    int
	hub     *hub
}

// New builds a server whose current game uses the given board size.
func New(size int) (*Server, error) {
	b, err := game.NewBoard(size)
	if err != nil {
		return nil, err
	}
	return &Server{current: b, size: size, hub: newHub()}, nil
}

// Router assembles the route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/game/new", s.handleNewGame)
	r.Post("/api/game/move", s.handleMove)
	r.Post("/api/game/cpu-move", s.handleCPUMove)
	r.Get("/api/game/valid-moves/{player}", s.handleValidMoves)
	r.Get("/ws/state", s.handleStateSocket)

	return r
}

// handleNewGame resets the current game and returns the initial position
// with Black to move.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	board, err := game.NewBoard(s.size)
	if err != nil {
		s.mu.Unlock()
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.current = board
	snapshot := board.Clone()
	s.mu.Unlock()

	state := boardState(snapshot, game.Black)
	s.hub.broadcast(state)
	writeJSON(w, http.StatusOK, state)
}

// handleMove validates and applies a move against the posted board, then
// returns the position with the turn handed to the opponent.
func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	board, player, ok := parsePosition(w, req.Board, req.Player)
	if !ok {
		return
	}

	move := game.Move{Row: req.Row, Col: req.Col}
	if !board.Apply(move, player) {
		writeError(w, http.StatusBadRequest, "invalid move")
		return
	}

	state := boardState(board, player.Opponent())
	s.setCurrent(board)
	s.hub.broadcast(state)
	writeJSON(w, http.StatusOK, state)
}

// handleCPUMove runs the searcher at the requested difficulty and applies
// the chosen move. No legal move is a normal outcome: the response carries a
// null move and the unchanged board.
func (s *Server) handleCPUMove(w http.ResponseWriter, r *http.Request) {
	var req CPUMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	board, player, ok := parsePosition(w, req.Board, req.Player)
	if !ok {
		return
	}

	difficulty := req.Difficulty
	if difficulty == 0 {
		difficulty = defaultDifficulty
	}
	difficulty = searcher.ClampDifficulty(difficulty)

	move, found, metrics := searcher.New(difficulty).Search(board, player)
	log.Debug().
		Int("difficulty", difficulty).
		Int("nodes", metrics.Nodes).
		Int("prunes", metrics.Prunes).
		Dur("elapsed", metrics.Elapsed).
		Bool("found", found).
		Msg("cpu search finished")

	resp := CPUMoveResponse{NewBoard: board.Grid()}
	if !found {
		black, white := board.Score()
		resp.BlackScore = black
		resp.WhiteScore = white
		resp.ValidMoves = movePairs(board.LegalMoves(player))
		writeJSON(w, http.StatusOK, resp)
		return
	}

	board.Apply(move, player)
	black, white := board.Score()
	resp.Move = &[2]int{move.Row, move.Col}
	resp.NewBoard = board.Grid()
	resp.BlackScore = black
	resp.WhiteScore = white
	resp.ValidMoves = movePairs(board.LegalMoves(player.Opponent()))

	s.setCurrent(board)
	s.hub.broadcast(boardState(board, player.Opponent()))
	writeJSON(w, http.StatusOK, resp)
}

// handleValidMoves lists legal moves for a player, against either a board
// passed in the board_state query parameter or the current game.
func (s *Server) handleValidMoves(w http.ResponseWriter, r *http.Request) {
	wire, err := strconv.Atoi(chi.URLParam(r, "player"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "player must be an integer")
		return
	}
	player, err := game.ParsePlayer(wire)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var board *game.Board
	if raw := r.URL.Query().Get("board_state"); raw != "" {
		var grid [][]int
		if err := json.Unmarshal([]byte(raw), &grid); err != nil {
			writeError(w, http.StatusBadRequest, "board_state must be a JSON grid")
			return
		}
		board, err = game.ParseGrid(grid)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	} else {
		board = s.snapshot()
	}

	writeJSON(w, http.StatusOK, ValidMovesResponse{
		ValidMoves: movePairs(board.LegalMoves(player)),
	})
}

func (s *Server) setCurrent(b *game.Board) {
	s.mu.Lock()
	s.current = b.Clone()
	s.mu.Unlock()
}

func (s *Server) snapshot() *game.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// parsePosition decodes and validates a posted grid and player id, writing
// the 400 itself on failure.
func parsePosition(w http.ResponseWriter, grid [][]int, wirePlayer int) (*game.Board, game.Disc, bool) {
	board, err := game.ParseGrid(grid)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, game.Empty, false
	}
	player, err := game.ParsePlayer(wirePlayer)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, game.Empty, false
	}
	return board, player, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}
