package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/puzzlesuite-go/internal/api/request"
	"github.com/mcoot/puzzlesuite-go/internal/api/response"
	"github.com/mcoot/puzzlesuite-go/internal/services/clearing"
	"github.com/mcoot/puzzlesuite-go/internal/services/scoring"
	"github.com/mcoot/puzzlesuite-go/internal/services/search"
	"github.com/mcoot/puzzlesuite-go/internal/services/solver"
)

// TowerHandler handles tower board endpoints
type TowerHandler struct {
	solverService   *solver.Service
	searchService   *search.Service
	scoringService  *scoring.Service
	clearingService *clearing.Service
}

// NewTowerHandler creates a new tower handler
func NewTowerHandler(
	solverService *solver.Service,
	searchService *search.Service,
	scoringService *scoring.Service,
	clearingService *clearing.Service,
) *TowerHandler {
	return &TowerHandler{
		solverService:   solverService,
		searchService:   searchService,
		scoringService:  scoringService,
		clearingService: clearingService,
	}
}

// Solve handles POST /api/v1/spelltower/solve
func (h *TowerHandler) Solve(w http.ResponseWriter, r *http.Request) {
	var req request.SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	board, err := req.Board.ToModel()
	if err != nil {
		WriteError(w, err)
		return
	}

	solution, err := h.solverService.Solve(r.Context(), board, req.Strategy)
	if err != nil {
		WriteError(w, err)
		return
	}

	// Replay the solution to report the final board state
	final := board
	for _, wp := range solution.Sequence {
		final = h.clearingService.ApplyWord(final, wp)
	}

	strategy := req.Strategy
	if strategy == "" {
		strategy = solver.DefaultStrategy
	}

	response.JSON(w, http.StatusOK, response.SolveResponse{
		Solution: solution,
		Strategy: strategy,
		Board:    response.BoardFromModel(final),
	})
}

// Words handles POST /api/v1/spelltower/words
func (h *TowerHandler) Words(w http.ResponseWriter, r *http.Request) {
	var req request.WordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	board, err := req.Board.ToModel()
	if err != nil {
		WriteError(w, err)
		return
	}

	paths, err := h.searchService.FindAllWords(r.Context(), board)
	if err != nil {
		WriteError(w, err)
		return
	}
	words := h.scoringService.AnnotateAll(board, paths)

	response.JSON(w, http.StatusOK, response.WordsResponse{
		Words: words,
		Count: len(words),
	})
}

// Strategies handles GET /api/v1/spelltower/strategies
func (h *TowerHandler) Strategies(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.StrategiesResponse{
		Strategies: h.solverService.Strategies(),
		Default:    solver.DefaultStrategy,
	})
}
