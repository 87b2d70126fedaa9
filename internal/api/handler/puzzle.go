package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/mcoot/puzzlesuite-go/internal/api/request"
	"github.com/mcoot/puzzlesuite-go/internal/api/response"
	"github.com/mcoot/puzzlesuite-go/internal/model"
	"github.com/mcoot/puzzlesuite-go/internal/services/puzzles"
	"github.com/mcoot/puzzlesuite-go/internal/services/solver"
)

// PuzzleHandler handles saved puzzle endpoints
type PuzzleHandler struct {
	puzzlesService *puzzles.Service
	solverService  *solver.Service
}

// NewPuzzleHandler creates a new puzzle handler
func NewPuzzleHandler(puzzlesService *puzzles.Service, solverService *solver.Service) *PuzzleHandler {
	return &PuzzleHandler{
		puzzlesService: puzzlesService,
		solverService:  solverService,
	}
}

// Create handles POST /api/v1/puzzles
func (h *PuzzleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePuzzleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	puzzle := &model.SavedPuzzle{
		Name:    req.Name,
		Kind:    req.Kind,
		Grid:    req.Grid,
		Columns: req.Columns,
	}
	if req.Board != nil {
		board, err := req.Board.ToModel()
		if err != nil {
			WriteError(w, err)
			return
		}
		puzzle.Board = board
	}

	created, err := h.puzzlesService.CreatePuzzle(r.Context(), puzzle)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PuzzleFromModel(created))
}

// Get handles GET /api/v1/puzzles/{id}
func (h *PuzzleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PuzzleID(mux.Vars(r)["id"])

	puzzle, err := h.puzzlesService.GetPuzzle(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PuzzleFromModel(puzzle))
}

// List handles GET /api/v1/puzzles
func (h *PuzzleHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.puzzlesService.ListPuzzles(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PuzzlesFromModel(list))
}

// Delete handles DELETE /api/v1/puzzles/{id}
func (h *PuzzleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.PuzzleID(mux.Vars(r)["id"])

	if err := h.puzzlesService.DeletePuzzle(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Solve handles POST /api/v1/puzzles/{id}/solve: runs the tower solver on a
// saved tower puzzle and records the result against it
func (h *PuzzleHandler) Solve(w http.ResponseWriter, r *http.Request) {
	id := model.PuzzleID(mux.Vars(r)["id"])

	var req request.SolvePuzzleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	puzzle, err := h.puzzlesService.GetPuzzle(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	if puzzle.Kind != model.PuzzleKindTower || puzzle.Board == nil {
		WriteError(w, NewInvalidRequestError("only tower puzzles can be solved here"))
		return
	}

	start := time.Now()
	solution, err := h.solverService.Solve(r.Context(), puzzle.Board, req.Strategy)
	if err != nil {
		WriteError(w, err)
		return
	}

	strategy := req.Strategy
	if strategy == "" {
		strategy = solver.DefaultStrategy
	}

	result, err := h.puzzlesService.RecordResult(r.Context(), &model.SolveResult{
		PuzzleID: id,
		Strategy: strategy,
		Solution: solution,
		Duration: time.Since(start),
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.ResultFromModel(result))
}

// ListResults handles GET /api/v1/puzzles/{id}/results
func (h *PuzzleHandler) ListResults(w http.ResponseWriter, r *http.Request) {
	id := model.PuzzleID(mux.Vars(r)["id"])

	results, err := h.puzzlesService.ListResults(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ResultsFromModel(results))
}
