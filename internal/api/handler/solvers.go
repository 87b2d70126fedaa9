package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/puzzlesuite-go/internal/api/request"
	"github.com/mcoot/puzzlesuite-go/internal/api/response"
	"github.com/mcoot/puzzlesuite-go/internal/services/columns"
	"github.com/mcoot/puzzlesuite-go/internal/services/sudoku"
	"github.com/mcoot/puzzlesuite-go/internal/services/wordgen"
)

// SolversHandler handles the supplemental solver endpoints
type SolversHandler struct {
	sudokuService  *sudoku.Service
	wordgenService *wordgen.Service
	columnsService *columns.Service
}

// NewSolversHandler creates a new solvers handler
func NewSolversHandler(
	sudokuService *sudoku.Service,
	wordgenService *wordgen.Service,
	columnsService *columns.Service,
) *SolversHandler {
	return &SolversHandler{
		sudokuService:  sudokuService,
		wordgenService: wordgenService,
		columnsService: columnsService,
	}
}

// SolveSudoku handles POST /api/v1/sudoku/solve
func (h *SolversHandler) SolveSudoku(w http.ResponseWriter, r *http.Request) {
	var req request.SudokuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	grid, err := h.sudokuService.Solve(req.Grid)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SudokuResponse{Grid: grid})
}

// GenerateWords handles POST /api/v1/wordgen
func (h *SolversHandler) GenerateWords(w http.ResponseWriter, r *http.Request) {
	var req request.WordgenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Letters == "" {
		WriteError(w, NewInvalidRequestError("letters is required"))
		return
	}

	words, err := h.wordgenService.Generate(req.Letters, req.Doubles)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.WordListResponse{Words: words, Count: len(words)})
}

// EnumerateColumns handles POST /api/v1/columns
func (h *SolversHandler) EnumerateColumns(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeColumns(w, r)
	if !ok {
		return
	}

	words, err := h.columnsService.Enumerate(req.Columns)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.WordListResponse{Words: words, Count: len(words)})
}

// CoreColumnWords handles POST /api/v1/columns/core
func (h *SolversHandler) CoreColumnWords(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeColumns(w, r)
	if !ok {
		return
	}

	words, err := h.columnsService.CoreWords(req.Columns)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.WordListResponse{Words: words, Count: len(words)})
}

func (h *SolversHandler) decodeColumns(w http.ResponseWriter, r *http.Request) (request.ColumnsRequest, bool) {
	var req request.ColumnsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return req, false
	}
	if len(req.Columns) == 0 {
		WriteError(w, NewInvalidRequestError("columns is required"))
		return req, false
	}
	return req, true
}
