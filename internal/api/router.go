package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/puzzlesuite-go/internal/api/handler"
	"github.com/mcoot/puzzlesuite-go/internal/api/middleware"
	"github.com/mcoot/puzzlesuite-go/internal/services/clearing"
	"github.com/mcoot/puzzlesuite-go/internal/services/columns"
	"github.com/mcoot/puzzlesuite-go/internal/services/lexicon"
	"github.com/mcoot/puzzlesuite-go/internal/services/puzzles"
	"github.com/mcoot/puzzlesuite-go/internal/services/scoring"
	"github.com/mcoot/puzzlesuite-go/internal/services/search"
	"github.com/mcoot/puzzlesuite-go/internal/services/solver"
	"github.com/mcoot/puzzlesuite-go/internal/services/sudoku"
	"github.com/mcoot/puzzlesuite-go/internal/services/wordgen"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	LexiconService  *lexicon.Service
	SearchService   *search.Service
	ScoringService  *scoring.Service
	ClearingService *clearing.Service
	SolverService   *solver.Service
	SudokuService   *sudoku.Service
	WordgenService  *wordgen.Service
	ColumnsService  *columns.Service
	PuzzlesService  *puzzles.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	towerHandler := handler.NewTowerHandler(cfg.SolverService, cfg.SearchService, cfg.ScoringService, cfg.ClearingService)
	solversHandler := handler.NewSolversHandler(cfg.SudokuService, cfg.WordgenService, cfg.ColumnsService)
	puzzleHandler := handler.NewPuzzleHandler(cfg.PuzzlesService, cfg.SolverService)
	systemHandler := handler.NewSystemHandler(cfg.LexiconService)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Tower board routes
	api.HandleFunc("/spelltower/solve", towerHandler.Solve).Methods(http.MethodPost)
	api.HandleFunc("/spelltower/words", towerHandler.Words).Methods(http.MethodPost)
	api.HandleFunc("/spelltower/strategies", towerHandler.Strategies).Methods(http.MethodGet)

	// Supplemental solver routes
	api.HandleFunc("/sudoku/solve", solversHandler.SolveSudoku).Methods(http.MethodPost)
	api.HandleFunc("/wordgen", solversHandler.GenerateWords).Methods(http.MethodPost)
	api.HandleFunc("/columns", solversHandler.EnumerateColumns).Methods(http.MethodPost)
	api.HandleFunc("/columns/core", solversHandler.CoreColumnWords).Methods(http.MethodPost)

	// Saved puzzle routes
	api.HandleFunc("/puzzles", puzzleHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/puzzles", puzzleHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/puzzles/{id}", puzzleHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/puzzles/{id}", puzzleHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/puzzles/{id}/solve", puzzleHandler.Solve).Methods(http.MethodPost)
	api.HandleFunc("/puzzles/{id}/results", puzzleHandler.ListResults).Methods(http.MethodGet)

	// System routes
	api.HandleFunc("/health", systemHandler.Health).Methods(http.MethodGet)
	api.HandleFunc("/lexicon", systemHandler.Lexicon).Methods(http.MethodGet)

	return r
}
