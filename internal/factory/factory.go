package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/puzzlesuite-go/internal/dependencies/clock"
	"github.com/mcoot/puzzlesuite-go/internal/dependencies/random"
	"github.com/mcoot/puzzlesuite-go/internal/services/clearing"
	"github.com/mcoot/puzzlesuite-go/internal/services/columns"
	"github.com/mcoot/puzzlesuite-go/internal/services/lexicon"
	"github.com/mcoot/puzzlesuite-go/internal/services/puzzles"
	"github.com/mcoot/puzzlesuite-go/internal/services/scoring"
	"github.com/mcoot/puzzlesuite-go/internal/services/search"
	"github.com/mcoot/puzzlesuite-go/internal/services/solver"
	"github.com/mcoot/puzzlesuite-go/internal/services/sudoku"
	"github.com/mcoot/puzzlesuite-go/internal/services/wordgen"
	"github.com/mcoot/puzzlesuite-go/internal/storage"
	"github.com/mcoot/puzzlesuite-go/internal/storage/memory"
	redisstorage "github.com/mcoot/puzzlesuite-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
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

// Config holds configuration for the application factory
type Config struct {
	// LexiconPath is the path to a word list file, one word per line (optional)
	// If empty, the lexicon is loaded from storage, or must be loaded manually
	LexiconPath string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SearchConfig holds word search settings (optional)
	SearchConfig *search.Config
	// ClearingConfig holds clearing rule settings (optional)
	ClearingConfig *clearing.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	searchCfg := search.DefaultConfig()
	if cfg.SearchConfig != nil {
		searchCfg = *cfg.SearchConfig
	}
	clearingCfg := clearing.DefaultConfig()
	if cfg.ClearingConfig != nil {
		clearingCfg = *cfg.ClearingConfig
	}

	app := newWithDependencies(store, clock.New(), random.New(), searchCfg, clearingCfg, logger)

	if cfg.LexiconPath != "" {
		if err := app.LexiconService.LoadFromFile(context.Background(), cfg.LexiconPath); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	searchCfg search.Config,
	clearingCfg clearing.Config,
	logger *slog.Logger,
) *App {
	lexiconService := lexicon.New(store, logger)
	searchService := search.New(lexiconService, searchCfg, logger)
	scoringService := scoring.New()
	clearingService := clearing.New(clearingCfg)
	solverService := solver.New(searchService, scoringService, clearingService, logger)
	sudokuService := sudoku.New(logger)
	wordgenService := wordgen.New(lexiconService, logger)
	columnsService := columns.New(lexiconService, logger)
	puzzlesService := puzzles.New(store, clk, rnd, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		LexiconService:  lexiconService,
		SearchService:   searchService,
		ScoringService:  scoringService,
		ClearingService: clearingService,
		SolverService:   solverService,
		SudokuService:   sudokuService,
		WordgenService:  wordgenService,
		ColumnsService:  columnsService,
		PuzzlesService:  puzzlesService,
	}
}
