package puzzles

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/puzzlesuite-go/internal/dependencies/clock"
	"github.com/mcoot/puzzlesuite-go/internal/dependencies/random"
	"github.com/mcoot/puzzlesuite-go/internal/model"
	"github.com/mcoot/puzzlesuite-go/internal/storage"
)

const (
	// IDLength is the length of generated puzzle and result IDs
	IDLength = 8
	// IDAlphabet is the characters used in IDs (avoid confusing chars)
	IDAlphabet = "abcdefghjklmnpqrstuvwxyz23456789"
)

type ServiceInterface interface {
	CreatePuzzle(ctx context.Context, puzzle *model.SavedPuzzle) (*model.SavedPuzzle, error)
	GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.SavedPuzzle, error)
	ListPuzzles(ctx context.Context) ([]*model.SavedPuzzle, error)
	DeletePuzzle(ctx context.Context, id model.PuzzleID) error
	RecordResult(ctx context.Context, result *model.SolveResult) (*model.SolveResult, error)
	GetResult(ctx context.Context, id model.ResultID) (*model.SolveResult, error)
	ListResults(ctx context.Context, puzzleID model.PuzzleID) ([]*model.SolveResult, error)
}

// Service manages saved puzzles and their solve results
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

var _ ServiceInterface = (*Service)(nil)

func New(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger.With(slog.String("component", "puzzles")),
	}
}

// CreatePuzzle validates and persists a puzzle, assigning its ID and creation
// time. The kind must match the payload carried: a tower puzzle holds a
// board, a sudoku puzzle a grid, a columns puzzle its column strings.
func (s *Service) CreatePuzzle(ctx context.Context, puzzle *model.SavedPuzzle) (*model.SavedPuzzle, error) {
	switch puzzle.Kind {
	case model.PuzzleKindTower:
		if puzzle.Board == nil {
			return nil, fmt.Errorf("%w: tower puzzle requires a board", model.ErrInvalidBoard)
		}
		if err := puzzle.Board.Validate(); err != nil {
			return nil, err
		}
	case model.PuzzleKindSudoku:
		if puzzle.Grid == nil {
			return nil, fmt.Errorf("%w: sudoku puzzle requires a grid", model.ErrInvalidGrid)
		}
	case model.PuzzleKindColumns:
		if len(puzzle.Columns) == 0 {
			return nil, fmt.Errorf("%w: columns puzzle requires columns", model.ErrInvalidPuzzle)
		}
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", model.ErrInvalidPuzzle, puzzle.Kind)
	}

	puzzle.ID = model.PuzzleID(s.random.String(IDLength, IDAlphabet))
	puzzle.CreatedAt = s.clock.Now()

	if err := s.storage.SavePuzzle(ctx, puzzle); err != nil {
		return nil, err
	}

	s.logger.Info("puzzle created",
		slog.String("puzzle_id", string(puzzle.ID)),
		slog.String("kind", puzzle.Kind))

	return puzzle, nil
}

// GetPuzzle retrieves a saved puzzle by ID
func (s *Service) GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.SavedPuzzle, error) {
	return s.storage.GetPuzzle(ctx, id)
}

// ListPuzzles lists all saved puzzles
func (s *Service) ListPuzzles(ctx context.Context) ([]*model.SavedPuzzle, error) {
	return s.storage.ListPuzzles(ctx)
}

// DeletePuzzle removes a puzzle and all solve results recorded against it
func (s *Service) DeletePuzzle(ctx context.Context, id model.PuzzleID) error {
	if _, err := s.storage.GetPuzzle(ctx, id); err != nil {
		return err
	}
	if err := s.storage.DeleteSolveResultsForPuzzle(ctx, id); err != nil {
		return err
	}
	if err := s.storage.DeletePuzzle(ctx, id); err != nil {
		return err
	}

	s.logger.Info("puzzle deleted", slog.String("puzzle_id", string(id)))
	return nil
}

// RecordResult persists a solve result against an existing puzzle, assigning
// its ID and creation time
func (s *Service) RecordResult(ctx context.Context, result *model.SolveResult) (*model.SolveResult, error) {
	if _, err := s.storage.GetPuzzle(ctx, result.PuzzleID); err != nil {
		return nil, err
	}

	result.ID = model.ResultID(s.random.String(IDLength, IDAlphabet))
	result.CreatedAt = s.clock.Now()

	if err := s.storage.SaveSolveResult(ctx, result); err != nil {
		return nil, err
	}

	s.logger.Info("solve result recorded",
		slog.String("result_id", string(result.ID)),
		slog.String("puzzle_id", string(result.PuzzleID)),
		slog.String("strategy", result.Strategy))

	return result, nil
}

// GetResult retrieves a solve result by ID
func (s *Service) GetResult(ctx context.Context, id model.ResultID) (*model.SolveResult, error) {
	return s.storage.GetSolveResult(ctx, id)
}

// ListResults lists the solve results recorded against a puzzle
func (s *Service) ListResults(ctx context.Context, puzzleID model.PuzzleID) ([]*model.SolveResult, error) {
	if _, err := s.storage.GetPuzzle(ctx, puzzleID); err != nil {
		return nil, err
	}
	return s.storage.ListSolveResults(ctx, puzzleID)
}
