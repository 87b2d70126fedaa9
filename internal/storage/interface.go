package storage

import (
	"context"

	"github.com/mcoot/puzzlesuite-go/internal/model"
)

// DefaultWordListName is the word list used by the lexicon oracle
const DefaultWordListName = "default"

// Storage defines the interface for data persistence
type Storage interface {
	// Word list operations
	SaveWordList(ctx context.Context, name string, words []string) error
	GetWordList(ctx context.Context, name string) ([]string, error)

	// Saved puzzle operations
	SavePuzzle(ctx context.Context, puzzle *model.SavedPuzzle) error
	GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.SavedPuzzle, error)
	ListPuzzles(ctx context.Context) ([]*model.SavedPuzzle, error)
	DeletePuzzle(ctx context.Context, id model.PuzzleID) error

	// Solve result operations
	SaveSolveResult(ctx context.Context, result *model.SolveResult) error
	GetSolveResult(ctx context.Context, id model.ResultID) (*model.SolveResult, error)
	ListSolveResults(ctx context.Context, puzzleID model.PuzzleID) ([]*model.SolveResult, error)
	DeleteSolveResultsForPuzzle(ctx context.Context, puzzleID model.PuzzleID) error
}
