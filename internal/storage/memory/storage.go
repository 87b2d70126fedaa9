package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/puzzlesuite-go/internal/model"
	"github.com/mcoot/puzzlesuite-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	wordLists map[string][]string
	puzzles   map[model.PuzzleID]*model.SavedPuzzle
	results   map[model.ResultID]*model.SolveResult
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		wordLists: make(map[string][]string),
		puzzles:   make(map[model.PuzzleID]*model.SavedPuzzle),
		results:   make(map[model.ResultID]*model.SolveResult),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Word list operations

func (s *Storage) SaveWordList(ctx context.Context, name string, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]string, len(words))
	copy(copied, words)
	s.wordLists[name] = copied
	return nil
}

func (s *Storage) GetWordList(ctx context.Context, name string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words, ok := s.wordLists[name]
	if !ok {
		return nil, model.ErrWordListNotFound
	}
	copied := make([]string, len(words))
	copy(copied, words)
	return copied, nil
}

// Saved puzzle operations

func (s *Storage) SavePuzzle(ctx context.Context, puzzle *model.SavedPuzzle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puzzles[puzzle.ID] = puzzle
	return nil
}

func (s *Storage) GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.SavedPuzzle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	puzzle, ok := s.puzzles[id]
	if !ok {
		return nil, model.ErrPuzzleNotFound
	}
	return puzzle, nil
}

func (s *Storage) ListPuzzles(ctx context.Context) ([]*model.SavedPuzzle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	puzzles := make([]*model.SavedPuzzle, 0, len(s.puzzles))
	for _, p := range s.puzzles {
		puzzles = append(puzzles, p)
	}
	sort.Slice(puzzles, func(i, j int) bool {
		if puzzles[i].CreatedAt.Equal(puzzles[j].CreatedAt) {
			return puzzles[i].ID < puzzles[j].ID
		}
		return puzzles[i].CreatedAt.Before(puzzles[j].CreatedAt)
	})
	return puzzles, nil
}

func (s *Storage) DeletePuzzle(ctx context.Context, id model.PuzzleID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.puzzles, id)
	return nil
}

// Solve result operations

func (s *Storage) SaveSolveResult(ctx context.Context, result *model.SolveResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[result.ID] = result
	return nil
}

func (s *Storage) GetSolveResult(ctx context.Context, id model.ResultID) (*model.SolveResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.results[id]
	if !ok {
		return nil, model.ErrResultNotFound
	}
	return result, nil
}

func (s *Storage) ListSolveResults(ctx context.Context, puzzleID model.PuzzleID) ([]*model.SolveResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var results []*model.SolveResult
	for _, r := range s.results {
		if r.PuzzleID == puzzleID {
			results = append(results, r)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].ID < results[j].ID
		}
		return results[i].CreatedAt.Before(results[j].CreatedAt)
	})
	return results, nil
}

func (s *Storage) DeleteSolveResultsForPuzzle(ctx context.Context, puzzleID model.PuzzleID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, r := range s.results {
		if r.PuzzleID == puzzleID {
			delete(s.results, id)
		}
	}
	return nil
}
