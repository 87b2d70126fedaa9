package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/puzzlesuite-go/internal/model"
)

func TestWordListRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	words := []string{"cat", "dog", "bird"}
	require.NoError(t, s.SaveWordList(ctx, "default", words))

	got, err := s.GetWordList(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, words, got)
}

func TestWordListNotFound(t *testing.T) {
	s := New()

	_, err := s.GetWordList(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrWordListNotFound)
}

func TestWordListIsCopied(t *testing.T) {
	s := New()
	ctx := context.Background()

	words := []string{"cat", "dog"}
	require.NoError(t, s.SaveWordList(ctx, "default", words))
	words[0] = "mutated"

	got, err := s.GetWordList(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, "cat", got[0])
}

func TestSaveAndGetPuzzle(t *testing.T) {
	s := New()
	ctx := context.Background()

	board := model.NewBoard()
	board.SetLetter(model.Position{Row: 12, Col: 0}, 'c')

	puzzle := &model.SavedPuzzle{
		ID:        "puz-1",
		Name:      "test puzzle",
		Kind:      model.PuzzleKindTower,
		Board:     board,
		CreatedAt: time.Now(),
	}

	require.NoError(t, s.SavePuzzle(ctx, puzzle))

	got, err := s.GetPuzzle(ctx, "puz-1")
	require.NoError(t, err)
	assert.Equal(t, puzzle.Name, got.Name)
	assert.Equal(t, 'c', got.Board.Get(model.Position{Row: 12, Col: 0}).Letter)
}

func TestGetPuzzleNotFound(t *testing.T) {
	s := New()

	_, err := s.GetPuzzle(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, model.ErrPuzzleNotFound)
}

func TestListPuzzlesOrderedByCreation(t *testing.T) {
	s := New()
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []model.PuzzleID{"puz-c", "puz-a", "puz-b"} {
		require.NoError(t, s.SavePuzzle(ctx, &model.SavedPuzzle{
			ID:        id,
			Kind:      model.PuzzleKindTower,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	puzzles, err := s.ListPuzzles(ctx)
	require.NoError(t, err)
	require.Len(t, puzzles, 3)
	assert.Equal(t, model.PuzzleID("puz-c"), puzzles[0].ID)
	assert.Equal(t, model.PuzzleID("puz-b"), puzzles[2].ID)
}

func TestDeletePuzzle(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.SavePuzzle(ctx, &model.SavedPuzzle{ID: "puz-1"}))
	require.NoError(t, s.DeletePuzzle(ctx, "puz-1"))

	_, err := s.GetPuzzle(ctx, "puz-1")
	assert.ErrorIs(t, err, model.ErrPuzzleNotFound)
}

func TestSolveResultsForPuzzle(t *testing.T) {
	s := New()
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	results := []*model.SolveResult{
		{ID: "res-1", PuzzleID: "puz-1", Strategy: "greedy", CreatedAt: base},
		{ID: "res-2", PuzzleID: "puz-1", Strategy: "adaptive", CreatedAt: base.Add(time.Minute)},
		{ID: "res-3", PuzzleID: "puz-2", Strategy: "greedy", CreatedAt: base},
	}
	for _, r := range results {
		require.NoError(t, s.SaveSolveResult(ctx, r))
	}

	got, err := s.ListSolveResults(ctx, "puz-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.ResultID("res-1"), got[0].ID)
	assert.Equal(t, model.ResultID("res-2"), got[1].ID)

	require.NoError(t, s.DeleteSolveResultsForPuzzle(ctx, "puz-1"))

	got, err = s.ListSolveResults(ctx, "puz-1")
	require.NoError(t, err)
	assert.Empty(t, got)

	// Results for other puzzles survive
	_, err = s.GetSolveResult(ctx, "res-3")
	assert.NoError(t, err)
}

func TestGetSolveResultNotFound(t *testing.T) {
	s := New()

	_, err := s.GetSolveResult(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrResultNotFound)
}
