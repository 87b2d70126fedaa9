package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/puzzlesuite-go/internal/model"
	"github.com/mcoot/puzzlesuite-go/internal/testutil"
)

func gridFromRows(rows [GridSize]string) [GridSize][GridSize]int {
	var grid [GridSize][GridSize]int
	for r, row := range rows {
		for c, ch := range row {
			grid[r][c] = int(ch - '0')
		}
	}
	return grid
}

func assertSolved(t *testing.T, givens, solved [GridSize][GridSize]int) {
	t.Helper()
	var st state
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			v := solved[r][c]
			require.True(t, v >= 1 && v <= 9, "cell (%d,%d) holds %d", r, c, v)
			require.False(t, st.taken(r, c, v), "digit %d repeats at (%d,%d)", v, r, c)
			st.place(r, c, v)
			if givens[r][c] != 0 {
				assert.Equal(t, givens[r][c], v, "given at (%d,%d) changed", r, c)
			}
		}
	}
}

func TestSolveClassicPuzzle(t *testing.T) {
	s := New(testutil.NopLogger())
	givens := gridFromRows([GridSize]string{
		"530070000",
		"600195000",
		"098000060",
		"800060003",
		"400803001",
		"700020006",
		"060000280",
		"000419005",
		"000080079",
	})

	solved, err := s.Solve(givens)

	require.NoError(t, err)
	assertSolved(t, givens, solved)
}

func TestSolveEmptyGrid(t *testing.T) {
	s := New(testutil.NopLogger())

	solved, err := s.Solve([GridSize][GridSize]int{})

	require.NoError(t, err)
	assertSolved(t, [GridSize][GridSize]int{}, solved)
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	s := New(testutil.NopLogger())
	var givens [GridSize][GridSize]int
	givens[0][0] = 5

	_, err := s.Solve(givens)

	require.NoError(t, err)
	assert.Equal(t, 5, givens[0][0])
	assert.Zero(t, givens[0][1])
}

func TestSolveRejectsOutOfRangeValue(t *testing.T) {
	s := New(testutil.NopLogger())
	var givens [GridSize][GridSize]int
	givens[4][4] = 12

	_, err := s.Solve(givens)
	assert.ErrorIs(t, err, model.ErrInvalidGrid)
}

func TestSolveRejectsConflictingGivens(t *testing.T) {
	s := New(testutil.NopLogger())
	var givens [GridSize][GridSize]int
	givens[0][0] = 5
	givens[0][7] = 5

	_, err := s.Solve(givens)
	assert.ErrorIs(t, err, model.ErrInvalidGrid)
}

func TestSolveUnsolvableGrid(t *testing.T) {
	s := New(testutil.NopLogger())
	// Row 0 holds 2..9 and column 0 holds 1, leaving no digit for (0,0)
	givens := gridFromRows([GridSize]string{
		"023456789",
		"100000000",
		"000000000",
		"000000000",
		"000000000",
		"000000000",
		"000000000",
		"000000000",
		"000000000",
	})

	_, err := s.Solve(givens)
	assert.ErrorIs(t, err, model.ErrNoSolution)
}
