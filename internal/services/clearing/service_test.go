package clearing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/puzzlesuite-go/internal/model"
	"github.com/mcoot/puzzlesuite-go/internal/testutil"
)

func pathAcrossRow(row, startCol, length int) []model.Position {
	path := make([]model.Position, length)
	for i := range path {
		path[i] = model.Position{Row: row, Col: startCol + i}
	}
	return path
}

func TestApplyWordClearsPathOnly(t *testing.T) {
	s := New(DefaultConfig())
	board := testutil.BottomRowBoard("catx")
	wp := model.WordPath{Word: "cat", Path: pathAcrossRow(12, 0, 3)}

	next := s.ApplyWord(board, wp)

	// Path cells are blank, the bystander 'x' survives
	for _, pos := range wp.Path {
		assert.Equal(t, model.KindBlank, next.Get(pos).Kind)
	}
	assert.Equal(t, 'x', next.Get(model.Position{Row: 12, Col: 3}).Letter)
	assert.Equal(t, 1, next.TileCount())
}

func TestApplyWordDoesNotMutateCaller(t *testing.T) {
	s := New(DefaultConfig())
	board := testutil.BottomRowBoard("cat")
	wp := model.WordPath{Word: "cat", Path: pathAcrossRow(12, 0, 3)}

	_ = s.ApplyWord(board, wp)

	assert.Equal(t, 3, board.TileCount())
}

func TestShortWordNoAdjacencyBonus(t *testing.T) {
	s := New(DefaultConfig())
	board := testutil.BoardFromRows(
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		"xxx......",
		"cat......",
	)
	wp := model.WordPath{Word: "cat", Path: pathAcrossRow(12, 0, 3)}

	next := s.ApplyWord(board, wp)

	// The x row falls into the cleared bottom row; nothing extra cleared
	assert.Equal(t, 3, next.TileCount())
	assert.Equal(t, 'x', next.Get(model.Position{Row: 12, Col: 0}).Letter)
}

func TestLongWordClearsOrthogonalNeighbors(t *testing.T) {
	s := New(DefaultConfig())
	// A 5-letter word fully flanked by junk tiles above, below, and beside
	board := testutil.BoardFromRows(
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		"xxxxx....",
		"caste....",
		"yyyyy....",
	)
	board.SetLetter(model.Position{Row: 11, Col: 5}, 'z') // right flank
	wp := model.WordPath{Word: "caste", Path: pathAcrossRow(11, 0, 5)}

	next := s.ApplyWord(board, wp)

	// All orthogonal neighbors of the path cleared along with it
	assert.True(t, next.IsEmpty())
}

func TestAdjacencyBonusIsOrthogonalOnly(t *testing.T) {
	s := New(DefaultConfig())
	board := testutil.BottomRowBoard("caste")
	// Diagonal neighbor of the path's first cell
	board.SetLetter(model.Position{Row: 11, Col: 1}, 'q')

	wp := model.WordPath{Word: "caste", Path: pathAcrossRow(12, 0, 5)}
	cleared := s.ClearSet(board, wp)

	// (11,1) is orthogonal to (12,1) so it does clear; a diagonal-only
	// neighbor like (11,6) must not
	_, hasAbove := cleared[model.Position{Row: 11, Col: 1}]
	assert.True(t, hasAbove)
	_, hasDiagonal := cleared[model.Position{Row: 11, Col: 6}]
	assert.False(t, hasDiagonal)
}

func TestConfigurableAdjacencyThreshold(t *testing.T) {
	s := New(Config{AdjacencyMinLen: 4})
	board := testutil.BottomRowBoard("cast")
	board.SetLetter(model.Position{Row: 11, Col: 0}, 'x')

	wp := model.WordPath{Word: "cast", Path: pathAcrossRow(12, 0, 4)}
	next := s.ApplyWord(board, wp)

	assert.True(t, next.IsEmpty())
}

func TestRedTileClearsWholeRow(t *testing.T) {
	s := New(DefaultConfig())
	board := testutil.BoardFromRows(
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		"ufghijklm", // row 7, filled edge to edge
	)
	// "cat" descending through row 7 with a red tile there
	board.SetLetter(model.Position{Row: 6, Col: 0}, 'c')
	board.Set(model.Position{Row: 7, Col: 0}, model.Cell{Letter: 'a', Kind: model.KindRed})
	board.SetLetter(model.Position{Row: 8, Col: 0}, 't')

	wp := model.WordPath{Word: "cat", Path: []model.Position{
		{Row: 6, Col: 0}, {Row: 7, Col: 0}, {Row: 8, Col: 0},
	}}

	next := s.ApplyWord(board, wp)

	// Every cell of row 7 cleared regardless of content; only non-path,
	// non-row-7 tiles can survive
	for row := 0; row < model.BoardRows; row++ {
		for col := 0; col < model.BoardCols; col++ {
			assert.Equal(t, model.KindBlank, next.Cells[row][col].Kind,
				"expected blank at (%d,%d)", row, col)
		}
	}
}

func TestClearSetIsIdempotentAcrossRules(t *testing.T) {
	s := New(DefaultConfig())
	board := testutil.BottomRowBoard("caste")
	wp := model.WordPath{Word: "caste", Path: pathAcrossRow(12, 0, 5)}

	cleared := s.ClearSet(board, wp)

	// Path cells are also orthogonal neighbors of each other; the set holds
	// each exactly once: 5 path cells + 5 cells above + 1 cell to the right
	// (below and left are out of bounds)
	assert.Len(t, cleared, 11)
}

func TestGravitySettlesColumnsIndependently(t *testing.T) {
	s := New(DefaultConfig())
	board := model.NewBoard()
	board.SetLetter(model.Position{Row: 0, Col: 0}, 'a')
	board.SetLetter(model.Position{Row: 5, Col: 0}, 'b')
	board.Set(model.Position{Row: 3, Col: 4}, model.Cell{Letter: 'c', Kind: model.KindStarred})

	settled := s.ApplyGravity(board)

	// Column 0: a above b order preserved at the bottom
	assert.Equal(t, 'a', settled.Get(model.Position{Row: 11, Col: 0}).Letter)
	assert.Equal(t, 'b', settled.Get(model.Position{Row: 12, Col: 0}).Letter)
	// Column 4: starred kind survives the fall
	assert.Equal(t, model.Cell{Letter: 'c', Kind: model.KindStarred},
		settled.Get(model.Position{Row: 12, Col: 4}))
	// Vacated cells are blank
	assert.Equal(t, model.KindBlank, settled.Get(model.Position{Row: 0, Col: 0}).Kind)
	assert.Equal(t, 3, settled.TileCount())
}

func TestGravityIdempotent(t *testing.T) {
	s := New(DefaultConfig())
	board := model.NewBoard()
	board.SetLetter(model.Position{Row: 2, Col: 3}, 'a')
	board.SetLetter(model.Position{Row: 7, Col: 3}, 'b')

	once := s.ApplyGravity(board)
	twice := s.ApplyGravity(once)

	assert.Equal(t, once, twice)
}

func TestColumnOrderRoundTrip(t *testing.T) {
	s := New(DefaultConfig())
	board := model.NewBoard()
	// Column 2 from top to bottom: d, e, f
	board.SetLetter(model.Position{Row: 3, Col: 2}, 'd')
	board.SetLetter(model.Position{Row: 8, Col: 2}, 'e')
	board.SetLetter(model.Position{Row: 12, Col: 2}, 'f')
	// A word elsewhere
	board.SetLetter(model.Position{Row: 12, Col: 5}, 'c')
	board.SetLetter(model.Position{Row: 12, Col: 6}, 'a')
	board.SetLetter(model.Position{Row: 12, Col: 7}, 't')

	wp := model.WordPath{Word: "cat", Path: []model.Position{
		{Row: 12, Col: 5}, {Row: 12, Col: 6}, {Row: 12, Col: 7},
	}}
	next := s.ApplyWord(board, wp)

	// Column 2's surviving tiles keep their relative order
	var letters []rune
	for row := 0; row < model.BoardRows; row++ {
		cell := next.Cells[row][2]
		if cell.Kind != model.KindBlank {
			letters = append(letters, cell.Letter)
		}
	}
	require.Equal(t, []rune{'d', 'e', 'f'}, letters)
}
