package clearing

import (
	"github.com/mcoot/puzzlesuite-go/internal/model"
)

// DefaultAdjacencyMinLen is the word length at which playing a word also
// clears the 4-directional neighbors of every path cell. The threshold is
// inclusive. This follows the latest clearing rules of the target game; the
// constant is configurable in case the live rules move the boundary.
const DefaultAdjacencyMinLen = 5

// four orthogonal neighbor directions
var orthogonal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Config holds clearing rule settings
type Config struct {
	// AdjacencyMinLen is the minimum (inclusive) word length that triggers
	// the orthogonal-neighbor bonus clear
	AdjacencyMinLen int
}

// DefaultConfig returns the default clearing rules
func DefaultConfig() Config {
	return Config{AdjacencyMinLen: DefaultAdjacencyMinLen}
}

// Service simulates the board effects of playing a word: which cells clear
// and how the survivors fall
type Service struct {
	cfg Config
}

// New creates a new clearing Service
func New(cfg Config) *Service {
	if cfg.AdjacencyMinLen <= 0 {
		cfg.AdjacencyMinLen = DefaultAdjacencyMinLen
	}
	return &Service{cfg: cfg}
}

// ClearSet computes the full set of cells removed by playing the word:
// the path cells, the orthogonal neighbors of each path cell when the word
// is long enough, and the whole row of every red path cell. A cell reached
// by several rules clears once.
func (s *Service) ClearSet(board *model.Board, wp model.WordPath) map[model.Position]struct{} {
	cleared := make(map[model.Position]struct{}, len(wp.Path))

	for _, pos := range wp.Path {
		cleared[pos] = struct{}{}
	}

	if len(wp.Path) >= s.cfg.AdjacencyMinLen {
		for _, pos := range wp.Path {
			for _, d := range orthogonal {
				next := model.Position{Row: pos.Row + d[0], Col: pos.Col + d[1]}
				if board.IsValidPosition(next) {
					cleared[next] = struct{}{}
				}
			}
		}
	}

	for _, pos := range wp.Path {
		if board.Get(pos).Kind == model.KindRed {
			for col := 0; col < model.BoardCols; col++ {
				cleared[model.Position{Row: pos.Row, Col: col}] = struct{}{}
			}
		}
	}

	return cleared
}

// ClearCount returns how many currently-occupied tiles playing the word
// removes. Used as the clearing-power heuristic by selection strategies.
func (s *Service) ClearCount(board *model.Board, wp model.WordPath) int {
	count := 0
	for pos := range s.ClearSet(board, wp) {
		if !board.IsBlank(pos) {
			count++
		}
	}
	return count
}

// ApplyWord plays the word against the board and returns the resulting board.
// The caller's board is never mutated. Behavior is undefined for stale word
// paths; callers must re-derive paths from the current board before applying.
func (s *Service) ApplyWord(board *model.Board, wp model.WordPath) *model.Board {
	next := board.Clone()
	for pos := range s.ClearSet(board, wp) {
		next.Clear(pos)
	}
	return s.ApplyGravity(next)
}

// ApplyGravity compacts each column's tiles downward, preserving their
// top-to-bottom order and filling the vacated upper rows with blanks.
// Columns never interact. Applying gravity to a settled board is a no-op.
func (s *Service) ApplyGravity(board *model.Board) *model.Board {
	next := board.Clone()
	for col := 0; col < model.BoardCols; col++ {
		writeRow := model.BoardRows - 1
		for row := model.BoardRows - 1; row >= 0; row-- {
			cell := next.Cells[row][col]
			if cell.Kind == model.KindBlank {
				continue
			}
			next.Cells[writeRow][col] = cell
			writeRow--
		}
		for row := writeRow; row >= 0; row-- {
			next.Cells[row][col] = model.BlankCell()
		}
	}
	return next
}

// Interface check
type ServiceInterface interface {
	ClearSet(board *model.Board, wp model.WordPath) map[model.Position]struct{}
	ClearCount(board *model.Board, wp model.WordPath) int
	ApplyWord(board *model.Board, wp model.WordPath) *model.Board
	ApplyGravity(board *model.Board) *model.Board
}

var _ ServiceInterface = (*Service)(nil)
