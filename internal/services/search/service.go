package search

import (
	"context"
	"log/slog"
	"sort"
	"unicode"

	"golang.org/x/sync/errgroup"

	"github.com/mcoot/puzzlesuite-go/internal/model"
	"github.com/mcoot/puzzlesuite-go/internal/services/lexicon"
)

const (
	// MinWordLen is the shortest word worth emitting
	MinWordLen = 3
	// DefaultMaxWordLen bounds recursion depth. The grid has 117 cells so this
	// is a safety bound, not a correctness requirement.
	DefaultMaxWordLen = 18
)

// eight neighbor directions, row/col deltas
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Config holds search engine settings
type Config struct {
	// MaxWordLen caps the DFS depth
	MaxWordLen int
	// Parallel fans the per-start-cell searches out across goroutines.
	// Results are identical to the sequential search.
	Parallel bool
}

// DefaultConfig returns default search configuration
func DefaultConfig() Config {
	return Config{
		MaxWordLen: DefaultMaxWordLen,
		Parallel:   true,
	}
}

// Service finds every legal word path on a board: a walk over 8-adjacent
// cells that never reuses a cell and spells a lexicon word of length >= 3
type Service struct {
	lexicon *lexicon.Service
	cfg     Config
	logger  *slog.Logger
}

// New creates a new search Service
func New(lex *lexicon.Service, cfg Config, logger *slog.Logger) *Service {
	if cfg.MaxWordLen <= 0 {
		cfg.MaxWordLen = DefaultMaxWordLen
	}
	return &Service{
		lexicon: lex,
		cfg:     cfg,
		logger:  logger.With(slog.String("component", "search-service")),
	}
}

// FindAllWords returns every word path on the board, deduplicated by exact
// coordinate path and sorted canonically (word, then path key). The board is
// read-only during the search. Returns ErrLexiconNotLoaded if the lexicon is
// not ready.
func (s *Service) FindAllWords(ctx context.Context, board *model.Board) ([]model.WordPath, error) {
	if err := s.lexicon.Ready(); err != nil {
		return nil, err
	}

	var found []model.WordPath
	var err error
	if s.cfg.Parallel {
		found, err = s.findParallel(ctx, board)
	} else {
		found, err = s.findSequential(ctx, board)
	}
	if err != nil {
		return nil, err
	}

	return dedupe(found), nil
}

func (s *Service) findSequential(ctx context.Context, board *model.Board) ([]model.WordPath, error) {
	var results []model.WordPath
	for row := 0; row < model.BoardRows; row++ {
		for col := 0; col < model.BoardCols; col++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			start := model.Position{Row: row, Col: col}
			if board.IsBlank(start) {
				continue
			}
			results = append(results, s.searchFrom(board, start)...)
		}
	}
	return results, nil
}

// findParallel runs one branch walker per starting cell. The result set is
// order-independent and dedupe sorts it afterwards, so fan-out has no
// observable effect beyond speed.
func (s *Service) findParallel(ctx context.Context, board *model.Board) ([]model.WordPath, error) {
	g, ctx := errgroup.WithContext(ctx)

	perStart := make([][]model.WordPath, model.BoardRows*model.BoardCols)
	for row := 0; row < model.BoardRows; row++ {
		for col := 0; col < model.BoardCols; col++ {
			start := model.Position{Row: row, Col: col}
			if board.IsBlank(start) {
				continue
			}
			idx := row*model.BoardCols + col
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				perStart[idx] = s.searchFrom(board, start)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var results []model.WordPath
	for _, batch := range perStart {
		results = append(results, batch...)
	}
	return results, nil
}

// walker holds the mutable state of one DFS branch. Each starting cell owns
// a private walker, so branches never share state.
type walker struct {
	service *Service
	board   *model.Board
	visited [model.BoardRows][model.BoardCols]bool
	word    []rune
	path    []model.Position
	results []model.WordPath
}

func (s *Service) searchFrom(board *model.Board, start model.Position) []model.WordPath {
	w := &walker{
		service: s,
		board:   board,
		word:    make([]rune, 0, s.cfg.MaxWordLen),
		path:    make([]model.Position, 0, s.cfg.MaxWordLen),
	}
	w.visit(start)
	return w.results
}

func (w *walker) visit(pos model.Position) {
	cell := w.board.Get(pos)

	w.visited[pos.Row][pos.Col] = true
	w.word = append(w.word, unicode.ToLower(cell.Letter))
	w.path = append(w.path, pos)

	candidate := string(w.word)

	// Prefix pruning is the dominant cost saver: abandon the branch before
	// expanding any neighbors.
	if w.service.lexicon.HasPrefix(candidate) {
		if len(w.word) >= MinWordLen && w.service.lexicon.IsWord(candidate) {
			w.emit(candidate)
		}

		if len(w.word) < w.service.cfg.MaxWordLen {
			for _, d := range directions {
				next := model.Position{Row: pos.Row + d[0], Col: pos.Col + d[1]}
				if !w.board.IsValidPosition(next) || w.board.IsBlank(next) {
					continue
				}
				if w.visited[next.Row][next.Col] {
					continue
				}
				w.visit(next)
			}
		}
	}

	// Backtrack symmetrically with the push above
	w.visited[pos.Row][pos.Col] = false
	w.word = w.word[:len(w.word)-1]
	w.path = w.path[:len(w.path)-1]
}

func (w *walker) emit(word string) {
	path := make([]model.Position, len(w.path))
	copy(path, w.path)
	w.results = append(w.results, model.WordPath{
		Word: word,
		Path: path,
	})
}

// dedupe removes word paths with identical coordinate paths and sorts the
// remainder canonically
func dedupe(paths []model.WordPath) []model.WordPath {
	seen := make(map[string]struct{}, len(paths))
	out := make([]model.WordPath, 0, len(paths))
	for _, wp := range paths {
		key := wp.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, wp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Word != out[j].Word {
			return out[i].Word < out[j].Word
		}
		return out[i].Key() < out[j].Key()
	})
	return out
}
