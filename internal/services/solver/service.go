package solver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/puzzlesuite-go/internal/model"
	"github.com/mcoot/puzzlesuite-go/internal/services/clearing"
	"github.com/mcoot/puzzlesuite-go/internal/services/scoring"
	"github.com/mcoot/puzzlesuite-go/internal/services/search"
)

// MaxIterations caps the solve loop. The board shrinks on every play, so the
// loop terminates well before this on any real board; the cap is a hard
// bound against pathological inputs.
const MaxIterations = 50

type ServiceInterface interface {
	Solve(ctx context.Context, board *model.Board, strategyName string) (*model.Solution, error)
	Strategies() []string
}

// Service plays word sequences against a board: search for candidates, pick
// one via a named strategy, apply its clears, repeat until the board yields
// no more words.
type Service struct {
	search     *search.Service
	scoring    *scoring.Service
	clearing   *clearing.Service
	strategies map[string]Strategy
	logger     *slog.Logger
}

var _ ServiceInterface = (*Service)(nil)

func New(searchSvc *search.Service, scoringSvc *scoring.Service, clearingSvc *clearing.Service, logger *slog.Logger) *Service {
	return &Service{
		search:     searchSvc,
		scoring:    scoringSvc,
		clearing:   clearingSvc,
		strategies: DefaultStrategies(clearingSvc),
		logger:     logger.With(slog.String("component", "solver")),
	}
}

// Strategies returns the registered strategy names in registration order
func (s *Service) Strategies() []string {
	return []string{StrategyGreedy, StrategyClearing, StrategyLookahead, StrategyAdaptive}
}

// Solve repeatedly searches the board, selects a candidate with the named
// strategy (empty means the default), and applies its clears, accumulating
// the played sequence and total score. It stops when no candidates remain or
// the iteration cap is hit. ClearedAll reports whether the final board is
// empty, so an already-blank board yields an empty solution with ClearedAll
// set.
func (s *Service) Solve(ctx context.Context, board *model.Board, strategyName string) (*model.Solution, error) {
	if err := board.Validate(); err != nil {
		return nil, err
	}

	if strategyName == "" {
		strategyName = DefaultStrategy
	}
	strat, ok := s.strategies[strategyName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, strategyName)
	}

	work := board.Clone()
	solution := &model.Solution{
		Sequence: []model.WordPath{},
	}

	for i := 0; i < MaxIterations; i++ {
		paths, err := s.search.FindAllWords(ctx, work)
		if err != nil {
			return nil, err
		}
		if len(paths) == 0 {
			break
		}

		candidates := s.scoring.AnnotateAll(work, paths)
		chosen := strat.Select(candidates, work)
		work = s.clearing.ApplyWord(work, chosen)

		solution.Sequence = append(solution.Sequence, chosen)
		solution.TotalScore += chosen.Score

		s.logger.Debug("played word",
			slog.Int("iteration", i),
			slog.String("word", chosen.Word),
			slog.Int("score", chosen.Score),
			slog.Int("tiles_remaining", work.TileCount()))
	}

	solution.ClearedAll = work.IsEmpty()

	s.logger.Info("solve complete",
		slog.String("strategy", strat.Name()),
		slog.Int("words", len(solution.Sequence)),
		slog.Int("total_score", solution.TotalScore),
		slog.Bool("cleared_all", solution.ClearedAll))

	return solution, nil
}
