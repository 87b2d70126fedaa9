package solver

import (
	"github.com/mcoot/puzzlesuite-go/internal/model"
	"github.com/mcoot/puzzlesuite-go/internal/services/clearing"
)

// Strategy names
const (
	StrategyGreedy    = "greedy"
	StrategyClearing  = "clearing"
	StrategyLookahead = "lookahead"
	StrategyAdaptive  = "adaptive"

	// DefaultStrategy is used when the caller does not name one
	DefaultStrategy = StrategyGreedy
)

// DefaultLookaheadWidth is how many top candidates the lookahead strategy
// simulates one ply deep
const DefaultLookaheadWidth = 10

// adaptiveFullnessCutoff splits the adaptive strategy's regimes: at or above
// this fraction of occupied cells it plays for clearing power, below it a
// one-ply lookahead.
const adaptiveFullnessCutoff = 0.5

// Strategy chooses one word path from a candidate set. Candidates arrive in
// the canonical order produced by scoring.AnnotateAll, and implementations
// must be deterministic for a fixed board and candidate set.
type Strategy interface {
	Name() string
	Select(candidates []model.WordPath, board *model.Board) model.WordPath
}

// DefaultStrategies returns the named strategy registry
func DefaultStrategies(clr *clearing.Service) map[string]Strategy {
	greedy := &GreedyStrategy{}
	clearingStrat := &ClearingStrategy{clearing: clr}
	lookahead := &LookaheadStrategy{clearing: clr, Width: DefaultLookaheadWidth}
	return map[string]Strategy{
		StrategyGreedy:    greedy,
		StrategyClearing:  clearingStrat,
		StrategyLookahead: lookahead,
		StrategyAdaptive: &AdaptiveStrategy{
			full:  clearingStrat,
			empty: lookahead,
		},
	}
}

// GreedyStrategy picks the highest-scoring candidate. Since candidates are
// canonically ordered, that is the first one.
type GreedyStrategy struct{}

// Name returns the strategy name
func (s *GreedyStrategy) Name() string { return StrategyGreedy }

// Select returns the top candidate
func (s *GreedyStrategy) Select(candidates []model.WordPath, board *model.Board) model.WordPath {
	return candidates[0]
}

// ClearingStrategy maximizes clearing power: the number of tiles a play
// removes, with a bonus for longer words. Ties fall back to canonical order.
type ClearingStrategy struct {
	clearing *clearing.Service
}

// Name returns the strategy name
func (s *ClearingStrategy) Name() string { return StrategyClearing }

// Select returns the candidate with the most clearing power
func (s *ClearingStrategy) Select(candidates []model.WordPath, board *model.Board) model.WordPath {
	best := candidates[0]
	bestPower := s.power(board, best)
	for _, wp := range candidates[1:] {
		if p := s.power(board, wp); p > bestPower {
			best = wp
			bestPower = p
		}
	}
	return best
}

func (s *ClearingStrategy) power(board *model.Board, wp model.WordPath) int {
	return s.clearing.ClearCount(board, wp) + len(wp.Word)
}

// LookaheadStrategy simulates the top Width candidates one ply deep and
// prefers the one leaving the fewest tiles, breaking ties by score via the
// canonical candidate order.
type LookaheadStrategy struct {
	clearing *clearing.Service
	Width    int
}

// Name returns the strategy name
func (s *LookaheadStrategy) Name() string { return StrategyLookahead }

// Select returns the candidate whose play leaves the emptiest board
func (s *LookaheadStrategy) Select(candidates []model.WordPath, board *model.Board) model.WordPath {
	width := s.Width
	if width <= 0 {
		width = DefaultLookaheadWidth
	}
	if width > len(candidates) {
		width = len(candidates)
	}

	best := candidates[0]
	bestRemaining := s.clearing.ApplyWord(board, best).TileCount()
	for _, wp := range candidates[1:width] {
		if remaining := s.clearing.ApplyWord(board, wp).TileCount(); remaining < bestRemaining {
			best = wp
			bestRemaining = remaining
		}
	}
	return best
}

// AdaptiveStrategy plays for clearing power while the board is full and
// switches to lookahead once it empties out
type AdaptiveStrategy struct {
	full  Strategy
	empty Strategy
}

// Name returns the strategy name
func (s *AdaptiveStrategy) Name() string { return StrategyAdaptive }

// Select delegates based on board fullness
func (s *AdaptiveStrategy) Select(candidates []model.WordPath, board *model.Board) model.WordPath {
	if board.Fullness() >= adaptiveFullnessCutoff {
		return s.full.Select(candidates, board)
	}
	return s.empty.Select(candidates, board)
}
