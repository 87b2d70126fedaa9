package columns

import (
	"log/slog"
	"sort"
	"strings"
	"unicode"

	"github.com/mcoot/puzzlesuite-go/internal/services/lexicon"
)

type ServiceInterface interface {
	Enumerate(columns []string) ([]string, error)
	CoreWords(columns []string) ([]string, error)
}

// Service enumerates words formed by picking one letter from each column in
// order, for column-style puzzles where every word is exactly as long as the
// number of columns
type Service struct {
	lexicon *lexicon.Service
	logger  *slog.Logger
}

var _ ServiceInterface = (*Service)(nil)

func New(lex *lexicon.Service, logger *slog.Logger) *Service {
	return &Service{
		lexicon: lex,
		logger:  logger.With(slog.String("component", "columns")),
	}
}

// Enumerate returns every lexicon word formed by taking one letter from each
// column left to right, sorted alphabetically. Prefixes are checked against
// the lexicon before descending, so dead branches prune early.
func (s *Service) Enumerate(columns []string) ([]string, error) {
	if err := s.lexicon.Ready(); err != nil {
		return nil, err
	}

	cols := normalize(columns)
	if len(cols) == 0 {
		return []string{}, nil
	}

	found := map[string]struct{}{}
	s.enumerate(cols, 0, make([]rune, 0, len(cols)), found)

	words := make([]string, 0, len(found))
	for word := range found {
		words = append(words, word)
	}
	sort.Strings(words)

	s.logger.Debug("enumerated columns",
		slog.Int("columns", len(cols)),
		slog.Int("words", len(words)))

	return words, nil
}

func (s *Service) enumerate(cols [][]rune, depth int, prefix []rune, found map[string]struct{}) {
	if depth == len(cols) {
		word := string(prefix)
		if s.lexicon.IsWord(word) {
			found[word] = struct{}{}
		}
		return
	}
	for _, r := range cols[depth] {
		prefix = append(prefix, r)
		if s.lexicon.HasPrefix(string(prefix)) {
			s.enumerate(cols, depth+1, prefix, found)
		}
		prefix = prefix[:len(prefix)-1]
	}
}

// CoreWords selects a small set of enumerated words that together use every
// column letter at least once. Selection is greedy: at each step take the word
// covering the most still-unused letters, ties broken alphabetically. Letters
// no enumerated word can reach stay uncovered and the set that covers the rest
// is returned.
func (s *Service) CoreWords(columns []string) ([]string, error) {
	words, err := s.Enumerate(columns)
	if err != nil {
		return nil, err
	}

	cols := normalize(columns)

	type slot struct {
		col    int
		letter rune
	}
	uncovered := map[slot]struct{}{}
	for i, col := range cols {
		for _, r := range col {
			uncovered[slot{i, r}] = struct{}{}
		}
	}

	var core []string
	remaining := append([]string{}, words...)
	for len(uncovered) > 0 && len(remaining) > 0 {
		bestIdx := -1
		bestGain := 0
		for i, word := range remaining {
			gain := 0
			for j, r := range word {
				if _, ok := uncovered[slot{j, r}]; ok {
					gain++
				}
			}
			if gain > bestGain {
				bestIdx = i
				bestGain = gain
			}
		}
		if bestIdx == -1 {
			break
		}

		chosen := remaining[bestIdx]
		core = append(core, chosen)
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
		for j, r := range chosen {
			delete(uncovered, slot{j, r})
		}
	}

	return core, nil
}

// normalize lowercases and dedupes each column's letters, dropping
// non-letters and empty columns trailing whitespace may produce
func normalize(columns []string) [][]rune {
	cols := make([][]rune, 0, len(columns))
	for _, col := range columns {
		seen := map[rune]struct{}{}
		var letters []rune
		for _, r := range strings.ToLower(col) {
			if !unicode.IsLetter(r) {
				continue
			}
			if _, ok := seen[r]; ok {
				continue
			}
			seen[r] = struct{}{}
			letters = append(letters, r)
		}
		if len(letters) > 0 {
			cols = append(cols, letters)
		}
	}
	return cols
}
