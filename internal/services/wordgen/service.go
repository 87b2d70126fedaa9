package wordgen

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/mcoot/puzzlesuite-go/internal/services/lexicon"
)

type ServiceInterface interface {
	Generate(letters string, doubles bool) ([]string, error)
}

// Service finds lexicon words spellable as an ordered subsequence of a given
// letter sequence
type Service struct {
	lexicon *lexicon.Service
	logger  *slog.Logger
}

var _ ServiceInterface = (*Service)(nil)

func New(lex *lexicon.Service, logger *slog.Logger) *Service {
	return &Service{
		lexicon: lex,
		logger:  logger.With(slog.String("component", "wordgen")),
	}
}

// Generate returns every lexicon word whose letters appear in order within
// letters. With doubles, each input letter may also spell two consecutive
// identical word letters. Results are sorted longest first, then
// alphabetically.
func (s *Service) Generate(letters string, doubles bool) ([]string, error) {
	if err := s.lexicon.Ready(); err != nil {
		return nil, err
	}

	pool := []rune(strings.ToLower(strings.TrimSpace(letters)))

	var matches []string
	for _, word := range s.lexicon.Words() {
		if spellable([]rune(word), pool, doubles) {
			matches = append(matches, word)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if len(matches[i]) != len(matches[j]) {
			return len(matches[i]) > len(matches[j])
		}
		return matches[i] < matches[j]
	})

	s.logger.Debug("generated words",
		slog.Int("pool", len(pool)),
		slog.Bool("doubles", doubles),
		slog.Int("matches", len(matches)))

	return matches, nil
}

// spellable reports whether word is an ordered subsequence of pool. When a
// pool letter matches, consuming a run of identical word letters (two with
// doubles, one without) is never worse than consuming one, so the greedy
// two-pointer scan is exact.
func spellable(word, pool []rune, doubles bool) bool {
	if len(word) == 0 {
		return false
	}

	i := 0
	for _, r := range pool {
		if i == len(word) {
			break
		}
		if r != word[i] {
			continue
		}
		i++
		if doubles && i < len(word) && word[i] == r {
			i++
		}
	}
	return i == len(word)
}
