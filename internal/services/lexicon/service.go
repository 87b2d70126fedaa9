package lexicon

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/mcoot/puzzlesuite-go/internal/model"
	"github.com/mcoot/puzzlesuite-go/internal/storage"
)

// Service provides the lexicon oracle: a load-once, read-only word set with
// prefix and membership queries. Loading replaces the trie wholesale; readers
// always see either the old or the new snapshot.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.RWMutex
	trie   *Trie
	words  []string
	loaded bool
}

// New creates a new lexicon Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger.With(slog.String("component", "lexicon-service")),
	}
}

// LoadFromStorage loads the lexicon word list from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetWordList(ctx, storage.DefaultWordListName)
	if err != nil {
		return err
	}
	s.load(words)
	return nil
}

// LoadFromFile loads the lexicon from a file (one word per line) and saves
// the word list to storage for future use
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if err := s.storage.SaveWordList(ctx, storage.DefaultWordListName, words); err != nil {
		return err
	}

	s.load(words)
	return nil
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) {
	s.load(words)
}

func (s *Service) load(words []string) {
	normalized := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, word := range words {
		w := strings.ToLower(strings.TrimSpace(word))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		normalized = append(normalized, w)
	}
	sort.Strings(normalized)

	trie := NewTrie(normalized)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.trie = trie
	s.words = normalized
	s.loaded = true

	s.logger.Info("lexicon loaded", slog.Int("words", trie.Count()))
}

// snapshot returns the current trie, or nil if not loaded
func (s *Service) snapshot() *Trie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil
	}
	return s.trie
}

// HasPrefix reports whether any lexicon word starts with s, case-insensitively.
// The empty string is a prefix of every word. Returns false if the lexicon has
// not been loaded.
func (s *Service) HasPrefix(prefix string) bool {
	trie := s.snapshot()
	if trie == nil {
		return false
	}
	return trie.HasPrefix(strings.ToLower(prefix))
}

// IsWord reports whether s is a lexicon word, case-insensitively
func (s *Service) IsWord(word string) bool {
	trie := s.snapshot()
	if trie == nil {
		return false
	}
	return trie.IsWord(strings.ToLower(word))
}

// IsLoaded returns whether the lexicon has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the lexicon
func (s *Service) WordCount() int {
	trie := s.snapshot()
	if trie == nil {
		return 0
	}
	return trie.Count()
}

// Words returns the sorted word list. The returned slice must not be mutated.
func (s *Service) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.words
}

// Ready returns ErrLexiconNotLoaded if the lexicon is not usable yet
func (s *Service) Ready() error {
	if !s.IsLoaded() {
		return model.ErrLexiconNotLoaded
	}
	return nil
}

// Interface check
type ServiceInterface interface {
	HasPrefix(prefix string) bool
	IsWord(word string) bool
	IsLoaded() bool
	WordCount() int
	Words() []string
	Ready() error
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadWords(words []string)
}

var _ ServiceInterface = (*Service)(nil)
