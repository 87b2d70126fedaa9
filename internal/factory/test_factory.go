package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/puzzlesuite-go/internal/dependencies/mocks"
	"github.com/mcoot/puzzlesuite-go/internal/services/clearing"
	"github.com/mcoot/puzzlesuite-go/internal/services/search"
	"github.com/mcoot/puzzlesuite-go/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, mockRandom, search.DefaultConfig(), clearing.DefaultConfig(), logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestLexicon loads a small word list for testing
func (t *TestApp) LoadTestLexicon() {
	t.LexiconService.LoadWords([]string{
		"ace", "act", "ant", "ape", "arc", "arm", "art", "ash", "ask", "ate",
		"bat", "bed", "bee", "bet", "big", "bit", "box", "bug", "bus", "but",
		"cab", "can", "cap", "car", "cat", "cog", "cot", "cow", "cup", "cut",
		"dig", "dip", "dog", "dot", "dry", "due", "ear", "eat", "egg", "end",
		"fan", "far", "fat", "fig", "fin", "fit", "fix", "fog", "fox", "fun",
		"gap", "gas", "get", "got", "gut", "hat", "hen", "hip", "hit", "hog",
		"ink", "ion", "jam", "jar", "jet", "key", "kit", "lap", "law", "leg",
		"lid", "lip", "log", "lot", "map", "mat", "mix", "mud", "net", "nut",
		"oak", "oar", "one", "owl", "pad", "pan", "pat", "pea", "pen", "pet",
		"pig", "pin", "pit", "pod", "pot", "rat", "rib", "rim", "rip", "rod",
		"rot", "rug", "run", "sat", "saw", "sea", "set", "sip", "sit", "sky",
		"tab", "tag", "tan", "tap", "tar", "tea", "ten", "tie", "tin", "tip",
		"toe", "ton", "top", "tub", "urn", "van", "vat", "web", "wig", "win",
		"caste", "chart", "crane", "dance", "dates", "eagle", "earth", "flame",
		"grape", "heart", "light", "mango", "ocean", "plane", "plant", "slate",
		"stone", "storm", "table", "tiger", "torch", "trace", "track", "train",
		"moon", "mono", "star", "stars", "toes", "cart", "cast", "cats", "dogs",
	})
}
