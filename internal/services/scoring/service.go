package scoring

import (
	"sort"
	"unicode"

	"github.com/mcoot/puzzlesuite-go/internal/model"
)

// letterValues maps 'a'..'z' to tile point values. Common letters score 1,
// rising to 12 for q and z.
var letterValues = [26]int{
	1,  // a
	4,  // b
	3,  // c
	3,  // d
	1,  // e
	5,  // f
	4,  // g
	5,  // h
	1,  // i
	10, // j
	6,  // k
	3,  // l
	4,  // m
	2,  // n
	1,  // o
	4,  // p
	12, // q
	2,  // r
	1,  // s
	2,  // t
	1,  // u
	6,  // v
	6,  // w
	9,  // x
	5,  // y
	12, // z
}

// LetterValue returns the point value of a letter, case-insensitively.
// Non-letters are worth 0.
func LetterValue(r rune) int {
	r = unicode.ToLower(r)
	if r < 'a' || r > 'z' {
		return 0
	}
	return letterValues[r-'a']
}

// Service scores discovered word paths against the board they were found on
type Service struct{}

// New creates a new scoring Service
func New() *Service {
	return &Service{}
}

// Annotate returns a copy of the word path with its score and tile-kind flags
// filled in. Score = (sum of letter values) * (word length) * (1 + starred
// cells on the path). Pure and deterministic for a fixed board and path.
func (s *Service) Annotate(board *model.Board, wp model.WordPath) model.WordPath {
	letterSum := 0
	starred := 0
	red := false

	for _, pos := range wp.Path {
		cell := board.Get(pos)
		letterSum += LetterValue(cell.Letter)
		switch cell.Kind {
		case model.KindStarred:
			starred++
		case model.KindRed:
			red = true
		}
	}

	wp.Score = letterSum * len(wp.Path) * (1 + starred)
	wp.HasRedTile = red
	wp.HasStarredTile = starred > 0
	return wp
}

// AnnotateAll scores every path and returns them in the canonical candidate
// order: score descending, then word ascending, then path key ascending.
// Every selection strategy works over this ordering, which keeps solves
// deterministic.
func (s *Service) AnnotateAll(board *model.Board, paths []model.WordPath) []model.WordPath {
	scored := make([]model.WordPath, len(paths))
	for i, wp := range paths {
		scored[i] = s.Annotate(board, wp)
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		if scored[i].Word != scored[j].Word {
			return scored[i].Word < scored[j].Word
		}
		return scored[i].Key() < scored[j].Key()
	})
	return scored
}

// Interface check
type ServiceInterface interface {
	Annotate(board *model.Board, wp model.WordPath) model.WordPath
	AnnotateAll(board *model.Board, paths []model.WordPath) []model.WordPath
}

var _ ServiceInterface = (*Service)(nil)
