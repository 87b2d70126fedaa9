package redis

import (
	"fmt"

	"github.com/mcoot/puzzlesuite-go/internal/model"
)

// Key prefixes for all stored entities
const keyPrefix = "puzzlesuite"

func wordListKey(name string) string {
	return fmt.Sprintf("%s:wordlist:%s", keyPrefix, name)
}

func puzzleKey(id model.PuzzleID) string {
	return fmt.Sprintf("%s:puzzle:%s", keyPrefix, id)
}

func puzzleIndexKey() string {
	return fmt.Sprintf("%s:puzzles", keyPrefix)
}

func resultKey(id model.ResultID) string {
	return fmt.Sprintf("%s:result:%s", keyPrefix, id)
}

func resultsForPuzzleIndexKey(id model.PuzzleID) string {
	return fmt.Sprintf("%s:puzzle:%s:results", keyPrefix, id)
}
