package model

import (
	"fmt"
	"strings"
)

// WordPath is a discovered word together with the exact ordered sequence of
// grid coordinates that spell it. Ephemeral: recomputed on every search pass.
type WordPath struct {
	Word           string     `json:"word"`
	Path           []Position `json:"path"`
	Score          int        `json:"score"`
	HasRedTile     bool       `json:"has_red_tile"`
	HasStarredTile bool       `json:"has_starred_tile"`
}

// Key returns a canonical string identifying the exact coordinate path.
// Two paths spelling the same word through different cells have different
// keys; the same path found twice has the same key.
func (wp WordPath) Key() string {
	var sb strings.Builder
	for _, pos := range wp.Path {
		fmt.Fprintf(&sb, "%d,%d;", pos.Row, pos.Col)
	}
	return sb.String()
}

// Solution is the result of one top-level solve invocation
type Solution struct {
	Sequence   []WordPath `json:"sequence"`
	TotalScore int        `json:"total_score"`
	ClearedAll bool       `json:"cleared_all"`
}
