package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case SolveResult:
		o.printSolveResult(v)
	case WordsResult:
		o.printWordsResult(v)
	case SudokuResult:
		o.printSudokuResult(v)
	case WordListResult:
		o.printWordListResult(v)
	case PuzzleInfo:
		o.printPuzzle(v)
	case []PuzzleInfo:
		o.printPuzzleList(v)
	case SolveRecord:
		o.printSolveRecord(v)
	case []SolveRecord:
		o.printSolveRecords(v)
	case StrategiesResult:
		o.printStrategies(v)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	case LexiconResult:
		o.printLexicon(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Position response type (matches API)
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// WordPath response type
type WordPath struct {
	Word           string     `json:"word"`
	Path           []Position `json:"path"`
	Score          int        `json:"score"`
	HasRedTile     bool       `json:"has_red_tile"`
	HasStarredTile bool       `json:"has_starred_tile"`
}

// Solution response type
type Solution struct {
	Sequence   []WordPath `json:"sequence"`
	TotalScore int        `json:"total_score"`
	ClearedAll bool       `json:"cleared_all"`
}

// Board response type
type Board struct {
	Rows  []string `json:"rows"`
	Kinds []string `json:"kinds"`
}

// SolveResult is the response for a tower solve
type SolveResult struct {
	Solution *Solution `json:"solution"`
	Strategy string    `json:"strategy"`
	Board    Board     `json:"final_board"`
}

// WordsResult lists all word paths on a board
type WordsResult struct {
	Words []WordPath `json:"words"`
	Count int        `json:"count"`
}

// SudokuResult is the response for a sudoku solve
type SudokuResult struct {
	Grid [9][9]int `json:"grid"`
}

// WordListResult is the response for wordgen and columns
type WordListResult struct {
	Words []string `json:"words"`
	Count int      `json:"count"`
}

// PuzzleInfo is a saved puzzle
type PuzzleInfo struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Kind      string     `json:"kind"`
	Board     *Board     `json:"board,omitempty"`
	Grid      *[9][9]int `json:"grid,omitempty"`
	Columns   []string   `json:"columns,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// SolveRecord is a recorded solve result
type SolveRecord struct {
	ID         string    `json:"id"`
	PuzzleID   string    `json:"puzzle_id"`
	Strategy   string    `json:"strategy"`
	Solution   *Solution `json:"solution"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// StrategiesResult lists available solver strategies
type StrategiesResult struct {
	Strategies []string `json:"strategies"`
	Default    string   `json:"default"`
}

// HealthResult is the health check response
type HealthResult struct {
	Status string `json:"status"`
}

// LexiconResult is the lexicon status response
type LexiconResult struct {
	Loaded    bool `json:"loaded"`
	WordCount int  `json:"word_count"`
}

func (o *Output) printSolveResult(r SolveResult) {
	if r.Solution == nil {
		fmt.Println("No solution")
		return
	}
	fmt.Printf("Strategy: %s\n", r.Strategy)
	for i, wp := range r.Solution.Sequence {
		fmt.Printf("%3d. %-15s %6d", i+1, wp.Word, wp.Score)
		if wp.HasStarredTile {
			fmt.Print("  *")
		}
		if wp.HasRedTile {
			fmt.Print("  [red]")
		}
		fmt.Println()
	}
	fmt.Printf("Total score: %d\n", r.Solution.TotalScore)
	if r.Solution.ClearedAll {
		fmt.Println("Board cleared!")
	} else {
		fmt.Println("Remaining board:")
		printBoard(r.Board)
	}
}

func printBoard(b Board) {
	for _, row := range b.Rows {
		fmt.Printf("  %s\n", row)
	}
}

func (o *Output) printWordsResult(r WordsResult) {
	for _, wp := range r.Words {
		var coords []string
		for _, pos := range wp.Path {
			coords = append(coords, fmt.Sprintf("(%d,%d)", pos.Row, pos.Col))
		}
		fmt.Printf("%-15s %6d  %s\n", wp.Word, wp.Score, strings.Join(coords, " "))
	}
	fmt.Printf("%d words\n", r.Count)
}

func (o *Output) printSudokuResult(r SudokuResult) {
	for i, row := range r.Grid {
		if i > 0 && i%3 == 0 {
			fmt.Println("------+-------+------")
		}
		for j, v := range row {
			if j > 0 && j%3 == 0 {
				fmt.Print("| ")
			}
			fmt.Printf("%d ", v)
		}
		fmt.Println()
	}
}

func (o *Output) printWordListResult(r WordListResult) {
	for _, word := range r.Words {
		fmt.Println(word)
	}
	fmt.Printf("%d words\n", r.Count)
}

func (o *Output) printPuzzle(p PuzzleInfo) {
	fmt.Printf("ID:      %s\n", p.ID)
	fmt.Printf("Name:    %s\n", p.Name)
	fmt.Printf("Kind:    %s\n", p.Kind)
	fmt.Printf("Created: %s\n", p.CreatedAt.Format(time.RFC3339))
	if p.Board != nil {
		fmt.Println("Board:")
		printBoard(*p.Board)
	}
	if len(p.Columns) > 0 {
		fmt.Printf("Columns: %s\n", strings.Join(p.Columns, " "))
	}
}

func (o *Output) printPuzzleList(puzzles []PuzzleInfo) {
	if len(puzzles) == 0 {
		fmt.Println("No saved puzzles")
		return
	}
	for _, p := range puzzles {
		fmt.Printf("%-12s %-8s %-30s %s\n", p.ID, p.Kind, p.Name, p.CreatedAt.Format(time.RFC3339))
	}
}

func (o *Output) printSolveRecord(r SolveRecord) {
	fmt.Printf("Result:   %s\n", r.ID)
	fmt.Printf("Strategy: %s\n", r.Strategy)
	fmt.Printf("Duration: %dms\n", r.DurationMs)
	if r.Solution != nil {
		fmt.Printf("Words:    %d\n", len(r.Solution.Sequence))
		fmt.Printf("Score:    %d\n", r.Solution.TotalScore)
		fmt.Printf("Cleared:  %v\n", r.Solution.ClearedAll)
	}
}

func (o *Output) printSolveRecords(records []SolveRecord) {
	if len(records) == 0 {
		fmt.Println("No recorded results")
		return
	}
	for _, r := range records {
		score := 0
		cleared := false
		if r.Solution != nil {
			score = r.Solution.TotalScore
			cleared = r.Solution.ClearedAll
		}
		fmt.Printf("%-12s %-10s score=%-8d cleared=%-5v %dms\n", r.ID, r.Strategy, score, cleared, r.DurationMs)
	}
}

func (o *Output) printStrategies(r StrategiesResult) {
	for _, s := range r.Strategies {
		if s == r.Default {
			fmt.Printf("%s (default)\n", s)
		} else {
			fmt.Println(s)
		}
	}
}

func (o *Output) printLexicon(r LexiconResult) {
	if r.Loaded {
		fmt.Printf("Lexicon loaded: %d words\n", r.WordCount)
	} else {
		fmt.Println("Lexicon not loaded")
	}
}
