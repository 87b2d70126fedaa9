package model

import "errors"

// Common errors used across the application
var (
	// Board errors
	ErrInvalidBoard    = errors.New("board is malformed")
	ErrInvalidWordPath = errors.New("word path references invalid cells")

	// Lexicon errors
	ErrLexiconNotLoaded = errors.New("lexicon not loaded")
	ErrWordListNotFound = errors.New("word list not found")

	// Solver errors
	ErrUnknownStrategy = errors.New("unknown selection strategy")
	ErrInvalidGrid     = errors.New("grid is malformed")
	ErrNoSolution      = errors.New("puzzle has no solution")

	// Puzzle storage errors
	ErrInvalidPuzzle  = errors.New("saved puzzle is malformed")
	ErrPuzzleNotFound = errors.New("puzzle not found")
	ErrResultNotFound = errors.New("solve result not found")
)
