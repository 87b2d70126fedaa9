package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/puzzlesuite-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidBoard     = "INVALID_BOARD"
	CodeInvalidWordPath  = "INVALID_WORD_PATH"
	CodeInvalidGrid      = "INVALID_GRID"
	CodeInvalidPuzzle    = "INVALID_PUZZLE"
	CodeUnknownStrategy  = "UNKNOWN_STRATEGY"
	CodeNoSolution       = "NO_SOLUTION"
	CodeLexiconNotLoaded = "LEXICON_NOT_LOADED"
	CodeWordListNotFound = "WORD_LIST_NOT_FOUND"
	CodePuzzleNotFound   = "PUZZLE_NOT_FOUND"
	CodeResultNotFound   = "RESULT_NOT_FOUND"
	CodeInternalError    = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrInvalidBoard):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidBoard, "Board is malformed"}}
	case errors.Is(err, model.ErrInvalidWordPath):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidWordPath, "Word path references invalid cells"}}
	case errors.Is(err, model.ErrInvalidGrid):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidGrid, "Grid is malformed"}}
	case errors.Is(err, model.ErrInvalidPuzzle):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPuzzle, "Saved puzzle is malformed"}}
	case errors.Is(err, model.ErrUnknownStrategy):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownStrategy, "Unknown selection strategy"}}
	case errors.Is(err, model.ErrNoSolution):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeNoSolution, "Puzzle has no solution"}}
	case errors.Is(err, model.ErrLexiconNotLoaded):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeLexiconNotLoaded, "Lexicon is not loaded yet"}}
	case errors.Is(err, model.ErrWordListNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeWordListNotFound, "Word list not found"}}
	case errors.Is(err, model.ErrPuzzleNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePuzzleNotFound, "Puzzle not found"}}
	case errors.Is(err, model.ErrResultNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeResultNotFound, "Solve result not found"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
