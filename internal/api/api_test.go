package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/puzzlesuite-go/internal/api"
	"github.com/mcoot/puzzlesuite-go/internal/api/response"
	"github.com/mcoot/puzzlesuite-go/internal/factory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := factory.NewTestApp()
	app.LoadTestLexicon()

	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		LexiconService:  app.LexiconService,
		SearchService:   app.SearchService,
		ScoringService:  app.ScoringService,
		ClearingService: app.ClearingService,
		SolverService:   app.SolverService,
		SudokuService:   app.SudokuService,
		WordgenService:  app.WordgenService,
		ColumnsService:  app.ColumnsService,
		PuzzlesService:  app.PuzzlesService,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&out))
	return out
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestLexiconStatus(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/lexicon", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	status := decode[response.LexiconResponse](t, rr)
	assert.True(t, status.Loaded)
	assert.Positive(t, status.WordCount)
}

func TestSolveTowerBoard(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{
		"board": map[string]any{"rows": []string{"cat......"}},
	}
	rr := ts.request(http.MethodPost, "/api/v1/spelltower/solve", body)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.SolveResponse](t, rr)
	require.Len(t, resp.Solution.Sequence, 1)
	assert.Equal(t, "cat", resp.Solution.Sequence[0].Word)
	assert.Equal(t, 18, resp.Solution.TotalScore)
	assert.True(t, resp.Solution.ClearedAll)
	assert.Equal(t, "greedy", resp.Strategy)
	assert.Equal(t, ".........", resp.Board.Rows[12])
}

func TestSolveTowerBoardWithKinds(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{
		"board": map[string]any{
			"rows":  []string{"cat......"},
			"kinds": []string{"ns......."},
		},
	}
	rr := ts.request(http.MethodPost, "/api/v1/spelltower/solve", body)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.SolveResponse](t, rr)
	assert.Equal(t, 36, resp.Solution.TotalScore)
}

func TestSolveTowerBoardUnknownStrategy(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{
		"board":    map[string]any{"rows": []string{"cat......"}},
		"strategy": "alphabetical",
	}
	rr := ts.request(http.MethodPost, "/api/v1/spelltower/solve", body)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "UNKNOWN_STRATEGY")
}

func TestSolveTowerBoardMalformed(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{
		"board": map[string]any{"rows": []string{"cat4....."}},
	}
	rr := ts.request(http.MethodPost, "/api/v1/spelltower/solve", body)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_BOARD")
}

func TestListTowerWords(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{
		"board": map[string]any{"rows": []string{"cat......"}},
	}
	rr := ts.request(http.MethodPost, "/api/v1/spelltower/words", body)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.WordsResponse](t, rr)
	require.NotEmpty(t, resp.Words)
	assert.Equal(t, len(resp.Words), resp.Count)
	// Canonical ordering puts the highest score first
	assert.Equal(t, "cat", resp.Words[0].Word)
	assert.Equal(t, 18, resp.Words[0].Score)
}

func TestListStrategies(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/spelltower/strategies", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.StrategiesResponse](t, rr)
	assert.Equal(t, "greedy", resp.Default)
	assert.Contains(t, resp.Strategies, "greedy")
	assert.Contains(t, resp.Strategies, "lookahead")
}

func TestSolveSudoku(t *testing.T) {
	ts := newTestServer(t)

	grid := [9][9]int{}
	grid[0][0] = 5

	rr := ts.request(http.MethodPost, "/api/v1/sudoku/solve", map[string]any{"grid": grid})
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.SudokuResponse](t, rr)
	assert.Equal(t, 5, resp.Grid[0][0])
	for col := 0; col < 9; col++ {
		assert.NotZero(t, resp.Grid[8][col])
	}
}

func TestSolveSudokuConflict(t *testing.T) {
	ts := newTestServer(t)

	grid := [9][9]int{}
	grid[0][0] = 5
	grid[0][5] = 5

	rr := ts.request(http.MethodPost, "/api/v1/sudoku/solve", map[string]any{"grid": grid})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_GRID")
}

func TestGenerateWords(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/wordgen", map[string]any{"letters": "xcxaxtx"})
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.WordListResponse](t, rr)
	assert.Contains(t, resp.Words, "cat")
}

func TestGenerateWordsRequiresLetters(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/wordgen", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")
}

func TestEnumerateColumns(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{"columns": []string{"cd", "ao", "tg"}}
	rr := ts.request(http.MethodPost, "/api/v1/columns", body)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.WordListResponse](t, rr)
	assert.Contains(t, resp.Words, "cat")
	assert.Contains(t, resp.Words, "dog")
}

func TestCoreColumnWords(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{"columns": []string{"cd", "ao", "tg"}}
	rr := ts.request(http.MethodPost, "/api/v1/columns/core", body)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.WordListResponse](t, rr)
	assert.NotEmpty(t, resp.Words)
}

func TestPuzzleLifecycle(t *testing.T) {
	ts := newTestServer(t)
	ts.app.MockRandom.QueueString("puzzle11", "result11")

	// Create
	createBody := map[string]any{
		"name":  "morning tower",
		"kind":  "tower",
		"board": map[string]any{"rows": []string{"cat......"}},
	}
	rr := ts.request(http.MethodPost, "/api/v1/puzzles", createBody)
	require.Equal(t, http.StatusCreated, rr.Code)
	created := decode[response.Puzzle](t, rr)
	assert.Equal(t, "puzzle11", created.ID)

	// Get
	rr = ts.request(http.MethodGet, "/api/v1/puzzles/puzzle11", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	fetched := decode[response.Puzzle](t, rr)
	assert.Equal(t, "morning tower", fetched.Name)
	require.NotNil(t, fetched.Board)
	assert.Equal(t, "cat......", fetched.Board.Rows[12])

	// Solve and record
	rr = ts.request(http.MethodPost, "/api/v1/puzzles/puzzle11/solve", map[string]any{})
	require.Equal(t, http.StatusCreated, rr.Code)
	result := decode[response.Result](t, rr)
	assert.Equal(t, "result11", result.ID)
	assert.Equal(t, "greedy", result.Strategy)
	assert.True(t, result.Solution.ClearedAll)

	// List results
	rr = ts.request(http.MethodGet, "/api/v1/puzzles/puzzle11/results", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	results := decode[[]response.Result](t, rr)
	require.Len(t, results, 1)
	assert.Equal(t, "result11", results[0].ID)

	// List puzzles
	rr = ts.request(http.MethodGet, "/api/v1/puzzles", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	puzzles := decode[[]response.Puzzle](t, rr)
	assert.Len(t, puzzles, 1)

	// Delete
	rr = ts.request(http.MethodDelete, "/api/v1/puzzles/puzzle11", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/puzzles/puzzle11", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "PUZZLE_NOT_FOUND")
}

func TestGetPuzzleNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/puzzles/missing", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreatePuzzleInvalidKind(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{"name": "mystery", "kind": "crossword"}
	rr := ts.request(http.MethodPost, "/api/v1/puzzles", body)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_PUZZLE")
}

func TestSolvePuzzleWrongKind(t *testing.T) {
	ts := newTestServer(t)
	ts.app.MockRandom.QueueString("sudoku11")

	grid := [9][9]int{}
	body := map[string]any{"name": "numbers", "kind": "sudoku", "grid": grid}
	rr := ts.request(http.MethodPost, "/api/v1/puzzles", body)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/puzzles/sudoku11/solve", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
