package e2e_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/puzzlesuite-go/internal/api"
	"github.com/mcoot/puzzlesuite-go/internal/factory"
	"github.com/mcoot/puzzlesuite-go/internal/testutil"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "puzzles-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/puzzles")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	return r.runWithInput("", args...)
}

func (r *cliRunner) runWithInput(stdin string, args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application with the bundled word list
	projectRoot := findProjectRoot(t)
	app, err := factory.New(factory.Config{
		LexiconPath: filepath.Join(projectRoot, "data/words.txt"),
	})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:          testutil.NopLogger(),
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

	mux := http.NewServeMux()
	mux.Handle("/api/", router)

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

func TestCLIHealthAndLexicon(t *testing.T) {
	srv := startTestServer(t)
	defer srv.shutdown()
	cli := newCLIRunner(t, srv.addr)

	out, err := cli.run("health")
	require.NoError(t, err, out)
	assert.Contains(t, out, `"ok"`)

	out, err = cli.run("lexicon")
	require.NoError(t, err, out)

	var lex struct {
		Loaded    bool `json:"loaded"`
		WordCount int  `json:"word_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &lex))
	assert.True(t, lex.Loaded)
	assert.Positive(t, lex.WordCount)
}

func TestCLISolveBoard(t *testing.T) {
	srv := startTestServer(t)
	defer srv.shutdown()
	cli := newCLIRunner(t, srv.addr)

	out, err := cli.runWithInput("cat......\n", "solve")
	require.NoError(t, err, out)

	var result struct {
		Solution struct {
			TotalScore int  `json:"total_score"`
			ClearedAll bool `json:"cleared_all"`
		} `json:"solution"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 18, result.Solution.TotalScore)
	assert.True(t, result.Solution.ClearedAll)
}

func TestCLIWordgen(t *testing.T) {
	srv := startTestServer(t)
	defer srv.shutdown()
	cli := newCLIRunner(t, srv.addr)

	out, err := cli.run("wordgen", "xcxaxtx")
	require.NoError(t, err, out)
	assert.Contains(t, out, `"cat"`)
}

func TestCLISudoku(t *testing.T) {
	srv := startTestServer(t)
	defer srv.shutdown()
	cli := newCLIRunner(t, srv.addr)

	grid := strings.Repeat(".........\n", 9)
	out, err := cli.runWithInput(grid, "sudoku")
	require.NoError(t, err, out)

	var result struct {
		Grid [9][9]int `json:"grid"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.NotZero(t, result.Grid[0][0])
}

func TestCLIPuzzleLifecycle(t *testing.T) {
	srv := startTestServer(t)
	defer srv.shutdown()
	cli := newCLIRunner(t, srv.addr)

	out, err := cli.runWithInput("cat......\n", "puzzle", "create", "evening tower", "--kind", "tower")
	require.NoError(t, err, out)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	require.NotEmpty(t, created.ID)

	out, err = cli.run("puzzle", "solve", created.ID)
	require.NoError(t, err, out)
	assert.Contains(t, out, `"cleared_all": true`)

	out, err = cli.run("puzzle", "delete", created.ID)
	require.NoError(t, err, out)

	out, err = cli.run("puzzle", "get", created.ID)
	require.Error(t, err)
	assert.Contains(t, out, "PUZZLE_NOT_FOUND")
}
