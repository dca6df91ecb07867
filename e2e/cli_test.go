package e2e_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordpuzzles/internal/api"
	"github.com/mcoot/wordpuzzles/internal/factory"
	"github.com/mcoot/wordpuzzles/internal/testutil"
	"github.com/mcoot/wordpuzzles/internal/web"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "wpgame-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/wpgame")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
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

// startTestServer runs the full server stack on a free port with the embedded catalog
func startTestServer(t *testing.T) string {
	t.Helper()

	logger := testutil.NopLogger()
	app, err := factory.New(context.Background(), factory.Config{Logger: logger})
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.Handle("/api/", api.NewRouter(api.RouterConfig{
		Logger:           logger,
		Catalog:          app.Catalog,
		PuzzleController: app.PuzzleController,
		WordleController: app.WordleController,
	}))
	mux.Handle("/", web.NewRouter(web.RouterConfig{
		Logger:           logger,
		Catalog:          app.Catalog,
		PuzzleController: app.PuzzleController,
		WordleController: app.WordleController,
		HubManager:       app.HubManager,
		Geometry:         app.Geometry,
	}))

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := api.NewServer(mux, api.DefaultServerConfig(), logger)
	go func() {
		_ = server.Serve(listener)
	}()

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
		_ = app.Close()
	})

	serverURL := "http://" + listener.Addr().String()
	waitForServer(t, serverURL+"/api/v1/health")
	return serverURL
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

// Response types for JSON parsing
type puzzleResponse struct {
	ID        string   `json:"id"`
	Rows      []string `json:"rows"`
	Words     []string `json:"words"`
	Remaining []string `json:"remaining"`
	Dropped   []string `json:"dropped"`
	Round     int      `json:"round"`
	Complete  bool     `json:"complete"`
}

type pointerResponse struct {
	Outcome string `json:"outcome"`
	Letters string `json:"letters"`
	Matched *struct {
		Word string `json:"word"`
	} `json:"matched"`
	Complete bool `json:"complete"`
}

type healthResponse struct {
	Status        string `json:"status"`
	CatalogLoaded bool   `json:"catalog_loaded"`
}

// locate finds word in the grid along any of the eight directions and
// returns its first and last cells as "row,col"
func locate(rows []string, word string) (string, string, bool) {
	grid := make([][]rune, len(rows))
	for i, r := range rows {
		grid[i] = []rune(r)
	}
	letters := []rune(word)
	n := len(grid)

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			for _, d := range [][2]int{{0, 1}, {1, 0}, {1, 1}, {-1, 1}, {0, -1}, {-1, 0}, {-1, -1}, {1, -1}} {
				endRow, endCol := row+d[0]*(len(letters)-1), col+d[1]*(len(letters)-1)
				if endRow < 0 || endRow >= n || endCol < 0 || endCol >= n {
					continue
				}
				match := true
				for i, l := range letters {
					if grid[row+d[0]*i][col+d[1]*i] != l {
						match = false
						break
					}
				}
				if match {
					return fmt.Sprintf("%d,%d", row, col), fmt.Sprintf("%d,%d", endRow, endCol), true
				}
			}
		}
	}
	return "", "", false
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	cli := newCLIRunner(t, startTestServer(t))

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.CatalogLoaded)
}

func TestCLI_SolvePuzzle(t *testing.T) {
	cli := newCLIRunner(t, startTestServer(t))

	output, err := cli.run("puzzle", "start", "colori")
	require.NoError(t, err, "output: %s", output)

	var puzzle puzzleResponse
	require.NoError(t, json.Unmarshal([]byte(output), &puzzle))
	require.NotEmpty(t, puzzle.ID)
	require.Len(t, puzzle.Rows, 9)

	placed := 0
	var last pointerResponse
	for _, word := range puzzle.Words {
		if slices.Contains(puzzle.Dropped, word) {
			continue
		}
		from, to, ok := locate(puzzle.Rows, word)
		require.True(t, ok, "word %s should be in the grid", word)

		output, err = cli.run("puzzle", "select", puzzle.ID, from, to)
		require.NoError(t, err, "output: %s", output)
		require.NoError(t, json.Unmarshal([]byte(output), &last))
		assert.Equal(t, "match", last.Outcome, "selecting %s", word)
		placed++
	}

	if len(puzzle.Dropped) == 0 {
		assert.True(t, last.Complete)
	}
	assert.Positive(t, placed)

	output, err = cli.run("puzzle", "reset", puzzle.ID)
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &puzzle))
	assert.Equal(t, 2, puzzle.Round)
	assert.False(t, puzzle.Complete)
}

func TestCLI_Wordle(t *testing.T) {
	cli := newCLIRunner(t, startTestServer(t))

	output, err := cli.run("wordle", "new")
	require.NoError(t, err, "output: %s", output)

	var game struct {
		ID          string `json:"id"`
		Status      string `json:"status"`
		GuessesLeft int    `json:"guesses_left"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &game))
	assert.Equal(t, "playing", game.Status)
	assert.Equal(t, 6, game.GuessesLeft)

	output, err = cli.run("wordle", "guess", game.ID, "abc")
	assert.Error(t, err)
	assert.Contains(t, output, "INVALID_GUESS_LENGTH")
}

func TestCLI_Generate(t *testing.T) {
	cli := newCLIRunner(t, "http://127.0.0.1:1")

	output, err := cli.run("generate", "--size", "6", "--seed", "7", "--words", "sole,mare")
	require.NoError(t, err, "output: %s", output)

	var result struct {
		Rows    []string `json:"rows"`
		Dropped []string `json:"dropped"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	require.Len(t, result.Rows, 6)
	assert.Empty(t, result.Dropped)

	for _, word := range []string{"SOLE", "MARE"} {
		_, _, ok := locate(result.Rows, word)
		assert.True(t, ok, "word %s should be in the grid", word)
	}
}

func TestCLI_ErrorHandling(t *testing.T) {
	cli := newCLIRunner(t, startTestServer(t))

	output, err := cli.run("puzzle", "start", "nonexistent")
	assert.Error(t, err)
	assert.Contains(t, output, "CATEGORY_NOT_FOUND")

	output, err = cli.run("puzzle", "get", "missing")
	assert.Error(t, err)
	assert.Contains(t, output, "PUZZLE_NOT_FOUND")
}
