package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordpuzzles/internal/api"
	"github.com/mcoot/wordpuzzles/internal/factory"
	"github.com/mcoot/wordpuzzles/internal/testutil"
	"github.com/mcoot/wordpuzzles/internal/web"
)

func newTestBackend(t *testing.T) (*factory.TestApp, *httptest.Server) {
	t.Helper()

	app := factory.NewTestApp()
	require.NoError(t, app.LoadTestCatalog())
	require.NoError(t, app.LoadTestWordList())

	logger := testutil.NopLogger()
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

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return app, server
}

func run(t *testing.T, serverURL string, args ...string) (string, error) {
	t.Helper()
	return runContext(context.Background(), serverURL, args...)
}

func runContext(ctx context.Context, serverURL string, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--server", serverURL}, args...))
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestHealth(t *testing.T) {
	_, server := newTestBackend(t)

	out, err := run(t, server.URL, "health")
	require.NoError(t, err)
	assert.Contains(t, out, "Status: ok")
	assert.Contains(t, out, "Catalog loaded: true")
}

func TestCategoryCommands(t *testing.T) {
	_, server := newTestBackend(t)

	out, err := run(t, server.URL, "category", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "pets")
	assert.Contains(t, out, "2 words")

	out, err = run(t, server.URL, "-o", "json", "category", "get", "pets")
	require.NoError(t, err)
	var detail CategoryDetail
	require.NoError(t, json.Unmarshal([]byte(out), &detail))
	assert.Equal(t, []string{"CAT", "DOG"}, detail.Words)

	_, err = run(t, server.URL, "category", "get", "plants")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CATEGORY_NOT_FOUND")
}

func TestPuzzleCommands(t *testing.T) {
	app, server := newTestBackend(t)
	app.QueueTestPuzzle("P1")

	out, err := run(t, server.URL, "puzzle", "start", "pets")
	require.NoError(t, err)
	assert.Contains(t, out, "Puzzle: P1")
	assert.Contains(t, out, " C  A  T  A |")
	assert.Contains(t, out, "Found (0/2):")

	out, err = run(t, server.URL, "puzzle", "select", "P1", "0,0", "0,2")
	require.NoError(t, err)
	assert.Contains(t, out, "Outcome: match")
	assert.Contains(t, out, "Found: CAT")

	out, err = run(t, server.URL, "puzzle", "get", "P1")
	require.NoError(t, err)
	assert.Contains(t, out, " c  a  t  A |")
	assert.Contains(t, out, "Remaining: DOG")

	// Reverse drag over DOG as raw pointer events: centres of (1,2) and (1,0)
	_, err = run(t, server.URL, "puzzle", "pointer", "P1", "down", "120", "76")
	require.NoError(t, err)
	out, err = run(t, server.URL, "-o", "json", "puzzle", "pointer", "P1", "up", "32", "76")
	require.NoError(t, err)
	var result PointerResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "match", result.Outcome)
	assert.Equal(t, "GOD", result.Letters)
	assert.True(t, result.Complete)

	out, err = run(t, server.URL, "puzzle", "reset", "P1")
	require.NoError(t, err)
	assert.Contains(t, out, "Round: 2")

	out, err = run(t, server.URL, "puzzle", "delete", "P1")
	require.NoError(t, err)
	assert.Contains(t, out, "Puzzle deleted")

	_, err = run(t, server.URL, "puzzle", "get", "P1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PUZZLE_NOT_FOUND")
}

func TestPuzzleCommandValidation(t *testing.T) {
	_, server := newTestBackend(t)

	_, err := run(t, server.URL, "puzzle", "select", "P1", "0-0", "0,2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want row,col")

	_, err = run(t, server.URL, "puzzle", "pointer", "P1", "down", "10")
	require.Error(t, err)
}

func TestWordleCommands(t *testing.T) {
	app, server := newTestBackend(t)
	app.MockRandom.QueueString("w1")

	out, err := run(t, server.URL, "wordle", "new")
	require.NoError(t, err)
	assert.Contains(t, out, "Wordle: w1 (2024-01-01)")
	assert.Contains(t, out, "Guesses left: 6")

	stored, err := app.Storage.GetWordleGame(context.Background(), "w1")
	require.NoError(t, err)

	out, err = run(t, server.URL, "wordle", "guess", "w1", strings.ToLower(stored.Target))
	require.NoError(t, err)
	assert.Contains(t, out, "Solved in 1!")

	out, err = run(t, server.URL, "-o", "json", "wordle", "get", "w1")
	require.NoError(t, err)
	var game WordleGame
	require.NoError(t, json.Unmarshal([]byte(out), &game))
	assert.Equal(t, "won", game.Status)
	assert.Equal(t, stored.Target, game.Target)
}

func TestEventsStream(t *testing.T) {
	app, server := newTestBackend(t)
	app.QueueTestPuzzle("P1")
	_, err := run(t, server.URL, "puzzle", "start", "pets")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	out, err := runContext(ctx, server.URL, "events", "P1", "--json")
	require.NoError(t, err)

	line, _, _ := strings.Cut(out, "\n")
	var event SSEEvent
	require.NoError(t, json.Unmarshal([]byte(line), &event))
	assert.Equal(t, "connected", event.Event)
	assert.Contains(t, event.Data, `"status":"connected"`)
}

func TestEventsUnknownPuzzle(t *testing.T) {
	_, server := newTestBackend(t)

	_, err := run(t, server.URL, "events", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestGenerateIsDeterministic(t *testing.T) {
	args := []string{"-o", "json", "generate", "--size", "8", "--seed", "42", "--words", "gatto,cane,lupo"}

	first, err := run(t, "http://unused", args...)
	require.NoError(t, err)
	second, err := run(t, "http://unused", args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var result GenerateResult
	require.NoError(t, json.Unmarshal([]byte(first), &result))
	assert.Equal(t, 8, result.Size)
	assert.Equal(t, uint64(42), result.Seed)
	require.Len(t, result.Rows, 8)
	assert.Len(t, result.Placements, 3)
	assert.Empty(t, result.Dropped)
	for _, p := range result.Placements {
		assert.NotEmpty(t, p.Direction)
	}
}

func TestGenerateValidation(t *testing.T) {
	_, err := run(t, "http://unused", "generate", "--size", "2", "--words", "cat")
	require.Error(t, err)

	_, err = run(t, "http://unused", "generate", "--words", " , ")
	require.Error(t, err)
}
