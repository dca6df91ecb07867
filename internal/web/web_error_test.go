package web_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordpuzzles/internal/factory"
)

func TestFlashMessageOnUnknownCategory(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/puzzles", url.Values{"category_id": {"plants"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	// Follow redirect and check for flash message
	rr = ts.followRedirect(rr)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".flash.flash-error", "Category not found")

	// Flash is shown once
	doc = parseHTML(ts.get("/").Body)
	assertNotContainsElement(t, doc, ".flash")
}

func TestPuzzleNotFoundRedirectsHome(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/puzzles/missing")
	assert.Equal(t, http.StatusSeeOther, rr.Code)

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash", "Puzzle not found")
}

func TestResetUnknownPuzzle(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/puzzles/missing/reset", url.Values{})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}

func TestWordleGuessErrorsShown(t *testing.T) {
	ts := newWebTestServer(t)
	path := ts.startWordle("w1")

	tests := []struct {
		word string
		want string
	}{
		{"abc", "Guesses must be 5 letters"},
		{"zzzzz", "Not in the word list"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			rr := ts.post(path+"/guess", url.Values{"word": {tt.word}})
			require.Equal(t, http.StatusSeeOther, rr.Code)
			assert.Equal(t, path, rr.Header().Get("Location"))

			doc := parseHTML(ts.followRedirect(rr).Body)
			assertContainsText(t, doc, ".flash", tt.want)
			assertContainsElement(t, doc, `.wordle-board[data-status="playing"]`)
		})
	}
}

func TestWordleGameNotFound(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/wordle/missing")
	assert.Equal(t, http.StatusSeeOther, rr.Code)

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash", "Game not found")
}

func TestUnknownPageNotFound(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/nowhere")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestStaticFileServing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "style.css"), []byte("body{}"), 0o644))

	handler := newRouter(factory.NewTestApp(), dir)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/style.css", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "body{}", rr.Body.String())
}
