package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordpuzzles/internal/model"
	"github.com/mcoot/wordpuzzles/internal/services/wordle"
	"github.com/mcoot/wordpuzzles/internal/web/middleware"
	"github.com/mcoot/wordpuzzles/internal/web/templates/layout"
	"github.com/mcoot/wordpuzzles/internal/web/templates/pages"
)

// WordleHandler handles the Wordle pages
type WordleHandler struct {
	wordleController wordle.ControllerInterface
	logger           *slog.Logger
}

// NewWordleHandler creates a new WordleHandler
func NewWordleHandler(wordleController wordle.ControllerInterface, logger *slog.Logger) *WordleHandler {
	return &WordleHandler{wordleController: wordleController, logger: logger}
}

// New starts a game on today's word and redirects to it
func (h *WordleHandler) New(w http.ResponseWriter, r *http.Request) {
	g, err := h.wordleController.NewGame(r.Context())
	if err != nil {
		logError(h.logger, r, "failed to start wordle game", err)
		redirectWithFlash(w, r, "/", "error", "Wordle is unavailable")
		return
	}

	http.Redirect(w, r, "/wordle/"+string(g.ID), http.StatusSeeOther)
}

// View renders a game
func (h *WordleHandler) View(w http.ResponseWriter, r *http.Request) {
	id := model.WordleGameID(mux.Vars(r)["id"])

	g, err := h.wordleController.GetGame(r.Context(), id)
	if err != nil {
		redirectWithFlash(w, r, "/", "error", "Game not found")
		return
	}

	renderPage(w, r, http.StatusOK, pages.Wordle(pages.WordleData{
		PageData: layout.PageData{
			Title: "Wordle",
			Flash: middleware.GetFlash(r.Context()),
		},
		Game: g,
	}))
}

// Guess submits the posted word and redirects back to the game
func (h *WordleHandler) Guess(w http.ResponseWriter, r *http.Request) {
	id := model.WordleGameID(mux.Vars(r)["id"])
	back := "/wordle/" + string(id)

	if err := r.ParseForm(); err != nil {
		redirectWithFlash(w, r, back, "error", "Invalid form data")
		return
	}

	_, err := h.wordleController.Guess(r.Context(), id, r.FormValue("word"), nil)
	switch {
	case err == nil:
		http.Redirect(w, r, back, http.StatusSeeOther)
	case errors.Is(err, model.ErrWordleGameNotFound):
		redirectWithFlash(w, r, "/", "error", "Game not found")
	case errors.Is(err, model.ErrInvalidGuessLength):
		redirectWithFlash(w, r, back, "error", "Guesses must be 5 letters")
	case errors.Is(err, model.ErrGuessNotInWordList):
		redirectWithFlash(w, r, back, "error", "Not in the word list")
	case errors.Is(err, model.ErrWordleGameFinished):
		redirectWithFlash(w, r, back, "info", "This game is over")
	default:
		logError(h.logger, r, "failed to submit guess", err)
		redirectWithFlash(w, r, back, "error", "Could not submit the guess")
	}
}
