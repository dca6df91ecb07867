package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordpuzzles/internal/model"
	"github.com/mcoot/wordpuzzles/internal/services/catalog"
	"github.com/mcoot/wordpuzzles/internal/services/puzzle"
	"github.com/mcoot/wordpuzzles/internal/services/selection"
	"github.com/mcoot/wordpuzzles/internal/web/middleware"
	"github.com/mcoot/wordpuzzles/internal/web/sse"
	"github.com/mcoot/wordpuzzles/internal/web/templates/layout"
	"github.com/mcoot/wordpuzzles/internal/web/templates/pages"
)

// PuzzleHandler handles puzzle pages, actions and event streams
type PuzzleHandler struct {
	catalog          catalog.ServiceInterface
	puzzleController puzzle.ControllerInterface
	hubManager       *sse.HubManager
	geometry         selection.Geometry
	logger           *slog.Logger
}

// NewPuzzleHandler creates a new PuzzleHandler
func NewPuzzleHandler(
	catalog catalog.ServiceInterface,
	puzzleController puzzle.ControllerInterface,
	hubManager *sse.HubManager,
	geometry selection.Geometry,
	logger *slog.Logger,
) *PuzzleHandler {
	return &PuzzleHandler{
		catalog:          catalog,
		puzzleController: puzzleController,
		hubManager:       hubManager,
		geometry:         geometry,
		logger:           logger,
	}
}

// Create starts a puzzle for the posted category and redirects to it
func (h *PuzzleHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithFlash(w, r, "/", "error", "Invalid form data")
		return
	}

	p, err := h.puzzleController.Start(r.Context(), model.CategoryID(r.FormValue("category_id")))
	if err != nil {
		switch {
		case errors.Is(err, model.ErrCategoryNotFound):
			redirectWithFlash(w, r, "/", "error", "Category not found")
		default:
			logError(h.logger, r, "failed to start puzzle", err)
			redirectWithFlash(w, r, "/", "error", "Could not start the puzzle")
		}
		return
	}

	http.Redirect(w, r, "/puzzles/"+string(p.ID), http.StatusSeeOther)
}

// View renders the puzzle page
func (h *PuzzleHandler) View(w http.ResponseWriter, r *http.Request) {
	id := model.PuzzleID(mux.Vars(r)["id"])

	p, err := h.puzzleController.Get(r.Context(), id)
	if err != nil {
		redirectWithFlash(w, r, "/", "error", "Puzzle not found")
		return
	}

	category := model.Category{ID: p.CategoryID, Name: string(p.CategoryID)}
	if c, err := h.catalog.Get(p.CategoryID); err == nil {
		category = *c
	}

	renderPage(w, r, http.StatusOK, pages.Puzzle(pages.PuzzleData{
		PageData: layout.PageData{
			Title: category.Name,
			Flash: middleware.GetFlash(r.Context()),
		},
		Category: category,
		Puzzle:   p,
		Geometry: h.geometry,
	}))
}

// Reset regenerates the puzzle's grid and redirects back to it
func (h *PuzzleHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id := model.PuzzleID(mux.Vars(r)["id"])

	if _, err := h.puzzleController.Reset(r.Context(), id); err != nil {
		redirectWithFlash(w, r, "/", "error", "Puzzle not found")
		return
	}

	http.Redirect(w, r, "/puzzles/"+string(id), http.StatusSeeOther)
}

// Events streams live updates for a puzzle
func (h *PuzzleHandler) Events(w http.ResponseWriter, r *http.Request) {
	id := model.PuzzleID(mux.Vars(r)["id"])

	if _, err := h.puzzleController.Get(r.Context(), id); err != nil {
		http.Error(w, "Puzzle not found", http.StatusNotFound)
		return
	}

	sse.ServeSSE(w, r, h.hubManager.GetOrCreateHub(id))
}
