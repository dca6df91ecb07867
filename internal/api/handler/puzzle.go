package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordpuzzles/internal/api/request"
	"github.com/mcoot/wordpuzzles/internal/api/response"
	"github.com/mcoot/wordpuzzles/internal/model"
	"github.com/mcoot/wordpuzzles/internal/services/puzzle"
	"github.com/mcoot/wordpuzzles/internal/services/selection"
)

// PuzzleHandler handles puzzle endpoints
type PuzzleHandler struct {
	puzzleController puzzle.ControllerInterface
}

// NewPuzzleHandler creates a new puzzle handler
func NewPuzzleHandler(puzzleController puzzle.ControllerInterface) *PuzzleHandler {
	return &PuzzleHandler{puzzleController: puzzleController}
}

// Create handles POST /api/v1/puzzles
func (h *PuzzleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePuzzleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}
	if req.CategoryID == "" {
		WriteError(w, NewInvalidRequestError("category_id is required"))
		return
	}

	p, err := h.puzzleController.Start(r.Context(), model.CategoryID(req.CategoryID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PuzzleFromModel(p))
}

// Get handles GET /api/v1/puzzles/{id}
func (h *PuzzleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PuzzleID(mux.Vars(r)["id"])

	p, err := h.puzzleController.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PuzzleFromModel(p))
}

// Delete handles DELETE /api/v1/puzzles/{id}
func (h *PuzzleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.PuzzleID(mux.Vars(r)["id"])

	if err := h.puzzleController.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Reset handles POST /api/v1/puzzles/{id}/reset
func (h *PuzzleHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id := model.PuzzleID(mux.Vars(r)["id"])

	p, err := h.puzzleController.Reset(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PuzzleFromModel(p))
}

// Pointer handles POST /api/v1/puzzles/{id}/pointer
func (h *PuzzleHandler) Pointer(w http.ResponseWriter, r *http.Request) {
	id := model.PuzzleID(mux.Vars(r)["id"])

	var req request.PointerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	result, err := h.puzzleController.Pointer(r.Context(), id, puzzle.PointerEvent{
		Type: puzzle.PointerEventType(req.Type),
		X:    req.X,
		Y:    req.Y,
		Geometry: selection.Geometry{
			CellSize: req.CellSize,
			Gap:      req.Gap,
			Padding:  req.Padding,
		},
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PointerResponseFromResult(result))
}
