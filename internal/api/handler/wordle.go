package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordpuzzles/internal/api/request"
	"github.com/mcoot/wordpuzzles/internal/api/response"
	"github.com/mcoot/wordpuzzles/internal/dependencies/feedback"
	"github.com/mcoot/wordpuzzles/internal/model"
	"github.com/mcoot/wordpuzzles/internal/services/wordle"
)

// WordleHandler handles Wordle endpoints
type WordleHandler struct {
	wordleController wordle.ControllerInterface
}

// NewWordleHandler creates a new Wordle handler
func NewWordleHandler(wordleController wordle.ControllerInterface) *WordleHandler {
	return &WordleHandler{wordleController: wordleController}
}

// Create handles POST /api/v1/wordle
func (h *WordleHandler) Create(w http.ResponseWriter, r *http.Request) {
	g, err := h.wordleController.NewGame(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.WordleGameFromModel(g))
}

// Get handles GET /api/v1/wordle/{id}
func (h *WordleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.WordleGameID(mux.Vars(r)["id"])

	g, err := h.wordleController.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.WordleGameFromModel(g))
}

// Guess handles POST /api/v1/wordle/{id}/guess
func (h *WordleHandler) Guess(w http.ResponseWriter, r *http.Request) {
	id := model.WordleGameID(mux.Vars(r)["id"])

	var req request.GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	recorder := feedback.NewRecorder()
	g, err := h.wordleController.Guess(r.Context(), id, req.Word, recorder)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.WordleGameFromModel(g)
	resp.Feedback = response.FeedbackKinds(recorder.Drain())
	response.JSON(w, http.StatusOK, resp)
}
