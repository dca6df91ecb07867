package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordpuzzles/internal/api/apierr"
	"github.com/mcoot/wordpuzzles/internal/api/handler"
	"github.com/mcoot/wordpuzzles/internal/api/middleware"
	"github.com/mcoot/wordpuzzles/internal/api/response"
	"github.com/mcoot/wordpuzzles/internal/services/catalog"
	"github.com/mcoot/wordpuzzles/internal/services/puzzle"
	"github.com/mcoot/wordpuzzles/internal/services/wordle"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	Catalog          catalog.ServiceInterface
	PuzzleController puzzle.ControllerInterface
	WordleController wordle.ControllerInterface
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	categoryHandler := handler.NewCategoryHandler(cfg.Catalog)
	puzzleHandler := handler.NewPuzzleHandler(cfg.PuzzleController)
	wordleHandler := handler.NewWordleHandler(cfg.WordleController)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))
	api.NotFoundHandler = http.HandlerFunc(notFoundHandler)

	api.HandleFunc("/health", healthHandler(cfg.Catalog)).Methods(http.MethodGet)

	// Categories
	api.HandleFunc("/categories", categoryHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/categories/{id}", categoryHandler.Get).Methods(http.MethodGet)

	// Puzzles
	api.HandleFunc("/puzzles", puzzleHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/puzzles/{id}", puzzleHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/puzzles/{id}", puzzleHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/puzzles/{id}/reset", puzzleHandler.Reset).Methods(http.MethodPost)
	api.HandleFunc("/puzzles/{id}/pointer", puzzleHandler.Pointer).Methods(http.MethodPost)

	// Wordle
	api.HandleFunc("/wordle", wordleHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/wordle/{id}", wordleHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/wordle/{id}/guess", wordleHandler.Guess).Methods(http.MethodPost)

	return r
}

func healthHandler(c catalog.ServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusOK, response.Health{
			Status:        "ok",
			CatalogLoaded: c.IsLoaded(),
		})
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	apierr.WriteError(w, apierr.NewNotFoundError())
}
