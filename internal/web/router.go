package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordpuzzles/internal/services/catalog"
	"github.com/mcoot/wordpuzzles/internal/services/puzzle"
	"github.com/mcoot/wordpuzzles/internal/services/selection"
	"github.com/mcoot/wordpuzzles/internal/services/wordle"
	"github.com/mcoot/wordpuzzles/internal/web/handler"
	"github.com/mcoot/wordpuzzles/internal/web/middleware"
	"github.com/mcoot/wordpuzzles/internal/web/sse"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger           *slog.Logger
	Catalog          catalog.ServiceInterface
	PuzzleController puzzle.ControllerInterface
	WordleController wordle.ControllerInterface
	HubManager       *sse.HubManager
	Geometry         selection.Geometry // Zero value means selection.DefaultGeometry()
	StaticDir        string             // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	hubManager := cfg.HubManager
	if hubManager == nil {
		hubManager = sse.NewHubManager(cfg.Logger)
	}
	geometry := cfg.Geometry
	if geometry.CellSize <= 0 {
		geometry = selection.DefaultGeometry()
	}

	homeHandler := handler.NewHomeHandler(cfg.Catalog)
	puzzleHandler := handler.NewPuzzleHandler(cfg.Catalog, cfg.PuzzleController, hubManager, geometry, cfg.Logger)
	wordleHandler := handler.NewWordleHandler(cfg.WordleController, cfg.Logger)

	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	pages := r.NewRoute().Subrouter()
	pages.Use(middleware.Recovery(cfg.Logger))
	pages.Use(middleware.Logging(cfg.Logger))
	pages.Use(middleware.Flash())

	pages.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)

	pages.HandleFunc("/puzzles", puzzleHandler.Create).Methods(http.MethodPost)
	pages.HandleFunc("/puzzles/{id}", puzzleHandler.View).Methods(http.MethodGet)
	pages.HandleFunc("/puzzles/{id}/reset", puzzleHandler.Reset).Methods(http.MethodPost)
	pages.HandleFunc("/puzzles/{id}/events", puzzleHandler.Events).Methods(http.MethodGet)

	pages.HandleFunc("/wordle", wordleHandler.New).Methods(http.MethodGet, http.MethodPost)
	pages.HandleFunc("/wordle/{id}", wordleHandler.View).Methods(http.MethodGet)
	pages.HandleFunc("/wordle/{id}/guess", wordleHandler.Guess).Methods(http.MethodPost)

	return r
}
