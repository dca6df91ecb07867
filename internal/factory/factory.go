package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/wordpuzzles/internal/dependencies/clock"
	"github.com/mcoot/wordpuzzles/internal/dependencies/random"
	"github.com/mcoot/wordpuzzles/internal/model"
	"github.com/mcoot/wordpuzzles/internal/services/catalog"
	"github.com/mcoot/wordpuzzles/internal/services/generator"
	"github.com/mcoot/wordpuzzles/internal/services/puzzle"
	"github.com/mcoot/wordpuzzles/internal/services/selection"
	"github.com/mcoot/wordpuzzles/internal/services/wordle"
	"github.com/mcoot/wordpuzzles/internal/storage"
	"github.com/mcoot/wordpuzzles/internal/storage/memory"
	redisstorage "github.com/mcoot/wordpuzzles/internal/storage/redis"
	sqlitestorage "github.com/mcoot/wordpuzzles/internal/storage/sqlite"
	"github.com/mcoot/wordpuzzles/internal/web/sse"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Catalog          *catalog.Service
	Generator        *generator.Service
	PuzzleController *puzzle.Controller
	WordList         *wordle.WordList
	WordleController *wordle.Controller
	HubManager       *sse.HubManager
	Broadcaster      *sse.Broadcaster
	Geometry         selection.Geometry
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
	// CategoriesPath is a YAML catalog file (optional)
	// If empty, a persisted catalog is reused, falling back to the embedded defaults
	CategoriesPath string
	// WordleWordsPath replaces the embedded Wordle word list (optional)
	WordleWordsPath string
	// CompletionDelay is the pause between the last word found and completion
	// If zero, defaults to selection.DefaultCompletionDelay
	CompletionDelay time.Duration
	// GenerationRounds caps full-grid retries while words get dropped
	// If zero, defaults to generator.DefaultRounds
	GenerationRounds int
	// DailySalt keys the daily Wordle word
	DailySalt string
}

// New creates a new application with all dependencies wired and the
// catalog and word list loaded
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		store = redisStore
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlitestorage.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		store = sqliteStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'sqlite'")
	}

	app := newWithDependencies(store, clock.New(), random.New(), cfg, logger)

	if err := app.loadCatalog(ctx, cfg.CategoriesPath, logger); err != nil {
		_ = app.Close()
		return nil, err
	}
	if cfg.WordleWordsPath != "" {
		if err := app.WordList.LoadFromFile(cfg.WordleWordsPath); err != nil {
			_ = app.Close()
			return nil, fmt.Errorf("load wordle words: %w", err)
		}
	}

	return app, nil
}

func (a *App) loadCatalog(ctx context.Context, path string, logger *slog.Logger) error {
	if path != "" {
		if err := a.Catalog.LoadFromFile(ctx, path); err != nil {
			return fmt.Errorf("load categories from %s: %w", path, err)
		}
		return nil
	}

	err := a.Catalog.LoadFromStorage(ctx)
	if err == nil {
		logger.Info("catalog restored from storage", slog.Int("categories", len(a.Catalog.List())))
		return nil
	}
	if !errors.Is(err, model.ErrCatalogNotLoaded) {
		logger.Warn("stored catalog unusable, loading defaults", slog.String("error", err.Error()))
	}
	if err := a.Catalog.LoadDefaults(ctx); err != nil {
		return fmt.Errorf("load default categories: %w", err)
	}
	return nil
}

// Close releases the storage backend
func (a *App) Close() error {
	if c, ok := a.Storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, cfg Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	delay := cfg.CompletionDelay
	if delay == 0 {
		delay = selection.DefaultCompletionDelay
	}
	rounds := cfg.GenerationRounds
	if rounds == 0 {
		rounds = generator.DefaultRounds
	}
	geometry := selection.DefaultGeometry()

	catalogService := catalog.New(store, logger)
	generatorService := generator.New(rnd, rounds, logger)
	hubManager := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubManager, geometry, logger)
	puzzleController := puzzle.NewController(store, catalogService, generatorService, clk, rnd, broadcaster, delay, logger)
	wordList := wordle.NewWordList()
	wordleController := wordle.NewController(store, wordList, clk, rnd, cfg.DailySalt, logger)

	return &App{
		Storage:          store,
		Clock:            clk,
		Random:           rnd,
		Catalog:          catalogService,
		Generator:        generatorService,
		PuzzleController: puzzleController,
		WordList:         wordList,
		WordleController: wordleController,
		HubManager:       hubManager,
		Broadcaster:      broadcaster,
		Geometry:         geometry,
	}
}
