package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/wordpuzzles/internal/model"
	"github.com/mcoot/wordpuzzles/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// setJSON stores v as JSON under key with the given TTL (0 for none)
func (s *Storage) setJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

// getJSON loads key into v, returning notFound when the key does not exist
func (s *Storage) getJSON(ctx context.Context, key string, v any, notFound error) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return notFound
		}
		return err
	}
	return json.Unmarshal(data, v)
}

// Puzzle operations

func (s *Storage) SavePuzzle(ctx context.Context, puzzle *model.Puzzle) error {
	return s.setJSON(ctx, puzzleKey(puzzle.ID), puzzle, s.cfg.PuzzleTTL)
}

func (s *Storage) GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.Puzzle, error) {
	var puzzle model.Puzzle
	if err := s.getJSON(ctx, puzzleKey(id), &puzzle, model.ErrPuzzleNotFound); err != nil {
		return nil, err
	}
	return &puzzle, nil
}

func (s *Storage) DeletePuzzle(ctx context.Context, id model.PuzzleID) error {
	return s.client.Del(ctx, puzzleKey(id)).Err()
}

// Category operations

func (s *Storage) GetCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := s.getJSON(ctx, categoriesKey(), &categories, model.ErrCatalogNotLoaded); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *Storage) SaveCategories(ctx context.Context, categories []model.Category) error {
	return s.setJSON(ctx, categoriesKey(), categories, s.cfg.CategoriesTTL)
}

// Wordle operations

func (s *Storage) SaveWordleGame(ctx context.Context, game *model.WordleGame) error {
	return s.setJSON(ctx, wordleGameKey(game.ID), game, s.cfg.WordleGameTTL)
}

func (s *Storage) GetWordleGame(ctx context.Context, id model.WordleGameID) (*model.WordleGame, error) {
	var game model.WordleGame
	if err := s.getJSON(ctx, wordleGameKey(id), &game, model.ErrWordleGameNotFound); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) DeleteWordleGame(ctx context.Context, id model.WordleGameID) error {
	return s.client.Del(ctx, wordleGameKey(id)).Err()
}
