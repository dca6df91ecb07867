package storage

import (
	"context"

	"github.com/mcoot/wordpuzzles/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Puzzle operations
	SavePuzzle(ctx context.Context, puzzle *model.Puzzle) error
	GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.Puzzle, error)
	DeletePuzzle(ctx context.Context, id model.PuzzleID) error

	// Category operations
	GetCategories(ctx context.Context) ([]model.Category, error)
	SaveCategories(ctx context.Context, categories []model.Category) error

	// Wordle operations
	SaveWordleGame(ctx context.Context, game *model.WordleGame) error
	GetWordleGame(ctx context.Context, id model.WordleGameID) (*model.WordleGame, error)
	DeleteWordleGame(ctx context.Context, id model.WordleGameID) error
}
