package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mcoot/wordpuzzles/internal/model"
	"github.com/mcoot/wordpuzzles/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Values are copied on the way in and out so callers never share state.
type Storage struct {
	mu sync.RWMutex

	puzzles     map[model.PuzzleID]*model.Puzzle
	wordleGames map[model.WordleGameID]*model.WordleGame
	categories  []model.Category
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		puzzles:     make(map[model.PuzzleID]*model.Puzzle),
		wordleGames: make(map[model.WordleGameID]*model.WordleGame),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Puzzle operations

func (s *Storage) SavePuzzle(ctx context.Context, puzzle *model.Puzzle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puzzles[puzzle.ID] = puzzle.Clone()
	return nil
}

func (s *Storage) GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.Puzzle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	puzzle, ok := s.puzzles[id]
	if !ok {
		return nil, model.ErrPuzzleNotFound
	}
	return puzzle.Clone(), nil
}

func (s *Storage) DeletePuzzle(ctx context.Context, id model.PuzzleID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.puzzles, id)
	return nil
}

// Category operations

func (s *Storage) GetCategories(ctx context.Context) ([]model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.categories == nil {
		return nil, model.ErrCatalogNotLoaded
	}
	return cloneCategories(s.categories), nil
}

func (s *Storage) SaveCategories(ctx context.Context, categories []model.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = cloneCategories(categories)
	return nil
}

func cloneCategories(categories []model.Category) []model.Category {
	out := make([]model.Category, len(categories))
	for i, c := range categories {
		c.Words = slices.Clone(c.Words)
		out[i] = c
	}
	return out
}

// Wordle operations

func (s *Storage) SaveWordleGame(ctx context.Context, game *model.WordleGame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wordleGames[game.ID] = game.Clone()
	return nil
}

func (s *Storage) GetWordleGame(ctx context.Context, id model.WordleGameID) (*model.WordleGame, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.wordleGames[id]
	if !ok {
		return nil, model.ErrWordleGameNotFound
	}
	return game.Clone(), nil
}

func (s *Storage) DeleteWordleGame(ctx context.Context, id model.WordleGameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wordleGames, id)
	return nil
}
