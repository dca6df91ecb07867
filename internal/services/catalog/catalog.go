package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/mcoot/wordpuzzles/internal/model"
	"github.com/mcoot/wordpuzzles/internal/storage"
)

//go:embed categories.yaml
var defaultCategories []byte

// file is the on-disk catalog format
type file struct {
	Categories []model.Category `yaml:"categories"`
}

// Service holds the read-only category catalog shared by all puzzles
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu         sync.RWMutex
	categories []model.Category
	byID       map[model.CategoryID]int
	loaded     bool
}

// New creates a new catalog Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// LoadDefaults loads the embedded category catalog and saves it to storage
func (s *Service) LoadDefaults(ctx context.Context) error {
	return s.loadYAML(ctx, defaultCategories)
}

// LoadFromFile loads a YAML catalog from path and saves it to storage
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return s.loadYAML(ctx, data)
}

// LoadFromStorage loads the catalog previously saved to storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	categories, err := s.storage.GetCategories(ctx)
	if err != nil {
		return err
	}
	return s.LoadCategories(categories)
}

func (s *Service) loadYAML(ctx context.Context, data []byte) error {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse categories: %w", err)
	}
	if err := s.LoadCategories(f.Categories); err != nil {
		return err
	}

	// Save to storage for future use
	return s.storage.SaveCategories(ctx, s.List())
}

// LoadCategories validates and installs categories directly
func (s *Service) LoadCategories(categories []model.Category) error {
	if len(categories) == 0 {
		return fmt.Errorf("%w: catalog has no categories", model.ErrInvalidCategory)
	}

	normalized := make([]model.Category, 0, len(categories))
	byID := make(map[model.CategoryID]int, len(categories))
	for _, c := range categories {
		nc, err := Normalize(c)
		if err != nil {
			return err
		}
		if _, dup := byID[nc.ID]; dup {
			return fmt.Errorf("%w: duplicate id %q", model.ErrInvalidCategory, nc.ID)
		}
		byID[nc.ID] = len(normalized)
		normalized = append(normalized, nc)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = normalized
	s.byID = byID
	s.loaded = true

	s.logger.Info("category catalog loaded", slog.Int("categories", len(normalized)))
	return nil
}

// Normalize validates a category and returns it with uppercased, deduplicated words
func Normalize(c model.Category) (model.Category, error) {
	if strings.TrimSpace(string(c.ID)) == "" {
		return c, fmt.Errorf("%w: missing id", model.ErrInvalidCategory)
	}
	if c.GridSize < model.MinGridSize || c.GridSize > model.MaxGridSize {
		return c, fmt.Errorf("%w: category %q has size %d, want %d..%d",
			model.ErrInvalidGridSize, c.ID, c.GridSize, model.MinGridSize, model.MaxGridSize)
	}

	words := make([]string, 0, len(c.Words))
	seen := make(map[string]bool, len(c.Words))
	for _, w := range c.Words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" || seen[w] {
			continue
		}
		for _, r := range w {
			if !unicode.IsLetter(r) {
				return c, fmt.Errorf("%w: %q in category %q", model.ErrInvalidWord, w, c.ID)
			}
		}
		if len([]rune(w)) > c.GridSize {
			return c, fmt.Errorf("%w: %q in category %q", model.ErrWordTooLong, w, c.ID)
		}
		seen[w] = true
		words = append(words, w)
	}
	if len(words) == 0 {
		return c, fmt.Errorf("%w: category %q has no words", model.ErrInvalidCategory, c.ID)
	}

	c.Words = words
	return c, nil
}

// List returns all categories in catalog order
func (s *Service) List() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Category, len(s.categories))
	for i, c := range s.categories {
		c.Words = append([]string(nil), c.Words...)
		out[i] = c
	}
	return out
}

// Get returns a category by ID
func (s *Service) Get(id model.CategoryID) (*model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, model.ErrCatalogNotLoaded
	}
	idx, ok := s.byID[id]
	if !ok {
		return nil, model.ErrCategoryNotFound
	}
	c := s.categories[idx]
	c.Words = append([]string(nil), c.Words...)
	return &c, nil
}

// IsLoaded returns whether a catalog has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// ServiceInterface is the catalog as seen by its consumers
type ServiceInterface interface {
	List() []model.Category
	Get(id model.CategoryID) (*model.Category, error)
	IsLoaded() bool
}

var _ ServiceInterface = (*Service)(nil)
