package factory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordpuzzles/internal/model"
	"github.com/mcoot/wordpuzzles/internal/services/puzzle"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
	s.Require().NoError(s.app.LoadTestCatalog())
	s.Require().NoError(s.app.LoadTestWordList())
}

func (s *IntegrationSuite) pointer(id model.PuzzleID, t puzzle.PointerEventType, row, col int) *puzzle.PointerResult {
	x, y := s.app.Geometry.CellCenter(model.Position{Row: row, Col: col})
	result, err := s.app.PuzzleController.Pointer(s.ctx, id, puzzle.PointerEvent{
		Type: t, X: x, Y: y, Geometry: s.app.Geometry,
	})
	s.Require().NoError(err)
	return result
}

func (s *IntegrationSuite) drag(id model.PuzzleID, row, fromCol, toCol int) *puzzle.PointerResult {
	s.pointer(id, puzzle.PointerDown, row, fromCol)
	s.pointer(id, puzzle.PointerMove, row, toCol)
	return s.pointer(id, puzzle.PointerUp, row, toCol)
}

// Test: a puzzle is started, solved and completes after the delay
func (s *IntegrationSuite) TestSolvePuzzle() {
	s.app.QueueTestPuzzle("PUZZLE1")

	p, err := s.app.PuzzleController.Start(s.ctx, TestCategoryID)
	s.Require().NoError(err)
	s.Equal([]string{"CATA", "DOGA", "AAAA", "AAAA"}, p.Grid.Rows())
	s.Equal([]string{"CAT", "DOG"}, p.Words)

	s.Equal("CAT", s.drag("PUZZLE1", 0, 0, 2).Matched.Word)
	last := s.drag("PUZZLE1", 1, 0, 2)
	s.Equal("DOG", last.Matched.Word)
	s.True(last.Complete)

	// Not completed until the delay elapses
	stored, err := s.app.Storage.GetPuzzle(s.ctx, "PUZZLE1")
	s.Require().NoError(err)
	s.Nil(stored.CompletedAt)
	s.Len(stored.Found, 2)

	s.app.MockClock.Advance(500 * time.Millisecond)

	stored, err = s.app.Storage.GetPuzzle(s.ctx, "PUZZLE1")
	s.Require().NoError(err)
	s.Require().NotNil(stored.CompletedAt)
	s.True(stored.IsComplete())
}

// Test: daily Wordle game played to a win
func (s *IntegrationSuite) TestWordleWin() {
	s.app.MockRandom.QueueString("game1")

	game, err := s.app.WordleController.NewGame(s.ctx)
	s.Require().NoError(err)
	s.Equal("2024-01-01", game.DateKey)

	stored, err := s.app.Storage.GetWordleGame(s.ctx, game.ID)
	s.Require().NoError(err)

	game, err = s.app.WordleController.Guess(s.ctx, game.ID, stored.Target, nil)
	s.Require().NoError(err)
	s.Equal(model.WordleStatusWon, game.Status)

	_, err = s.app.WordleController.Guess(s.ctx, game.ID, stored.Target, nil)
	s.ErrorIs(err, model.ErrWordleGameFinished)
}

func TestNewRejectsUnknownStorageType(t *testing.T) {
	_, err := New(context.Background(), Config{StorageType: "cassandra"})
	if err == nil {
		t.Fatal("expected an error for an unknown storage type")
	}
}

func TestNewRequiresBackendSettings(t *testing.T) {
	for _, storageType := range []string{StorageTypeRedis, StorageTypeSQLite} {
		if _, err := New(context.Background(), Config{StorageType: storageType}); err == nil {
			t.Fatalf("expected an error for %s without settings", storageType)
		}
	}
}

func TestNewMemoryLoadsDefaults(t *testing.T) {
	app, err := New(context.Background(), Config{})
	if err != nil {
		t.Fatal(err)
	}
	if !app.Catalog.IsLoaded() || len(app.Catalog.List()) == 0 {
		t.Fatal("expected the embedded catalog to be loaded")
	}
	if app.WordList.Len() == 0 {
		t.Fatal("expected the embedded word list to be loaded")
	}
}

func TestNewSQLiteRestoresCatalog(t *testing.T) {
	dir := t.TempDir()
	categories := filepath.Join(dir, "categories.yaml")
	err := os.WriteFile(categories, []byte(`categories:
  - id: mare
    name: Mare
    grid_size: 6
    words: [onda, sabbia, sole]
`), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	dbPath := filepath.Join(dir, "db", "puzzles.db")

	first, err := New(context.Background(), Config{
		StorageType:    StorageTypeSQLite,
		SQLitePath:     dbPath,
		CategoriesPath: categories,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := first.Close(); err != nil {
		t.Fatal(err)
	}

	// Without a categories file the persisted catalog is reused
	second, err := New(context.Background(), Config{StorageType: StorageTypeSQLite, SQLitePath: dbPath})
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()

	list := second.Catalog.List()
	if len(list) != 1 || list[0].ID != "mare" {
		t.Fatalf("expected the stored catalog, got %+v", list)
	}
}
