package factory

import (
	"time"

	"github.com/mcoot/wordpuzzles/internal/dependencies/mocks"
	"github.com/mcoot/wordpuzzles/internal/model"
	"github.com/mcoot/wordpuzzles/internal/storage/memory"
)

// TestCategoryID is the category loaded by LoadTestCatalog
const TestCategoryID model.CategoryID = "pets"

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, Config{GenerationRounds: 1, DailySalt: "test"}, nil)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestCatalog loads a single 4x4 category with the words CAT and DOG
func (t *TestApp) LoadTestCatalog() error {
	return t.Catalog.LoadCategories([]model.Category{
		{ID: TestCategoryID, Name: "Pets", Emoji: "🐾", GridSize: 4, Words: []string{"cat", "dog"}},
	})
}

// QueueTestPuzzle makes the next puzzle started in the test category use id
// and the grid
//
//	CATA
//	DOGA
//	AAAA
//	AAAA
func (t *TestApp) QueueTestPuzzle(id model.PuzzleID) {
	t.MockRandom.QueueIntn(0, 0, 0) // CAT right from (0,0)
	t.MockRandom.QueueIntn(0, 1, 0) // DOG right from (1,0)
	t.MockRandom.QueueString(string(id))
}

// LoadTestWordList replaces the Wordle word list with a small fixed one
func (t *TestApp) LoadTestWordList() error {
	return t.WordList.LoadWords([]string{"pizza", "pasta", "monte", "treno", "verdi"})
}
