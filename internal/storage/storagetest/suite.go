// Package storagetest holds behaviour every storage backend must share.
package storagetest

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordpuzzles/internal/model"
	"github.com/mcoot/wordpuzzles/internal/storage"
)

// Suite runs the common storage checks. Embed it in a backend suite and set
// Storage in SetupTest.
type Suite struct {
	suite.Suite
	Storage storage.Storage
	Ctx     context.Context
}

func samplePuzzle(id model.PuzzleID) *model.Puzzle {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &model.Puzzle{
		ID:         id,
		CategoryID: "animali",
		Words:      []string{"CAT", "DOG"},
		Grid:       model.GridFromRows("CAT", "DOG", "XYZ"),
		Found: []model.FoundWord{
			{Word: "CAT", Cells: []model.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}},
		},
		Round:     1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Puzzle tests

func (s *Suite) TestSaveAndGetPuzzle() {
	puzzle := samplePuzzle("puzzle-1")
	s.Require().NoError(s.Storage.SavePuzzle(s.Ctx, puzzle))

	retrieved, err := s.Storage.GetPuzzle(s.Ctx, "puzzle-1")
	s.Require().NoError(err)
	s.Equal(puzzle.ID, retrieved.ID)
	s.Equal(puzzle.CategoryID, retrieved.CategoryID)
	s.Equal(puzzle.Words, retrieved.Words)
	s.Equal(puzzle.Grid.Rows(), retrieved.Grid.Rows())
	s.Equal(puzzle.Found, retrieved.Found)
	s.Equal(1, retrieved.Round)
	s.True(puzzle.CreatedAt.Equal(retrieved.CreatedAt))
	s.Nil(retrieved.CompletedAt)
}

func (s *Suite) TestSavePuzzleOverwrites() {
	puzzle := samplePuzzle("puzzle-1")
	s.Require().NoError(s.Storage.SavePuzzle(s.Ctx, puzzle))

	completed := time.Date(2026, 3, 1, 12, 5, 0, 0, time.UTC)
	puzzle.Found = append(puzzle.Found, model.FoundWord{Word: "DOG"})
	puzzle.CompletedAt = &completed
	s.Require().NoError(s.Storage.SavePuzzle(s.Ctx, puzzle))

	retrieved, err := s.Storage.GetPuzzle(s.Ctx, "puzzle-1")
	s.Require().NoError(err)
	s.Len(retrieved.Found, 2)
	s.Require().NotNil(retrieved.CompletedAt)
	s.True(completed.Equal(*retrieved.CompletedAt))
}

func (s *Suite) TestGetPuzzleNotFound() {
	_, err := s.Storage.GetPuzzle(s.Ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPuzzleNotFound)
}

func (s *Suite) TestDeletePuzzle() {
	s.Require().NoError(s.Storage.SavePuzzle(s.Ctx, samplePuzzle("puzzle-1")))

	s.Require().NoError(s.Storage.DeletePuzzle(s.Ctx, "puzzle-1"))

	_, err := s.Storage.GetPuzzle(s.Ctx, "puzzle-1")
	s.ErrorIs(err, model.ErrPuzzleNotFound)
}

func (s *Suite) TestDeleteMissingPuzzleIsNoError() {
	s.NoError(s.Storage.DeletePuzzle(s.Ctx, "nonexistent"))
}

// Category tests

func (s *Suite) TestGetCategoriesBeforeSave() {
	_, err := s.Storage.GetCategories(s.Ctx)
	s.ErrorIs(err, model.ErrCatalogNotLoaded)
}

func (s *Suite) TestSaveAndGetCategories() {
	categories := []model.Category{
		{ID: "animali", Name: "Animali", Emoji: "🐾", GridSize: 8, Words: []string{"GATTO", "CANE"}},
		{ID: "frutta", Name: "Frutta", Emoji: "🍎", GridSize: 8, Words: []string{"MELA"}},
	}
	s.Require().NoError(s.Storage.SaveCategories(s.Ctx, categories))

	retrieved, err := s.Storage.GetCategories(s.Ctx)
	s.Require().NoError(err)
	s.Equal(categories, retrieved)
}

func (s *Suite) TestSaveCategoriesReplaces() {
	s.Require().NoError(s.Storage.SaveCategories(s.Ctx, []model.Category{{ID: "a", Words: []string{"X"}}}))
	s.Require().NoError(s.Storage.SaveCategories(s.Ctx, []model.Category{{ID: "b", Words: []string{"Y"}}}))

	retrieved, err := s.Storage.GetCategories(s.Ctx)
	s.Require().NoError(err)
	s.Require().Len(retrieved, 1)
	s.Equal(model.CategoryID("b"), retrieved[0].ID)
}

// Wordle tests

func (s *Suite) TestSaveAndGetWordleGame() {
	game := &model.WordleGame{
		ID:      "wordle-1",
		Target:  "PIZZA",
		DateKey: "2026-03-01",
		Guesses: []model.WordleGuess{
			{Word: "PASTA", States: []model.LetterState{
				model.LetterCorrect, model.LetterPresent, model.LetterAbsent, model.LetterAbsent, model.LetterCorrect,
			}},
		},
		Status: model.WordleStatusPlaying,
	}
	s.Require().NoError(s.Storage.SaveWordleGame(s.Ctx, game))

	retrieved, err := s.Storage.GetWordleGame(s.Ctx, "wordle-1")
	s.Require().NoError(err)
	s.Equal(game.Target, retrieved.Target)
	s.Equal(game.Guesses, retrieved.Guesses)
	s.Equal(model.WordleStatusPlaying, retrieved.Status)
}

func (s *Suite) TestGetWordleGameNotFound() {
	_, err := s.Storage.GetWordleGame(s.Ctx, "nonexistent")
	s.ErrorIs(err, model.ErrWordleGameNotFound)
}

func (s *Suite) TestDeleteWordleGame() {
	s.Require().NoError(s.Storage.SaveWordleGame(s.Ctx, &model.WordleGame{ID: "wordle-1", Target: "PIZZA"}))
	s.Require().NoError(s.Storage.DeleteWordleGame(s.Ctx, "wordle-1"))

	_, err := s.Storage.GetWordleGame(s.Ctx, "wordle-1")
	s.ErrorIs(err, model.ErrWordleGameNotFound)
}
