package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordpuzzles/internal/model"
	"github.com/mcoot/wordpuzzles/internal/storage/storagetest"
)

type StorageSuite struct {
	storagetest.Suite
	storage *Storage
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.Storage = s.storage
	s.Ctx = context.Background()
}

func (s *StorageSuite) TestSavedPuzzleIsCopied() {
	puzzle := &model.Puzzle{ID: "puzzle-1", Words: []string{"CAT"}, Grid: model.GridFromRows("CAT", "XXX", "XXX")}
	s.Require().NoError(s.storage.SavePuzzle(s.Ctx, puzzle))

	puzzle.Found = append(puzzle.Found, model.FoundWord{Word: "CAT"})
	puzzle.Grid.Set(model.Position{Row: 0, Col: 0}, 'Z')

	retrieved, err := s.storage.GetPuzzle(s.Ctx, "puzzle-1")
	s.Require().NoError(err)
	s.Empty(retrieved.Found)
	s.Equal("CAT", retrieved.Grid.Rows()[0])
}

func (s *StorageSuite) TestRetrievedPuzzleIsCopied() {
	s.Require().NoError(s.storage.SavePuzzle(s.Ctx, &model.Puzzle{ID: "puzzle-1", Words: []string{"CAT"}}))

	first, _ := s.storage.GetPuzzle(s.Ctx, "puzzle-1")
	first.Words[0] = "DOG"

	second, _ := s.storage.GetPuzzle(s.Ctx, "puzzle-1")
	s.Equal([]string{"CAT"}, second.Words)
}
