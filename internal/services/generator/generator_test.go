package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordpuzzles/internal/dependencies/mocks"
	"github.com/mcoot/wordpuzzles/internal/dependencies/random"
	"github.com/mcoot/wordpuzzles/internal/model"
	"github.com/mcoot/wordpuzzles/internal/testutil"
)

// Indices into model.Directions()
const (
	dirRight = 0
	dirDown  = 1
	dirLeft  = 4
)

type GeneratorSuite struct {
	suite.Suite
	random *mocks.MockRandom
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorSuite))
}

func (s *GeneratorSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
}

// queueAttempt queues one placement attempt: direction, row, col
func (s *GeneratorSuite) queueAttempt(dir, row, col int) {
	s.random.QueueIntn(dir, row, col)
}

func (s *GeneratorSuite) TestPlacesWordAtChosenPosition() {
	s.queueAttempt(dirRight, 0, 0)

	result := Generate([]string{"CAT"}, 3, s.random)

	row, ok := result.Grid.ReadLine(model.Position{Row: 0, Col: 0}, model.DirRight, 3)
	s.True(ok)
	s.Equal("CAT", row)
	s.Empty(result.Dropped)
	s.Require().Len(result.Placements, 1)
	s.Equal(model.DirRight, result.Placements[0].Direction)
}

func (s *GeneratorSuite) TestFillsRemainingCellsFromAlphabet() {
	s.queueAttempt(dirRight, 0, 0)

	result := Generate([]string{"CAT"}, 3, s.random)

	s.True(result.Grid.IsFull())
	// Unqueued draws return 0, the first alphabet letter
	s.Equal([]string{"CAT", "AAA", "AAA"}, result.Grid.Rows())
}

func (s *GeneratorSuite) TestSharesMatchingLetters() {
	s.queueAttempt(dirRight, 0, 0)
	s.queueAttempt(dirDown, 0, 0)

	result := Generate([]string{"ABC", "AXY"}, 3, s.random)

	s.Empty(result.Dropped)
	s.Equal("ABC", result.Grid.Rows()[0])
	col, _ := result.Grid.ReadLine(model.Position{Row: 0, Col: 0}, model.DirDown, 3)
	s.Equal("AXY", col)
}

func (s *GeneratorSuite) TestRejectsConflictingPlacement() {
	s.queueAttempt(dirRight, 0, 0) // ABC on row 0
	s.queueAttempt(dirRight, 0, 0) // XYZ conflicts with A
	s.queueAttempt(dirDown, 0, 1)  // XYZ conflicts with B
	s.queueAttempt(dirRight, 1, 0) // XYZ fits on row 1

	result := Generate([]string{"ABC", "XYZ"}, 3, s.random)

	s.Empty(result.Dropped)
	s.Equal("ABC", result.Grid.Rows()[0])
	s.Equal("XYZ", result.Grid.Rows()[1])
}

func (s *GeneratorSuite) TestRejectsOutOfBoundsPlacement() {
	s.queueAttempt(dirLeft, 0, 0) // would run off the left edge
	s.queueAttempt(dirLeft, 0, 2)

	result := Generate([]string{"CAT"}, 3, s.random)

	s.Require().Len(result.Placements, 1)
	s.Equal(model.Position{Row: 0, Col: 2}, result.Placements[0].Start)
	s.Equal("TAC", result.Grid.Rows()[0])
}

func (s *GeneratorSuite) TestLongestWordsPlacedFirst() {
	s.queueAttempt(dirRight, 0, 0)
	s.queueAttempt(dirRight, 1, 0)
	s.queueAttempt(dirRight, 2, 0)

	result := Generate([]string{"AB", "CDEF", "GH"}, 4, s.random)

	s.Require().Len(result.Placements, 3)
	s.Equal("CDEF", result.Placements[0].Word)
	// Ties keep list order
	s.Equal("AB", result.Placements[1].Word)
	s.Equal("GH", result.Placements[2].Word)
}

func (s *GeneratorSuite) TestDropsWordThatCannotFit() {
	result := Generate([]string{"TOOLONG"}, 4, s.random)

	s.Equal([]string{"TOOLONG"}, result.Dropped)
	s.Empty(result.Placements)
	s.True(result.Grid.IsFull())
}

func (s *GeneratorSuite) TestDropsWordAfterAttemptBudget() {
	for i := 0; i < MaxAttempts; i++ {
		s.queueAttempt(dirLeft, 0, 0)
	}
	s.queueAttempt(dirRight, 0, 0) // never reached for this word

	result := Generate([]string{"CAT"}, 3, s.random)

	s.Equal([]string{"CAT"}, result.Dropped)
}

func (s *GeneratorSuite) TestSeededRunsAreFullAndConsistent() {
	words := []string{"GATTO", "CANE", "CAVALLO", "LEONE", "TIGRE", "ORSO", "LUPO", "VOLPE"}
	for seed := uint64(0); seed < 50; seed++ {
		result := Generate(words, 10, random.NewSeeded(seed))

		s.True(result.Grid.IsFull(), "seed %d", seed)
		covered := make(map[model.Position]bool)
		for _, p := range result.Placements {
			for _, c := range p.Cells() {
				covered[c] = true
			}
		}
		for row := 0; row < 10; row++ {
			for col := 0; col < 10; col++ {
				pos := model.Position{Row: row, Col: col}
				if !covered[pos] {
					s.True(strings.ContainsRune(Alphabet, result.Grid.Get(pos)), "seed %d at %v", seed, pos)
				}
			}
		}
		for _, p := range result.Placements {
			got, ok := result.Grid.ReadLine(p.Start, p.Direction, len(p.Word))
			s.True(ok)
			s.Equal(p.Word, got, "seed %d", seed)
		}
		s.Equal(len(words), len(result.Placements)+len(result.Dropped))
	}
}

func (s *GeneratorSuite) TestSameSeedSameGrid() {
	words := []string{"ROMA", "MILANO", "TORINO"}
	a := Generate(words, 8, random.NewSeeded(42))
	b := Generate(words, 8, random.NewSeeded(42))
	s.Equal(a.Grid.Rows(), b.Grid.Rows())
}

func (s *GeneratorSuite) TestDoesNotMutateInput() {
	words := []string{"AB", "CDEF"}
	Generate(words, 4, random.NewSeeded(1))
	s.Equal([]string{"AB", "CDEF"}, words)
}

type ServiceSuite struct {
	suite.Suite
	random *mocks.MockRandom
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
}

func (s *ServiceSuite) TestRetriesWhileWordsDropped() {
	// Round 1: every attempt runs off the grid, then 9 fill draws
	for i := 0; i < MaxAttempts; i++ {
		s.random.QueueIntn(dirLeft, 0, 0)
	}
	s.random.QueueIntn(0, 0, 0, 0, 0, 0, 0, 0, 0)
	// Round 2: placed on the first attempt
	s.random.QueueIntn(dirRight, 0, 0)

	service := New(s.random, 2, testutil.NopLogger())
	result := service.Generate([]string{"CAT"}, 3)

	s.Empty(result.Dropped)
	s.Equal("CAT", result.Grid.Rows()[0])
}

func (s *ServiceSuite) TestAcceptsDroppedWordsAfterLastRound() {
	service := New(random.NewSeeded(7), 3, testutil.NopLogger())
	result := service.Generate([]string{"CAT", "ELEPHANT"}, 4)

	s.Equal([]string{"ELEPHANT"}, result.Dropped)
	s.True(result.Grid.IsFull())
}

func (s *ServiceSuite) TestZeroRoundsStillGenerates() {
	service := New(random.NewSeeded(7), 0, testutil.NopLogger())
	result := service.Generate([]string{"CAT"}, 5)
	s.True(result.Grid.IsFull())
}
