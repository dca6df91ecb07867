package selection

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordpuzzles/internal/model"
)

type GeometrySuite struct {
	suite.Suite
	geo Geometry
}

func TestGeometrySuite(t *testing.T) {
	suite.Run(t, new(GeometrySuite))
}

func (s *GeometrySuite) SetupTest() {
	s.geo = Geometry{CellSize: 40, Gap: 4, Padding: 12}
}

func pos(row, col int) model.Position {
	return model.Position{Row: row, Col: col}
}

// CellAt tests

func (s *GeometrySuite) TestCellAtCellCenters() {
	for row := 0; row < 6; row++ {
		for col := 0; col < 6; col++ {
			x := 12 + float64(col)*44 + 20
			y := 12 + float64(row)*44 + 20
			cell, ok := CellAt(x, y, s.geo, 6)
			s.True(ok)
			s.Equal(pos(row, col), cell)
		}
	}
}

func (s *GeometrySuite) TestCellAtSplitsGapBetweenNeighbours() {
	// Left edge of the first cell's half gap
	cell, ok := CellAt(10, 10, s.geo, 6)
	s.True(ok)
	s.Equal(pos(0, 0), cell)

	// Just before the midpoint of the gap between col 0 and col 1
	cell, _ = CellAt(12+40+1.9, 30, s.geo, 6)
	s.Equal(0, cell.Col)

	// At the midpoint it belongs to col 1
	cell, _ = CellAt(12+40+2, 30, s.geo, 6)
	s.Equal(1, cell.Col)
}

func (s *GeometrySuite) TestCellAtOutsideGrid() {
	_, ok := CellAt(9.9, 30, s.geo, 6)
	s.False(ok)

	_, ok = CellAt(30, -5, s.geo, 6)
	s.False(ok)

	_, ok = CellAt(12+6*44, 30, s.geo, 6)
	s.False(ok)
}

func (s *GeometrySuite) TestCellAtDegenerateGeometry() {
	_, ok := CellAt(10, 10, Geometry{}, 6)
	s.False(ok)
}

// SnapLine tests

func (s *GeometrySuite) TestSnapHorizontal() {
	s.Equal(
		[]model.Position{pos(2, 2), pos(2, 3), pos(2, 4), pos(2, 5)},
		SnapLine(pos(2, 2), pos(2, 5), 10),
	)
}

func (s *GeometrySuite) TestSnapVertical() {
	s.Equal(
		[]model.Position{pos(2, 2), pos(3, 2), pos(4, 2), pos(5, 2)},
		SnapLine(pos(2, 2), pos(5, 2), 10),
	)
}

func (s *GeometrySuite) TestSnapDiagonal() {
	s.Equal(
		[]model.Position{pos(2, 2), pos(3, 3), pos(4, 4), pos(5, 5)},
		SnapLine(pos(2, 2), pos(5, 5), 10),
	)
}

func (s *GeometrySuite) TestSnapBackwardsDirections() {
	s.Equal([]model.Position{pos(2, 2), pos(2, 1), pos(2, 0)}, SnapLine(pos(2, 2), pos(2, 0), 10))
	s.Equal([]model.Position{pos(2, 2), pos(1, 2), pos(0, 2)}, SnapLine(pos(2, 2), pos(0, 2), 10))
	s.Equal([]model.Position{pos(2, 2), pos(1, 1), pos(0, 0)}, SnapLine(pos(2, 2), pos(0, 0), 10))
	s.Equal([]model.Position{pos(2, 2), pos(3, 1), pos(4, 0)}, SnapLine(pos(2, 2), pos(4, 0), 10))
}

func (s *GeometrySuite) TestSnapSameCell() {
	s.Equal([]model.Position{pos(3, 3)}, SnapLine(pos(3, 3), pos(3, 3), 10))
}

func (s *GeometrySuite) TestSnapDominanceThreshold() {
	// 3 rows vs 2 cols: exactly 1.5x, vertical wins
	s.Equal([]model.Position{pos(0, 0), pos(1, 0), pos(2, 0), pos(3, 0)}, SnapLine(pos(0, 0), pos(3, 2), 10))
	// 2 rows vs 3 cols: horizontal
	s.Equal([]model.Position{pos(0, 0), pos(0, 1), pos(0, 2), pos(0, 3)}, SnapLine(pos(0, 0), pos(2, 3), 10))
	// 4 rows vs 3 cols: diagonal of the longer length
	s.Equal(
		[]model.Position{pos(0, 0), pos(1, 1), pos(2, 2), pos(3, 3), pos(4, 4)},
		SnapLine(pos(0, 0), pos(4, 3), 10),
	)
}

func (s *GeometrySuite) TestSnapTruncatesAtBoundary() {
	s.Equal([]model.Position{pos(0, 0)}, SnapLine(pos(0, 0), pos(-3, -3), 6))
	s.Equal([]model.Position{pos(0, 0)}, SnapLine(pos(0, 0), pos(0, -4), 6))

	// Diagonal longer than the grid allows keeps its in-bounds prefix
	s.Equal(
		[]model.Position{pos(2, 0), pos(3, 1), pos(4, 2), pos(5, 3)},
		SnapLine(pos(2, 0), pos(5, 4), 6),
	)
}

func (s *GeometrySuite) TestSnapIsRecomputedFromAnchor() {
	first := SnapLine(pos(0, 0), pos(0, 3), 6)
	second := SnapLine(pos(0, 0), pos(3, 3), 6)

	s.Equal([]model.Position{pos(0, 0), pos(0, 1), pos(0, 2), pos(0, 3)}, first)
	s.Equal([]model.Position{pos(0, 0), pos(1, 1), pos(2, 2), pos(3, 3)}, second)
}

func (s *GeometrySuite) TestCellCenterRoundTrips() {
	geo := DefaultGeometry()
	for _, p := range []model.Position{pos(0, 0), pos(3, 7), pos(9, 9)} {
		x, y := geo.CellCenter(p)
		got, ok := CellAt(x, y, geo, 10)
		s.Require().True(ok)
		s.Equal(p, got)
	}
	s.InDelta(12+10*40+9*4+12, geo.Extent(10), 0.001)
}
