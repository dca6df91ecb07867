package selection

import (
	"math"

	"github.com/mcoot/wordpuzzles/internal/model"
)

// Geometry describes how the grid is rendered, in the same units as pointer coordinates
type Geometry struct {
	CellSize float64 `json:"cell_size"`
	Gap      float64 `json:"gap"`
	Padding  float64 `json:"padding"`
}

// DefaultGeometry is the layout the web page renders the grid at
func DefaultGeometry() Geometry {
	return Geometry{CellSize: 40, Gap: 4, Padding: 12}
}

// Extent returns the rendered width (and height) of an n x n grid
func (g Geometry) Extent(n int) float64 {
	if n <= 0 {
		return 2 * g.Padding
	}
	return 2*g.Padding + float64(n)*g.CellSize + float64(n-1)*g.Gap
}

// CellOrigin returns the top-left corner of a cell
func (g Geometry) CellOrigin(p model.Position) (x, y float64) {
	pitch := g.CellSize + g.Gap
	return g.Padding + float64(p.Col)*pitch, g.Padding + float64(p.Row)*pitch
}

// CellCenter returns the centre point of a cell
func (g Geometry) CellCenter(p model.Position) (x, y float64) {
	x, y = g.CellOrigin(p)
	return x + g.CellSize/2, y + g.CellSize/2
}

// CellAt maps a pointer position relative to the grid origin to the cell under it.
// Returns false when the position falls outside an n x n grid.
func CellAt(x, y float64, geo Geometry, n int) (model.Position, bool) {
	pitch := geo.CellSize + geo.Gap
	if pitch <= 0 || math.IsNaN(x) || math.IsNaN(y) {
		return model.Position{}, false
	}
	col := math.Floor((x - geo.Padding + geo.Gap/2) / pitch)
	row := math.Floor((y - geo.Padding + geo.Gap/2) / pitch)
	if row < 0 || row >= float64(n) || col < 0 || col >= float64(n) {
		return model.Position{}, false
	}
	return model.Position{Row: int(row), Col: int(col)}, true
}

// SnapLine returns the straight line from anchor towards current, snapped to one
// of the eight directions. The line is cut short where it would leave the grid.
func SnapLine(anchor, current model.Position, n int) []model.Position {
	dr := current.Row - anchor.Row
	dc := current.Col - anchor.Col
	absDr, absDc := abs(dr), abs(dc)

	var step model.Direction
	var length int
	switch {
	case absDr == 0 && absDc == 0:
		length = 0
	case 2*absDr >= 3*absDc: // absDr >= 1.5 * absDc
		step = model.Direction{DRow: sign(dr)}
		length = absDr
	case 2*absDc >= 3*absDr:
		step = model.Direction{DCol: sign(dc)}
		length = absDc
	default:
		step = model.Direction{DRow: sign(dr), DCol: sign(dc)}
		length = max(absDr, absDc)
	}

	line := []model.Position{anchor}
	for i := 1; i <= length; i++ {
		next := anchor.Add(step, i)
		if next.Row < 0 || next.Row >= n || next.Col < 0 || next.Col >= n {
			break
		}
		line = append(line, next)
	}
	return line
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
