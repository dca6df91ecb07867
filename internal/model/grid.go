package model

import (
	"encoding/json"
	"fmt"
)

// Position identifies a cell on the grid
type Position struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// Add returns the position moved by n steps along d
func (p Position) Add(d Direction, n int) Position {
	return Position{Row: p.Row + d.DRow*n, Col: p.Col + d.DCol*n}
}

// Direction is a unit step between neighbouring cells
type Direction struct {
	DRow int `json:"d_row"`
	DCol int `json:"d_col"`
}

// The eight canonical directions, in the order the generator draws from
var (
	DirRight     = Direction{DRow: 0, DCol: 1}
	DirDown      = Direction{DRow: 1, DCol: 0}
	DirDownRight = Direction{DRow: 1, DCol: 1}
	DirUpRight   = Direction{DRow: -1, DCol: 1}
	DirLeft      = Direction{DRow: 0, DCol: -1}
	DirUp        = Direction{DRow: -1, DCol: 0}
	DirUpLeft    = Direction{DRow: -1, DCol: -1}
	DirDownLeft  = Direction{DRow: 1, DCol: -1}
)

// Directions returns all eight directions
func Directions() []Direction {
	return []Direction{
		DirRight, DirDown, DirDownRight, DirUpRight,
		DirLeft, DirUp, DirUpLeft, DirDownLeft,
	}
}

// Grid is the N x N letter matrix of a word-search puzzle
type Grid struct {
	Size  int      // Grid dimension (e.g., 10 for 10x10)
	Cells [][]rune // Row-major: Cells[row][col], 0 means empty
}

// gridJSON is the wire form of a Grid: one string per row
type gridJSON struct {
	Size int      `json:"size"`
	Rows []string `json:"rows"`
}

// NewGrid creates an empty grid of the given size
func NewGrid(size int) *Grid {
	cells := make([][]rune, size)
	for i := range cells {
		cells[i] = make([]rune, size)
	}
	return &Grid{
		Size:  size,
		Cells: cells,
	}
}

// GridFromRows builds a grid from equal-length rows of letters
func GridFromRows(rows ...string) *Grid {
	g := NewGrid(len(rows))
	for row, letters := range rows {
		for col, letter := range []rune(letters) {
			if col < g.Size {
				g.Cells[row][col] = letter
			}
		}
	}
	return g
}

// Get returns the letter at the given position, or 0 if empty or out of bounds
func (g *Grid) Get(pos Position) rune {
	if !g.IsValidPosition(pos) {
		return 0
	}
	return g.Cells[pos.Row][pos.Col]
}

// Set places a letter at the given position
func (g *Grid) Set(pos Position, letter rune) {
	if g.IsValidPosition(pos) {
		g.Cells[pos.Row][pos.Col] = letter
	}
}

// IsEmpty returns true if the cell at the given position is empty
func (g *Grid) IsEmpty(pos Position) bool {
	return g.Get(pos) == 0
}

// IsValidPosition returns true if the position is within bounds
func (g *Grid) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.Size && pos.Col >= 0 && pos.Col < g.Size
}

// IsFull returns true if all cells are filled
func (g *Grid) IsFull() bool {
	return g.EmptyCount() == 0
}

// EmptyCount returns the number of empty cells
func (g *Grid) EmptyCount() int {
	count := 0
	for row := 0; row < g.Size; row++ {
		for col := 0; col < g.Size; col++ {
			if g.Cells[row][col] == 0 {
				count++
			}
		}
	}
	return count
}

// Letters returns the letters under the given cells, in order
func (g *Grid) Letters(cells []Position) string {
	out := make([]rune, 0, len(cells))
	for _, c := range cells {
		out = append(out, g.Get(c))
	}
	return string(out)
}

// ReadLine reads length letters starting at start along d.
// Returns false if the run leaves the grid.
func (g *Grid) ReadLine(start Position, d Direction, length int) (string, bool) {
	out := make([]rune, 0, length)
	for i := 0; i < length; i++ {
		pos := start.Add(d, i)
		if !g.IsValidPosition(pos) {
			return "", false
		}
		out = append(out, g.Cells[pos.Row][pos.Col])
	}
	return string(out), true
}

// Rows returns each row as a string
func (g *Grid) Rows() []string {
	rows := make([]string, g.Size)
	for row := 0; row < g.Size; row++ {
		rows[row] = string(g.Cells[row])
	}
	return rows
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.Size)
	for row := range g.Cells {
		copy(c.Cells[row], g.Cells[row])
	}
	return c
}

// MarshalJSON encodes the grid as a list of row strings
func (g *Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(gridJSON{Size: g.Size, Rows: g.Rows()})
}

// UnmarshalJSON decodes a grid written by MarshalJSON
func (g *Grid) UnmarshalJSON(data []byte) error {
	var raw gridJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Rows) != raw.Size {
		return fmt.Errorf("grid has %d rows, want %d", len(raw.Rows), raw.Size)
	}
	*g = *GridFromRows(raw.Rows...)
	return nil
}
