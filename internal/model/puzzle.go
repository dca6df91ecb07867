package model

import (
	"slices"
	"time"
)

// PuzzleID uniquely identifies a puzzle instance
type PuzzleID string

// FoundWord is a word matched by a completed selection, with the cells that matched it
type FoundWord struct {
	Word  string     `json:"word"`
	Cells []Position `json:"cells"`
}

// Placement records where the generator committed a word
type Placement struct {
	Word      string    `json:"word"`
	Start     Position  `json:"start"`
	Direction Direction `json:"direction"`
}

// Cells returns the positions covered by the placement
func (p Placement) Cells() []Position {
	n := len([]rune(p.Word))
	cells := make([]Position, n)
	for i := 0; i < n; i++ {
		cells[i] = p.Start.Add(p.Direction, i)
	}
	return cells
}

// Puzzle is one playable word-search instance
type Puzzle struct {
	ID         PuzzleID    `json:"id"`
	CategoryID CategoryID  `json:"category_id"`
	Words      []string    `json:"words"`   // Display order, duplicates removed
	Grid       *Grid       `json:"grid"`    // Immutable until the next reset
	Found      []FoundWord `json:"found"`   // Grows by at most one per successful selection
	Dropped    []string    `json:"dropped"` // Listed words the generator could not place
	Round      int         `json:"round"`   // Incremented by each "play again"

	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Clone returns a deep copy of the puzzle
func (p *Puzzle) Clone() *Puzzle {
	c := *p
	c.Words = slices.Clone(p.Words)
	c.Dropped = slices.Clone(p.Dropped)
	if p.Grid != nil {
		c.Grid = p.Grid.Clone()
	}
	c.Found = make([]FoundWord, len(p.Found))
	for i, fw := range p.Found {
		c.Found[i] = FoundWord{Word: fw.Word, Cells: slices.Clone(fw.Cells)}
	}
	if p.CompletedAt != nil {
		t := *p.CompletedAt
		c.CompletedAt = &t
	}
	return &c
}

// IsComplete returns true once every listed word has been found
func (p *Puzzle) IsComplete() bool {
	return len(p.Words) > 0 && len(p.Found) == len(p.Words)
}

// IsFound returns true if word is already in the found set
func (p *Puzzle) IsFound(word string) bool {
	for _, fw := range p.Found {
		if fw.Word == word {
			return true
		}
	}
	return false
}

// Remaining returns the listed words not yet found, in display order
func (p *Puzzle) Remaining() []string {
	var remaining []string
	for _, w := range p.Words {
		if !p.IsFound(w) {
			remaining = append(remaining, w)
		}
	}
	return remaining
}

// FoundCells returns the set of cells covered by found words
func (p *Puzzle) FoundCells() map[Position]bool {
	cells := make(map[Position]bool)
	for _, fw := range p.Found {
		for _, c := range fw.Cells {
			cells[c] = true
		}
	}
	return cells
}
