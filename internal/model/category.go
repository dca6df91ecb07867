package model

// CategoryID identifies a word-search category
type CategoryID string

// Category is a themed word list with the grid size its puzzles use
type Category struct {
	ID          CategoryID `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Emoji       string     `json:"emoji" yaml:"emoji"`
	Description string     `json:"description" yaml:"description"`
	GridSize    int        `json:"grid_size" yaml:"grid_size"`
	Words       []string   `json:"words" yaml:"words"`
}

// Grid size limits accepted by the catalog
const (
	MinGridSize = 4
	MaxGridSize = 20
)
