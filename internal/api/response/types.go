package response

import (
	"time"

	"github.com/mcoot/wordpuzzles/internal/dependencies/feedback"
	"github.com/mcoot/wordpuzzles/internal/model"
	"github.com/mcoot/wordpuzzles/internal/services/puzzle"
)

// Category represents a category in list responses
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji,omitempty"`
	Description string `json:"description,omitempty"`
	GridSize    int    `json:"grid_size"`
	WordCount   int    `json:"word_count"`
}

// CategoryFromModel converts a model.Category
func CategoryFromModel(c model.Category) Category {
	return Category{
		ID:          string(c.ID),
		Name:        c.Name,
		Emoji:       c.Emoji,
		Description: c.Description,
		GridSize:    c.GridSize,
		WordCount:   len(c.Words),
	}
}

// CategoryDetail includes the category's word list
type CategoryDetail struct {
	Category
	Words []string `json:"words"`
}

// CategoryDetailFromModel converts a model.Category with its words
func CategoryDetailFromModel(c model.Category) CategoryDetail {
	return CategoryDetail{
		Category: CategoryFromModel(c),
		Words:    append([]string(nil), c.Words...),
	}
}

// CategoryList is the response for listing categories
type CategoryList struct {
	Categories []Category `json:"categories"`
}

// CategoryListFromModel converts a slice of categories
func CategoryListFromModel(categories []model.Category) CategoryList {
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryFromModel(c))
	}
	return CategoryList{Categories: out}
}

// Cell is a grid coordinate
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CellsFromModel converts positions
func CellsFromModel(positions []model.Position) []Cell {
	out := make([]Cell, 0, len(positions))
	for _, p := range positions {
		out = append(out, Cell{Row: p.Row, Col: p.Col})
	}
	return out
}

// FoundWord is a located target word
type FoundWord struct {
	Word  string `json:"word"`
	Cells []Cell `json:"cells"`
}

// FoundWordFromModel converts a model.FoundWord
func FoundWordFromModel(f model.FoundWord) FoundWord {
	return FoundWord{Word: f.Word, Cells: CellsFromModel(f.Cells)}
}

// FoundWordsFromModel converts a slice of found words
func FoundWordsFromModel(found []model.FoundWord) []FoundWord {
	out := make([]FoundWord, 0, len(found))
	for _, f := range found {
		out = append(out, FoundWordFromModel(f))
	}
	return out
}

// Puzzle is the full state of a puzzle instance
type Puzzle struct {
	ID          string      `json:"id"`
	CategoryID  string      `json:"category_id"`
	Size        int         `json:"size"`
	Rows        []string    `json:"rows"`
	Words       []string    `json:"words"`
	Found       []FoundWord `json:"found"`
	Remaining   []string    `json:"remaining"`
	Dropped     []string    `json:"dropped,omitempty"`
	Round       int         `json:"round"`
	Complete    bool        `json:"complete"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// PuzzleFromModel converts a model.Puzzle
func PuzzleFromModel(p *model.Puzzle) Puzzle {
	return Puzzle{
		ID:          string(p.ID),
		CategoryID:  string(p.CategoryID),
		Size:        p.Grid.Size,
		Rows:        p.Grid.Rows(),
		Words:       append([]string{}, p.Words...),
		Found:       FoundWordsFromModel(p.Found),
		Remaining:   append([]string{}, p.Remaining()...),
		Dropped:     p.Dropped,
		Round:       p.Round,
		Complete:    p.IsComplete(),
		CompletedAt: p.CompletedAt,
		CreatedAt:   p.CreatedAt,
	}
}

// PointerResponse is the engine state after a pointer event
type PointerResponse struct {
	Selection []Cell      `json:"selection"`
	Found     []FoundWord `json:"found"`
	Feedback  []string    `json:"feedback"`
	Outcome   string      `json:"outcome"`
	Letters   string      `json:"letters,omitempty"`
	Matched   *FoundWord  `json:"matched,omitempty"`
	Complete  bool        `json:"complete"`
}

// PointerResponseFromResult converts a puzzle.PointerResult
func PointerResponseFromResult(r *puzzle.PointerResult) PointerResponse {
	resp := PointerResponse{
		Selection: CellsFromModel(r.Selection),
		Found:     FoundWordsFromModel(r.Found),
		Feedback:  FeedbackKinds(r.Feedback),
		Outcome:   string(r.Outcome),
		Letters:   r.Letters,
		Complete:  r.Complete,
	}
	if r.Matched != nil {
		m := FoundWordFromModel(*r.Matched)
		resp.Matched = &m
	}
	return resp
}

// FeedbackKinds converts feedback cues to their wire names
func FeedbackKinds(kinds []feedback.Kind) []string {
	out := make([]string, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, string(k))
	}
	return out
}

// WordleGuess is one scored guess
type WordleGuess struct {
	Word   string   `json:"word"`
	States []string `json:"states"`
}

// WordleGame is a Wordle game. Target is only revealed once the game is over.
type WordleGame struct {
	ID          string        `json:"id"`
	DateKey     string        `json:"date"`
	Status      string        `json:"status"`
	Guesses     []WordleGuess `json:"guesses"`
	GuessesLeft int           `json:"guesses_left"`
	WordLength  int           `json:"word_length"`
	Target      string        `json:"target,omitempty"`
	Feedback    []string      `json:"feedback,omitempty"`
}

// WordleGameFromModel converts a model.WordleGame
func WordleGameFromModel(g *model.WordleGame) WordleGame {
	guesses := make([]WordleGuess, 0, len(g.Guesses))
	for _, guess := range g.Guesses {
		states := make([]string, 0, len(guess.States))
		for _, s := range guess.States {
			states = append(states, string(s))
		}
		guesses = append(guesses, WordleGuess{Word: guess.Word, States: states})
	}

	resp := WordleGame{
		ID:          string(g.ID),
		DateKey:     g.DateKey,
		Status:      string(g.Status),
		Guesses:     guesses,
		GuessesLeft: g.GuessesLeft(),
		WordLength:  model.WordleWordLength,
	}
	if g.IsFinished() {
		resp.Target = g.Target
	}
	return resp
}

// Health is the health check response
type Health struct {
	Status        string `json:"status"`
	CatalogLoaded bool   `json:"catalog_loaded"`
}
