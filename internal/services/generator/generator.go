package generator

import (
	"sort"

	"github.com/mcoot/wordpuzzles/internal/dependencies/random"
	"github.com/mcoot/wordpuzzles/internal/model"
)

// Alphabet is the set of letters used to fill cells no word occupies
const Alphabet = "ABCDEFGHILMNOPQRSTUVZ"

// MaxAttempts is the placement budget for each word
const MaxAttempts = 100

// Result is the outcome of one generation run
type Result struct {
	Grid       *model.Grid
	Placements []model.Placement // Committed placements, in placement order
	Dropped    []string          // Words that could not be placed within MaxAttempts
}

// Generate places words into a new gridSize x gridSize grid and fills the rest
// with random letters. It never fails: words that do not fit are reported in Dropped.
func Generate(words []string, gridSize int, rnd random.Random) *Result {
	grid := model.NewGrid(gridSize)
	result := &Result{Grid: grid}

	// Longest first; stable so ties keep list order
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len([]rune(sorted[i])) > len([]rune(sorted[j]))
	})

	directions := model.Directions()
	for _, word := range sorted {
		letters := []rune(word)
		placed := false
		for attempt := 0; attempt < MaxAttempts && !placed; attempt++ {
			dir := directions[rnd.Intn(len(directions))]
			start := model.Position{Row: rnd.Intn(gridSize), Col: rnd.Intn(gridSize)}
			if canPlace(grid, letters, start, dir) {
				place(grid, letters, start, dir)
				result.Placements = append(result.Placements, model.Placement{
					Word:      word,
					Start:     start,
					Direction: dir,
				})
				placed = true
			}
		}
		if !placed {
			result.Dropped = append(result.Dropped, word)
		}
	}

	fill(grid, rnd)
	return result
}

// canPlace reports whether letters fit from start along dir, sharing only matching letters
func canPlace(grid *model.Grid, letters []rune, start model.Position, dir model.Direction) bool {
	if len(letters) == 0 {
		return false
	}
	end := start.Add(dir, len(letters)-1)
	if !grid.IsValidPosition(start) || !grid.IsValidPosition(end) {
		return false
	}
	for i, letter := range letters {
		existing := grid.Get(start.Add(dir, i))
		if existing != 0 && existing != letter {
			return false
		}
	}
	return true
}

func place(grid *model.Grid, letters []rune, start model.Position, dir model.Direction) {
	for i, letter := range letters {
		grid.Set(start.Add(dir, i), letter)
	}
}

func fill(grid *model.Grid, rnd random.Random) {
	alphabet := []rune(Alphabet)
	for row := 0; row < grid.Size; row++ {
		for col := 0; col < grid.Size; col++ {
			pos := model.Position{Row: row, Col: col}
			if grid.IsEmpty(pos) {
				grid.Set(pos, alphabet[rnd.Intn(len(alphabet))])
			}
		}
	}
}
