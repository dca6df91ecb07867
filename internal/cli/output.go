package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

func newOutput(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout())
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case CategoryList:
		o.printCategoryList(v)
	case CategoryDetail:
		o.printCategoryDetail(v)
	case Puzzle:
		o.printPuzzle(v)
	case PointerResult:
		o.printPointerResult(v)
	case WordleGame:
		o.printWordleGame(v)
	case GenerateResult:
		o.printGenerateResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Category response type (matches API)
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji,omitempty"`
	Description string `json:"description,omitempty"`
	GridSize    int    `json:"grid_size"`
	WordCount   int    `json:"word_count"`
}

// CategoryDetail response type
type CategoryDetail struct {
	Category
	Words []string `json:"words"`
}

// CategoryList response type
type CategoryList struct {
	Categories []Category `json:"categories"`
}

// Cell response type
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// FoundWord response type
type FoundWord struct {
	Word  string `json:"word"`
	Cells []Cell `json:"cells"`
}

// Puzzle response type
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
	CompletedAt *string     `json:"completed_at,omitempty"`
}

// PointerResult response type
type PointerResult struct {
	Selection []Cell      `json:"selection"`
	Found     []FoundWord `json:"found"`
	Feedback  []string    `json:"feedback"`
	Outcome   string      `json:"outcome"`
	Letters   string      `json:"letters,omitempty"`
	Matched   *FoundWord  `json:"matched,omitempty"`
	Complete  bool        `json:"complete"`
}

// WordleGuess response type
type WordleGuess struct {
	Word   string   `json:"word"`
	States []string `json:"states"`
}

// WordleGame response type
type WordleGame struct {
	ID          string        `json:"id"`
	Date        string        `json:"date"`
	Status      string        `json:"status"`
	Guesses     []WordleGuess `json:"guesses"`
	GuessesLeft int           `json:"guesses_left"`
	WordLength  int           `json:"word_length"`
	Target      string        `json:"target,omitempty"`
	Feedback    []string      `json:"feedback,omitempty"`
}

// Placement is one placed word in a generate report
type Placement struct {
	Word      string `json:"word"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Direction string `json:"direction"`
}

// GenerateResult is the offline generate report
type GenerateResult struct {
	Size       int         `json:"size"`
	Seed       uint64      `json:"seed"`
	Rows       []string    `json:"rows"`
	Placements []Placement `json:"placements"`
	Dropped    []string    `json:"dropped"`
}

// HealthResult response type
type HealthResult struct {
	Status        string `json:"status"`
	CatalogLoaded bool   `json:"catalog_loaded"`
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

func (o *Output) printCategoryList(l CategoryList) {
	if len(l.Categories) == 0 {
		o.printf("No categories\n")
		return
	}
	for _, c := range l.Categories {
		o.printf("%-12s %s %s (%dx%d, %d words)\n", c.ID, c.Emoji, c.Name, c.GridSize, c.GridSize, c.WordCount)
	}
}

func (o *Output) printCategoryDetail(c CategoryDetail) {
	o.printf("Category: %s %s (%s)\n", c.Emoji, c.Name, c.ID)
	if c.Description != "" {
		o.printf("%s\n", c.Description)
	}
	o.printf("Grid Size: %d\n", c.GridSize)
	o.printf("Words: %s\n", strings.Join(c.Words, ", "))
}

func (o *Output) printPuzzle(p Puzzle) {
	o.printf("Puzzle: %s\n", p.ID)
	o.printf("Category: %s\n", p.CategoryID)
	o.printf("Round: %d\n", p.Round)

	found := make(map[Cell]bool)
	for _, fw := range p.Found {
		for _, c := range fw.Cells {
			found[c] = true
		}
	}
	o.printf("\n")
	o.printGrid(p.Rows, found)

	o.printf("\nFound (%d/%d):", len(p.Found), len(p.Words))
	for _, fw := range p.Found {
		o.printf(" %s", fw.Word)
	}
	o.printf("\n")
	if len(p.Remaining) > 0 {
		o.printf("Remaining: %s\n", strings.Join(p.Remaining, ", "))
	}
	if len(p.Dropped) > 0 {
		o.printf("Not placed: %s\n", strings.Join(p.Dropped, ", "))
	}
	if p.CompletedAt != nil {
		o.printf("Completed at %s\n", *p.CompletedAt)
	} else if p.Complete {
		o.printf("All words found!\n")
	}
}

// printGrid prints rows with column headers. Highlighted cells are lowercase.
func (o *Output) printGrid(rows []string, highlight map[Cell]bool) {
	size := len(rows)
	if size == 0 {
		return
	}

	// Print column headers
	o.printf("    ")
	for col := 0; col < size; col++ {
		o.printf("%2d ", col)
	}
	o.printf("\n")

	// Print top border
	o.printf("   +%s+\n", strings.Repeat("---", size))

	for row, letters := range rows {
		o.printf("%2d |", row)
		for col, r := range []rune(letters) {
			cell := string(r)
			if highlight[Cell{Row: row, Col: col}] {
				cell = strings.ToLower(cell)
			}
			o.printf(" %s ", cell)
		}
		o.printf("|\n")
	}

	// Print bottom border
	o.printf("   +%s+\n", strings.Repeat("---", size))
}

func (o *Output) printPointerResult(r PointerResult) {
	o.printf("Outcome: %s\n", r.Outcome)
	if r.Letters != "" {
		o.printf("Letters: %s\n", r.Letters)
	}
	if r.Matched != nil {
		o.printf("Found: %s\n", r.Matched.Word)
	}
	if len(r.Selection) > 0 {
		cells := make([]string, 0, len(r.Selection))
		for _, c := range r.Selection {
			cells = append(cells, fmt.Sprintf("%d,%d", c.Row, c.Col))
		}
		o.printf("Selection: %s\n", strings.Join(cells, " "))
	}
	if len(r.Feedback) > 0 {
		o.printf("Feedback: %s\n", strings.Join(r.Feedback, ", "))
	}
	if r.Complete {
		o.printf("All words found!\n")
	}
}

// wordleMarks renders letter states as [X] correct, (X) present, X absent
func wordleMarks(g WordleGuess) string {
	var b strings.Builder
	for i, r := range []rune(g.Word) {
		state := ""
		if i < len(g.States) {
			state = g.States[i]
		}
		switch state {
		case "correct":
			fmt.Fprintf(&b, "[%c]", r)
		case "present":
			fmt.Fprintf(&b, "(%c)", r)
		default:
			fmt.Fprintf(&b, " %c ", r)
		}
	}
	return b.String()
}

func (o *Output) printWordleGame(g WordleGame) {
	o.printf("Wordle: %s (%s)\n", g.ID, g.Date)
	o.printf("Status: %s\n", g.Status)
	for _, guess := range g.Guesses {
		o.printf("  %s\n", wordleMarks(guess))
	}
	switch g.Status {
	case "won":
		o.printf("Solved in %d!\n", len(g.Guesses))
	case "lost":
		o.printf("The word was %s\n", g.Target)
	default:
		o.printf("Guesses left: %d\n", g.GuessesLeft)
	}
}

func (o *Output) printGenerateResult(r GenerateResult) {
	o.printf("Seed: %d\n\n", r.Seed)
	o.printGrid(r.Rows, nil)
	o.printf("\nPlaced (%d):\n", len(r.Placements))
	for _, p := range r.Placements {
		o.printf("  %-12s %d,%d %s\n", p.Word, p.Row, p.Col, p.Direction)
	}
	if len(r.Dropped) > 0 {
		o.printf("Dropped: %s\n", strings.Join(r.Dropped, ", "))
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	o.printf("Status: %s\n", h.Status)
	o.printf("Catalog loaded: %t\n", h.CatalogLoaded)
}
