package selection

import (
	"slices"
	"strings"
	"time"

	"github.com/mcoot/wordpuzzles/internal/dependencies/clock"
	"github.com/mcoot/wordpuzzles/internal/dependencies/feedback"
	"github.com/mcoot/wordpuzzles/internal/model"
)

// DefaultCompletionDelay leaves time for the last success cue before completion fires
const DefaultCompletionDelay = 500 * time.Millisecond

// State is the gesture state of an engine
type State string

const (
	StateIdle      State = "idle"
	StateSelecting State = "selecting"
)

// OutcomeKind is the result of resolving a gesture
type OutcomeKind string

const (
	OutcomeNone     OutcomeKind = "none"     // No gesture was active
	OutcomeMatch    OutcomeKind = "match"    // A new word was found
	OutcomeMismatch OutcomeKind = "mismatch" // The selection matched nothing
)

// Outcome describes how a pointer-up resolved
type Outcome struct {
	Kind    OutcomeKind
	Letters string           // Letters of the final selection, forward
	Word    *model.FoundWord // Set when Kind is OutcomeMatch
}

// Snapshot is the state a renderer needs after a change
type Snapshot struct {
	State     State
	Selection []model.Position
	Found     []model.FoundWord
	Complete  bool
}

// Config carries the engine's collaborators. Zero values are replaced with defaults.
type Config struct {
	Feedback        feedback.Sink
	Clock           clock.Clock
	CompletionDelay time.Duration

	// OnChange is called after every change to the selection or found set
	OnChange func(Snapshot)

	// Found restores words found before the engine was built
	Found []model.FoundWord
}

// gesture is the state of one pointer-down..up/cancel sequence
type gesture struct {
	anchor model.Position
	line   []model.Position
}

// Engine turns pointer events into straight cell selections and matches them
// against a word list. It is not safe for concurrent use.
type Engine struct {
	grid       *model.Grid
	words      []string
	onComplete func()

	feedback feedback.Sink
	clock    clock.Clock
	delay    time.Duration
	onChange func(Snapshot)

	active    *gesture
	found     []model.FoundWord
	completed bool
	timer     clock.Timer
}

// NewEngine creates an engine over a generated grid. Words are uppercased and
// deduplicated; onComplete fires once, CompletionDelay after the last word is found.
func NewEngine(grid *model.Grid, words []string, onComplete func(), cfg Config) *Engine {
	e := &Engine{
		grid:       grid,
		words:      NormalizeWords(words),
		onComplete: onComplete,
		feedback:   cfg.Feedback,
		clock:      cfg.Clock,
		delay:      cfg.CompletionDelay,
		onChange:   cfg.OnChange,
	}
	if e.feedback == nil {
		e.feedback = feedback.Nop{}
	}
	if e.clock == nil {
		e.clock = clock.New()
	}
	if e.delay <= 0 {
		e.delay = DefaultCompletionDelay
	}

	for _, fw := range cfg.Found {
		if slices.Contains(e.words, fw.Word) && !e.isFound(fw.Word) {
			e.found = append(e.found, fw)
		}
	}
	// A restored puzzle that was already solved does not complete again
	e.completed = len(e.words) > 0 && len(e.found) == len(e.words)
	return e
}

// NormalizeWords uppercases words and drops empty entries and duplicates, keeping first occurrences
func NormalizeWords(words []string) []string {
	out := make([]string, 0, len(words))
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

// PointerDown starts a gesture on the cell under (x, y). Ignored while a gesture
// is active or when the point is off the grid.
func (e *Engine) PointerDown(x, y float64, geo Geometry) {
	if e.active != nil {
		return
	}
	cell, ok := CellAt(x, y, geo, e.grid.Size)
	if !ok {
		return
	}
	e.active = &gesture{anchor: cell, line: []model.Position{cell}}
	e.feedback.LightImpact()
	e.changed()
}

// PointerMove re-snaps the selection from the anchor to the cell under (x, y)
func (e *Engine) PointerMove(x, y float64, geo Geometry) {
	if e.active == nil {
		return
	}
	cell, ok := CellAt(x, y, geo, e.grid.Size)
	if !ok {
		return
	}
	e.extend(cell)
}

func (e *Engine) extend(cell model.Position) {
	line := SnapLine(e.active.anchor, cell, e.grid.Size)
	if slices.Equal(line, e.active.line) {
		return
	}
	lengthChanged := len(line) != len(e.active.line)
	e.active.line = line
	if lengthChanged {
		e.feedback.LightImpact()
	}
	e.changed()
}

// PointerUp ends the gesture and evaluates the final selection. A final point on
// the grid is applied as a move first.
func (e *Engine) PointerUp(x, y float64, geo Geometry) Outcome {
	if e.active == nil {
		return Outcome{Kind: OutcomeNone}
	}
	if cell, ok := CellAt(x, y, geo, e.grid.Size); ok {
		e.extend(cell)
	}

	line := e.active.line
	e.active = nil

	outcome := e.evaluate(line)
	e.changed()
	return outcome
}

// PointerCancel abandons the active gesture without evaluating it
func (e *Engine) PointerCancel() {
	if e.active == nil {
		return
	}
	e.active = nil
	e.changed()
}

func (e *Engine) evaluate(line []model.Position) Outcome {
	letters := e.grid.Letters(line)
	if len(line) < 2 {
		e.feedback.Error()
		return Outcome{Kind: OutcomeMismatch, Letters: letters}
	}

	reversed := reverse(letters)
	for _, word := range e.words {
		if e.isFound(word) {
			continue
		}
		if word != letters && word != reversed {
			continue
		}

		fw := model.FoundWord{Word: word, Cells: slices.Clone(line)}
		e.found = append(e.found, fw)
		e.feedback.Success()
		e.checkComplete()
		return Outcome{Kind: OutcomeMatch, Letters: letters, Word: &fw}
	}

	e.feedback.Error()
	return Outcome{Kind: OutcomeMismatch, Letters: letters}
}

func (e *Engine) checkComplete() {
	if e.completed || len(e.found) != len(e.words) {
		return
	}
	e.completed = true
	if e.onComplete != nil {
		e.timer = e.clock.AfterFunc(e.delay, e.onComplete)
	}
}

func (e *Engine) isFound(word string) bool {
	for _, fw := range e.found {
		if fw.Word == word {
			return true
		}
	}
	return false
}

func (e *Engine) changed() {
	if e.onChange != nil {
		e.onChange(e.Snapshot())
	}
}

// Selection returns the in-progress selection, empty when idle
func (e *Engine) Selection() []model.Position {
	if e.active == nil {
		return nil
	}
	return slices.Clone(e.active.line)
}

// Found returns the words found so far, in the order they were found
func (e *Engine) Found() []model.FoundWord {
	return slices.Clone(e.found)
}

// Words returns the normalized word list
func (e *Engine) Words() []string {
	return slices.Clone(e.words)
}

// State returns whether a gesture is in progress
func (e *Engine) State() State {
	if e.active != nil {
		return StateSelecting
	}
	return StateIdle
}

// IsComplete returns true once every word has been found
func (e *Engine) IsComplete() bool {
	return e.completed
}

// Snapshot captures the current state for rendering
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		State:     e.State(),
		Selection: e.Selection(),
		Found:     e.Found(),
		Complete:  e.completed,
	}
}

// Close stops a pending completion callback
func (e *Engine) Close() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

func reverse(s string) string {
	r := []rune(s)
	slices.Reverse(r)
	return string(r)
}
