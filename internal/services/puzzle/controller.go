package puzzle

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/mcoot/wordpuzzles/internal/dependencies/clock"
	"github.com/mcoot/wordpuzzles/internal/dependencies/feedback"
	"github.com/mcoot/wordpuzzles/internal/dependencies/random"
	"github.com/mcoot/wordpuzzles/internal/model"
	"github.com/mcoot/wordpuzzles/internal/services/catalog"
	"github.com/mcoot/wordpuzzles/internal/services/generator"
	"github.com/mcoot/wordpuzzles/internal/services/selection"
	"github.com/mcoot/wordpuzzles/internal/storage"
)

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Publisher receives puzzle events for live renderers
type Publisher interface {
	Publish(ctx context.Context, event model.Event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, model.Event) {}

// session is a live puzzle with its selection engine. mu keeps the engine
// single-threaded.
type session struct {
	mu       sync.Mutex
	puzzle   *model.Puzzle
	engine   *selection.Engine
	recorder *feedback.Recorder
	changed  bool
	closed   bool
	lastUsed time.Time // guarded by Controller.mu
}

// Controller manages puzzle instances and routes gestures to their engines
type Controller struct {
	storage   storage.Storage
	catalog   catalog.ServiceInterface
	generator *generator.Service
	clock     clock.Clock
	random    random.Random
	publisher Publisher
	delay     time.Duration
	logger    *slog.Logger

	mu       sync.Mutex
	sessions map[model.PuzzleID]*session
}

// NewController creates a new puzzle Controller. A nil publisher discards events.
func NewController(
	storage storage.Storage,
	catalog catalog.ServiceInterface,
	generator *generator.Service,
	clock clock.Clock,
	random random.Random,
	publisher Publisher,
	completionDelay time.Duration,
	logger *slog.Logger,
) *Controller {
	if publisher == nil {
		publisher = nopPublisher{}
	}
	return &Controller{
		storage:   storage,
		catalog:   catalog,
		generator: generator,
		clock:     clock,
		random:    random,
		publisher: publisher,
		delay:     completionDelay,
		logger:    logger,
		sessions:  make(map[model.PuzzleID]*session),
	}
}

// Start creates a puzzle for a category with a freshly generated grid
func (c *Controller) Start(ctx context.Context, categoryID model.CategoryID) (*model.Puzzle, error) {
	category, err := c.catalog.Get(categoryID)
	if err != nil {
		return nil, err
	}

	words := selection.NormalizeWords(category.Words)
	result := c.generator.Generate(words, category.GridSize)

	now := c.clock.Now()
	puzzle := &model.Puzzle{
		ID:         model.PuzzleID(c.random.String(12, idAlphabet)),
		CategoryID: category.ID,
		Words:      words,
		Grid:       result.Grid,
		Found:      []model.FoundWord{},
		Dropped:    result.Dropped,
		Round:      1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := c.storage.SavePuzzle(ctx, puzzle); err != nil {
		c.logger.Error("failed to save puzzle",
			slog.String("puzzle_id", string(puzzle.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	sess := c.newSession(puzzle)
	c.mu.Lock()
	sess.lastUsed = now
	c.sessions[puzzle.ID] = sess
	c.mu.Unlock()

	c.logger.Info("puzzle created",
		slog.String("puzzle_id", string(puzzle.ID)),
		slog.String("category_id", string(category.ID)),
		slog.Int("grid_size", category.GridSize),
		slog.Int("words", len(words)),
		slog.Int("dropped", len(result.Dropped)),
	)

	return puzzle.Clone(), nil
}

// newSession builds a live session for a puzzle
func (c *Controller) newSession(puzzle *model.Puzzle) *session {
	sess := &session{
		puzzle:   puzzle.Clone(),
		recorder: feedback.NewRecorder(),
	}
	c.attachEngine(sess)
	return sess
}

// attachEngine builds the engine for the session's current puzzle, restoring its found words
func (c *Controller) attachEngine(sess *session) {
	round := sess.puzzle.Round
	sess.engine = selection.NewEngine(sess.puzzle.Grid, sess.puzzle.Words,
		func() { c.complete(sess, round) },
		selection.Config{
			Feedback:        sess.recorder,
			Clock:           c.clock,
			CompletionDelay: c.delay,
			OnChange:        func(selection.Snapshot) { sess.changed = true },
			Found:           sess.puzzle.Found,
		},
	)
}

// session returns the live session for id. Storage is consulted on every call
// so puzzles that expired or were removed there are not served from memory.
func (c *Controller) session(ctx context.Context, id model.PuzzleID) (*session, error) {
	puzzle, err := c.storage.GetPuzzle(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPuzzleNotFound) {
			c.evict(id)
		}
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	sess, ok := c.sessions[id]
	if !ok {
		sess = c.newSession(puzzle)
		c.sessions[id] = sess
	}
	sess.lastUsed = c.clock.Now()
	return sess, nil
}

// evict drops the live session for id and stops its engine
func (c *Controller) evict(id model.PuzzleID) bool {
	c.mu.Lock()
	sess, ok := c.sessions[id]
	delete(c.sessions, id)
	c.mu.Unlock()
	if !ok {
		return false
	}

	sess.mu.Lock()
	sess.closed = true
	sess.engine.Close()
	sess.mu.Unlock()
	return true
}

// Cleanup evicts sessions idle for longer than maxIdle and returns how many were
// dropped. Evicted puzzles are rebuilt from storage on next use.
func (c *Controller) Cleanup(maxIdle time.Duration) int {
	cutoff := c.clock.Now().Add(-maxIdle)

	c.mu.Lock()
	var idle []model.PuzzleID
	for id, sess := range c.sessions {
		if sess.lastUsed.Before(cutoff) {
			idle = append(idle, id)
		}
	}
	c.mu.Unlock()

	evicted := 0
	for _, id := range idle {
		if c.evict(id) {
			evicted++
		}
	}
	if evicted > 0 {
		c.logger.Info("evicted idle puzzle sessions", slog.Int("count", evicted))
	}
	return evicted
}

// SessionCount returns the number of live sessions
func (c *Controller) SessionCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sessions)
}

// Get retrieves a puzzle by ID
func (c *Controller) Get(ctx context.Context, id model.PuzzleID) (*model.Puzzle, error) {
	sess, err := c.session(ctx, id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return nil, model.ErrPuzzleNotFound
	}
	return sess.puzzle.Clone(), nil
}

// Delete removes a puzzle and stops its engine
func (c *Controller) Delete(ctx context.Context, id model.PuzzleID) error {
	if _, err := c.storage.GetPuzzle(ctx, id); err != nil {
		return err
	}

	c.evict(id)

	if err := c.storage.DeletePuzzle(ctx, id); err != nil {
		return err
	}

	c.logger.Info("puzzle deleted", slog.String("puzzle_id", string(id)))
	return nil
}

// Reset regenerates the grid with fresh randomness and clears the found words ("play again")
func (c *Controller) Reset(ctx context.Context, id model.PuzzleID) (*model.Puzzle, error) {
	sess, err := c.session(ctx, id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return nil, model.ErrPuzzleNotFound
	}

	sess.engine.Close()

	puzzle := sess.puzzle.Clone()
	result := c.generator.Generate(puzzle.Words, puzzle.Grid.Size)
	puzzle.Grid = result.Grid
	puzzle.Dropped = result.Dropped
	puzzle.Found = []model.FoundWord{}
	puzzle.Round++
	puzzle.CompletedAt = nil
	puzzle.UpdatedAt = c.clock.Now()

	if err := c.storage.SavePuzzle(ctx, puzzle); err != nil {
		return nil, err
	}

	sess.puzzle = puzzle
	c.attachEngine(sess)
	sess.recorder.Drain()
	sess.changed = false

	c.logger.Info("puzzle reset",
		slog.String("puzzle_id", string(id)),
		slog.String("category_id", string(puzzle.CategoryID)),
		slog.Int("round", puzzle.Round),
	)

	c.publish(ctx, model.EventPuzzleReset, sess, model.PuzzleResetPayload{Round: puzzle.Round})
	return puzzle.Clone(), nil
}

// Pointer feeds one pointer event to the puzzle's engine
func (c *Controller) Pointer(ctx context.Context, id model.PuzzleID, ev PointerEvent) (*PointerResult, error) {
	if err := ev.Validate(); err != nil {
		return nil, err
	}

	sess, err := c.session(ctx, id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return nil, model.ErrPuzzleNotFound
	}

	sess.changed = false
	outcome := selection.Outcome{Kind: selection.OutcomeNone}
	switch ev.Type {
	case PointerDown:
		sess.engine.PointerDown(ev.X, ev.Y, ev.Geometry)
	case PointerMove:
		sess.engine.PointerMove(ev.X, ev.Y, ev.Geometry)
	case PointerUp:
		outcome = sess.engine.PointerUp(ev.X, ev.Y, ev.Geometry)
	case PointerCancel:
		sess.engine.PointerCancel()
	}

	result := &PointerResult{
		Selection: sess.engine.Selection(),
		Found:     sess.engine.Found(),
		Feedback:  sess.recorder.Drain(),
		Outcome:   outcome.Kind,
		Letters:   outcome.Letters,
		Matched:   outcome.Word,
		Complete:  sess.engine.IsComplete(),
	}

	switch outcome.Kind {
	case selection.OutcomeMatch:
		sess.puzzle.Found = sess.engine.Found()
		sess.puzzle.UpdatedAt = c.clock.Now()
		if err := c.storage.SavePuzzle(ctx, sess.puzzle); err != nil {
			c.logger.Error("failed to save found word",
				slog.String("puzzle_id", string(id)),
				slog.String("error", err.Error()),
			)
			return nil, err
		}
		c.logger.Info("word found",
			slog.String("puzzle_id", string(id)),
			slog.String("category_id", string(sess.puzzle.CategoryID)),
			slog.String("word", outcome.Word.Word),
			slog.Int("remaining", len(sess.puzzle.Words)-len(sess.puzzle.Found)),
		)
		c.publish(ctx, model.EventWordFound, sess, model.WordFoundPayload{
			Found:     *outcome.Word,
			Remaining: len(sess.puzzle.Words) - len(sess.puzzle.Found),
		})
	case selection.OutcomeMismatch:
		c.publish(ctx, model.EventSelectionRejected, sess, model.SelectionRejectedPayload{Letters: outcome.Letters})
	default:
		if sess.changed {
			c.publish(ctx, model.EventSelectionChanged, sess, nil)
		}
	}

	return result, nil
}

// complete runs from the engine's completion timer
func (c *Controller) complete(sess *session, round int) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed || sess.puzzle.Round != round || sess.puzzle.CompletedAt != nil {
		return
	}

	ctx := context.Background()
	now := c.clock.Now()
	sess.puzzle.CompletedAt = &now
	sess.puzzle.UpdatedAt = now
	if err := c.storage.SavePuzzle(ctx, sess.puzzle); err != nil {
		c.logger.Error("failed to save completed puzzle",
			slog.String("puzzle_id", string(sess.puzzle.ID)),
			slog.String("error", err.Error()),
		)
	}

	c.logger.Info("puzzle completed",
		slog.String("puzzle_id", string(sess.puzzle.ID)),
		slog.String("category_id", string(sess.puzzle.CategoryID)),
		slog.Int("round", round),
		slog.Duration("duration", now.Sub(sess.puzzle.CreatedAt)),
	)
	c.publish(ctx, model.EventPuzzleCompleted, sess, nil)
}

func (c *Controller) publish(ctx context.Context, eventType model.EventType, sess *session, payload any) {
	c.publisher.Publish(ctx, model.Event{
		Type:      eventType,
		Timestamp: c.clock.Now(),
		PuzzleID:  sess.puzzle.ID,
		Puzzle:    sess.puzzle.Clone(),
		Selection: sess.engine.Selection(),
		Payload:   payload,
	})
}

// ControllerInterface for dependency injection
type ControllerInterface interface {
	Start(ctx context.Context, categoryID model.CategoryID) (*model.Puzzle, error)
	Get(ctx context.Context, id model.PuzzleID) (*model.Puzzle, error)
	Delete(ctx context.Context, id model.PuzzleID) error
	Reset(ctx context.Context, id model.PuzzleID) (*model.Puzzle, error)
	Pointer(ctx context.Context, id model.PuzzleID, ev PointerEvent) (*PointerResult, error)
}

var _ ControllerInterface = (*Controller)(nil)
