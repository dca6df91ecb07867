package wordle

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/mcoot/wordpuzzles/internal/dependencies/clock"
	"github.com/mcoot/wordpuzzles/internal/dependencies/feedback"
	"github.com/mcoot/wordpuzzles/internal/dependencies/random"
	"github.com/mcoot/wordpuzzles/internal/model"
	"github.com/mcoot/wordpuzzles/internal/storage"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Controller runs Wordle games
type Controller struct {
	storage storage.Storage
	words   *WordList
	clock   clock.Clock
	random  random.Random
	salt    string
	logger  *slog.Logger

	// Serializes read-modify-write of games
	mu sync.Mutex
}

// NewController creates a new Wordle Controller
func NewController(
	storage storage.Storage,
	words *WordList,
	clock clock.Clock,
	random random.Random,
	salt string,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		words:   words,
		clock:   clock,
		random:  random,
		salt:    salt,
		logger:  logger,
	}
}

// NewGame starts a game on today's word
func (c *Controller) NewGame(ctx context.Context) (*model.WordleGame, error) {
	if c.words.Len() == 0 {
		return nil, model.ErrWordListEmpty
	}

	now := c.clock.Now()
	game := &model.WordleGame{
		ID:        model.WordleGameID(c.random.String(12, idAlphabet)),
		Target:    c.words.Answer(WordIndex(now, c.salt, c.words.Len())),
		DateKey:   DateKey(now),
		Guesses:   []model.WordleGuess{},
		Status:    model.WordleStatusPlaying,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveWordleGame(ctx, game); err != nil {
		c.logger.Error("failed to save wordle game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("wordle game created",
		slog.String("game_id", string(game.ID)),
		slog.String("date", game.DateKey),
	)
	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, id model.WordleGameID) (*model.WordleGame, error) {
	return c.storage.GetWordleGame(ctx, id)
}

// Guess validates and scores a guess. Invalid input and a lost game emit an
// error cue, a win emits success, any other accepted guess a light impact.
func (c *Controller) Guess(ctx context.Context, id model.WordleGameID, word string, sink feedback.Sink) (*model.WordleGame, error) {
	if sink == nil {
		sink = feedback.Nop{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.storage.GetWordleGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if game.IsFinished() {
		return nil, model.ErrWordleGameFinished
	}

	word = strings.ToUpper(strings.TrimSpace(word))
	if len([]rune(word)) != model.WordleWordLength {
		sink.Error()
		return nil, model.ErrInvalidGuessLength
	}
	if !c.words.IsAllowed(word) {
		sink.Error()
		return nil, model.ErrGuessNotInWordList
	}

	states := Evaluate(game.Target, word)
	game.Guesses = append(game.Guesses, model.WordleGuess{Word: word, States: states})
	game.UpdatedAt = c.clock.Now()

	switch {
	case allCorrect(states):
		game.Status = model.WordleStatusWon
	case len(game.Guesses) >= model.WordleMaxGuesses:
		game.Status = model.WordleStatusLost
	}

	if err := c.storage.SaveWordleGame(ctx, game); err != nil {
		return nil, err
	}

	switch game.Status {
	case model.WordleStatusWon:
		sink.Success()
		c.logger.Info("wordle game won",
			slog.String("game_id", string(game.ID)),
			slog.Int("guesses", len(game.Guesses)),
		)
	case model.WordleStatusLost:
		sink.Error()
		c.logger.Info("wordle game lost", slog.String("game_id", string(game.ID)))
	default:
		sink.LightImpact()
	}

	return game, nil
}

// ControllerInterface for dependency injection
type ControllerInterface interface {
	NewGame(ctx context.Context) (*model.WordleGame, error)
	GetGame(ctx context.Context, id model.WordleGameID) (*model.WordleGame, error)
	Guess(ctx context.Context, id model.WordleGameID, word string, sink feedback.Sink) (*model.WordleGame, error)
}

var _ ControllerInterface = (*Controller)(nil)
