package generator

import (
	"log/slog"

	"github.com/mcoot/wordpuzzles/internal/dependencies/random"
)

// DefaultRounds is how many full generations are tried before dropped words are accepted
const DefaultRounds = 5

// Service generates puzzle grids, retrying whole generations while words get dropped
type Service struct {
	random random.Random
	rounds int
	logger *slog.Logger
}

// New creates a new generator Service. rounds < 1 is treated as a single round.
func New(rnd random.Random, rounds int, logger *slog.Logger) *Service {
	if rounds < 1 {
		rounds = 1
	}
	return &Service{
		random: rnd,
		rounds: rounds,
		logger: logger,
	}
}

// Generate builds a grid for words. Each round reruns the full algorithm with
// fresh randomness; the first result that places every word wins, otherwise
// the last round is accepted with its dropped words.
func (s *Service) Generate(words []string, gridSize int) *Result {
	var result *Result
	for round := 1; round <= s.rounds; round++ {
		result = Generate(words, gridSize, s.random)
		if len(result.Dropped) == 0 {
			return result
		}
		s.logger.Debug("generation dropped words, retrying",
			slog.Int("round", round),
			slog.Int("dropped", len(result.Dropped)),
		)
	}

	for _, word := range result.Dropped {
		s.logger.Warn("word could not be placed",
			slog.String("word", word),
			slog.Int("grid_size", gridSize),
			slog.Int("attempts", MaxAttempts),
		)
	}
	return result
}
