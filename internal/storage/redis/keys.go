package redis

import (
	"fmt"

	"github.com/mcoot/wordpuzzles/internal/model"
)

// Key prefix for all puzzle-related data
const keyPrefix = "wordpuzzles"

// puzzleKey returns the Redis key for a Puzzle
func puzzleKey(id model.PuzzleID) string {
	return fmt.Sprintf("%s:puzzle:%s", keyPrefix, id)
}

// wordleGameKey returns the Redis key for a WordleGame
func wordleGameKey(id model.WordleGameID) string {
	return fmt.Sprintf("%s:wordle:%s", keyPrefix, id)
}

// categoriesKey returns the Redis key for the category catalog
func categoriesKey() string {
	return fmt.Sprintf("%s:categories", keyPrefix)
}
