package model

import (
	"slices"
	"time"
)

// WordleGameID uniquely identifies a Wordle game
type WordleGameID string

// LetterState is the evaluation of one letter of a guess
type LetterState string

const (
	LetterCorrect LetterState = "correct" // Right letter, right position
	LetterPresent LetterState = "present" // Letter elsewhere in the word
	LetterAbsent  LetterState = "absent"  // Letter not in the word (or all copies used)
)

// WordleStatus is the overall state of a Wordle game
type WordleStatus string

const (
	WordleStatusPlaying WordleStatus = "playing"
	WordleStatusWon     WordleStatus = "won"
	WordleStatusLost    WordleStatus = "lost"
)

// Wordle rules
const (
	WordleWordLength = 5
	WordleMaxGuesses = 6
)

// WordleGuess is a submitted guess and its evaluation
type WordleGuess struct {
	Word   string        `json:"word"`
	States []LetterState `json:"states"`
}

// WordleGame holds the state of a single Wordle game
type WordleGame struct {
	ID        WordleGameID  `json:"id"`
	Target    string        `json:"target"` // Uppercase answer
	DateKey   string        `json:"date_key"`
	Guesses   []WordleGuess `json:"guesses"`
	Status    WordleStatus  `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// IsFinished returns true once the game is won or lost
func (g *WordleGame) IsFinished() bool {
	return g.Status == WordleStatusWon || g.Status == WordleStatusLost
}

// Clone returns a deep copy of the game
func (g *WordleGame) Clone() *WordleGame {
	c := *g
	c.Guesses = make([]WordleGuess, len(g.Guesses))
	for i, guess := range g.Guesses {
		c.Guesses[i] = WordleGuess{Word: guess.Word, States: slices.Clone(guess.States)}
	}
	return &c
}

// GuessesLeft returns how many guesses remain
func (g *WordleGame) GuessesLeft() int {
	return WordleMaxGuesses - len(g.Guesses)
}
