package model

import "errors"

// Common errors used across the application
var (
	// Puzzle errors
	ErrPuzzleNotFound      = errors.New("puzzle not found")
	ErrInvalidPointerEvent = errors.New("invalid pointer event")

	// Catalog errors
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrInvalidGridSize  = errors.New("invalid grid size")
	ErrWordTooLong      = errors.New("word longer than grid size")
	ErrInvalidWord      = errors.New("word must contain letters only")
	ErrCatalogNotLoaded = errors.New("catalog not loaded")

	// Wordle errors
	ErrWordleGameNotFound = errors.New("wordle game not found")
	ErrWordleGameFinished = errors.New("wordle game is already finished")
	ErrInvalidGuessLength = errors.New("guess has the wrong length")
	ErrGuessNotInWordList = errors.New("guess is not in the word list")
	ErrWordListEmpty      = errors.New("wordle word list is empty")
)
