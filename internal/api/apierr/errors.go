package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/wordpuzzles/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidPointerEvent = "INVALID_POINTER_EVENT"
	CodePuzzleNotFound      = "PUZZLE_NOT_FOUND"
	CodeCategoryNotFound    = "CATEGORY_NOT_FOUND"
	CodeCatalogNotLoaded    = "CATALOG_NOT_LOADED"
	CodeWordleGameNotFound  = "WORDLE_GAME_NOT_FOUND"
	CodeWordleGameFinished  = "WORDLE_GAME_FINISHED"
	CodeInvalidGuessLength  = "INVALID_GUESS_LENGTH"
	CodeGuessNotInWordList  = "GUESS_NOT_IN_WORD_LIST"
	CodeWordListEmpty       = "WORD_LIST_EMPTY"
	CodeNotFound            = "NOT_FOUND"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status WriteError would use for err
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrPuzzleNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePuzzleNotFound, "Puzzle not found"}}
	case errors.Is(err, model.ErrInvalidPointerEvent):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPointerEvent, err.Error()}}
	case errors.Is(err, model.ErrCategoryNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeCategoryNotFound, "Category not found"}}
	case errors.Is(err, model.ErrCatalogNotLoaded):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeCatalogNotLoaded, "Category catalog is not loaded"}}
	case errors.Is(err, model.ErrWordleGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeWordleGameNotFound, "Wordle game not found"}}
	case errors.Is(err, model.ErrWordleGameFinished):
		return &httpError{http.StatusConflict, APIError{CodeWordleGameFinished, "Wordle game is already finished"}}
	case errors.Is(err, model.ErrInvalidGuessLength):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidGuessLength, "Guess must be 5 letters"}}
	case errors.Is(err, model.ErrGuessNotInWordList):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeGuessNotInWordList, "Guess is not in the word list"}}
	case errors.Is(err, model.ErrWordListEmpty):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeWordListEmpty, "Wordle word list is empty"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewNotFoundError creates a not found error for unknown routes
func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Not found"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
