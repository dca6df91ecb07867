package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	// Puzzle events
	EventSelectionChanged  EventType = "selection-changed"
	EventWordFound         EventType = "word-found"
	EventSelectionRejected EventType = "selection-rejected"
	EventPuzzleCompleted   EventType = "puzzle-completed"
	EventPuzzleReset       EventType = "puzzle-reset"
)

// Event is published to renderers whenever a puzzle changes
type Event struct {
	Type      EventType
	Timestamp time.Time
	PuzzleID  PuzzleID
	Puzzle    *Puzzle    // Snapshot after the change
	Selection []Position // In-progress selection, empty when idle
	Payload   any        // Type-specific data
}

// WordFoundPayload contains data for word found events
type WordFoundPayload struct {
	Found     FoundWord
	Remaining int
}

// SelectionRejectedPayload contains data for rejected selections
type SelectionRejectedPayload struct {
	Letters string
}

// PuzzleResetPayload contains data for reset events
type PuzzleResetPayload struct {
	Round int
}
