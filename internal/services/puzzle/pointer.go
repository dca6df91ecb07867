package puzzle

import (
	"fmt"
	"math"

	"github.com/mcoot/wordpuzzles/internal/dependencies/feedback"
	"github.com/mcoot/wordpuzzles/internal/model"
	"github.com/mcoot/wordpuzzles/internal/services/selection"
)

// PointerEventType is the kind of raw pointer input
type PointerEventType string

const (
	PointerDown   PointerEventType = "down"
	PointerMove   PointerEventType = "move"
	PointerUp     PointerEventType = "up"
	PointerCancel PointerEventType = "cancel"
)

// PointerEvent is one raw pointer input with the geometry the grid was rendered at
type PointerEvent struct {
	Type     PointerEventType
	X, Y     float64
	Geometry selection.Geometry
}

// Validate checks the event type and, for positional events, the geometry
func (ev PointerEvent) Validate() error {
	switch ev.Type {
	case PointerCancel:
		return nil
	case PointerDown, PointerMove, PointerUp:
	default:
		return fmt.Errorf("%w: unknown type %q", model.ErrInvalidPointerEvent, ev.Type)
	}
	if ev.Geometry.CellSize <= 0 || ev.Geometry.Gap < 0 || ev.Geometry.Padding < 0 {
		return fmt.Errorf("%w: cell_size must be positive, gap and padding non-negative", model.ErrInvalidPointerEvent)
	}
	for _, v := range []float64{ev.X, ev.Y, ev.Geometry.CellSize, ev.Geometry.Gap, ev.Geometry.Padding} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: coordinates must be finite", model.ErrInvalidPointerEvent)
		}
	}
	return nil
}

// PointerResult is the engine state after a pointer event
type PointerResult struct {
	Selection []model.Position
	Found     []model.FoundWord
	Feedback  []feedback.Kind
	Outcome   selection.OutcomeKind
	Letters   string           // Letters of the resolved selection (up only)
	Matched   *model.FoundWord // Set when the gesture found a new word
	Complete  bool
}
