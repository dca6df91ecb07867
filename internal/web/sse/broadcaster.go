package sse

import (
	"context"
	"log/slog"

	"github.com/mcoot/wordpuzzles/internal/model"
	"github.com/mcoot/wordpuzzles/internal/services/puzzle"
	"github.com/mcoot/wordpuzzles/internal/services/selection"
)

// Broadcaster publishes puzzle events to the pages watching them
type Broadcaster struct {
	hubManager *HubManager
	renderer   *Renderer
	logger     *slog.Logger
}

var _ puzzle.Publisher = (*Broadcaster)(nil)

// NewBroadcaster creates a new Broadcaster rendering grids at geo
func NewBroadcaster(hubManager *HubManager, geo selection.Geometry, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		renderer:   NewRenderer(geo),
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// Publish renders the event and sends it to the puzzle's hub, if anyone is watching
func (b *Broadcaster) Publish(ctx context.Context, event model.Event) {
	hub := b.hubManager.GetHub(event.PuzzleID)
	if hub == nil {
		return
	}

	events, err := b.renderer.RenderPuzzleEvent(ctx, event)
	if err != nil {
		b.logger.Error("sse failed to render puzzle event",
			slog.String("puzzle_id", string(event.PuzzleID)),
			slog.String("event", string(event.Type)),
			slog.Any("error", err))
		return
	}

	for _, ev := range events {
		hub.BroadcastEvent(ev.EventName, ev.Data)
	}
}
