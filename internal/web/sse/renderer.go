package sse

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/a-h/templ"

	"github.com/mcoot/wordpuzzles/internal/model"
	"github.com/mcoot/wordpuzzles/internal/services/selection"
	"github.com/mcoot/wordpuzzles/internal/web/templates/components"
)

// EventData is one SSE event ready to broadcast
type EventData struct {
	EventName string
	Data      string
}

// Renderer converts puzzle events to SSE events
type Renderer struct {
	geometry selection.Geometry
}

// NewRenderer creates a Renderer that draws grids at geo
func NewRenderer(geo selection.Geometry) *Renderer {
	return &Renderer{geometry: geo}
}

// WrapForOOBSwap wraps HTML in a div with hx-swap-oob for out-of-band swaps
func WrapForOOBSwap(id, html string) string {
	return `<div id="` + id + `" hx-swap-oob="true">` + html + `</div>`
}

func render(ctx context.Context, c templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *Renderer) fragment(ctx context.Context, name, id string, c templ.Component) (EventData, error) {
	html, err := render(ctx, c)
	if err != nil {
		return EventData{}, err
	}
	return EventData{EventName: name, Data: WrapForOOBSwap(id, html)}, nil
}

func jsonEvent(name string, v any) (EventData, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return EventData{}, err
	}
	return EventData{EventName: name, Data: string(b)}, nil
}

type cellJSON struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func cellsJSON(cells []model.Position) []cellJSON {
	out := make([]cellJSON, 0, len(cells))
	for _, c := range cells {
		out = append(out, cellJSON{Row: c.Row, Col: c.Col})
	}
	return out
}

// RenderPuzzleEvent returns the SSE events that bring a watching page up to date
func (r *Renderer) RenderPuzzleEvent(ctx context.Context, event model.Event) ([]EventData, error) {
	p := event.Puzzle
	if p == nil || p.Grid == nil {
		return nil, nil
	}

	grid := func() (EventData, error) {
		return r.fragment(ctx, "grid-update", components.GridID, components.Grid(p, event.Selection, r.geometry))
	}
	words := func() (EventData, error) {
		return r.fragment(ctx, "words-update", components.WordsID, components.WordList(p))
	}
	status := func() (EventData, error) {
		return r.fragment(ctx, "status-update", components.StatusID, components.Status(p))
	}

	var steps []func() (EventData, error)
	switch event.Type {
	case model.EventSelectionChanged:
		steps = append(steps, grid)

	case model.EventWordFound:
		payload, _ := event.Payload.(model.WordFoundPayload)
		steps = append(steps, grid, words, func() (EventData, error) {
			return jsonEvent("word-found", map[string]any{
				"word":      payload.Found.Word,
				"cells":     cellsJSON(payload.Found.Cells),
				"remaining": payload.Remaining,
			})
		})

	case model.EventSelectionRejected:
		payload, _ := event.Payload.(model.SelectionRejectedPayload)
		steps = append(steps, grid, func() (EventData, error) {
			return jsonEvent("selection-rejected", map[string]any{"letters": payload.Letters})
		})

	case model.EventPuzzleCompleted:
		steps = append(steps, status, func() (EventData, error) {
			return jsonEvent("puzzle-completed", map[string]any{
				"puzzle_id": string(p.ID),
				"words":     len(p.Words),
			})
		})

	case model.EventPuzzleReset:
		payload, _ := event.Payload.(model.PuzzleResetPayload)
		steps = append(steps, func() (EventData, error) {
			return jsonEvent("puzzle-reset", map[string]any{"round": payload.Round})
		})
	}

	events := make([]EventData, 0, len(steps))
	for _, step := range steps {
		ev, err := step()
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}
