package sse

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordpuzzles/internal/model"
	"github.com/mcoot/wordpuzzles/internal/services/selection"
	"github.com/mcoot/wordpuzzles/internal/testutil"
)

func TestWrapForOOBSwap(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		html     string
		expected string
	}{
		{
			name:     "simple content",
			id:       "word-list",
			html:     "<p>Hello</p>",
			expected: `<div id="word-list" hx-swap-oob="true"><p>Hello</p></div>`,
		},
		{
			name:     "empty content",
			id:       "puzzle-status",
			html:     "",
			expected: `<div id="puzzle-status" hx-swap-oob="true"></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WrapForOOBSwap(tt.id, tt.html))
		})
	}
}

func testPuzzle() *model.Puzzle {
	cat := model.FoundWord{Word: "CAT", Cells: []model.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}}
	return &model.Puzzle{
		ID:         "PUZZLE1",
		CategoryID: "animali",
		Words:      []string{"CAT", "COW"},
		Grid:       model.GridFromRows("CAT", "OXX", "WXX"),
		Found:      []model.FoundWord{cat},
		Round:      1,
	}
}

// dataOf strips the SSE framing from one message
func dataOf(msg string) string {
	var lines []string
	for _, line := range strings.Split(msg, "\n") {
		if strings.HasPrefix(line, "data: ") {
			lines = append(lines, strings.TrimPrefix(line, "data: "))
		}
	}
	return strings.Join(lines, "\n")
}

func eventOf(msg string) string {
	first, _, _ := strings.Cut(msg, "\n")
	return strings.TrimPrefix(first, "event: ")
}

func newWatchedBroadcaster(t *testing.T) (*Broadcaster, *Client) {
	t.Helper()
	manager := NewHubManager(testutil.NopLogger())
	t.Cleanup(func() { manager.RemoveHub("PUZZLE1") })

	hub := manager.GetOrCreateHub("PUZZLE1")
	client := NewClient()
	require.True(t, hub.Register(client))
	waitForClients(t, hub, 1)

	return NewBroadcaster(manager, selection.DefaultGeometry(), testutil.NopLogger()), client
}

func TestBroadcaster_SelectionChangedSendsGrid(t *testing.T) {
	b, client := newWatchedBroadcaster(t)

	b.Publish(context.Background(), model.Event{
		Type:      model.EventSelectionChanged,
		PuzzleID:  "PUZZLE1",
		Puzzle:    testPuzzle(),
		Selection: []model.Position{{Row: 0, Col: 0}, {Row: 1, Col: 0}},
	})

	msg := receive(t, client)
	assert.Equal(t, "grid-update", eventOf(msg))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(dataOf(msg)))
	require.NoError(t, err)
	assert.Equal(t, 9, doc.Find("#grid .cell").Length())
	assert.Equal(t, 2, doc.Find("#grid .cell.selected").Length())
	assert.Equal(t, 3, doc.Find("#grid .cell.found").Length())
	assert.Equal(t, "O", doc.Find(`#grid .cell[data-row="1"][data-col="0"]`).Text())
}

func TestBroadcaster_WordFoundSendsFragmentsThenJSON(t *testing.T) {
	b, client := newWatchedBroadcaster(t)
	p := testPuzzle()

	b.Publish(context.Background(), model.Event{
		Type:     model.EventWordFound,
		PuzzleID: "PUZZLE1",
		Puzzle:   p,
		Payload:  model.WordFoundPayload{Found: p.Found[0], Remaining: 1},
	})

	assert.Equal(t, "grid-update", eventOf(receive(t, client)))

	words := receive(t, client)
	assert.Equal(t, "words-update", eventOf(words))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(dataOf(words)))
	require.NoError(t, err)
	assert.Equal(t, "CAT", doc.Find("#word-list li.found").Text())
	assert.Equal(t, 2, doc.Find("#word-list li").Length())

	found := receive(t, client)
	assert.Equal(t, "word-found", eventOf(found))
	assert.JSONEq(t,
		`{"word":"CAT","cells":[{"row":0,"col":0},{"row":0,"col":1},{"row":0,"col":2}],"remaining":1}`,
		dataOf(found))
}

func TestBroadcaster_RejectedAndCompletedAndReset(t *testing.T) {
	b, client := newWatchedBroadcaster(t)
	p := testPuzzle()
	ctx := context.Background()

	b.Publish(ctx, model.Event{
		Type: model.EventSelectionRejected, PuzzleID: "PUZZLE1", Puzzle: p,
		Payload: model.SelectionRejectedPayload{Letters: "XX"},
	})
	assert.Equal(t, "grid-update", eventOf(receive(t, client)))
	rejected := receive(t, client)
	assert.Equal(t, "selection-rejected", eventOf(rejected))
	assert.JSONEq(t, `{"letters":"XX"}`, dataOf(rejected))

	done := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	p.CompletedAt = &done
	b.Publish(ctx, model.Event{Type: model.EventPuzzleCompleted, PuzzleID: "PUZZLE1", Puzzle: p})
	status := receive(t, client)
	assert.Equal(t, "status-update", eventOf(status))
	assert.Contains(t, dataOf(status), "All words found!")
	completed := receive(t, client)
	assert.Equal(t, "puzzle-completed", eventOf(completed))
	assert.JSONEq(t, `{"puzzle_id":"PUZZLE1","words":2}`, dataOf(completed))

	b.Publish(ctx, model.Event{
		Type: model.EventPuzzleReset, PuzzleID: "PUZZLE1", Puzzle: p,
		Payload: model.PuzzleResetPayload{Round: 2},
	})
	reset := receive(t, client)
	assert.Equal(t, "puzzle-reset", eventOf(reset))
	assert.JSONEq(t, `{"round":2}`, dataOf(reset))
}

func TestBroadcaster_UnwatchedPuzzleIsIgnored(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	b := NewBroadcaster(manager, selection.DefaultGeometry(), testutil.NopLogger())

	b.Publish(context.Background(), model.Event{
		Type: model.EventSelectionChanged, PuzzleID: "NOBODY", Puzzle: testPuzzle(),
	})

	assert.Nil(t, manager.GetHub("NOBODY"))
}
