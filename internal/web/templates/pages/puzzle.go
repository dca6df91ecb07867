package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/wordpuzzles/internal/model"
	"github.com/mcoot/wordpuzzles/internal/services/selection"
	"github.com/mcoot/wordpuzzles/internal/web/templates/components"
	"github.com/mcoot/wordpuzzles/internal/web/templates/layout"
)

// PuzzleData is the data for the puzzle page
type PuzzleData struct {
	layout.PageData
	Category model.Category
	Puzzle   *model.Puzzle
	Geometry selection.Geometry
}

// pointerScript forwards pointer input on the grid to the JSON API, one request
// at a time and in order. Queued moves collapse into the latest. Updates come
// back over the event stream.
const pointerScript = `<script>
(function () {
  function grid() { return document.querySelector("#grid .grid"); }
  var id = grid().dataset.puzzleId;
  var active = false;
  var queue = [];
  var inflight = false;
  function payload(type, ev) {
    var r = grid().getBoundingClientRect();
    var g = grid().dataset;
    return {
      type: type,
      x: ev ? ev.clientX - r.left : 0,
      y: ev ? ev.clientY - r.top : 0,
      cell_size: parseFloat(g.cellSize),
      gap: parseFloat(g.gap),
      padding: parseFloat(g.padding)
    };
  }
  function vibrate(body) {
    (body.feedback || []).forEach(function (k) {
      if (navigator.vibrate) { navigator.vibrate(k === "light" ? 10 : k === "success" ? [20, 40, 20] : 60); }
    });
  }
  function pump() {
    if (inflight || queue.length === 0) { return; }
    inflight = true;
    fetch("/api/v1/puzzles/" + id + "/pointer", {
      method: "POST",
      headers: {"Content-Type": "application/json"},
      body: JSON.stringify(queue.shift())
    }).then(function (res) { return res.json(); }).then(vibrate).catch(function () {}).then(function () {
      inflight = false;
      pump();
    });
  }
  function send(type, ev) {
    var p = payload(type, ev);
    var last = queue[queue.length - 1];
    if (type === "move" && last && last.type === "move") {
      queue[queue.length - 1] = p;
    } else {
      queue.push(p);
    }
    pump();
  }
  document.addEventListener("pointerdown", function (ev) {
    if (!ev.target.closest("#grid")) { return; }
    active = true;
    ev.preventDefault();
    send("down", ev);
  });
  document.addEventListener("pointermove", function (ev) { if (active) { send("move", ev); } });
  document.addEventListener("pointerup", function (ev) { if (active) { active = false; send("up", ev); } });
  document.addEventListener("pointercancel", function () { if (active) { active = false; send("cancel"); } });
  document.body.addEventListener("htmx:sseMessage", function (ev) {
    if (ev.detail.type === "puzzle-reset") { window.location.reload(); }
  });
})();
</script>`

// Puzzle renders a puzzle with its live event stream
func Puzzle(data PuzzleData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := data.Puzzle
		if _, err := fmt.Fprintf(w, `<section class="puzzle" hx-ext="sse" sse-connect="/puzzles/%s/events" sse-swap="grid-update,words-update,status-update" hx-swap="none">`+
			`<h1><span class="emoji">%s</span> %s</h1>`,
			templ.EscapeString(string(p.ID)), templ.EscapeString(data.Category.Emoji), templ.EscapeString(data.Category.Name)); err != nil {
			return err
		}
		for _, c := range []templ.Component{
			components.Region(components.GridID, components.Grid(p, nil, data.Geometry)),
			components.Region(components.WordsID, components.WordList(p)),
			components.Region(components.StatusID, components.Status(p)),
		} {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`+pointerScript)
		return err
	})
	return layout.Base(data.PageData, body)
}
