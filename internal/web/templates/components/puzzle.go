// Package components holds the HTML fragments shared by pages and SSE updates.
package components

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/wordpuzzles/internal/model"
	"github.com/mcoot/wordpuzzles/internal/services/selection"
)

// IDs of the regions the puzzle page swaps out-of-band
const (
	GridID   = "grid"
	WordsID  = "word-list"
	StatusID = "puzzle-status"
)

// Region renders c inside the element with the given id. Out-of-band
// updates replace the whole region.
func Region(id string, c templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="`+templ.EscapeString(id)+`">`); err != nil {
			return err
		}
		if err := c.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// Grid renders the letter grid at geo, marking found cells and the live selection
func Grid(p *model.Puzzle, sel []model.Position, geo selection.Geometry) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		found := p.FoundCells()
		selected := make(map[model.Position]bool, len(sel))
		for _, c := range sel {
			selected[c] = true
		}

		var b strings.Builder
		extent := px(geo.Extent(p.Grid.Size))
		fmt.Fprintf(&b, `<div class="grid" data-puzzle-id="%s" data-size="%d" data-cell-size="%s" data-gap="%s" data-padding="%s" style="position:relative;width:%s;height:%s">`,
			templ.EscapeString(string(p.ID)), p.Grid.Size,
			strconv.FormatFloat(geo.CellSize, 'f', -1, 64),
			strconv.FormatFloat(geo.Gap, 'f', -1, 64),
			strconv.FormatFloat(geo.Padding, 'f', -1, 64),
			extent, extent)

		for row := 0; row < p.Grid.Size; row++ {
			for col := 0; col < p.Grid.Size; col++ {
				pos := model.Position{Row: row, Col: col}
				class := "cell"
				if found[pos] {
					class += " found"
				}
				if selected[pos] {
					class += " selected"
				}
				x, y := geo.CellOrigin(pos)
				fmt.Fprintf(&b, `<div class="%s" data-row="%d" data-col="%d" style="position:absolute;left:%s;top:%s;width:%s;height:%s">%s</div>`,
					class, row, col, px(x), px(y), px(geo.CellSize), px(geo.CellSize),
					templ.EscapeString(string(p.Grid.Get(pos))))
			}
		}
		b.WriteString(`</div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// WordList renders the target words with found ones struck through
func WordList(p *model.Puzzle) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<div class="word-list"><p class="progress">%d / %d</p><ul>`,
			len(p.Found), len(p.Words))
		for _, word := range p.Words {
			class := "word"
			if p.IsFound(word) {
				class += " found"
			}
			fmt.Fprintf(&b, `<li class="%s">%s</li>`, class, templ.EscapeString(word))
		}
		b.WriteString(`</ul></div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Status renders the completion banner and the play-again form
func Status(p *model.Puzzle) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div class="puzzle-status">`)
		if p.CompletedAt != nil {
			b.WriteString(`<p class="complete">All words found!</p>`)
		}
		fmt.Fprintf(&b, `<form method="post" action="/puzzles/%s/reset"><button type="submit">Play again</button></form>`,
			templ.EscapeString(string(p.ID)))
		if len(p.Dropped) > 0 {
			fmt.Fprintf(&b, `<p class="dropped">Not placed: %s</p>`, templ.EscapeString(strings.Join(p.Dropped, ", ")))
		}
		b.WriteString(`</div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
