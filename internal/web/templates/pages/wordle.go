package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/wordpuzzles/internal/model"
	"github.com/mcoot/wordpuzzles/internal/web/templates/components"
	"github.com/mcoot/wordpuzzles/internal/web/templates/layout"
)

// WordleData is the data for the Wordle page
type WordleData struct {
	layout.PageData
	Game *model.WordleGame
}

// Wordle renders a Wordle game
func Wordle(data WordleData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="wordle"><h1>Wordle <small>%s</small></h1>`,
			templ.EscapeString(data.Game.DateKey)); err != nil {
			return err
		}
		if err := components.WordleBoard(data.Game).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<form method="post" action="/wordle"><button type="submit">New game</button></form></section>`)
		return err
	})
	return layout.Base(data.PageData, body)
}
