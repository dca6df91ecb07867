package components

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/wordpuzzles/internal/model"
)

// WordleBoardID is the element ID of the Wordle board
const WordleBoardID = "wordle-board"

// WordleBoard renders all guess rows, padding unused rows with empty tiles
func WordleBoard(g *model.WordleGame) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<div id="%s" class="wordle-board" data-status="%s">`, WordleBoardID, g.Status)
		for i := 0; i < model.WordleMaxGuesses; i++ {
			b.WriteString(`<div class="wordle-row">`)
			if i < len(g.Guesses) {
				guess := g.Guesses[i]
				for j, r := range []rune(guess.Word) {
					state := ""
					if j < len(guess.States) {
						state = string(guess.States[j])
					}
					fmt.Fprintf(&b, `<span class="tile %s">%s</span>`, state, templ.EscapeString(string(r)))
				}
			} else {
				for j := 0; j < model.WordleWordLength; j++ {
					b.WriteString(`<span class="tile empty"></span>`)
				}
			}
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div>`)

		switch g.Status {
		case model.WordleStatusWon:
			b.WriteString(`<p class="wordle-result won">Solved!</p>`)
		case model.WordleStatusLost:
			fmt.Fprintf(&b, `<p class="wordle-result lost">The word was <strong>%s</strong></p>`, templ.EscapeString(g.Target))
		default:
			fmt.Fprintf(&b, `<form class="wordle-guess" method="post" action="/wordle/%s/guess">`+
				`<input name="word" maxlength="%d" minlength="%d" autocomplete="off" required autofocus>`+
				`<button type="submit">Guess</button></form>`,
				templ.EscapeString(string(g.ID)), model.WordleWordLength, model.WordleWordLength)
		}

		_, err := io.WriteString(w, b.String())
		return err
	})
}
