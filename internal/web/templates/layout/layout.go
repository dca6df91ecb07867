// Package layout holds the page shell shared by every HTML page.
package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// FlashMessage is a one-shot notice shown at the top of the next page
type FlashMessage struct {
	Type    string // "info", "error" or "success"
	Message string
}

// PageData is the data every page needs
type PageData struct {
	Title string
	Flash *FlashMessage
}

// Base wraps body in the HTML document shell
func Base(data PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := "Word Puzzles"
		if data.Title != "" {
			title = data.Title + " | " + title
		}
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="it"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>`+templ.EscapeString(title)+`</title>`+
			`<link rel="stylesheet" href="/static/style.css">`+
			`<script src="https://unpkg.com/htmx.org@2.0.4"></script>`+
			`<script src="https://unpkg.com/htmx-ext-sse@2.2.2/sse.js"></script>`+
			`</head><body><header><a href="/" class="brand">Word Puzzles</a> <a href="/wordle">Wordle</a></header><main>`); err != nil {
			return err
		}
		if data.Flash != nil {
			if err := Flash(*data.Flash).Render(ctx, w); err != nil {
				return err
			}
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

// Flash renders a flash message banner
func Flash(f FlashMessage) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="flash flash-`+templ.EscapeString(f.Type)+`" role="alert">`+
			templ.EscapeString(f.Message)+`</div>`)
		return err
	})
}
