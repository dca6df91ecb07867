// Package pages holds the full HTML pages.
package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/wordpuzzles/internal/model"
	"github.com/mcoot/wordpuzzles/internal/web/templates/layout"
)

// HomeData is the data for the home page
type HomeData struct {
	layout.PageData
	Categories []model.Category
}

// Home renders the category picker
func Home(data HomeData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<h1>Pick a category</h1><ul class="categories">`)
		for _, c := range data.Categories {
			fmt.Fprintf(&b, `<li class="category" data-category-id="%s">`+
				`<form method="post" action="/puzzles">`+
				`<input type="hidden" name="category_id" value="%s">`+
				`<button type="submit"><span class="emoji">%s</span> <span class="name">%s</span></button>`+
				`</form><p class="description">%s</p></li>`,
				templ.EscapeString(string(c.ID)), templ.EscapeString(string(c.ID)),
				templ.EscapeString(c.Emoji), templ.EscapeString(c.Name),
				templ.EscapeString(c.Description))
		}
		b.WriteString(`</ul>`)
		if len(data.Categories) == 0 {
			b.WriteString(`<p class="empty">No categories available.</p>`)
		}

		_, err := io.WriteString(w, b.String())
		return err
	})
	return layout.Base(data.PageData, body)
}
