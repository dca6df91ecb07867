package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/mcoot/wordpuzzles/internal/middleware"
	"github.com/mcoot/wordpuzzles/internal/web/templates/layout"
)

// Recovery creates panic recovery middleware that answers with an HTML error page
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, webPanicHandler)
}

var errorBody = templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, `<h1>Internal Server Error</h1><p>Something went wrong.</p><p><a href="/">Back to the categories</a></p>`)
	return err
})

func webPanicHandler(w http.ResponseWriter, r *http.Request, _ any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_ = layout.Base(layout.PageData{Title: "Error"}, errorBody).Render(r.Context(), w)
}
