package handler

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	sharedmw "github.com/mcoot/wordpuzzles/internal/middleware"
	"github.com/mcoot/wordpuzzles/internal/web/middleware"
)

func renderPage(w http.ResponseWriter, r *http.Request, status int, page templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func redirectWithFlash(w http.ResponseWriter, r *http.Request, to, flashType, message string) {
	middleware.SetFlash(w, flashType, message)
	http.Redirect(w, r, to, http.StatusSeeOther)
}

func logError(logger *slog.Logger, r *http.Request, msg string, err error) {
	logger.Error(msg,
		slog.String("request_id", sharedmw.RequestID(r.Context())),
		slog.String("error", err.Error()),
	)
}
