package handler

import (
	"net/http"

	"github.com/mcoot/wordpuzzles/internal/services/catalog"
	"github.com/mcoot/wordpuzzles/internal/web/middleware"
	"github.com/mcoot/wordpuzzles/internal/web/templates/layout"
	"github.com/mcoot/wordpuzzles/internal/web/templates/pages"
)

// HomeHandler handles the home page
type HomeHandler struct {
	catalog catalog.ServiceInterface
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(catalog catalog.ServiceInterface) *HomeHandler {
	return &HomeHandler{catalog: catalog}
}

// Home renders the category list
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := pages.HomeData{
		PageData: layout.PageData{
			Title: "Categories",
			Flash: middleware.GetFlash(r.Context()),
		},
	}
	if h.catalog.IsLoaded() {
		data.Categories = h.catalog.List()
	}

	renderPage(w, r, http.StatusOK, pages.Home(data))
}
