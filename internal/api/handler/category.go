package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordpuzzles/internal/api/response"
	"github.com/mcoot/wordpuzzles/internal/model"
	"github.com/mcoot/wordpuzzles/internal/services/catalog"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	catalog catalog.ServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(catalog catalog.ServiceInterface) *CategoryHandler {
	return &CategoryHandler{catalog: catalog}
}

// List handles GET /api/v1/categories
func (h *CategoryHandler) List(w http.ResponseWriter, _ *http.Request) {
	if !h.catalog.IsLoaded() {
		WriteError(w, model.ErrCatalogNotLoaded)
		return
	}
	response.JSON(w, http.StatusOK, response.CategoryListFromModel(h.catalog.List()))
}

// Get handles GET /api/v1/categories/{id}
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.CategoryID(mux.Vars(r)["id"])

	c, err := h.catalog.Get(id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CategoryDetailFromModel(*c))
}
