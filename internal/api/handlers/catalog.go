package handlers

import (
	"net/http"

	"github.com/am-nutrition/storefront/internal/api/middleware"
	"github.com/am-nutrition/storefront/internal/catalog"
	"github.com/am-nutrition/storefront/internal/errors"
	"github.com/am-nutrition/storefront/internal/utils/response"
)

type CatalogHandler struct {
	snapshot *catalog.Snapshot
}

func NewCatalogHandler(snapshot *catalog.Snapshot) *CatalogHandler {
	return &CatalogHandler{snapshot: snapshot}
}

// ListProducts returns the snapshot, optionally narrowed by the `category`
// and `q` query parameters. An empty snapshot is a valid, explicit state.
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		category := r.URL.Query().Get("category")
		query := r.URL.Query().Get("q")

		if category == "" && query == "" {
			response.Success(w, http.StatusOK, h.snapshot.List())

			return
		}

		response.Success(w, http.StatusOK, h.snapshot.Filter(category, query))
	}
}

func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id := r.PathValue("id")

		product, ok := h.snapshot.Get(id)
		if !ok {
			response.Error(w, errors.NotFoundError("Product not found"))

			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

func (h *CatalogHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.snapshot.CategoryCounts())
	}
}

func (h *CatalogHandler) Refresh() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := h.snapshot.Refresh(r.Context()); err != nil {
			logger.Error("Catalog refresh failed", "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("Catalog refreshed", "products", h.snapshot.Len())
		response.Success(w, http.StatusOK, map[string]int{"products": h.snapshot.Len()})
	}
}
