package v1

import (
	"errors"
	"net/http"

	"productpuppy/internal/domain"
	"productpuppy/pkg/logger"
	"productpuppy/pkg/utils"

	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalogUC domain.CatalogUsecase
}

func NewCatalogHandler(uc domain.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: uc}
}

// GET /api/v1/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogUC.ListProducts(r.Context())
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to list products")
		utils.WriteError(w, http.StatusInternalServerError, "failed to list products")
		return
	}

	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: true,
		Data:    products,
		Meta:    map[string]int{"totalItems": len(products)},
	})
}

// GET /api/v1/products/{id}
func (h *CatalogHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	// Anything that is not a positive integer falls back to 0 and is rejected below
	id := utils.ParseInt(chi.URLParam(r, "id"), 0)

	product, err := h.catalogUC.GetProductByID(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		utils.WriteError(w, http.StatusBadRequest, "product id must be a positive integer")
		return
	case errors.Is(err, domain.ErrProductNotFound):
		utils.WriteError(w, http.StatusNotFound, "product not found")
		return
	case err != nil:
		logger.WithContext(r.Context()).Error().Err(err).Int("product_id", id).Msg("Failed to get product")
		utils.WriteError(w, http.StatusInternalServerError, "failed to get product")
		return
	}

	utils.WriteJSON(w, http.StatusOK, domain.Response{Success: true, Data: product})
}
