package v1

import (
	"net/http"

	"productpuppy/internal/domain"
	"productpuppy/pkg/logger"
	"productpuppy/pkg/utils"
)

type SearchHandler struct {
	searchUC domain.SearchUsecase
}

func NewSearchHandler(searchUC domain.SearchUsecase) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
	}
}

// GET /api/v1/search?q=
// Stateless: filters the catalog without touching the caller's session.
// A missing q is the empty query and matches the whole catalog.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	result, err := h.searchUC.Search(r.Context(), query)
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Str("query", query).Msg("Search failed")
		utils.WriteError(w, http.StatusInternalServerError, "search failed")
		return
	}

	response := domain.Response{
		Success: true,
		Data:    result.Products,
		Meta: domain.SearchMeta{
			Query:      query,
			TotalItems: len(result.Products),
		},
	}
	if result.Empty() {
		response.Message = domain.NoResultsMessage
	}

	utils.WriteJSON(w, http.StatusOK, response)
}
