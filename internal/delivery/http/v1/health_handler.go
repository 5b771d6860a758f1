package v1

import (
	"net/http"

	"productpuppy/internal/domain"
	"productpuppy/pkg/utils"
)

type HealthHandler struct {
	sessionUC domain.SessionUsecase
}

func NewHealthHandler(sessionUC domain.SessionUsecase) *HealthHandler {
	return &HealthHandler{sessionUC: sessionUC}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"sessions": h.sessionUC.ActiveSessions(),
	})
}
