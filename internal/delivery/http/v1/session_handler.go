package v1

import (
	"errors"
	"net/http"

	"productpuppy/internal/delivery/http/middleware"
	"productpuppy/internal/domain"
	"productpuppy/pkg/logger"
	"productpuppy/pkg/utils"
)

type SessionHandler struct {
	sessionUC domain.SessionUsecase
}

func NewSessionHandler(sessionUC domain.SessionUsecase) *SessionHandler {
	return &SessionHandler{sessionUC: sessionUC}
}

type setQueryRequest struct {
	Query *string `json:"query"`
}

type setThemeRequest struct {
	DarkMode *bool `json:"darkMode"`
}

// GET /api/v1/session
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.writeView(w, r)
}

// PUT /api/v1/session/query
func (h *SessionHandler) SetQuery(w http.ResponseWriter, r *http.Request) {
	var req setQueryRequest
	if err := utils.ReadJSON(r, &req); err != nil || req.Query == nil {
		utils.WriteError(w, http.StatusBadRequest, `body must be {"query": string}`)
		return
	}

	id, ok := middleware.SessionID(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusInternalServerError, "session unavailable")
		return
	}
	if _, err := h.sessionUC.SetQuery(r.Context(), id, *req.Query); err != nil {
		h.writeSessionError(w, r, err)
		return
	}
	h.writeView(w, r)
}

// POST /api/v1/session/reveal
func (h *SessionHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.SessionID(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusInternalServerError, "session unavailable")
		return
	}
	if _, err := h.sessionUC.Reveal(r.Context(), id); err != nil {
		h.writeSessionError(w, r, err)
		return
	}
	h.writeView(w, r)
}

// PUT /api/v1/session/theme
func (h *SessionHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req setThemeRequest
	if err := utils.ReadJSON(r, &req); err != nil || req.DarkMode == nil {
		utils.WriteError(w, http.StatusBadRequest, `body must be {"darkMode": bool}`)
		return
	}

	id, ok := middleware.SessionID(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusInternalServerError, "session unavailable")
		return
	}
	if _, err := h.sessionUC.ToggleTheme(r.Context(), id, *req.DarkMode); err != nil {
		h.writeSessionError(w, r, err)
		return
	}
	h.writeView(w, r)
}

func (h *SessionHandler) writeView(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.SessionID(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusInternalServerError, "session unavailable")
		return
	}

	view, err := h.sessionUC.View(r.Context(), id)
	if err != nil {
		h.writeSessionError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, domain.Response{Success: true, Data: view})
}

func (h *SessionHandler) writeSessionError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrSessionNotFound) {
		// Expired between the middleware and the handler; the next request gets a new one.
		utils.WriteError(w, http.StatusConflict, "session expired, retry")
		return
	}
	logger.WithContext(r.Context()).Error().Err(err).Msg("Session operation failed")
	utils.WriteError(w, http.StatusInternalServerError, "session operation failed")
}
