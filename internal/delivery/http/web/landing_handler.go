package web

import (
	"embed"
	"errors"
	"io/fs"
	"net/http"
	"strconv"

	"productpuppy/internal/delivery/http/middleware"
	"productpuppy/internal/delivery/http/web/components"
	"productpuppy/internal/domain"
	"productpuppy/pkg/logger"

	g "maragu.dev/gomponents"
)

//go:embed static
var staticFS embed.FS

// Static serves the embedded stylesheet and favicon.
func Static() (http.Handler, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	return http.FileServer(http.FS(sub)), nil
}

type LandingHandler struct {
	sessionUC domain.SessionUsecase
}

func NewLandingHandler(sessionUC domain.SessionUsecase) *LandingHandler {
	return &LandingHandler{sessionUC: sessionUC}
}

// RenderPage builds the whole landing page for one view.
func RenderPage(view domain.PageView) g.Node {
	return components.Layout(
		components.PageConfig{
			Title:       "ProductPuppy",
			Description: "Search Product Hunt with Context in any language",
			Dark:        view.State.IsDarkMode,
		},
		components.ThemeToggle(view.State.IsDarkMode),
		components.Hero(),
		components.Features(),
		components.SearchSection(view),
		components.CTA(),
		components.PageFooter(),
	)
}

// GET /
// A q parameter, even an empty one, replaces the session query before rendering.
func (h *LandingHandler) Page(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.SessionID(r.Context())
	if !ok {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}

	if query := r.URL.Query(); query.Has("q") {
		if _, err := h.sessionUC.SetQuery(r.Context(), id, query.Get("q")); err != nil {
			h.fail(w, r, err)
			return
		}
	}

	view, err := h.sessionUC.View(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := RenderPage(view).Render(w); err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to render landing page")
	}
}

// POST /search/reveal
func (h *LandingHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.SessionID(r.Context())
	if !ok {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}

	if _, err := h.sessionUC.Reveal(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}

	http.Redirect(w, r, "/#search", http.StatusSeeOther)
}

// POST /theme
// Form field dark is "true" or "false"; without it the current mode flips.
func (h *LandingHandler) Theme(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.SessionID(r.Context())
	if !ok {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	var err error
	if raw := r.PostFormValue("dark"); raw != "" {
		enabled, perr := strconv.ParseBool(raw)
		if perr != nil {
			http.Error(w, "dark must be true or false", http.StatusBadRequest)
			return
		}
		_, err = h.sessionUC.ToggleTheme(r.Context(), id, enabled)
	} else {
		_, err = h.sessionUC.FlipTheme(r.Context(), id)
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *LandingHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrSessionNotFound) {
		// Expired mid-request; reloading picks up a fresh session.
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	logger.WithContext(r.Context()).Error().Err(err).Msg("Landing page request failed")
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
