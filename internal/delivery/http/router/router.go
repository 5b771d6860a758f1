package router

import (
	"net/http"
	"time"

	"productpuppy/internal/delivery/http/middleware"
	v1 "productpuppy/internal/delivery/http/v1"
	"productpuppy/internal/delivery/http/web"
	"productpuppy/internal/domain"
	"productpuppy/internal/usecase"

	"github.com/NYTimes/gziphandler"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Deps struct {
	Catalog       domain.CatalogUsecase
	Search        domain.SearchUsecase
	Sessions      domain.SessionUsecase
	Sitemap       *usecase.SitemapUsecase
	RateLimiter   *middleware.RateLimiter
	AllowedOrigin string
	SessionTTL    time.Duration
	SecureCookie  bool
}

// New wires every route. Outer middleware order: gzip, rate limit, request
// logger, panic recovery, CORS. Session-bound routes also get a session.
func New(d Deps) (http.Handler, error) {
	static, err := web.Static()
	if err != nil {
		return nil, err
	}

	landingHandler := web.NewLandingHandler(d.Sessions)
	catalogHandler := v1.NewCatalogHandler(d.Catalog)
	searchHandler := v1.NewSearchHandler(d.Search)
	sessionHandler := v1.NewSessionHandler(d.Sessions)
	sitemapHandler := v1.NewSitemapHandler(d.Sitemap)
	healthHandler := v1.NewHealthHandler(d.Sessions)

	withSession := middleware.SessionMiddleware(d.Sessions, d.SessionTTL, d.SecureCookie)

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.NewCORSMiddleware(d.AllowedOrigin))

	// Stateless
	r.Handle("/static/*", http.StripPrefix("/static/", static))
	r.Get("/sitemap.xml", sitemapHandler.ServeHTTP)
	r.Get("/health", healthHandler.Health)
	r.Get("/api/v1/health", healthHandler.Health)
	r.Get("/api/v1/products", catalogHandler.ListProducts)
	r.Get("/api/v1/products/{id}", catalogHandler.GetProductByID)
	r.Get("/api/v1/search", searchHandler.Search)

	// Page view state
	r.Group(func(r chi.Router) {
		r.Use(withSession)

		r.Get("/", landingHandler.Page)
		r.Post("/search/reveal", landingHandler.Reveal)
		r.Post("/theme", landingHandler.Theme)

		r.Get("/api/v1/session", sessionHandler.GetSession)
		r.Put("/api/v1/session/query", sessionHandler.SetQuery)
		r.Post("/api/v1/session/reveal", sessionHandler.Reveal)
		r.Put("/api/v1/session/theme", sessionHandler.SetTheme)
	})

	var handler http.Handler = r
	handler = middleware.RequestLogger(handler)
	if d.RateLimiter != nil {
		handler = d.RateLimiter.Middleware()(handler)
	}
	handler = gziphandler.GzipHandler(handler)

	return handler, nil
}
