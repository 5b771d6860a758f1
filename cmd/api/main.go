package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"productpuppy/config"
	"productpuppy/internal/delivery/http/middleware"
	"productpuppy/internal/delivery/http/router"
	"productpuppy/internal/infrastructure/cache"
	memoryrepo "productpuppy/internal/repository/memory"
	"productpuppy/internal/usecase"
	"productpuppy/pkg/logger"
	"productpuppy/pkg/utils"

	"golang.org/x/time/rate"
)

const (
	serviceName    = "productpuppy"
	serviceVersion = "1.0.0"
)

func main() {
	cfg := config.LoadConfig()
	utils.SetSecret(cfg.SessionSecret)

	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	// Read-through caches: default 30m, cleanup every 60m
	memCache := cache.NewMemoryCache(30*time.Minute, 60*time.Minute)
	// Sessions get their own store so ItemCount reports live page views only
	sessionStore := cache.NewMemoryCache(cfg.SessionTTL, cfg.SessionTTL)

	// Repositories
	productRepo := memoryrepo.NewProductRepository()
	sessionRepo := memoryrepo.NewSessionRepository(sessionStore, cfg.SessionTTL)

	// Usecases
	catalogUC := usecase.NewCatalogUsecase(productRepo, memCache, cfg.CacheSearchTTL)
	searchUC := usecase.NewSearchUsecase(productRepo, memCache, cfg.CacheSearchTTL, cfg.SearchTimeout)
	sessionUC := usecase.NewSessionUsecase(sessionRepo, searchUC)
	sitemapUC := usecase.NewSitemapUsecase(cfg.BaseURL, memCache, cfg.CacheSitemapTTL)

	// Idle client buckets drop out after 3m
	rateLimiter := middleware.NewRateLimiter(
		cache.NewMemoryCache(3*time.Minute, time.Minute),
		rate.Limit(cfg.RateLimitRPS),
		cfg.RateLimitBurst,
		3*time.Minute,
	)

	handler, err := router.New(router.Deps{
		Catalog:       catalogUC,
		Search:        searchUC,
		Sessions:      sessionUC,
		Sitemap:       sitemapUC,
		RateLimiter:   rateLimiter,
		AllowedOrigin: cfg.AllowedOrigin,
		SessionTTL:    cfg.SessionTTL,
		SecureCookie:  cfg.SessionCookieSecure,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build router")
	}

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    16 << 10,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	logger.ServiceStart(serviceName, serviceVersion, cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.ServiceStop(serviceName)
}
