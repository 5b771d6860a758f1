package usecase

import (
	"context"
	"time"

	"productpuppy/pkg/cache"
)

type SitemapItem struct {
	Loc        string
	LastMod    string
	ChangeFreq string
	Priority   float32
}

// SitemapUsecase lists the public pages. The landing page is the only one;
// catalog entries are cards on it, not pages of their own.
type SitemapUsecase struct {
	baseURL  string
	cache    cache.CacheService
	cacheTTL time.Duration
}

func NewSitemapUsecase(baseURL string, cache cache.CacheService, cacheTTL time.Duration) *SitemapUsecase {
	return &SitemapUsecase{
		baseURL:  baseURL,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

func (u *SitemapUsecase) GenerateSitemap(ctx context.Context) ([]SitemapItem, error) {
	key := "sitemap:items"
	if val, found := u.cache.Get(key); found {
		return val.([]SitemapItem), nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items := []SitemapItem{{
		Loc:        u.baseURL + "/",
		LastMod:    time.Now().Format("2006-01-02"),
		ChangeFreq: "monthly",
		Priority:   1.0,
	}}

	u.cache.Set(key, items, u.cacheTTL)
	return items, nil
}
