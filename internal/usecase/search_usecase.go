package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"productpuppy/internal/domain"
	"productpuppy/pkg/cache"
)

// FilterProducts keeps, in catalog order, every product whose name, category
// or description contains query case-insensitively. An empty query keeps all.
func FilterProducts(query string, catalog []domain.Product) []domain.Product {
	needle := strings.ToLower(query)
	out := make([]domain.Product, 0, len(catalog))
	for _, p := range catalog {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Only the most recent query and its result are memoized.
const lastSearchKey = "search:last"

type lastSearch struct {
	query    string
	products []domain.Product
}

type searchUsecase struct {
	productRepo domain.ProductRepository
	cache       cache.CacheService
	cacheTTL    time.Duration
	timeout     time.Duration
}

func NewSearchUsecase(productRepo domain.ProductRepository, cache cache.CacheService, cacheTTL, timeout time.Duration) domain.SearchUsecase {
	return &searchUsecase{
		productRepo: productRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
		timeout:     timeout,
	}
}

func (u *searchUsecase) Search(ctx context.Context, query string) (domain.SearchResult, error) {
	if last, found := u.cache.Get(lastSearchKey); found {
		if hit, ok := last.(lastSearch); ok && hit.query == query {
			return domain.SearchResult{Query: query, Products: cloneProducts(hit.products)}, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	catalog, err := u.productRepo.GetProducts(ctx)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("load catalog: %w", err)
	}

	products := FilterProducts(query, catalog)
	u.cache.Set(lastSearchKey, lastSearch{query: query, products: products}, u.cacheTTL)

	return domain.SearchResult{Query: query, Products: cloneProducts(products)}, nil
}

func cloneProducts(in []domain.Product) []domain.Product {
	out := make([]domain.Product, len(in))
	copy(out, in)
	return out
}
