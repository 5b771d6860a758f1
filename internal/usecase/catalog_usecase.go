package usecase

import (
	"context"
	"fmt"
	"time"

	"productpuppy/internal/domain"
	"productpuppy/pkg/cache"
)

type catalogUsecase struct {
	repo     domain.ProductRepository
	cache    cache.CacheService
	cacheTTL time.Duration
}

func NewCatalogUsecase(repo domain.ProductRepository, cache cache.CacheService, cacheTTL time.Duration) domain.CatalogUsecase {
	return &catalogUsecase{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

func (u *catalogUsecase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	key := "catalog:products"
	if val, found := u.cache.Get(key); found {
		return cloneProducts(val.([]domain.Product)), nil
	}

	products, err := u.repo.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	u.cache.Set(key, products, u.cacheTTL)
	return cloneProducts(products), nil
}

func (u *catalogUsecase) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	if id <= 0 {
		return nil, fmt.Errorf("product id %d: %w", id, domain.ErrInvalidInput)
	}
	return u.repo.GetProductByID(ctx, id)
}
