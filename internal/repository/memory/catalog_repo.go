package memoryrepo

import (
	"context"
	"fmt"

	"productpuppy/internal/domain"
	"productpuppy/pkg/utils"
)

// seedProducts is the landing-page catalog, in display order.
var seedProducts = []domain.Product{
	{ID: 1, Name: "Laptop", Category: "Electronics", Description: "High-performance laptop for work and gaming"},
	{ID: 2, Name: "Smartphone", Category: "Electronics", Description: "Latest model with advanced camera features"},
	{ID: 3, Name: "Running Shoes", Category: "Sports", Description: "Comfortable shoes for long-distance running"},
	{ID: 4, Name: "Coffee Maker", Category: "Home Appliances", Description: "Automatic coffee maker with built-in grinder"},
	{ID: 5, Name: "Yoga Mat", Category: "Fitness", Description: "Non-slip yoga mat for home workouts"},
	{ID: 6, Name: "Wireless Headphones", Category: "Electronics", Description: "Noise-cancelling headphones with long battery life"},
}

type productRepository struct {
	products []domain.Product
	byID     map[int]int
}

// NewProductRepository returns the fixed six-product catalog.
func NewProductRepository() domain.ProductRepository {
	repo, err := NewProductRepositoryFrom(seedProducts)
	if err != nil {
		// The seed is a compile-time constant.
		panic(err)
	}
	return repo
}

// NewProductRepositoryFrom builds a catalog from products, keeping their order.
// IDs must be positive and unique.
func NewProductRepositoryFrom(products []domain.Product) (domain.ProductRepository, error) {
	repo := &productRepository{
		products: make([]domain.Product, len(products)),
		byID:     make(map[int]int, len(products)),
	}

	for i, p := range products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("product %q: id must be positive: %w", p.Name, domain.ErrInvalidInput)
		}
		if _, dup := repo.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d: %w", p.ID, domain.ErrInvalidInput)
		}
		if p.Slug == "" {
			p.Slug = utils.GenerateSlug(p.Name)
		}
		repo.products[i] = p
		repo.byID[p.ID] = i
	}

	return repo, nil
}

func (r *productRepository) GetProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	idx, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, domain.ErrProductNotFound)
	}
	p := r.products[idx]
	return &p, nil
}
