package domain

import "context"

// Product is one entry of the fixed landing-page catalog.
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// --- Interfaces ---

// ProductRepository serves the read-only catalog. Implementations return
// products in catalog order and hand out copies.
type ProductRepository interface {
	GetProducts(ctx context.Context) ([]Product, error)
	GetProductByID(ctx context.Context, id int) (*Product, error)
}

type CatalogUsecase interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProductByID(ctx context.Context, id int) (*Product, error)
}
