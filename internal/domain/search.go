package domain

import "context"

// SearchResult is the outcome of filtering the catalog with a query.
type SearchResult struct {
	Query    string    `json:"query"`
	Products []Product `json:"products"`
}

// Empty reports whether nothing in the catalog matched.
func (r SearchResult) Empty() bool {
	return len(r.Products) == 0
}

type SearchUsecase interface {
	Search(ctx context.Context, query string) (SearchResult, error)
}
