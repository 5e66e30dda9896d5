package ports

import (
	"context"

	"github.com/glowmart/shop-api/internal/core/domain"
)

// ProductFilter carries the optional listing criteria. Every present field
// narrows the result set; absent fields impose no constraint. Boolean flags
// are tri-state: only an explicit true restricts the results, false and nil
// both mean "don't care".
type ProductFilter struct {
	Search     string   // partial, case-insensitive match on name or description
	MinPrice   *float64 // inclusive lower price bound
	MaxPrice   *float64 // inclusive upper price bound
	Brand      string   // case-insensitive exact match
	Bestseller *bool
	NewArrival *bool
	CategoryID string
	Page       int // 1-based
	Limit      int // capped by the service layer
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
	// List returns a page of products matching filter and the total count.
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, int64, error)
}
