package ports

import (
	"context"
	"io"

	"github.com/glowmart/shop-api/internal/core/domain"
)

// ImageUpload describes an optional image attached to a create/update call.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// ProductInput carries the writable product fields.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Quantity    int
	Brand       string
	Bestseller  bool
	NewArrival  bool
	CategoryID  string
}

// ListProductsResult is one page of a filtered listing.
type ListProductsResult struct {
	Items      []*domain.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ProductService defines catalog use cases.
type ProductService interface {
	Create(ctx context.Context, input ProductInput, image *ImageUpload) (*domain.Product, error)
	Update(ctx context.Context, id string, input ProductInput, image *ImageUpload) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Product, error)
	// List applies the filter criteria; an unknown CategoryID here simply
	// yields an empty page.
	List(ctx context.Context, filter ProductFilter) (*ListProductsResult, error)
	// ListByCategory is the explicit category-browse call: a nonexistent
	// category is a NotFound error, not an empty page.
	ListByCategory(ctx context.Context, categoryID string, page, limit int) (*ListProductsResult, error)
	Bestsellers(ctx context.Context, page, limit int) (*ListProductsResult, error)
	NewArrivals(ctx context.Context, page, limit int) (*ListProductsResult, error)
}
