package ports

import (
	"context"

	"github.com/glowmart/shop-api/internal/core/domain"
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) (*domain.Review, error)
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	Update(ctx context.Context, r *domain.Review) error
	Delete(ctx context.Context, id string) error
	// List returns all reviews; approvedOnly restricts to approved ones.
	List(ctx context.Context, approvedOnly bool) ([]*domain.Review, error)
}
