package ports

import (
	"context"

	"github.com/glowmart/shop-api/internal/core/domain"
)

// ReviewInput carries a submitted review.
type ReviewInput struct {
	Author  string
	Content string
	Rating  int
}

// ReviewService defines review use cases.
type ReviewService interface {
	Submit(ctx context.Context, userEmail string, input ReviewInput) (*domain.Review, error)
	Approve(ctx context.Context, id string) (*domain.Review, error)
	Delete(ctx context.Context, id string) error
	ListApproved(ctx context.Context) ([]*domain.Review, error)
	ListAll(ctx context.Context) ([]*domain.Review, error)
}
