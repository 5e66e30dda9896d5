package ports

import (
	"context"

	"github.com/glowmart/shop-api/internal/core/domain"
)

// CategoryInput carries the writable category fields.
type CategoryInput struct {
	Name        string
	Description string
}

// CategoryService defines category use cases.
type CategoryService interface {
	Create(ctx context.Context, input CategoryInput, image *ImageUpload) (*domain.Category, error)
	Update(ctx context.Context, id string, input CategoryInput, image *ImageUpload) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
}
