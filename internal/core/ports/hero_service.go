package ports

import (
	"context"

	"github.com/glowmart/shop-api/internal/core/domain"
)

// HeroInput carries the writable hero banner fields.
type HeroInput struct {
	Title    string
	Subtitle string
	LinkText string
	LinkURL  string
}

// HeroService defines hero banner use cases.
type HeroService interface {
	Get(ctx context.Context) (*domain.Hero, error)
	Update(ctx context.Context, input HeroInput, image *ImageUpload) (*domain.Hero, error)
}
