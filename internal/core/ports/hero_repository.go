package ports

import (
	"context"

	"github.com/glowmart/shop-api/internal/core/domain"
)

// HeroRepository persists the single hero banner document.
type HeroRepository interface {
	Get(ctx context.Context) (*domain.Hero, error)
	Save(ctx context.Context, h *domain.Hero) error
}
