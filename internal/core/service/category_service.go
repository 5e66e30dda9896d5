package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/glowmart/shop-api/internal/core/domain"
	"github.com/glowmart/shop-api/internal/core/ports"
)

// CategoryService implements category management.
type CategoryService struct {
	repo   ports.CategoryRepository
	images ImageStore
	log    zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, images ImageStore, log zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, images: images, log: log}
}

func (s *CategoryService) Create(ctx context.Context, input ports.CategoryInput, image *ports.ImageUpload) (*domain.Category, error) {
	category := &domain.Category{
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if image != nil {
		url, err := s.images.Save(ctx, *image)
		if err != nil {
			return nil, err
		}
		category.ImageURL = url
	}

	created, err := s.repo.Create(ctx, category)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("category_id", created.ID).Str("name", created.Name).Msg("category created")
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, input ports.CategoryInput, image *ports.ImageUpload) (*domain.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = input.Name
	category.Description = input.Description
	if image != nil {
		url, err := s.images.Save(ctx, *image)
		if err != nil {
			return nil, err
		}
		category.ImageURL = url
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.List(ctx)
}
