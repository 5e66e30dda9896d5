package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/glowmart/shop-api/internal/core/domain"
	"github.com/glowmart/shop-api/internal/core/ports"
)

// HeroService manages the storefront's single landing banner.
type HeroService struct {
	repo   ports.HeroRepository
	images ImageStore
	log    zerolog.Logger
}

func NewHeroService(repo ports.HeroRepository, images ImageStore, log zerolog.Logger) *HeroService {
	return &HeroService{repo: repo, images: images, log: log}
}

func defaultHero() *domain.Hero {
	return &domain.Hero{
		Title:    "Welcome to GlowMart",
		Subtitle: "Beauty essentials, delivered",
		LinkText: "Shop Now",
		LinkURL:  "/products",
		ImageURL: "https://placehold.co/1200x400?text=GlowMart",
	}
}

// Get returns the banner, seeding the default one on first read so the
// storefront never renders an empty hero section.
func (s *HeroService) Get(ctx context.Context) (*domain.Hero, error) {
	hero, err := s.repo.Get(ctx)
	if errors.Is(err, domain.ErrHeroNotFound) {
		hero = defaultHero()
		if err := s.repo.Save(ctx, hero); err != nil {
			return nil, err
		}
		s.log.Info().Msg("seeded default hero banner")
		return hero, nil
	}
	return hero, err
}

func (s *HeroService) Update(ctx context.Context, input ports.HeroInput, image *ports.ImageUpload) (*domain.Hero, error) {
	hero, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	hero.Title = input.Title
	hero.Subtitle = input.Subtitle
	hero.LinkText = input.LinkText
	hero.LinkURL = input.LinkURL
	if image != nil {
		url, err := s.images.Save(ctx, *image)
		if err != nil {
			return nil, err
		}
		hero.ImageURL = url
	}

	if err := s.repo.Save(ctx, hero); err != nil {
		return nil, err
	}
	s.log.Info().Str("title", hero.Title).Msg("hero banner updated")
	return hero, nil
}
