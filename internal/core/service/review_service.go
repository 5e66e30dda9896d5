package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/glowmart/shop-api/internal/core/domain"
	"github.com/glowmart/shop-api/internal/core/ports"
)

// ReviewService implements review submission and moderation.
type ReviewService struct {
	repo ports.ReviewRepository
	log  zerolog.Logger
}

func NewReviewService(repo ports.ReviewRepository, log zerolog.Logger) *ReviewService {
	return &ReviewService{repo: repo, log: log}
}

// Submit stores a new review. Reviews start unapproved and stay hidden from
// the public listing until moderated.
func (s *ReviewService) Submit(ctx context.Context, userEmail string, input ports.ReviewInput) (*domain.Review, error) {
	review := &domain.Review{
		UserEmail: userEmail,
		Author:    input.Author,
		Content:   input.Content,
		Rating:    input.Rating,
		Approved:  false,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.Create(ctx, review)
}

func (s *ReviewService) Approve(ctx context.Context, id string) (*domain.Review, error) {
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	review.Approved = true
	if err := s.repo.Update(ctx, review); err != nil {
		return nil, err
	}
	s.log.Info().Str("review_id", review.ID).Msg("review approved")
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *ReviewService) ListApproved(ctx context.Context) ([]*domain.Review, error) {
	return s.repo.List(ctx, true)
}

func (s *ReviewService) ListAll(ctx context.Context) ([]*domain.Review, error) {
	return s.repo.List(ctx, false)
}
