package services

import (
	"context"

	"nightOutAPI/internal/storage"
	"nightOutAPI/internal/types/review"
)

type ReviewService struct {
	store storage.Storage
}

func NewReviewService(store storage.Storage) *ReviewService {
	return &ReviewService{store: store}
}

func (s *ReviewService) GetReviews(ctx context.Context, clubID int) ([]review.Review, error) {
	return s.store.GetReviews(ctx, clubID)
}

// CreateReview stores the review; the storage layer takes care of
// refreshing the parent club's aggregate rating.
func (s *ReviewService) CreateReview(ctx context.Context, ins *review.InsertReview) (*review.Review, error) {
	return s.store.CreateReview(ctx, ins)
}
