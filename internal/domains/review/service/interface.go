package service

import (
	"context"

	"whatsapp-reviews/internal/domains/review/model"
)

// =====================================================
// REVIEW SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	// RecordReview validates, de-duplicates and stores a finished submission
	RecordReview(ctx context.Context, req model.CreateReviewRequest) (*model.Review, error)

	// ListReviews returns the newest reviews first, bounded by req
	ListReviews(ctx context.Context, req model.ListReviewsRequest) ([]model.ReviewResponse, error)
}
