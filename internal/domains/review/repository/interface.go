package repository

import (
	"context"

	"whatsapp-reviews/internal/domains/review/model"
)

// =====================================================
// REVIEW REPOSITORY INTERFACE
// =====================================================

type ReviewRepository interface {
	// Create inserts the review and fills in ID and CreatedAt
	Create(ctx context.Context, review *model.Review) error

	// FindLatestSubmission returns the newest review with the same contact,
	// product and text, or model.ErrReviewNotFound
	FindLatestSubmission(ctx context.Context, contact, product, text string) (*model.Review, error)

	// List returns reviews newest first
	List(ctx context.Context, limit, offset int) ([]*model.Review, error)
}
