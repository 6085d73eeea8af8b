package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"whatsapp-reviews/internal/domains/review/model"
	"whatsapp-reviews/internal/domains/review/repository"
)

type reviewService struct {
	reviewRepo      repository.ReviewRepository
	duplicateWindow time.Duration
	now             func() time.Time
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	duplicateWindow time.Duration,
) ServiceInterface {
	return &reviewService{
		reviewRepo:      reviewRepo,
		duplicateWindow: duplicateWindow,
		now:             time.Now,
	}
}

// =====================================================
// RECORD REVIEW
// =====================================================

func (s *reviewService) RecordReview(
	ctx context.Context,
	req model.CreateReviewRequest,
) (*model.Review, error) {
	// Step 1: Validate
	if err := req.Validate(); err != nil {
		return nil, err
	}

	review := &model.Review{
		ContactNumber: req.ContactNumber,
		UserName:      req.UserName,
		ProductName:   req.ProductName,
		ProductReview: req.ProductReview,
		CreatedAt:     s.now().UTC(),
	}

	// Step 2: Duplicate check. A broken lookup must not block the insert.
	duplicate, err := s.isDuplicate(ctx, review)
	if err != nil {
		log.Warn().Err(err).Str("contact", req.ContactNumber).Msg("duplicate check failed, continuing")
	}
	if duplicate {
		return nil, model.NewDuplicateError()
	}

	// Step 3: Persist
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, model.NewSaveFailedError(err)
	}

	log.Info().
		Int64("review_id", review.ID).
		Str("contact", review.ContactNumber).
		Str("product", review.ProductName).
		Msg("review recorded")

	return review, nil
}

func (s *reviewService) isDuplicate(ctx context.Context, candidate *model.Review) (bool, error) {
	if s.duplicateWindow <= 0 {
		return false, nil
	}

	latest, err := s.reviewRepo.FindLatestSubmission(ctx, candidate.ContactNumber, candidate.ProductName, candidate.ProductReview)
	if err != nil {
		if errors.Is(err, model.ErrReviewNotFound) {
			return false, nil
		}
		return false, err
	}

	return latest.SameSubmission(candidate) && latest.CreatedWithin(s.duplicateWindow, s.now()), nil
}

// =====================================================
// LIST REVIEWS
// =====================================================

func (s *reviewService) ListReviews(
	ctx context.Context,
	req model.ListReviewsRequest,
) ([]model.ReviewResponse, error) {
	limit, offset := req.Bounds()

	reviews, err := s.reviewRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	out := make([]model.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, model.NewReviewResponse(r))
	}
	return out, nil
}
