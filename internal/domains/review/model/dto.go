package model

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateReviewRequest carries a finished conversation into storage
type CreateReviewRequest struct {
	ContactNumber string
	UserName      string
	ProductName   string
	ProductReview string
}

// Validate checks fields in conversation order and reports the first failure
func (r CreateReviewRequest) Validate() error {
	checks := []struct {
		value string
		rules []validation.Rule
	}{
		{r.ContactNumber, []validation.Rule{
			validation.Required.Error("Contact number is required."),
		}},
		{r.ProductName, []validation.Rule{
			validation.Required.Error(lengthMessage("Product name", MaxProductNameLength)),
			validation.RuneLength(1, MaxProductNameLength).Error(lengthMessage("Product name", MaxProductNameLength)),
		}},
		{r.UserName, []validation.Rule{
			validation.Required.Error(lengthMessage("User name", MaxUserNameLength)),
			validation.RuneLength(1, MaxUserNameLength).Error(lengthMessage("User name", MaxUserNameLength)),
		}},
		{r.ProductReview, []validation.Rule{
			validation.Required.Error(lengthMessage("Review", MaxProductReviewLength)),
			validation.RuneLength(1, MaxProductReviewLength).Error(lengthMessage("Review", MaxProductReviewLength)),
		}},
	}

	for _, check := range checks {
		if err := validation.Validate(check.value, check.rules...); err != nil {
			return NewInvalidReviewError(err.Error())
		}
	}
	return nil
}

func lengthMessage(field string, max int) string {
	return fmt.Sprintf("%s must be 1-%d characters.", field, max)
}

// ListReviewsRequest is bound from the GET /api/reviews query string
type ListReviewsRequest struct {
	Limit  *int `form:"limit"`
	Offset *int `form:"offset"`
}

// Bounds returns limit clamped to 1..MaxListLimit and offset clamped to >= 0
func (r ListReviewsRequest) Bounds() (limit, offset int) {
	limit = DefaultListLimit
	if r.Limit != nil {
		limit = min(MaxListLimit, max(1, *r.Limit))
	}
	if r.Offset != nil {
		offset = max(0, *r.Offset)
	}
	return limit, offset
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// ReviewResponse is the wire shape consumed by the dashboard
type ReviewResponse struct {
	ID            int64     `json:"id"`
	ContactNumber string    `json:"contact_number"`
	UserName      string    `json:"user_name"`
	ProductName   string    `json:"product_name"`
	ProductReview string    `json:"product_review"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewReviewResponse(r *Review) ReviewResponse {
	return ReviewResponse{
		ID:            r.ID,
		ContactNumber: r.ContactNumber,
		UserName:      r.UserName,
		ProductName:   r.ProductName,
		ProductReview: r.ProductReview,
		CreatedAt:     r.CreatedAt.UTC(),
	}
}
