package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeDuplicate     = "REV002"
	ErrCodeInvalidReview = "REV003"
	ErrCodeSaveFailed    = "REV004"
	ErrCodeInvalidQuery  = "REV005"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrDuplicate      = errors.New("duplicate review")
	ErrInvalidReview  = errors.New("invalid review")
	ErrSaveFailed     = errors.New("failed to save review")
)

// ReviewError carries a machine readable code next to the message
type ReviewError struct {
	Code    string
	Message string
	Err     error
}

func (e *ReviewError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ReviewError) Unwrap() error {
	return e.Err
}

func NewDuplicateError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeDuplicate,
		Message: "Review already recorded",
		Err:     ErrDuplicate,
	}
}

// NewInvalidReviewError keeps the user facing message intact in Message
func NewInvalidReviewError(message string) *ReviewError {
	return &ReviewError{
		Code:    ErrCodeInvalidReview,
		Message: message,
		Err:     ErrInvalidReview,
	}
}

func NewSaveFailedError(cause error) *ReviewError {
	return &ReviewError{
		Code:    ErrCodeSaveFailed,
		Message: ErrSaveFailed.Error(),
		Err:     cause,
	}
}
