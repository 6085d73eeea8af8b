package model

import "time"

const (
	// Listing bounds for GET /api/reviews
	DefaultListLimit = 100
	MaxListLimit     = 1000

	// Field limits, counted in characters
	MaxProductNameLength   = 200
	MaxUserNameLength      = 100
	MaxProductReviewLength = 5000

	// Identical submissions inside this window are treated as duplicates
	DefaultDuplicateWindow = 10 * time.Minute
)
