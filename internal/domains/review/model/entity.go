package model

import "time"

// Review is one product review collected over WhatsApp
type Review struct {
	ID            int64     `json:"id"`
	ContactNumber string    `json:"contact_number"`
	UserName      string    `json:"user_name"`
	ProductName   string    `json:"product_name"`
	ProductReview string    `json:"product_review"`
	CreatedAt     time.Time `json:"created_at"`
}

// SameSubmission reports whether other carries the same contact, product and text
func (r *Review) SameSubmission(other *Review) bool {
	return r.ContactNumber == other.ContactNumber &&
		r.ProductName == other.ProductName &&
		r.ProductReview == other.ProductReview
}

// CreatedWithin reports whether the review was stored less than window before now
func (r *Review) CreatedWithin(window time.Duration, now time.Time) bool {
	return now.Sub(r.CreatedAt) < window
}
