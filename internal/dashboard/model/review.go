package model

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// Review is the dashboard's read-only copy of one backend review.
// An empty string means the field was missing, null or of the wrong type.
type Review struct {
	ID            string `json:"id"`
	ContactNumber string `json:"contact_number"`
	UserName      string `json:"user_name"`
	ProductName   string `json:"product_name"`
	ProductReview string `json:"product_review"`
	CreatedAt     string `json:"created_at"`
}

// DecodeReviews parses a JSON array of review objects.
// A body that is not exactly one JSON array is an error; inside the array every
// field is coerced on its own and anything unexpected becomes absent.
func DecodeReviews(data []byte) ([]Review, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("invalid reviews payload: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid reviews payload: trailing data")
	}
	items, ok := payload.([]any)
	if !ok {
		return nil, fmt.Errorf("invalid reviews payload: expected a JSON array")
	}

	reviews := make([]Review, 0, len(items))
	for _, item := range items {
		fields, _ := item.(map[string]any)
		reviews = append(reviews, Review{
			ID:            identifier(fields["id"]),
			ContactNumber: text(fields["contact_number"]),
			UserName:      text(fields["user_name"]),
			ProductName:   text(fields["product_name"]),
			ProductReview: text(fields["product_review"]),
			CreatedAt:     text(fields["created_at"]),
		})
	}
	return reviews, nil
}

func text(v any) string {
	s, _ := v.(string)
	return s
}

// identifier accepts both string and numeric ids
func identifier(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case json.Number:
		return id.String()
	}
	return ""
}
