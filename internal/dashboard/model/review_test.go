package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeReviews(t *testing.T) {
	body := []byte(`[
		{"id": 3, "contact_number": "+1555", "user_name": "Alice", "product_name": "Widget X",
		 "product_review": "Great", "created_at": "2026-10-17T09:30:00Z"},
		{"id": "abc-2", "contact_number": null, "user_name": 17, "product_name": ["x"]},
		{}
	]`)

	reviews, err := DecodeReviews(body)
	require.NoError(t, err)
	require.Len(t, reviews, 3)

	assert.Equal(t, Review{
		ID:            "3",
		ContactNumber: "+1555",
		UserName:      "Alice",
		ProductName:   "Widget X",
		ProductReview: "Great",
		CreatedAt:     "2026-10-17T09:30:00Z",
	}, reviews[0])

	assert.Equal(t, Review{ID: "abc-2"}, reviews[1])
	assert.Equal(t, Review{}, reviews[2])
}

func TestDecodeReviewsKeepsLargeIDsExact(t *testing.T) {
	reviews, err := DecodeReviews([]byte(`[{"id": 9007199254740993}]`))
	require.NoError(t, err)
	assert.Equal(t, "9007199254740993", reviews[0].ID)
}

func TestDecodeReviewsNonObjectElements(t *testing.T) {
	reviews, err := DecodeReviews([]byte(`[1, "two", null]`))
	require.NoError(t, err)
	assert.Equal(t, []Review{{}, {}, {}}, reviews)
}

func TestDecodeReviewsEmptyArray(t *testing.T) {
	reviews, err := DecodeReviews([]byte(`[]`))
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}

func TestDecodeReviewsAllowsTrailingWhitespace(t *testing.T) {
	reviews, err := DecodeReviews([]byte("[{\"id\":1}]\n  "))
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "1", reviews[0].ID)
}

func TestDecodeReviewsRejectsNonArrays(t *testing.T) {
	for _, body := range []string{
		`{"reviews": []}`,
		`null`,
		`<html>oops</html>`,
		``,
		`[] garbage`,
		`[{"id":1}]{"x":`,
		`[{"id":1}][]`,
	} {
		_, err := DecodeReviews([]byte(body))
		assert.Error(t, err, "body %q", body)
	}
}
