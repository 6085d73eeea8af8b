package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"whatsapp-reviews/internal/dashboard/model"
)

const (
	ReviewsPath = "/api/reviews"

	// maxBodyBytes caps what a misbehaving backend can make us buffer
	maxBodyBytes = 16 << 20
)

// ReviewsClient fetches the full review collection
type ReviewsClient interface {
	FetchReviews(ctx context.Context) ([]model.Review, error)
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient targets baseURL + /api/reviews. A zero timeout leaves
// deadlines to the transport and the caller's context.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) FetchReviews(ctx context.Context) ([]model.Review, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+ReviewsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &HTTPError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return model.DecodeReviews(body)
}
