package service

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"whatsapp-reviews/internal/dashboard/client"
	"whatsapp-reviews/internal/dashboard/model"
)

// FallbackErrorMessage is shown when a failure carries no message of its own
const FallbackErrorMessage = "Failed to fetch reviews"

// State is a read-only snapshot of the dashboard
type State struct {
	Reviews []model.Review `json:"reviews"`
	Loading bool           `json:"loading"`
	Error   string         `json:"error,omitempty"`
}

// Dashboard owns the fetched reviews plus loading and error flags.
//
// Every refresh takes a sequence number when it starts. A result is applied
// only if no later-started refresh has been applied already, so overlapping
// refreshes settle on the most recently requested data.
type Dashboard struct {
	client client.ReviewsClient

	mu      sync.RWMutex
	reviews []model.Review
	loading bool
	errMsg  string
	issued  uint64
	applied uint64

	mountOnce sync.Once
	inflight  sync.WaitGroup
}

func NewDashboard(c client.ReviewsClient) *Dashboard {
	return &Dashboard{
		client:  c,
		reviews: []model.Review{},
		loading: true,
	}
}

// Refresh re-fetches the whole collection and blocks until the result is
// applied or discarded
func (d *Dashboard) Refresh(ctx context.Context) {
	d.mu.Lock()
	d.issued++
	seq := d.issued
	d.loading = true
	d.errMsg = ""
	d.mu.Unlock()

	reviews, err := d.client.FetchReviews(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()

	if seq < d.applied {
		log.Debug().Uint64("seq", seq).Uint64("applied", d.applied).Msg("discarding stale reviews response")
		return
	}
	d.applied = seq
	d.loading = d.applied < d.issued

	if err != nil {
		d.errMsg = ErrorMessage(err)
		log.Error().Err(err).Uint64("seq", seq).Msg("Error fetching reviews")
		return
	}

	d.reviews = reviews
	d.errMsg = ""
}

// Trigger starts a refresh in the background and returns immediately
func (d *Dashboard) Trigger(ctx context.Context) {
	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()
		d.Refresh(ctx)
	}()
}

// Mount starts the initial refresh. Only the first call does anything.
func (d *Dashboard) Mount(ctx context.Context) {
	d.mountOnce.Do(func() {
		d.Trigger(ctx)
	})
}

// Wait blocks until every background refresh has finished
func (d *Dashboard) Wait() {
	d.inflight.Wait()
}

// Snapshot returns a copy of the current state
func (d *Dashboard) Snapshot() State {
	d.mu.RLock()
	defer d.mu.RUnlock()

	reviews := make([]model.Review, len(d.reviews))
	copy(reviews, d.reviews)

	return State{
		Reviews: reviews,
		Loading: d.loading,
		Error:   d.errMsg,
	}
}

// ErrorMessage is the text shown for a failed refresh
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); strings.TrimSpace(msg) != "" {
		return msg
	}
	return FallbackErrorMessage
}
