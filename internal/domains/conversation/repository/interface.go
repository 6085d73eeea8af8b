package repository

import (
	"context"

	"whatsapp-reviews/internal/domains/conversation/model"
)

// StateStore keeps in-progress conversations keyed by contact number
type StateStore interface {
	// Get returns model.ErrStateNotFound when the contact has no live state
	Get(ctx context.Context, contact string) (*model.State, error)

	// Set stores the state and stamps LastSeen
	Set(ctx context.Context, contact string, state *model.State) error

	Clear(ctx context.Context, contact string) error

	// CleanupExpired drops states idle for longer than the TTL
	CleanupExpired(ctx context.Context) error
}
