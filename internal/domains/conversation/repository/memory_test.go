package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whatsapp-reviews/internal/domains/conversation/model"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestMemoryStore(ttl time.Duration) (*MemoryStateStore, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)}
	store := NewMemoryStateStore(ttl)
	store.now = clock.Now
	return store, clock
}

func TestMemoryStateStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestMemoryStore(30 * time.Minute)

	_, err := store.Get(ctx, "+1555")
	assert.ErrorIs(t, err, model.ErrStateNotFound)

	require.NoError(t, store.Set(ctx, "+1555", &model.State{Step: model.StepAwaitName, ProductName: "Widget X"}))

	state, err := store.Get(ctx, "+1555")
	require.NoError(t, err)
	assert.Equal(t, model.StepAwaitName, state.Step)
	assert.Equal(t, "Widget X", state.ProductName)
	assert.Equal(t, clock.now, state.LastSeen)

	require.NoError(t, store.Clear(ctx, "+1555"))
	_, err = store.Get(ctx, "+1555")
	assert.ErrorIs(t, err, model.ErrStateNotFound)
}

func TestMemoryStateStoreReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestMemoryStore(time.Minute)

	require.NoError(t, store.Set(ctx, "+1555", &model.State{Step: model.StepAwaitProduct}))
	state, err := store.Get(ctx, "+1555")
	require.NoError(t, err)
	state.Step = model.StepAwaitReview

	again, err := store.Get(ctx, "+1555")
	require.NoError(t, err)
	assert.Equal(t, model.StepAwaitProduct, again.Step)
}

func TestMemoryStateStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestMemoryStore(30 * time.Minute)

	require.NoError(t, store.Set(ctx, "+1", &model.State{Step: model.StepAwaitProduct}))
	clock.now = clock.now.Add(20 * time.Minute)
	require.NoError(t, store.Set(ctx, "+2", &model.State{Step: model.StepAwaitProduct}))

	clock.now = clock.now.Add(11 * time.Minute)

	_, err := store.Get(ctx, "+1")
	assert.ErrorIs(t, err, model.ErrStateNotFound)

	_, err = store.Get(ctx, "+2")
	assert.NoError(t, err)

	clock.now = clock.now.Add(30 * time.Minute)
	require.NoError(t, store.CleanupExpired(ctx))
	assert.Equal(t, 0, store.Len())
}
