package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"whatsapp-reviews/internal/dashboard/client"
	"whatsapp-reviews/internal/dashboard/model"
)

type mockReviewsClient struct {
	mock.Mock
}

func (m *mockReviewsClient) FetchReviews(ctx context.Context) ([]model.Review, error) {
	args := m.Called(ctx)
	reviews, _ := args.Get(0).([]model.Review)
	return reviews, args.Error(1)
}

// blankError has no message of its own
type blankError struct{}

func (blankError) Error() string { return "" }

func threeReviews() []model.Review {
	return []model.Review{{ID: "3"}, {ID: "2"}, {ID: "1"}}
}

func TestInitialState(t *testing.T) {
	d := NewDashboard(new(mockReviewsClient))

	state := d.Snapshot()
	assert.True(t, state.Loading)
	assert.Empty(t, state.Error)
	assert.NotNil(t, state.Reviews)
	assert.Empty(t, state.Reviews)
}

func TestRefreshSuccess(t *testing.T) {
	c := new(mockReviewsClient)
	c.On("FetchReviews", mock.Anything).Return(threeReviews(), nil)

	d := NewDashboard(c)
	d.Refresh(context.Background())

	state := d.Snapshot()
	assert.False(t, state.Loading)
	assert.Empty(t, state.Error)
	assert.Equal(t, threeReviews(), state.Reviews)
}

func TestRefreshHTTPErrorKeepsReviews(t *testing.T) {
	c := new(mockReviewsClient)
	c.On("FetchReviews", mock.Anything).Return(threeReviews(), nil).Once()
	c.On("FetchReviews", mock.Anything).Return(nil, &client.HTTPError{StatusCode: 500}).Once()

	d := NewDashboard(c)
	d.Refresh(context.Background())
	d.Refresh(context.Background())

	state := d.Snapshot()
	assert.False(t, state.Loading)
	assert.Equal(t, "HTTP error! status: 500", state.Error)
	assert.Contains(t, state.Error, "500")
	assert.Equal(t, threeReviews(), state.Reviews)
}

func TestRetryReissuesFetch(t *testing.T) {
	c := new(mockReviewsClient)
	c.On("FetchReviews", mock.Anything).Return(nil, &client.HTTPError{StatusCode: 500}).Once()
	c.On("FetchReviews", mock.Anything).Return(threeReviews(), nil).Once()

	d := NewDashboard(c)
	d.Refresh(context.Background())
	require.NotEmpty(t, d.Snapshot().Error)

	d.Refresh(context.Background())
	state := d.Snapshot()
	assert.Empty(t, state.Error)
	assert.Len(t, state.Reviews, 3)
	c.AssertNumberOfCalls(t, "FetchReviews", 2)
}

func TestRefreshTransportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"uses failure message", errors.New("dial tcp: connection refused"), "dial tcp: connection refused"},
		{"falls back when message is blank", blankError{}, FallbackErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := new(mockReviewsClient)
			c.On("FetchReviews", mock.Anything).Return(nil, tt.err)

			d := NewDashboard(c)
			d.Refresh(context.Background())

			state := d.Snapshot()
			assert.Equal(t, tt.want, state.Error)
			assert.False(t, state.Loading)
		})
	}
}

func TestMountFetchesOnce(t *testing.T) {
	c := new(mockReviewsClient)
	c.On("FetchReviews", mock.Anything).Return(threeReviews(), nil)

	d := NewDashboard(c)
	d.Mount(context.Background())
	d.Mount(context.Background())
	d.Mount(context.Background())
	d.Wait()

	c.AssertNumberOfCalls(t, "FetchReviews", 1)
	assert.Len(t, d.Snapshot().Reviews, 3)
}

// gatedClient hands out responses only when the test releases them, so the
// order in which overlapping refreshes resolve can be controlled.
type gatedClient struct {
	mu      sync.Mutex
	calls   int
	started chan int
	gates   []chan result
}

type result struct {
	reviews []model.Review
	err     error
}

func newGatedClient(n int) *gatedClient {
	g := &gatedClient{started: make(chan int, n)}
	for i := 0; i < n; i++ {
		g.gates = append(g.gates, make(chan result, 1))
	}
	return g
}

func (g *gatedClient) FetchReviews(ctx context.Context) ([]model.Review, error) {
	g.mu.Lock()
	i := g.calls
	g.calls++
	g.mu.Unlock()

	g.started <- i
	r := <-g.gates[i]
	return r.reviews, r.err
}

func TestOverlappingRefreshesLastRequestWins(t *testing.T) {
	g := newGatedClient(2)
	d := NewDashboard(g)
	ctx := context.Background()

	d.Trigger(ctx)
	<-g.started
	d.Trigger(ctx)
	<-g.started

	first := []model.Review{{ID: "old"}}
	second := []model.Review{{ID: "new-1"}, {ID: "new-2"}}

	// the newer request resolves first, the older one last
	g.gates[1] <- result{reviews: second}
	g.gates[0] <- result{reviews: first}
	d.Wait()

	state := d.Snapshot()
	assert.Equal(t, second, state.Reviews)
	assert.False(t, state.Loading)
}

func TestOverlappingRefreshesInOrder(t *testing.T) {
	g := newGatedClient(2)
	d := NewDashboard(g)
	ctx := context.Background()

	d.Trigger(ctx)
	<-g.started
	d.Trigger(ctx)
	<-g.started

	g.gates[0] <- result{reviews: []model.Review{{ID: "a"}}}
	assert.Eventually(t, func() bool {
		return len(d.Snapshot().Reviews) == 1
	}, time.Second, 5*time.Millisecond)

	// the older result is on screen but the newer request is still pending
	assert.True(t, d.Snapshot().Loading)

	g.gates[1] <- result{reviews: []model.Review{{ID: "b"}, {ID: "c"}}}
	d.Wait()

	state := d.Snapshot()
	assert.Equal(t, []model.Review{{ID: "b"}, {ID: "c"}}, state.Reviews)
	assert.False(t, state.Loading)
}

func TestSnapshotIsACopy(t *testing.T) {
	c := new(mockReviewsClient)
	c.On("FetchReviews", mock.Anything).Return(threeReviews(), nil)

	d := NewDashboard(c)
	d.Refresh(context.Background())

	snap := d.Snapshot()
	snap.Reviews[0].ID = "mutated"

	assert.Equal(t, "3", d.Snapshot().Reviews[0].ID)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "", ErrorMessage(nil))
	assert.Equal(t, "boom", ErrorMessage(errors.New("boom")))
	assert.Equal(t, FallbackErrorMessage, ErrorMessage(blankError{}))
}
