package price

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/simaogato/nestegg-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPriceFeed is a mock implementation of PriceFeed for testing
type MockPriceFeed struct {
	mock.Mock
}

func (m *MockPriceFeed) Fetch(ctx context.Context) (domain.Quote, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Quote), args.Error(1)
}

var t0 = time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)

func TestRefresh_ReplacesSampleAndComputesChange(t *testing.T) {
	ctx := context.Background()
	feed := new(MockPriceFeed)
	r := NewRefresher(feed)

	feed.On("Fetch", ctx).Return(domain.Quote{Price: 50000, ObservedAt: t0}, nil).Once()
	feed.On("Fetch", ctx).Return(domain.Quote{Price: 51000, ObservedAt: t0.Add(30 * time.Second)}, nil).Once()

	first, err := r.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50000.0, first.Price)
	assert.Equal(t, 0.0, first.ChangePercent, "first sample has nothing to compare with")

	second, err := r.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 51000.0, second.Price)
	assert.InDelta(t, 2.0, second.ChangePercent, 1e-9)

	status := r.Latest()
	assert.True(t, status.HasSample)
	assert.False(t, status.Stale)
	assert.Equal(t, second, status.Sample)
	feed.AssertExpectations(t)
}

func TestRefresh_BaselineChange(t *testing.T) {
	ctx := context.Background()
	feed := new(MockPriceFeed)
	r := NewRefresher(feed, WithBaseline(40000))
	feed.On("Fetch", ctx).Return(domain.Quote{Price: 50000, ObservedAt: t0}, nil)

	sample, err := r.Refresh(ctx)

	require.NoError(t, err)
	assert.InDelta(t, 25.0, sample.ChangePercent, 1e-9)
}

func TestRefresh_FailureKeepsLastSample(t *testing.T) {
	ctx := context.Background()
	feed := new(MockPriceFeed)
	r := NewRefresher(feed, WithNow(func() time.Time { return t0 }))

	feed.On("Fetch", ctx).Return(domain.Quote{Price: 50000, ObservedAt: t0}, nil).Once()
	feed.On("Fetch", ctx).Return(domain.Quote{}, errors.New("connection reset")).Once()

	good, err := r.Refresh(ctx)
	require.NoError(t, err)

	kept, err := r.Refresh(ctx)

	assert.ErrorIs(t, err, domain.ErrFetch)
	assert.ErrorContains(t, err, "connection reset")
	assert.Equal(t, good, kept)

	status := r.Latest()
	assert.True(t, status.Stale)
	assert.ErrorIs(t, status.LastError, domain.ErrFetch)
	assert.Equal(t, good, status.Sample)
}

func TestRefresh_InvalidQuoteIsAFetchError(t *testing.T) {
	ctx := context.Background()
	feed := new(MockPriceFeed)
	r := NewRefresher(feed)
	feed.On("Fetch", ctx).Return(domain.Quote{Price: 0, ObservedAt: t0}, nil)

	_, err := r.Refresh(ctx)

	assert.ErrorIs(t, err, domain.ErrFetch)
	assert.False(t, r.Latest().HasSample)
	assert.True(t, r.Latest().Stale)
}

func TestRefresh_OlderQuoteDoesNotOverwrite(t *testing.T) {
	ctx := context.Background()
	feed := new(MockPriceFeed)
	r := NewRefresher(feed)

	feed.On("Fetch", ctx).Return(domain.Quote{Price: 51000, ObservedAt: t0.Add(time.Minute)}, nil).Once()
	feed.On("Fetch", ctx).Return(domain.Quote{Price: 49000, ObservedAt: t0}, nil).Once()

	newer, err := r.Refresh(ctx)
	require.NoError(t, err)

	got, err := r.Refresh(ctx)

	require.NoError(t, err)
	assert.Equal(t, newer, got)
	assert.Equal(t, 51000.0, r.Latest().Sample.Price)
}

func TestRefresh_CancelledContextDiscardsResult(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	feed := new(MockPriceFeed)
	r := NewRefresher(feed)

	feed.On("Fetch", ctx).Run(func(mock.Arguments) { cancel() }).
		Return(domain.Quote{Price: 50000, ObservedAt: t0}, nil)

	_, err := r.Refresh(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, r.Latest().HasSample, "result of a torn-down caller must not be applied")
}

// blockingFeed answers only when released
type blockingFeed struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (f *blockingFeed) Fetch(ctx context.Context) (domain.Quote, error) {
	f.once.Do(func() { close(f.started) })
	<-f.release
	return domain.Quote{Price: 50000, ObservedAt: t0}, nil
}

func TestRefresh_OverlappingCallIsSkipped(t *testing.T) {
	feed := &blockingFeed{started: make(chan struct{}), release: make(chan struct{})}
	r := NewRefresher(feed)

	done := make(chan error, 1)
	go func() {
		_, err := r.Refresh(context.Background())
		done <- err
	}()
	<-feed.started

	_, err := r.Refresh(context.Background())
	assert.ErrorIs(t, err, domain.ErrRefreshInFlight)

	close(feed.release)
	require.NoError(t, <-done)
	assert.Equal(t, 50000.0, r.Latest().Sample.Price)
}
