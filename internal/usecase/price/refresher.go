// Package price keeps the latest asset price fresh.
package price

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/simaogato/nestegg-backend/internal/domain"
)

// Status is the refresher's view of the price
type Status struct {
	Sample    domain.PriceSample
	HasSample bool
	Stale     bool      // the last refresh failed
	LastError error     // cause of the last failure, nil after a success
	CheckedAt time.Time // when the last refresh finished
}

// Refresher holds the latest price sample and replaces it one fetch at a time.
// It never retries and holds no timer; see Worker for scheduling.
type Refresher struct {
	feed     domain.PriceFeed
	baseline float64
	now      func() time.Time

	fetching sync.Mutex

	mu     sync.RWMutex
	status Status
}

// RefresherOption configures a Refresher
type RefresherOption func(*Refresher)

// WithBaseline makes ChangePercent relative to a fixed reference price
// instead of the previous sample.
func WithBaseline(price float64) RefresherOption {
	return func(r *Refresher) {
		r.baseline = price
	}
}

// WithNow sets the clock used to stamp refresh attempts
func WithNow(now func() time.Time) RefresherOption {
	return func(r *Refresher) {
		r.now = now
	}
}

// NewRefresher creates a Refresher with no sample
func NewRefresher(feed domain.PriceFeed, opts ...RefresherOption) *Refresher {
	r := &Refresher{feed: feed, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Refresh fetches the price once and returns the sample the refresher holds
// afterwards.
//
// On a feed failure the previous sample is kept and the error wraps
// domain.ErrFetch. A call made while another is in flight is skipped with
// domain.ErrRefreshInFlight. A quote older than the held sample is not
// applied. If ctx ends before the feed answers, the answer is discarded.
func (r *Refresher) Refresh(ctx context.Context) (domain.PriceSample, error) {
	if !r.fetching.TryLock() {
		return r.Latest().Sample, domain.ErrRefreshInFlight
	}
	defer r.fetching.Unlock()

	quote, err := r.feed.Fetch(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return r.Latest().Sample, ctxErr
	}
	if err != nil {
		return r.fail(fmt.Errorf("%w: %w", domain.ErrFetch, err))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.status
	sample := domain.PriceSample{Price: quote.Price, ObservedAt: quote.ObservedAt}
	if err := sample.Validate(); err != nil {
		r.status.Stale = true
		r.status.LastError = fmt.Errorf("%w: %w", domain.ErrFetch, err)
		r.status.CheckedAt = r.now()
		return prev.Sample, r.status.LastError
	}

	r.status.CheckedAt = r.now()
	r.status.Stale = false
	r.status.LastError = nil
	if prev.HasSample && sample.ObservedAt.Before(prev.Sample.ObservedAt) {
		return prev.Sample, nil
	}

	sample.ChangePercent = r.changePercent(prev, sample.Price)
	r.status.Sample = sample
	r.status.HasSample = true
	return sample, nil
}

func (r *Refresher) fail(err error) (domain.PriceSample, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.status.Stale = true
	r.status.LastError = err
	r.status.CheckedAt = r.now()
	return r.status.Sample, err
}

func (r *Refresher) changePercent(prev Status, price float64) float64 {
	ref := r.baseline
	if ref <= 0 {
		if !prev.HasSample {
			return 0
		}
		ref = prev.Sample.Price
	}
	return (price - ref) / ref * 100
}

// Latest returns the held sample and whether the last refresh failed
func (r *Refresher) Latest() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.status
}
