package price

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/simaogato/nestegg-backend/internal/domain"
)

// DefaultInterval is how often the worker refreshes the price
const DefaultInterval = 30 * time.Second

// Ticker delivers ticks on C until stopped
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates a Ticker firing every d
type TickerFactory func(d time.Duration) Ticker

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// NewRealTicker wraps time.NewTicker. Ticks that arrive while a refresh is
// still running are dropped by the ticker itself.
func NewRealTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

// Worker drives a Refresher: once on start, then on every tick
type Worker struct {
	refresher *Refresher
	logger    zerolog.Logger
	interval  time.Duration
	newTicker TickerFactory
	mu        sync.Mutex
	running   bool
	stopCh    chan struct{} // replaced on every start
	doneCh    chan struct{}
}

// WorkerConfig holds configuration for the price worker
type WorkerConfig struct {
	Interval  time.Duration
	NewTicker TickerFactory // defaults to NewRealTicker
}

// NewWorker creates a new price worker
func NewWorker(refresher *Refresher, logger zerolog.Logger, config WorkerConfig) *Worker {
	if config.Interval <= 0 {
		config.Interval = DefaultInterval
	}
	if config.NewTicker == nil {
		config.NewTicker = NewRealTicker
	}

	return &Worker{
		refresher: refresher,
		logger:    logger.With().Str("component", "price_worker").Logger(),
		interval:  config.Interval,
		newTicker: config.NewTicker,
	}
}

// Start begins refreshing in the background. The in-flight fetch is
// cancelled and its result discarded when ctx ends or Stop is called.
// A stopped worker can be started again.
func (w *Worker) Start(ctx context.Context) {
	w.start(ctx)
}

// start launches the loop unless it is running and returns the channel
// closed when the current loop exits
func (w *Worker) start(ctx context.Context) <-chan struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return w.doneCh
	}
	w.running = true
	stopCh := make(chan struct{})
	doneCh := make(chan struct{})
	w.stopCh, w.doneCh = stopCh, doneCh

	w.logger.Info().Dur("interval", w.interval).Msg("Starting price worker")

	ctx, cancel := context.WithCancel(ctx)
	go func() {
		select {
		case <-stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()
	go w.run(ctx, cancel, doneCh)
	return doneCh
}

// Stop halts the worker and waits for it to exit
func (w *Worker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	stopCh, doneCh := w.stopCh, w.doneCh
	w.mu.Unlock()

	w.logger.Info().Msg("Stopping price worker")
	close(stopCh)
	<-doneCh
	w.logger.Info().Msg("Price worker stopped")
}

// Run refreshes until ctx ends. It blocks, which suits an errgroup.
func (w *Worker) Run(ctx context.Context) error {
	<-w.start(ctx)
	return nil
}

func (w *Worker) run(ctx context.Context, cancel context.CancelFunc, doneCh chan struct{}) {
	defer close(doneCh)
	defer cancel()

	w.tick(ctx)

	ticker := w.newTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.mu.Lock()
			if w.doneCh == doneCh {
				w.running = false
			}
			w.mu.Unlock()
			return
		case <-ticker.C():
			w.tick(ctx)
		}
	}
}

func (w *Worker) tick(ctx context.Context) {
	sample, err := w.refresher.Refresh(ctx)
	switch {
	case err == nil:
		w.logger.Debug().
			Float64("price", sample.Price).
			Float64("change_percent", sample.ChangePercent).
			Time("observed_at", sample.ObservedAt).
			Msg("Price refreshed")
	case errors.Is(err, domain.ErrRefreshInFlight):
		w.logger.Debug().Msg("Previous refresh still running, tick skipped")
	case ctx.Err() != nil:
		w.logger.Debug().Msg("Refresh abandoned on shutdown")
	default:
		w.logger.Warn().Err(err).Msg("Price refresh failed, keeping last sample")
	}
}
