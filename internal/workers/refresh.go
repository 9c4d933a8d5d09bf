package workers

import (
	"context"
	"sync"
	"time"

	"github.com/lmiranda/quest-keeper/internal/logger"
	"github.com/lmiranda/quest-keeper/internal/signal"
)

// defaultRefreshInterval is used when the configured interval is zero or
// negative.
const defaultRefreshInterval = 5 * time.Minute

// CampaignRefreshWorker periodically re-fetches the signed-in user's
// campaign list and announces the refresh on the bus, so screens showing the
// dashboard stay reasonably fresh without polling the server themselves.
type CampaignRefreshWorker struct {
	campaigns CampaignSource
	bus       *signal.Bus
	interval  time.Duration
	logger    *logger.Logger

	baseCtx context.Context

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCampaignRefreshWorker creates an idle refresh worker. The worker starts
// ticking when Run is called and stops when Stop is called or ctx is
// cancelled.
func NewCampaignRefreshWorker(ctx context.Context, campaigns CampaignSource, bus *signal.Bus, interval time.Duration, log *logger.Logger) *CampaignRefreshWorker {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	return &CampaignRefreshWorker{
		campaigns: campaigns,
		bus:       bus,
		interval:  interval,
		logger:    log,
		baseCtx:   ctx,
	}
}

// Run implements Worker. It stops any previously running cycle, then
// launches a background goroutine that re-fetches campaigns every interval.
func (w *CampaignRefreshWorker) Run() {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(w.baseCtx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.refresh(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has fully
// exited. Safe to call when the worker is not running.
func (w *CampaignRefreshWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *CampaignRefreshWorker) refresh(ctx context.Context) {
	if _, err := w.campaigns.Campaigns(ctx); err != nil {
		w.logger.Err(err).
			Str("func", "CampaignRefreshWorker.refresh").
			Msg("background campaign refresh failed")
		return
	}

	w.bus.Publish(signal.CampaignsRefreshed)
}
