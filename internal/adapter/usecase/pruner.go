package usecase

import (
	"context"
	"log/slog"
	"time"

	"mesa-pacing/internal/core/port"
)

// ViewerPruner periodically drops viewer streaks that have seen no
// delivery for longer than the configured TTL. A dropped viewer starts
// over with an empty history, which can only make it more eligible.
type ViewerPruner struct {
	ledger   port.DeliveryLedger
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

func NewViewerPruner(ledger port.DeliveryLedger, ttl, interval time.Duration, logger *slog.Logger) *ViewerPruner {
	if logger == nil {
		logger = slog.Default()
	}
	return &ViewerPruner{ledger: ledger, ttl: ttl, interval: interval, now: time.Now, logger: logger}
}

// Run prunes on every tick until ctx is done. Errors are logged and the
// next tick retries.
func (p *ViewerPruner) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := p.Prune(ctx); err != nil {
				p.logger.Error("prune viewer streaks failed", slog.Any("error", err))
			}
		}
	}
}

// Prune removes streaks last updated before now minus the TTL.
func (p *ViewerPruner) Prune(ctx context.Context) (int64, error) {
	removed, err := p.ledger.PruneViewers(ctx, p.now().Add(-p.ttl))
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		p.logger.Debug("pruned viewer streaks", slog.Int64("removed", removed))
	}
	return removed, nil
}
