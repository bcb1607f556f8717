package registry

import (
	"context"
	"log/slog"
	"time"

	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/port"
)

// Refresher keeps a Registry in sync with the campaign store and completes
// campaigns whose budget is spent or whose end date has passed.
type Refresher struct {
	registry *Registry
	store    port.CampaignStore // optional
	ledger   port.DeliveryLedger
	interval time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

// NewRefresher builds a refresher. store may be nil, in which case the
// registry is fed only through OnCampaignUpdate and the refresher only
// sweeps.
func NewRefresher(reg *Registry, store port.CampaignStore, ledger port.DeliveryLedger, interval time.Duration, logger *slog.Logger) *Refresher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Refresher{
		registry: reg,
		store:    store,
		ledger:   ledger,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Run refreshes immediately and then on every tick until ctx is done.
// Failed refreshes are logged and the previous snapshot stays in use.
func (f *Refresher) Run(ctx context.Context) error {
	f.tick(ctx)
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			f.tick(ctx)
		}
	}
}

func (f *Refresher) tick(ctx context.Context) {
	if err := f.Refresh(ctx); err != nil {
		f.logger.Error("registry refresh failed", slog.Any("error", err))
	}
	if err := f.Sweep(ctx); err != nil {
		f.logger.Error("registry sweep failed", slog.Any("error", err))
	}
}

// Refresh reloads the campaign set from the store.
func (f *Refresher) Refresh(ctx context.Context) error {
	if f.store == nil {
		return nil
	}
	campaigns, err := f.store.ListCampaigns(ctx)
	if err != nil {
		return err
	}
	f.registry.Replace(campaigns)
	f.logger.Debug("registry refreshed", slog.Int("campaigns", f.registry.Snapshot().Len()))
	return nil
}

// Sweep completes active or paused campaigns that are past their end date
// or have delivered their whole budget.
func (f *Refresher) Sweep(ctx context.Context) error {
	now := f.now()
	snap := f.registry.Snapshot()

	var live []*domain.Campaign
	snap.Each(func(c *domain.Campaign) {
		if c.Status == domain.StatusActive || c.Status == domain.StatusPaused {
			live = append(live, c)
		}
	})
	if len(live) == 0 {
		return nil
	}
	ids := make([]int64, len(live))
	for i, c := range live {
		ids[i] = c.ID
	}
	delivered, err := f.ledger.DeliveredMany(ctx, ids)
	if err != nil {
		return err
	}

	for _, c := range live {
		reason := ""
		switch {
		case delivered[c.ID] >= c.LimitImpressions:
			reason = "budget exhausted"
		case !now.Before(c.EndDate):
			reason = "end date passed"
		default:
			continue
		}
		if f.registry.MarkCompleted(c.ID) {
			f.logger.Info("campaign completed",
				slog.Int64("campaign_id", c.ID),
				slog.String("reason", reason),
			)
			f.persistCompleted(ctx, c.ID)
		}
	}
	return nil
}

func (f *Refresher) persistCompleted(ctx context.Context, id int64) {
	if f.store == nil {
		return
	}
	if err := f.store.MarkCompleted(ctx, id); err != nil {
		f.logger.Error("persist completed status failed",
			slog.Int64("campaign_id", id),
			slog.Any("error", err),
		)
	}
}
