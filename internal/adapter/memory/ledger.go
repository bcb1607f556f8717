// Package memory implements port.DeliveryLedger inside the process. It is
// the default ledger for single-instance deployments and for tests; the
// budget invariant holds because every increment is a compare-and-swap on
// the campaign's counter.
package memory

import (
	"context"
	"hash/maphash"
	"sync"
	"sync/atomic"
	"time"

	"mesa-pacing/internal/core/domain"
)

const viewerShards = 64

// Ledger implements port.DeliveryLedger with atomic counters.
type Ledger struct {
	mu       sync.RWMutex
	counters map[int64]*atomic.Int64

	seed   maphash.Seed
	shards [viewerShards]viewerShard
}

type viewerShard struct {
	mu      sync.Mutex
	streaks map[string]domain.ViewerStreak
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	l := &Ledger{
		counters: make(map[int64]*atomic.Int64),
		seed:     maphash.MakeSeed(),
	}
	for i := range l.shards {
		l.shards[i].streaks = make(map[string]domain.ViewerStreak)
	}
	return l
}

// Restore sets the delivered count of a campaign. Tests use it to start a
// campaign part way through its budget; the service never calls it, since
// with the memory driver no other store holds counters.
func (l *Ledger) Restore(campaignID, delivered int64) {
	l.counter(campaignID).Store(delivered)
}

func (l *Ledger) counter(campaignID int64) *atomic.Int64 {
	l.mu.RLock()
	c, ok := l.counters[campaignID]
	l.mu.RUnlock()
	if ok {
		return c
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if c, ok = l.counters[campaignID]; !ok {
		c = new(atomic.Int64)
		l.counters[campaignID] = c
	}
	return c
}

// IncrementIfUnderBudget atomically increments the counter if it is below
// limit.
func (l *Ledger) IncrementIfUnderBudget(_ context.Context, campaignID, limit int64) (bool, error) {
	c := l.counter(campaignID)
	for {
		cur := c.Load()
		if cur >= limit {
			return false, nil
		}
		if c.CompareAndSwap(cur, cur+1) {
			return true, nil
		}
	}
}

// Delivered returns the campaign's delivered count.
func (l *Ledger) Delivered(_ context.Context, campaignID int64) (int64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if c, ok := l.counters[campaignID]; ok {
		return c.Load(), nil
	}
	return 0, nil
}

// DeliveredMany returns delivered counts for the known campaigns among ids.
func (l *Ledger) DeliveredMany(_ context.Context, ids []int64) (map[int64]int64, error) {
	out := make(map[int64]int64, len(ids))
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, id := range ids {
		if c, ok := l.counters[id]; ok {
			out[id] = c.Load()
		}
	}
	return out, nil
}

func (l *Ledger) shard(viewerID string) *viewerShard {
	return &l.shards[maphash.String(l.seed, viewerID)%viewerShards]
}

// ViewerStreak returns the viewer's streak.
func (l *Ledger) ViewerStreak(_ context.Context, viewerID string) (domain.ViewerStreak, error) {
	s := l.shard(viewerID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streaks[viewerID], nil
}

// RecordDelivery extends or restarts the viewer's streak.
func (l *Ledger) RecordDelivery(_ context.Context, viewerID string, campaignID int64, at time.Time) error {
	s := l.shard(viewerID)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.streaks[viewerID] = s.streaks[viewerID].Next(campaignID, at)
	return nil
}

// PruneViewers removes streaks last updated before the given time.
func (l *Ledger) PruneViewers(ctx context.Context, before time.Time) (int64, error) {
	var removed int64
	for i := range l.shards {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		s := &l.shards[i]
		s.mu.Lock()
		for id, st := range s.streaks {
			if st.UpdatedAt.Before(before) {
				delete(s.streaks, id)
				removed++
			}
		}
		s.mu.Unlock()
	}
	return removed, nil
}
