// Package registry holds the campaign configuration the allocation path
// reads. Readers load an immutable snapshot through an atomic pointer and
// never block; writers build a new snapshot and swap it in.
package registry

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"mesa-pacing/internal/core/domain"
)

// Snapshot is an immutable view of the registry. Campaigns returned from it
// must not be modified.
type Snapshot struct {
	campaigns map[int64]*domain.Campaign
}

// Campaign returns the campaign with the given id.
func (s *Snapshot) Campaign(id int64) (*domain.Campaign, bool) {
	c, ok := s.campaigns[id]
	return c, ok
}

// Len returns the number of campaigns in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.campaigns)
}

// Each calls fn for every campaign in ascending id order.
func (s *Snapshot) Each(fn func(c *domain.Campaign)) {
	ids := make([]int64, 0, len(s.campaigns))
	for id := range s.campaigns {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		fn(s.campaigns[id])
	}
}

// Registry is the CampaignRegistry: a read-mostly set of campaigns.
type Registry struct {
	data   atomic.Pointer[Snapshot]
	wmu    sync.Mutex // serializes writers
	logger *slog.Logger
}

// New returns an empty registry.
func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{logger: logger}
	r.data.Store(&Snapshot{campaigns: map[int64]*domain.Campaign{}})
	return r
}

// Snapshot returns the current snapshot.
func (r *Registry) Snapshot() *Snapshot {
	return r.data.Load()
}

// Upsert validates and stores a single campaign. A campaign already known
// to the registry may only move along the lifecycle; a completed campaign
// is never re-activated.
func (r *Registry) Upsert(c domain.Campaign) error {
	if err := c.Validate(); err != nil {
		return err
	}
	r.wmu.Lock()
	defer r.wmu.Unlock()

	cur := r.data.Load()
	if prev, ok := cur.campaigns[c.ID]; ok && !prev.Status.CanTransition(c.Status) {
		return fmt.Errorf("%w: campaign %d %s -> %s", domain.ErrIllegalTransition, c.ID, prev.Status, c.Status)
	}
	next := cur.clone(len(cur.campaigns) + 1)
	next.campaigns[c.ID] = cloneCampaign(c)
	r.data.Store(next)
	return nil
}

// Replace swaps in the full campaign set loaded from the campaign store.
// Invalid campaigns are logged and left out. A campaign the registry has
// already completed stays completed even if the store still reports it
// active, since the store may not have caught up yet.
func (r *Registry) Replace(campaigns []domain.Campaign) {
	r.wmu.Lock()
	defer r.wmu.Unlock()

	cur := r.data.Load()
	next := &Snapshot{campaigns: make(map[int64]*domain.Campaign, len(campaigns))}
	for _, c := range campaigns {
		if err := c.Validate(); err != nil {
			r.logger.Warn("campaign excluded: configuration error",
				slog.Int64("campaign_id", c.ID),
				slog.Any("error", err),
			)
			continue
		}
		cc := cloneCampaign(c)
		if prev, ok := cur.campaigns[c.ID]; ok && prev.Status == domain.StatusCompleted {
			cc.Status = domain.StatusCompleted
		}
		next.campaigns[c.ID] = cc
	}
	r.data.Store(next)
}

// MarkCompleted moves a campaign to the completed status. It reports
// whether the status changed.
func (r *Registry) MarkCompleted(id int64) bool {
	r.wmu.Lock()
	defer r.wmu.Unlock()

	cur := r.data.Load()
	prev, ok := cur.campaigns[id]
	if !ok || prev.Status == domain.StatusCompleted {
		return false
	}
	next := cur.clone(len(cur.campaigns))
	cc := *prev
	cc.Status = domain.StatusCompleted
	next.campaigns[id] = &cc
	r.data.Store(next)
	return true
}

func (s *Snapshot) clone(capacity int) *Snapshot {
	out := &Snapshot{campaigns: make(map[int64]*domain.Campaign, capacity)}
	for id, c := range s.campaigns {
		out.campaigns[id] = c
	}
	return out
}

func cloneCampaign(c domain.Campaign) *domain.Campaign {
	c.Surfaces = slices.Clone(c.Surfaces)
	c.Creatives = slices.Clone(c.Creatives)
	for i := range c.Creatives {
		if c.Creatives[i].CampaignID == 0 {
			c.Creatives[i].CampaignID = c.ID
		}
	}
	return &c
}
