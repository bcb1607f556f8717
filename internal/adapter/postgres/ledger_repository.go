package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/port"
)

// LedgerRepository implements port.DeliveryLedger using pgxpool for
// PostgreSQL. The budget check and the increment happen in one statement,
// so concurrent commits from any number of engine instances cannot push a
// counter past its limit.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository returns a new repository instance.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

var _ port.DeliveryLedger = (*LedgerRepository)(nil)

// IncrementIfUnderBudget adds one delivery unless the counter reached limit.
func (r *LedgerRepository) IncrementIfUnderBudget(ctx context.Context, campaignID, limit int64) (bool, error) {
	if limit <= 0 {
		return false, nil
	}
	var delivered int64
	err := r.pool.QueryRow(ctx, `
        INSERT INTO delivery_counters (campaign_id, delivered, updated_at)
        VALUES ($1, 1, now())
        ON CONFLICT (campaign_id) DO UPDATE
            SET delivered = delivery_counters.delivered + 1,
                updated_at = now()
            WHERE delivery_counters.delivered < $2
        RETURNING delivered`, campaignID, limit).Scan(&delivered)
	// the conflict branch updates nothing once the budget is spent
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Delivered returns the delivered count of a campaign.
func (r *LedgerRepository) Delivered(ctx context.Context, campaignID int64) (int64, error) {
	var delivered int64
	err := r.pool.QueryRow(ctx, `SELECT delivered FROM delivery_counters WHERE campaign_id = $1`, campaignID).Scan(&delivered)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return delivered, nil
}

// DeliveredMany returns delivered counts for the given campaigns.
func (r *LedgerRepository) DeliveredMany(ctx context.Context, campaignIDs []int64) (map[int64]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT campaign_id, delivered FROM delivery_counters WHERE campaign_id = ANY($1)`, campaignIDs)
	if err != nil {
		return nil, err
	}
	counters, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DeliveryCounter, error) {
		var c domain.DeliveryCounter
		err := row.Scan(&c.CampaignID, &c.Delivered)
		return c, err
	})
	if err != nil {
		return nil, err
	}
	out := make(map[int64]int64, len(counters))
	for _, c := range counters {
		out[c.CampaignID] = c.Delivered
	}
	return out, nil
}

// ViewerStreak returns the viewer's current streak.
func (r *LedgerRepository) ViewerStreak(ctx context.Context, viewerID string) (domain.ViewerStreak, error) {
	var s domain.ViewerStreak
	err := r.pool.QueryRow(ctx, `SELECT campaign_id, streak, updated_at FROM viewer_streaks WHERE viewer_id = $1`, viewerID).
		Scan(&s.CampaignID, &s.Count, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ViewerStreak{}, nil
	}
	if err != nil {
		return domain.ViewerStreak{}, err
	}
	return s, nil
}

// RecordDelivery extends the viewer's streak or starts a new one.
func (r *LedgerRepository) RecordDelivery(ctx context.Context, viewerID string, campaignID int64, at time.Time) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO viewer_streaks (viewer_id, campaign_id, streak, updated_at)
        VALUES ($1, $2, 1, $3)
        ON CONFLICT (viewer_id) DO UPDATE
            SET streak = CASE
                    WHEN viewer_streaks.campaign_id = EXCLUDED.campaign_id THEN viewer_streaks.streak + 1
                    ELSE 1
                END,
                campaign_id = EXCLUDED.campaign_id,
                updated_at = EXCLUDED.updated_at`, viewerID, campaignID, at.UTC())
	return err
}

// PruneViewers deletes streaks not updated since before.
func (r *LedgerRepository) PruneViewers(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM viewer_streaks WHERE updated_at < $1`, before.UTC())
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
