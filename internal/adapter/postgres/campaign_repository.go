package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/port"
)

// CampaignRepository implements port.CampaignStore on the tables the
// campaign editor writes to.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

var _ port.CampaignStore = (*CampaignRepository)(nil)

// ListCampaigns returns every non-draft campaign with its creatives.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT
            id,
            name,
            start_date,
            end_date,
            limit_impressions,
            weight,
            consecutive_cap,
            status,
            surfaces,
            audience,
            updated_at
        FROM campaigns
        WHERE status <> 'draft'
        ORDER BY id`)
	if err != nil {
		return nil, err
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var (
			c        domain.Campaign
			status   string
			surfaces []string
		)
		err := row.Scan(
			&c.ID,
			&c.Name,
			&c.StartDate,
			&c.EndDate,
			&c.LimitImpressions,
			&c.Weight,
			&c.ConsecutiveCap,
			&status,
			&surfaces,
			&c.Audience,
			&c.UpdatedAt,
		)
		c.Status = domain.Status(status)
		for _, s := range surfaces {
			c.Surfaces = append(c.Surfaces, domain.Surface(s))
		}
		return c, err
	})
	if err != nil {
		return nil, err
	}
	if len(campaigns) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(campaigns))
	index := make(map[int64]int, len(campaigns))
	for i, c := range campaigns {
		ids[i] = c.ID
		index[c.ID] = i
	}
	creatives, err := r.creatives(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, cr := range creatives {
		i := index[cr.CampaignID]
		campaigns[i].Creatives = append(campaigns[i].Creatives, cr)
	}
	return campaigns, nil
}

func (r *CampaignRepository) creatives(ctx context.Context, campaignIDs []int64) ([]domain.Creative, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, campaign_id, weight, format, deleted_at
        FROM creatives
        WHERE campaign_id = ANY($1)
        ORDER BY campaign_id, id`, campaignIDs)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Creative, error) {
		var (
			cr        domain.Creative
			deletedAt *time.Time
		)
		err := row.Scan(&cr.ID, &cr.CampaignID, &cr.Weight, &cr.Format, &deletedAt)
		cr.DeletedAt = deletedAt
		return cr, err
	})
}

// MarkCompleted moves a campaign to the completed status. Unknown ids are
// ignored: campaigns pushed straight into the registry have no row here.
func (r *CampaignRepository) MarkCompleted(ctx context.Context, campaignID int64) error {
	_, err := r.pool.Exec(ctx, `UPDATE campaigns SET status = 'completed', updated_at = now() WHERE id = $1 AND status <> 'completed'`, campaignID)
	return err
}
