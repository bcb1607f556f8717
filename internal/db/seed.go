package db

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type seedCampaign struct {
	name      string
	limit     int64
	days      int
	weight    int
	cap       int
	surfaces  []string
	creatives []int // weights
}

var demoCampaigns = []seedCampaign{
	{name: "Fleet partner launch", limit: 1_000_000, days: 30, weight: 80, cap: 3, surfaces: []string{"promo_block", "map_object"}, creatives: []int{70, 30}},
	{name: "Airport shuttle promo", limit: 10_000, days: 7, weight: 50, cap: 2, surfaces: []string{"promo_block"}, creatives: []int{50, 25, 25}},
	{name: "Fuel station pins", limit: 250_000, days: 14, weight: 30, cap: 5, surfaces: []string{"map_object"}, creatives: []int{1}},
	{name: "Night tariff", limit: 40_000, days: 10, weight: 100, cap: 1, surfaces: []string{"promo_block", "map_object"}, creatives: []int{0, 0}},
	{name: "Weekend cashback", limit: 75_000, days: 3, weight: 20, cap: 2, surfaces: []string{"promo_block"}, creatives: []int{60, 40}},
}

// Seed inserts demo campaigns and creatives in a single transaction. The
// campaigns start yesterday so they are immediately servable.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	start := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -1)

	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		for i, sc := range demoCampaigns {
			id := int64(i + 1)
			_, err := tx.Exec(ctx, `INSERT INTO campaigns
    (id, name, start_date, end_date, limit_impressions, weight, consecutive_cap, status, surfaces)
VALUES ($1,$2,$3,$4,$5,$6,$7,'active',$8) ON CONFLICT DO NOTHING`,
				id, sc.name, start, start.AddDate(0, 0, sc.days), sc.limit, sc.weight, sc.cap, sc.surfaces)
			if err != nil {
				return fmt.Errorf("seed campaign %d: %w", id, err)
			}
			for j, w := range sc.creatives {
				crID := id*100 + int64(j+1)
				format := []string{"image/png 640x240", "image/webp 320x320", "video/mp4 15s"}[r.IntN(3)]
				_, err = tx.Exec(ctx, `INSERT INTO creatives (id, campaign_id, weight, format)
VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`, crID, id, w, format)
				if err != nil {
					return fmt.Errorf("seed creative %d: %w", crID, err)
				}
			}
		}
		// keep BIGSERIAL sequences ahead of the explicit ids
		if _, err := tx.Exec(ctx, `SELECT setval('campaigns_id_seq', (SELECT MAX(id) FROM campaigns))`); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `SELECT setval('creatives_id_seq', (SELECT MAX(id) FROM creatives))`)
		return err
	})
}
