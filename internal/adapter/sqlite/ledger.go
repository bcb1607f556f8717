// Package sqlite implements port.DeliveryLedger on an embedded SQLite
// database for single-node deployments that need counters to survive a
// restart without running PostgreSQL.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/port"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS delivery_counters (
		campaign_id INTEGER PRIMARY KEY,
		delivered   INTEGER NOT NULL DEFAULT 0 CHECK (delivered >= 0),
		updated_at  INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS viewer_streaks (
		viewer_id   TEXT PRIMARY KEY,
		campaign_id INTEGER NOT NULL,
		streak      INTEGER NOT NULL,
		updated_at  INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS viewer_streaks_updated_at_idx ON viewer_streaks (updated_at)`,
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Ledger provides SQLite-backed delivery counters and viewer streaks.
type Ledger struct {
	db  *sql.DB
	now func() time.Time
}

var _ port.DeliveryLedger = (*Ledger)(nil)

// Open opens (creating if needed) the ledger database at path. ":memory:"
// opens a private in-memory database.
func Open(path string) (*Ledger, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := "file::memory:"
	if path != ":memory:" {
		cleanPath := filepath.Clean(path)
		if err := os.MkdirAll(filepath.Dir(cleanPath), 0o755); err != nil {
			return nil, fmt.Errorf("create ledger directory: %w", err)
		}
		dsn = cleanPath
	}
	dsn += "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One connection serializes writers, which also keeps an in-memory
	// database shared by every caller.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	for _, stmt := range schema {
		if _, err = db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply ledger schema: %w", err)
		}
	}
	return &Ledger{db: db, now: time.Now}, nil
}

// Close closes the underlying database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// IncrementIfUnderBudget adds one delivery unless the counter reached limit.
func (l *Ledger) IncrementIfUnderBudget(ctx context.Context, campaignID, limit int64) (bool, error) {
	if limit <= 0 {
		return false, nil
	}
	var delivered int64
	err := l.db.QueryRowContext(ctx, `
		INSERT INTO delivery_counters (campaign_id, delivered, updated_at)
		VALUES (?, 1, ?)
		ON CONFLICT (campaign_id) DO UPDATE
			SET delivered = delivered + 1,
			    updated_at = excluded.updated_at
			WHERE delivered < ?
		RETURNING delivered`, campaignID, toMillis(l.now()), limit).Scan(&delivered)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("increment delivery counter: %w", err)
	}
	return true, nil
}

// Delivered returns the delivered count of a campaign.
func (l *Ledger) Delivered(ctx context.Context, campaignID int64) (int64, error) {
	var delivered int64
	err := l.db.QueryRowContext(ctx, `SELECT delivered FROM delivery_counters WHERE campaign_id = ?`, campaignID).Scan(&delivered)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read delivery counter: %w", err)
	}
	return delivered, nil
}

// DeliveredMany returns delivered counts for the given campaigns.
func (l *Ledger) DeliveredMany(ctx context.Context, campaignIDs []int64) (map[int64]int64, error) {
	out := make(map[int64]int64, len(campaignIDs))
	if len(campaignIDs) == 0 {
		return out, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(campaignIDs)), ",")
	args := make([]any, len(campaignIDs))
	for i, id := range campaignIDs {
		args[i] = id
	}
	rows, err := l.db.QueryContext(ctx,
		`SELECT campaign_id, delivered FROM delivery_counters WHERE campaign_id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("read delivery counters: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c domain.DeliveryCounter
		if err = rows.Scan(&c.CampaignID, &c.Delivered); err != nil {
			return nil, fmt.Errorf("scan delivery counter: %w", err)
		}
		out[c.CampaignID] = c.Delivered
	}
	return out, rows.Err()
}

// ViewerStreak returns the viewer's current streak.
func (l *Ledger) ViewerStreak(ctx context.Context, viewerID string) (domain.ViewerStreak, error) {
	var (
		s         domain.ViewerStreak
		updatedAt int64
	)
	err := l.db.QueryRowContext(ctx, `SELECT campaign_id, streak, updated_at FROM viewer_streaks WHERE viewer_id = ?`, viewerID).
		Scan(&s.CampaignID, &s.Count, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ViewerStreak{}, nil
	}
	if err != nil {
		return domain.ViewerStreak{}, fmt.Errorf("read viewer streak: %w", err)
	}
	s.UpdatedAt = fromMillis(updatedAt)
	return s, nil
}

// RecordDelivery extends the viewer's streak or starts a new one.
func (l *Ledger) RecordDelivery(ctx context.Context, viewerID string, campaignID int64, at time.Time) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO viewer_streaks (viewer_id, campaign_id, streak, updated_at)
		VALUES (?, ?, 1, ?)
		ON CONFLICT (viewer_id) DO UPDATE
			SET streak = CASE WHEN campaign_id = excluded.campaign_id THEN streak + 1 ELSE 1 END,
			    campaign_id = excluded.campaign_id,
			    updated_at = excluded.updated_at`, viewerID, campaignID, toMillis(at))
	if err != nil {
		return fmt.Errorf("record viewer delivery: %w", err)
	}
	return nil
}

// PruneViewers deletes streaks not updated since before.
func (l *Ledger) PruneViewers(ctx context.Context, before time.Time) (int64, error) {
	res, err := l.db.ExecContext(ctx, `DELETE FROM viewer_streaks WHERE updated_at < ?`, toMillis(before))
	if err != nil {
		return 0, fmt.Errorf("prune viewer streaks: %w", err)
	}
	return res.RowsAffected()
}
