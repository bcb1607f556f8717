package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-pacing/internal/config/configs"
)

// NewPostgresPool creates a pgxpool.Pool for the configured address and
// verifies connectivity with a 5 second ping. The caller must close the
// returned pool.
func NewPostgresPool(ctx context.Context, cfg configs.Postgres) (*pgxpool.Pool, error) {
	poolConf, err := pgxpool.ParseConfig(cfg.Addr.String())
	if err != nil {
		return nil, err
	}
	// Ledger commits are short single-statement round trips; keep a few
	// connections warm so the first requests after idle do not dial.
	if poolConf.MinConns < 2 {
		poolConf.MinConns = 2
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConf)
	if err != nil {
		return nil, err
	}

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
