package catalog

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	cachePingTimeout  = 1 * time.Second
	cacheQueryTimeout = 3 * time.Second

	pgUndefinedTable = "42P01"
)

// ErrCacheUnavailable reports that the cache schema is missing. The loader
// treats it like any other miss.
var ErrCacheUnavailable = errors.New("catalog cache table missing")

// PostgresCache persists cache entries in a catalog_cache table so a session
// survives process restarts. Expected schema:
//
//	CREATE TABLE catalog_cache (
//	    cache_key  TEXT PRIMARY KEY,
//	    payload    BYTEA NOT NULL,
//	    written_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type PostgresCache struct {
	db *sql.DB
}

func NewPostgresCache(db *sql.DB) *PostgresCache {
	return &PostgresCache{db: db}
}

func (c *PostgresCache) Ping(ctx context.Context) error {
	return withTimeout(ctx, cachePingTimeout, func(ctx context.Context) error {
		return c.db.PingContext(ctx)
	})
}

func (c *PostgresCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte

	err := withTimeout(ctx, cacheQueryTimeout, func(ctx context.Context) error {
		return c.db.QueryRowContext(ctx, `
			SELECT payload
			FROM catalog_cache
			WHERE cache_key = $1
		`, key).Scan(&payload)
	})

	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if isUndefinedTable(err) {
		return nil, false, ErrCacheUnavailable
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

func (c *PostgresCache) Put(ctx context.Context, key string, payload []byte) error {
	err := withTimeout(ctx, cacheQueryTimeout, func(ctx context.Context) error {
		_, err := c.db.ExecContext(ctx, `
			INSERT INTO catalog_cache (cache_key, payload, written_at)
			VALUES ($1, $2, now())
			ON CONFLICT (cache_key)
			DO UPDATE SET payload = EXCLUDED.payload, written_at = now()
		`, key, payload)
		return err
	})

	if isUndefinedTable(err) {
		return ErrCacheUnavailable
	}
	return err
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable
}
