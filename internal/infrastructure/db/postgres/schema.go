package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema holds the idempotent bootstrap DDL. Uniqueness of username and
// email is owned entirely by the database; the service layer never checks
// it out-of-band.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'user',
		status        TEXT NOT NULL DEFAULT 'active',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id    BIGSERIAL PRIMARY KEY,
		name  TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS auth_events (
		id         BIGSERIAL PRIMARY KEY,
		username   TEXT NOT NULL,
		kind       TEXT NOT NULL,
		detail     TEXT NOT NULL DEFAULT '',
		remote_ip  TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_auth_events_username ON auth_events (username, created_at)`,
}

// Migrate applies the bootstrap schema. Statements are idempotent, so
// calling it on every startup is safe.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
