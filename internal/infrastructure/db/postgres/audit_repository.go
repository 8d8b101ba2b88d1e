package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/playgroundhq/playground-api/internal/core/domain"
	"github.com/playgroundhq/playground-api/internal/core/ports"
)

// AuditRepository appends entries to the auth_events table. The trail is
// insert-only; rows are never updated or deleted by the application.
type AuditRepository struct {
	pool *pgxpool.Pool
}

func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{pool: pool}
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	const query = `
		INSERT INTO auth_events (username, kind, detail, remote_ip, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.pool.Exec(ctx, query,
		event.Username, event.Kind, event.Detail, event.RemoteIP, event.Timestamp,
	); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

var _ ports.AuditRepository = (*AuditRepository)(nil)
