package ports

import (
	"context"

	"github.com/playgroundhq/playground-api/internal/core/domain"
)

// AuditRepository persists entries of the authentication audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditService processes audit events dequeued by the dispatcher workers.
type AuditService interface {
	Process(ctx context.Context, event domain.AuditEvent) error
}
