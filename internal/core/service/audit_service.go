package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/playgroundhq/playground-api/internal/core/domain"
	"github.com/playgroundhq/playground-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists auth events to the
// audit trail. Processing runs on the dispatcher workers, off the request
// path; a failed insert is logged and reported to the worker, never to the
// caller that triggered the event.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Process(ctx context.Context, event domain.AuditEvent) error {
	if event.Username == "" || event.Kind == "" {
		return fmt.Errorf("process audit event: %w", domain.ErrInvalidInput)
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("process audit event: %w", err)
	}

	s.log.Debug().
		Str("username", event.Username).
		Str("kind", string(event.Kind)).
		Msg("audit event recorded")
	return nil
}
