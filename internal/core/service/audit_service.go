package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/userdept/admin-system/internal/api/metrics"
	"github.com/userdept/admin-system/internal/core/domain"
	"github.com/userdept/admin-system/internal/core/ports"
)

// AuditService persists audit entries dequeued by the dispatcher workers.
type AuditService struct {
	repo   ports.AuditRepository
	logger zerolog.Logger
}

func NewAuditService(repo ports.AuditRepository, logger zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, logger: logger}
}

func (s *AuditService) Process(ctx context.Context, entry domain.AuditEntry) error {
	start := time.Now()

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	if err := s.repo.Record(ctx, entry); err != nil {
		metrics.AuditErrorsTotal.WithLabelValues("record_failed").Inc()
		s.logger.Error().Err(err).
			Str("entity", entry.Entity).
			Str("action", entry.Action).
			Msg("failed to record audit entry")
		return err
	}

	metrics.AuditProcessedTotal.WithLabelValues(entry.Entity, entry.Action).Inc()
	metrics.AuditProcessingDuration.WithLabelValues(entry.Entity).Observe(time.Since(start).Seconds())
	return nil
}
