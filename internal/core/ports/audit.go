package ports

import (
	"context"

	"github.com/userdept/admin-system/internal/core/domain"
)

// AuditRepository persists audit trail entries.
type AuditRepository interface {
	Record(ctx context.Context, entry domain.AuditEntry) error
}

// AuditService processes a single audit entry end to end.
type AuditService interface {
	Process(ctx context.Context, entry domain.AuditEntry) error
}

// AuditSink is the write side handed to mutation services. Enqueue must not
// block the caller beyond channel capacity and must never fail the mutation.
type AuditSink interface {
	Enqueue(entry domain.AuditEntry)
}
