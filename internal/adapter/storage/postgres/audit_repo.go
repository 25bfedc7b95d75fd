package postgres

import (
	"context"
	"fmt"

	"create2earn/internal/core/domain"
)

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct {
	pool Pool
}

// NewAuditRepo creates a PostgreSQL-backed audit repository.
func NewAuditRepo(pool Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

// Create inserts an audit entry. Details is stored as JSONB, so an empty
// string is written as NULL.
func (r *AuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	var actor, details, resourceID *string
	if log.Actor != nil {
		a := addrText(*log.Actor)
		actor = &a
	}
	if log.Details != "" {
		details = &log.Details
	}
	if log.ResourceID != "" {
		resourceID = &log.ResourceID
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_logs (id, actor, action, resource_type, resource_id, details, ip_address, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7, $8)`,
		log.ID, actor, string(log.Action), log.ResourceType,
		resourceID, details, log.IPAddress, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}
