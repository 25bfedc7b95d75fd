package postgres

import (
	"context"
	"fmt"

	"create2earn/internal/core/domain"
)

// DeliveryRepo implements ports.DeliveryRepository.
type DeliveryRepo struct {
	pool Pool
}

// NewDeliveryRepo creates a PostgreSQL-backed delivery repository.
func NewDeliveryRepo(pool Pool) *DeliveryRepo {
	return &DeliveryRepo{pool: pool}
}

// Create records a new delivery attempt sequence.
func (r *DeliveryRepo) Create(ctx context.Context, d *domain.EventDelivery) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO event_deliveries (event_id, event_type, url, http_status, attempt, status, last_error, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		d.EventID, string(d.EventType), d.URL, d.HTTPStatus, d.Attempt,
		string(d.Status), d.LastError, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event delivery: %w", err)
	}
	return nil
}

// Update stores the latest outcome of a delivery.
func (r *DeliveryRepo) Update(ctx context.Context, d *domain.EventDelivery) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE event_deliveries
		 SET http_status = $1, attempt = $2, status = $3, last_error = $4, updated_at = $5
		 WHERE event_id = $6`,
		d.HTTPStatus, d.Attempt, string(d.Status), d.LastError, d.UpdatedAt, d.EventID,
	)
	if err != nil {
		return fmt.Errorf("update event delivery: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event delivery not found: %s", d.EventID)
	}
	return nil
}
