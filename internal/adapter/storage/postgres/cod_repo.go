package postgres

import (
	"context"
	"errors"
	"fmt"

	"payment-settlement/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const codColumns = `order_id, status, delivery_attempts, collected_by, collected_amount, collection_ref,
		collected_at, failure_reason, last_attempt_at, created_at, updated_at`

// CODRepo implements ports.CODRepository.
type CODRepo struct {
	pool Pool
}

// NewCODRepo creates a new CODRepo.
func NewCODRepo(pool Pool) *CODRepo {
	return &CODRepo{pool: pool}
}

// Create inserts tracking for a COD order. Existing tracking is kept.
func (r *CODRepo) Create(ctx context.Context, c *domain.CODTracking) error {
	query := `INSERT INTO cod_tracking (order_id, status, delivery_attempts, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5) ON CONFLICT (order_id) DO NOTHING`

	_, err := r.pool.Exec(ctx, query, c.OrderID, string(c.Status), c.DeliveryAttempts, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert cod tracking: %w", err)
	}
	return nil
}

func scanCOD(row pgx.Row) (*domain.CODTracking, error) {
	c := &domain.CODTracking{}
	var status string
	err := row.Scan(
		&c.OrderID, &status, &c.DeliveryAttempts, &c.CollectedBy, &c.CollectedAmount, &c.CollectionRef,
		&c.CollectedAt, &c.FailureReason, &c.LastAttemptAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Status = domain.CODStatus(status)
	return c, nil
}

// GetByOrderID fetches tracking without locking.
func (r *CODRepo) GetByOrderID(ctx context.Context, orderID string) (*domain.CODTracking, error) {
	query := `SELECT ` + codColumns + ` FROM cod_tracking WHERE order_id = $1`

	c, err := scanCOD(r.pool.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cod tracking: %w", err)
	}
	return c, nil
}

// GetByOrderIDForUpdate fetches tracking with pessimistic locking.
// This MUST be called within a transaction.
func (r *CODRepo) GetByOrderIDForUpdate(ctx context.Context, tx pgx.Tx, orderID string) (*domain.CODTracking, error) {
	query := `SELECT ` + codColumns + ` FROM cod_tracking WHERE order_id = $1 FOR UPDATE`

	c, err := scanCOD(tx.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cod tracking for update: %w", err)
	}
	return c, nil
}

// Update writes the mutable tracking fields. delivery_attempts never decreases.
func (r *CODRepo) Update(ctx context.Context, tx pgx.Tx, c *domain.CODTracking) error {
	query := `UPDATE cod_tracking
		SET status = $1, delivery_attempts = GREATEST(delivery_attempts, $2), collected_by = $3,
			collected_amount = $4, collection_ref = $5, collected_at = $6, failure_reason = $7,
			last_attempt_at = $8, updated_at = NOW()
		WHERE order_id = $9`

	tag, err := tx.Exec(ctx, query,
		string(c.Status), c.DeliveryAttempts, c.CollectedBy, c.CollectedAmount, c.CollectionRef,
		c.CollectedAt, c.FailureReason, c.LastAttemptAt, c.OrderID,
	)
	if err != nil {
		return fmt.Errorf("update cod tracking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cod tracking not found: %s", c.OrderID)
	}
	return nil
}
