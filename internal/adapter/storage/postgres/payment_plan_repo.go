package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"payment-settlement/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// PaymentPlanRepo implements ports.PaymentPlanRepository.
type PaymentPlanRepo struct {
	pool Pool
}

// NewPaymentPlanRepo creates a new PaymentPlanRepo.
func NewPaymentPlanRepo(pool Pool) *PaymentPlanRepo {
	return &PaymentPlanRepo{pool: pool}
}

// Create inserts a plan, leaving an existing one untouched.
func (r *PaymentPlanRepo) Create(ctx context.Context, plan *domain.PaymentPlan) error {
	query := `INSERT INTO payment_plans (order_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4) ON CONFLICT (order_id) DO NOTHING`

	_, err := r.pool.Exec(ctx, query, plan.OrderID, string(plan.Status), plan.CreatedAt, plan.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert payment plan: %w", err)
	}
	return nil
}

// GetByOrderID fetches the plan for an order.
func (r *PaymentPlanRepo) GetByOrderID(ctx context.Context, orderID string) (*domain.PaymentPlan, error) {
	query := `SELECT order_id, status, deposit_paid_at, balance_paid_at, created_at, updated_at
		FROM payment_plans WHERE order_id = $1`

	p := &domain.PaymentPlan{}
	var status string
	err := r.pool.QueryRow(ctx, query, orderID).Scan(
		&p.OrderID, &status, &p.DepositPaidAt, &p.BalancePaidAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment plan: %w", err)
	}
	p.Status = domain.PaymentPlanStatus(status)
	return p, nil
}

// Advance moves the plan forward with a conditional UPDATE, so concurrent or
// late settlements can never regress it.
func (r *PaymentPlanRepo) Advance(ctx context.Context, tx pgx.Tx, orderID string, to domain.PaymentPlanStatus, at time.Time) (bool, error) {
	var query string
	switch to {
	case domain.PaymentPlanDepositPaid:
		query = `UPDATE payment_plans SET status = 'deposit_paid', deposit_paid_at = $2, updated_at = $2
			WHERE order_id = $1 AND status = 'pending'`
	case domain.PaymentPlanFullyPaid:
		query = `UPDATE payment_plans SET status = 'fully_paid', balance_paid_at = $2, updated_at = $2
			WHERE order_id = $1 AND status IN ('pending', 'deposit_paid')`
	default:
		return false, fmt.Errorf("cannot advance payment plan to %q", to)
	}

	tag, err := tx.Exec(ctx, query, orderID, at)
	if err != nil {
		return false, fmt.Errorf("advance payment plan: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
