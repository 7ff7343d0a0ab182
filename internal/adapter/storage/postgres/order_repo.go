package postgres

import (
	"context"
	"errors"
	"fmt"

	"payment-settlement/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, total_amount, paid_amount, balance_due, currency, payment_status,
		fulfillment_status, inventory_pool, payment_method, created_at, updated_at`

// OrderRepo implements ports.OrderRepository.
type OrderRepo struct {
	pool Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	o := &domain.Order{}
	var paymentStatus, fulfillment, pool, method string
	err := row.Scan(
		&o.ID, &o.TotalAmount, &o.PaidAmount, &o.BalanceDue, &o.Currency, &paymentStatus,
		&fulfillment, &pool, &method, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.PaymentStatus = domain.PaymentStatus(paymentStatus)
	o.FulfillmentStatus = domain.FulfillmentStatus(fulfillment)
	o.InventoryPool = domain.InventoryPool(pool)
	o.PaymentMethod = domain.GatewayTag(method)
	return o, nil
}

// GetByID fetches an order without locking.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	o, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	return o, nil
}

// GetByIDForUpdate fetches an order with pessimistic locking.
// This MUST be called within a transaction.
func (r *OrderRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE`

	o, err := scanOrder(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order for update: %w", err)
	}
	return o, nil
}

// UpdateBalances writes paid amount, balance due and payment status.
func (r *OrderRepo) UpdateBalances(ctx context.Context, tx pgx.Tx, o *domain.Order) error {
	query := `UPDATE orders SET paid_amount = $1, balance_due = $2, payment_status = $3, updated_at = NOW()
		WHERE id = $4`

	tag, err := tx.Exec(ctx, query, o.PaidAmount, o.BalanceDue, string(o.PaymentStatus), o.ID)
	if err != nil {
		return fmt.Errorf("update order balances: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order not found: %s", o.ID)
	}
	return nil
}

// UpdatePaymentStatus sets only the payment status.
func (r *OrderRepo) UpdatePaymentStatus(ctx context.Context, tx pgx.Tx, id string, status domain.PaymentStatus) error {
	query := `UPDATE orders SET payment_status = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("update order payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order not found: %s", id)
	}
	return nil
}

// UpdateFulfillmentStatus sets the shipping state.
func (r *OrderRepo) UpdateFulfillmentStatus(ctx context.Context, id string, status domain.FulfillmentStatus) error {
	query := `UPDATE orders SET fulfillment_status = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("update order fulfillment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order not found: %s", id)
	}
	return nil
}

// GetItems returns the order's line items.
func (r *OrderRepo) GetItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	query := `SELECT variant_id, quantity FROM order_items WHERE order_id = $1 ORDER BY variant_id`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.VariantID, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
