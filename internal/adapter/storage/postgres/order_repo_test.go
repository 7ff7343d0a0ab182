package postgres

import (
	"context"
	"testing"
	"time"

	"payment-settlement/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder() *domain.Order {
	return &domain.Order{
		ID:                "ord-1001",
		TotalAmount:       1000,
		PaidAmount:        400,
		BalanceDue:        600,
		Currency:          "BDT",
		PaymentStatus:     domain.PaymentStatusPartial,
		FulfillmentStatus: domain.FulfillmentProcessing,
		InventoryPool:     domain.InventoryPoolPreorder,
		PaymentMethod:     domain.GatewayCard,
		CreatedAt:         time.Now().UTC().Truncate(time.Microsecond),
		UpdatedAt:         time.Now().UTC().Truncate(time.Microsecond),
	}
}

func orderRow(o *domain.Order) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "total_amount", "paid_amount", "balance_due", "currency", "payment_status",
		"fulfillment_status", "inventory_pool", "payment_method", "created_at", "updated_at",
	}).AddRow(
		o.ID, o.TotalAmount, o.PaidAmount, o.BalanceDue, o.Currency, string(o.PaymentStatus),
		string(o.FulfillmentStatus), string(o.InventoryPool), string(o.PaymentMethod), o.CreatedAt, o.UpdatedAt,
	)
}

func TestOrderRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	o := newTestOrder()

	mock.ExpectQuery("SELECT .+ FROM orders WHERE id").
		WithArgs(o.ID).
		WillReturnRows(orderRow(o))

	result, err := repo.GetByID(context.Background(), o.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, o, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM orders WHERE id").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	result, err := repo.GetByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_GetByIDForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	o := newTestOrder()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM orders WHERE id .+ FOR UPDATE").
		WithArgs(o.ID).
		WillReturnRows(orderRow(o))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetByIDForUpdate(context.Background(), tx, o.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, domain.PaymentStatusPartial, result.PaymentStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_UpdateBalances(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	o := newTestOrder()
	o.ApplyPayment(600)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders SET paid_amount").
		WithArgs(int64(1000), int64(0), "PAID", o.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateBalances(context.Background(), tx, o)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_UpdateBalances_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	o := newTestOrder()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders SET paid_amount").
		WithArgs(o.PaidAmount, o.BalanceDue, string(o.PaymentStatus), o.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateBalances(context.Background(), tx, o)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "order not found")
}

func TestOrderRepo_UpdateFulfillmentStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)

	mock.ExpectExec("UPDATE orders SET fulfillment_status").
		WithArgs("RETURNED", "ord-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.UpdateFulfillmentStatus(context.Background(), "ord-1", domain.FulfillmentReturned)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_GetItems(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)

	mock.ExpectQuery("SELECT variant_id, quantity FROM order_items").
		WithArgs("ord-1").
		WillReturnRows(pgxmock.NewRows([]string{"variant_id", "quantity"}).
			AddRow("var-a", 2).
			AddRow("var-b", 1))

	items, err := repo.GetItems(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.Equal(t, []domain.OrderItem{{VariantID: "var-a", Quantity: 2}, {VariantID: "var-b", Quantity: 1}}, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}
