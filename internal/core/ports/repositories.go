package ports

import (
	"context"
	"time"

	"payment-settlement/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// OrderRepository defines persistence operations for orders.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.Order, error)
	UpdateBalances(ctx context.Context, tx pgx.Tx, order *domain.Order) error
	UpdatePaymentStatus(ctx context.Context, tx pgx.Tx, id string, status domain.PaymentStatus) error
	UpdateFulfillmentStatus(ctx context.Context, id string, status domain.FulfillmentStatus) error
	GetItems(ctx context.Context, orderID string) ([]domain.OrderItem, error)
}

// OrderPaymentRepository is the append-only payment ledger.
type OrderPaymentRepository interface {
	// Create returns domain.ErrDuplicatePayment when a succeeded charge with
	// any of the same gateway identifiers already exists.
	Create(ctx context.Context, tx pgx.Tx, payment *domain.OrderPayment) error
	FindSucceededByRefs(ctx context.Context, tx pgx.Tx, refs domain.GatewayRefs) (*domain.OrderPayment, error)
	// ListByOrder returns every ledger row of the order, oldest first.
	ListByOrder(ctx context.Context, orderID string) ([]domain.OrderPayment, error)
}

// PaymentPlanRepository defines persistence for installment plans.
type PaymentPlanRepository interface {
	Create(ctx context.Context, plan *domain.PaymentPlan) error
	GetByOrderID(ctx context.Context, orderID string) (*domain.PaymentPlan, error)
	// Advance moves the plan forward only. It reports false when the plan is
	// missing or already at or beyond the target status.
	Advance(ctx context.Context, tx pgx.Tx, orderID string, to domain.PaymentPlanStatus, at time.Time) (bool, error)
}

// WebhookEventRepository is the webhook idempotency ledger.
type WebhookEventRepository interface {
	// Claim atomically inserts the event in processing state. It reports false
	// when the id is already processed or still held by a live claim.
	Claim(ctx context.Context, event *domain.WebhookEvent, lease time.Duration) (bool, error)
	Complete(ctx context.Context, id string, status domain.WebhookEventStatus, result string) error
	// Record inserts a finished event, ignoring a duplicate id.
	Record(ctx context.Context, event *domain.WebhookEvent) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.WebhookEvent, error)
}

// CODRepository defines persistence for cash-on-delivery tracking.
type CODRepository interface {
	Create(ctx context.Context, tracking *domain.CODTracking) error
	GetByOrderID(ctx context.Context, orderID string) (*domain.CODTracking, error)
	GetByOrderIDForUpdate(ctx context.Context, tx pgx.Tx, orderID string) (*domain.CODTracking, error)
	Update(ctx context.Context, tx pgx.Tx, tracking *domain.CODTracking) error
}

// SettingsRepository reads and writes category-scoped key/value settings.
type SettingsRepository interface {
	ListByCategory(ctx context.Context, category string) ([]domain.Setting, error)
	Upsert(ctx context.Context, tx pgx.Tx, setting domain.Setting) error
}

// AuditRepository persists operator audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
