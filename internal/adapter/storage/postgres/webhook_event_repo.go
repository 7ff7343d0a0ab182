package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"payment-settlement/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// WebhookEventRepo implements ports.WebhookEventRepository.
type WebhookEventRepo struct {
	pool Pool
	now  func() time.Time
}

// NewWebhookEventRepo creates a new WebhookEventRepo.
func NewWebhookEventRepo(pool Pool) *WebhookEventRepo {
	return &WebhookEventRepo{pool: pool, now: time.Now}
}

// Claim inserts the event as processing. An existing row is taken over only
// when it failed earlier or its processing claim is older than lease.
func (r *WebhookEventRepo) Claim(ctx context.Context, ev *domain.WebhookEvent, lease time.Duration) (bool, error) {
	query := `INSERT INTO webhook_events (id, provider, event_type, order_id, status, received_at)
		VALUES ($1, $2, $3, $4, 'processing', $5)
		ON CONFLICT (id) DO UPDATE
			SET status = 'processing', received_at = EXCLUDED.received_at,
				order_id = COALESCE(EXCLUDED.order_id, webhook_events.order_id)
			WHERE webhook_events.status = 'failed'
				OR (webhook_events.status = 'processing' AND webhook_events.received_at < $6)
		RETURNING id`

	now := r.now().UTC()
	var id string
	err := r.pool.QueryRow(ctx, query,
		ev.ID, string(ev.Provider), ev.EventType, ev.OrderID, now, now.Add(-lease),
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("claim webhook event: %w", err)
	}
	ev.Status = domain.WebhookEventProcessing
	ev.ReceivedAt = now
	return true, nil
}

// Complete records the final outcome of a claimed event.
func (r *WebhookEventRepo) Complete(ctx context.Context, id string, status domain.WebhookEventStatus, result string) error {
	query := `UPDATE webhook_events SET status = $1, result = $2, processed_at = $3 WHERE id = $4`

	tag, err := r.pool.Exec(ctx, query, string(status), result, r.now().UTC(), id)
	if err != nil {
		return fmt.Errorf("complete webhook event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("webhook event not found: %s", id)
	}
	return nil
}

// Record inserts a finished event. A duplicate id is ignored and reported as false.
func (r *WebhookEventRepo) Record(ctx context.Context, ev *domain.WebhookEvent) (bool, error) {
	query := `INSERT INTO webhook_events (id, provider, event_type, order_id, status, result, received_at, processed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query,
		ev.ID, string(ev.Provider), ev.EventType, ev.OrderID, string(ev.Status),
		ev.Result, ev.ReceivedAt, ev.ProcessedAt,
	)
	if err != nil {
		return false, fmt.Errorf("record webhook event: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetByID fetches a ledger entry.
func (r *WebhookEventRepo) GetByID(ctx context.Context, id string) (*domain.WebhookEvent, error) {
	query := `SELECT id, provider, event_type, order_id, status, COALESCE(result, ''), received_at, processed_at
		FROM webhook_events WHERE id = $1`

	ev := &domain.WebhookEvent{}
	var provider, status string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&ev.ID, &provider, &ev.EventType, &ev.OrderID, &status, &ev.Result, &ev.ReceivedAt, &ev.ProcessedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get webhook event: %w", err)
	}
	ev.Provider = domain.WebhookProvider(provider)
	ev.Status = domain.WebhookEventStatus(status)
	return ev, nil
}
