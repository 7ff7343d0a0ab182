package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"payment-settlement/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const paymentColumns = `id, order_id, kind, amount, currency, payment_method, payment_type, status,
		card_intent_id, card_charge_id, regional_transaction_id, regional_validation_id,
		regional_bank_transaction_id, cod_reference, refund_id, reason, metadata, created_at`

// OrderPaymentRepo implements ports.OrderPaymentRepository.
// Partial unique indexes on each gateway identifier (kind=charge, status=succeeded)
// make Create the idempotency anchor for settlements.
type OrderPaymentRepo struct {
	pool Pool
}

// NewOrderPaymentRepo creates a new OrderPaymentRepo.
func NewOrderPaymentRepo(pool Pool) *OrderPaymentRepo {
	return &OrderPaymentRepo{pool: pool}
}

// Create appends a ledger row within a transaction.
func (r *OrderPaymentRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.OrderPayment) error {
	query := `INSERT INTO order_payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	metadata, err := json.Marshal(p.Metadata)
	if err != nil {
		return fmt.Errorf("marshal payment metadata: %w", err)
	}

	_, err = tx.Exec(ctx, query,
		p.ID, p.OrderID, string(p.Kind), p.Amount, p.Currency, string(p.PaymentMethod),
		string(p.PaymentType), string(p.Status),
		nullable(p.Refs.CardIntentID), nullable(p.Refs.CardChargeID),
		nullable(p.Refs.RegionalTransactionID), nullable(p.Refs.RegionalValidationID),
		nullable(p.Refs.RegionalBankTransactionID), nullable(p.Refs.CODReference),
		nullable(p.RefundID), nullable(p.Reason), metadata, p.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicatePayment
		}
		return fmt.Errorf("insert order payment: %w", err)
	}
	return nil
}

func scanPayment(row pgx.Row) (*domain.OrderPayment, error) {
	p := &domain.OrderPayment{}
	var kind, method, paymentType, status string
	var intentID, chargeID, tranID, valID, bankTranID, codRef, refundID, reason *string
	var metadata []byte
	err := row.Scan(
		&p.ID, &p.OrderID, &kind, &p.Amount, &p.Currency, &method, &paymentType, &status,
		&intentID, &chargeID, &tranID, &valID, &bankTranID, &codRef, &refundID, &reason,
		&metadata, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Kind = domain.PaymentKind(kind)
	p.PaymentMethod = domain.GatewayTag(method)
	p.PaymentType = domain.PaymentType(paymentType)
	p.Status = domain.PaymentRecordStatus(status)
	p.Refs = domain.GatewayRefs{
		CardIntentID:              deref(intentID),
		CardChargeID:              deref(chargeID),
		RegionalTransactionID:     deref(tranID),
		RegionalValidationID:      deref(valID),
		RegionalBankTransactionID: deref(bankTranID),
		CODReference:              deref(codRef),
	}
	p.RefundID = deref(refundID)
	p.Reason = deref(reason)
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &p.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal payment metadata: %w", err)
		}
	}
	return p, nil
}

// FindSucceededByRefs returns a successful charge sharing any of the given identifiers.
func (r *OrderPaymentRepo) FindSucceededByRefs(ctx context.Context, tx pgx.Tx, refs domain.GatewayRefs) (*domain.OrderPayment, error) {
	if refs.IsEmpty() {
		return nil, nil
	}
	query := `SELECT ` + paymentColumns + ` FROM order_payments
		WHERE kind = 'charge' AND status = 'succeeded' AND (
			card_intent_id = $1 OR card_charge_id = $2 OR regional_transaction_id = $3
			OR regional_validation_id = $4 OR regional_bank_transaction_id = $5 OR cod_reference = $6)
		LIMIT 1`

	p, err := scanPayment(tx.QueryRow(ctx, query,
		nullable(refs.CardIntentID), nullable(refs.CardChargeID), nullable(refs.RegionalTransactionID),
		nullable(refs.RegionalValidationID), nullable(refs.RegionalBankTransactionID), nullable(refs.CODReference),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find payment by gateway refs: %w", err)
	}
	return p, nil
}

// ListByOrder returns the order's ledger oldest first.
func (r *OrderPaymentRepo) ListByOrder(ctx context.Context, orderID string) ([]domain.OrderPayment, error) {
	query := `SELECT ` + paymentColumns + ` FROM order_payments WHERE order_id = $1 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.OrderPayment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order payment: %w", err)
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}
