package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"payment-settlement/internal/core/domain"
	"payment-settlement/internal/core/ports"
	"payment-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Settlement outcomes reported to metrics.
const (
	outcomeSettled     = "settled"
	outcomeDuplicate   = "duplicate"
	outcomeAlreadyPaid = "already_paid"
	outcomeFailed      = "failed"
	outcomeError       = "error"
)

// SettlementServiceImpl implements ports.SettlementService.
type SettlementServiceImpl struct {
	orderRepo   ports.OrderRepository
	paymentRepo ports.OrderPaymentRepository
	planRepo    ports.PaymentPlanRepository
	webhookRepo ports.WebhookEventRepository
	inventory   ports.InventoryCoordinator
	transactor  ports.DBTransactor
	metrics     ports.Metrics
	log         zerolog.Logger
	now         func() time.Time
}

// NewSettlementService creates a new SettlementServiceImpl.
func NewSettlementService(
	orderRepo ports.OrderRepository,
	paymentRepo ports.OrderPaymentRepository,
	planRepo ports.PaymentPlanRepository,
	webhookRepo ports.WebhookEventRepository,
	inventory ports.InventoryCoordinator,
	transactor ports.DBTransactor,
	metrics ports.Metrics,
	log zerolog.Logger,
) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		planRepo:    planRepo,
		webhookRepo: webhookRepo,
		inventory:   inventory,
		transactor:  transactor,
		metrics:     metrics,
		log:         log,
		now:         time.Now,
	}
}

// SettlePayment records a confirmed payment against its order.
//
// The order row is locked for the whole read-recompute-write sequence, so
// concurrent settlements and refunds of one order are serialized. Duplicate
// confirmations are absorbed twice over: by the lookup on gateway identifiers
// and by the unique indexes behind paymentRepo.Create, which close the race
// between two transactions that both miss the lookup.
func (s *SettlementServiceImpl) SettlePayment(ctx context.Context, ev domain.ConfirmedPaymentEvent) (*ports.SettlementResult, error) {
	if ev.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if _, ok := domain.ParseGateway(string(ev.Gateway)); !ok {
		return nil, apperror.ErrUnsupportedGateway(string(ev.Gateway))
	}
	if ev.PaymentType == "" {
		ev.PaymentType = domain.PaymentTypeFull
	}
	if !ev.PaymentType.Valid() {
		return nil, apperror.Validation(fmt.Sprintf("unknown payment type %q", ev.PaymentType))
	}
	if ev.Refs.IsEmpty() {
		return nil, apperror.Validation("confirmation carries no gateway identifier")
	}

	log := s.log.With().Str("order_id", ev.OrderID).Str("gateway", string(ev.Gateway)).Logger()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, s.settleError(ev.Gateway, fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	order, err := s.orderRepo.GetByIDForUpdate(ctx, dbTx, ev.OrderID)
	if err != nil {
		return nil, s.settleError(ev.Gateway, fmt.Errorf("lock order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("order")
	}

	// A fully paid order never re-processes a late confirmation.
	if order.IsPaid() {
		s.metrics.Settlement(ev.Gateway, outcomeAlreadyPaid)
		log.Info().Msg("order already paid, confirmation ignored")
		return settlementResult(order, true), nil
	}

	existing, err := s.paymentRepo.FindSucceededByRefs(ctx, dbTx, ev.Refs)
	if err != nil {
		return nil, s.settleError(ev.Gateway, fmt.Errorf("find payment by refs: %w", err))
	}
	if existing != nil {
		s.metrics.Settlement(ev.Gateway, outcomeDuplicate)
		log.Info().Str("payment_id", existing.ID.String()).Msg("duplicate confirmation ignored")
		return settlementResult(order, true), nil
	}

	now := s.now().UTC()
	fullyPaid := order.ApplyPayment(ev.Amount)

	payment := &domain.OrderPayment{
		ID:            uuid.New(),
		OrderID:       order.ID,
		Kind:          domain.PaymentKindCharge,
		Amount:        ev.Amount,
		Currency:      order.Currency,
		PaymentMethod: ev.Gateway,
		PaymentType:   ev.PaymentType,
		Status:        domain.PaymentRecordSucceeded,
		Refs:          ev.Refs,
		Metadata:      ev.Metadata,
		CreatedAt:     now,
	}
	if err := s.paymentRepo.Create(ctx, dbTx, payment); err != nil {
		if errors.Is(err, domain.ErrDuplicatePayment) {
			// A concurrent delivery won the insert; this transaction is aborted.
			return s.alreadySettled(ctx, ev.Gateway, order.ID)
		}
		return nil, s.settleError(ev.Gateway, fmt.Errorf("create payment: %w", err))
	}

	if err := s.orderRepo.UpdateBalances(ctx, dbTx, order); err != nil {
		return nil, s.settleError(ev.Gateway, fmt.Errorf("update balances: %w", err))
	}

	if target := domain.PlanTarget(ev.PaymentType, fullyPaid); target != "" {
		advanced, err := s.planRepo.Advance(ctx, dbTx, order.ID, target, now)
		if err != nil {
			return nil, s.settleError(ev.Gateway, fmt.Errorf("advance payment plan: %w", err))
		}
		if !advanced {
			log.Debug().Str("target", string(target)).Msg("payment plan missing or already advanced")
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, s.settleError(ev.Gateway, fmt.Errorf("commit tx: %w", err))
	}

	s.metrics.Settlement(ev.Gateway, outcomeSettled)
	log.Info().
		Str("payment_id", payment.ID.String()).
		Int64("amount", ev.Amount).
		Int64("balance_due", order.BalanceDue).
		Str("payment_status", string(order.PaymentStatus)).
		Msg("payment settled")

	result := settlementResult(order, false)
	result.PaymentID = &payment.ID

	// Stock is committed only on the call that moved the order into PAID.
	if fullyPaid {
		result.InventoryDeducted = s.deductInventory(context.WithoutCancel(ctx), order)
	}
	return result, nil
}

// SettlePaymentFailed appends a failed attempt and marks the order FAILED
// when nothing has been paid yet.
func (s *SettlementServiceImpl) SettlePaymentFailed(ctx context.Context, orderID string, gateway domain.GatewayTag, refs domain.GatewayRefs) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	order, err := s.orderRepo.GetByIDForUpdate(ctx, dbTx, orderID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock order: %w", err))
	}
	if order == nil {
		return apperror.ErrNotFound("order")
	}

	payment := &domain.OrderPayment{
		ID:            uuid.New(),
		OrderID:       order.ID,
		Kind:          domain.PaymentKindCharge,
		Amount:        0,
		Currency:      order.Currency,
		PaymentMethod: gateway,
		Status:        domain.PaymentRecordFailed,
		Refs:          refs,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.paymentRepo.Create(ctx, dbTx, payment); err != nil {
		return apperror.InternalError(fmt.Errorf("create failed payment: %w", err))
	}

	// A failed retry after a partial payment keeps the partial state.
	markFailed := order.PaidAmount <= 0 && order.PaymentStatus != domain.PaymentStatusRefunded
	if markFailed {
		if err := s.orderRepo.UpdatePaymentStatus(ctx, dbTx, order.ID, domain.PaymentStatusFailed); err != nil {
			return apperror.InternalError(fmt.Errorf("mark order failed: %w", err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.metrics.Settlement(gateway, outcomeFailed)
	s.log.Info().
		Str("order_id", orderID).
		Str("gateway", string(gateway)).
		Bool("marked_failed", markFailed).
		Msg("payment failure recorded")
	return nil
}

// ReleaseOrderInventory returns all stock held for the order. Repeated
// releases are absorbed by the inventory service.
func (s *SettlementServiceImpl) ReleaseOrderInventory(ctx context.Context, orderID string) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get order: %w", err))
	}
	if order == nil {
		return apperror.ErrNotFound("order")
	}

	items, err := s.orderRepo.GetItems(ctx, orderID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get order items: %w", err))
	}
	entries := domain.InventoryEntries(items, order.InventoryPool)
	if len(entries) == 0 {
		return nil
	}

	if err := s.inventory.Release(ctx, entries, orderID); err != nil {
		s.metrics.InventoryFailure("release")
		return apperror.InternalError(fmt.Errorf("release inventory: %w", err))
	}
	s.log.Info().Str("order_id", orderID).Int("entries", len(entries)).Msg("inventory released")
	return nil
}

// RecordWebhookEvent appends a finished event to the ledger. A duplicate id
// means the event was already handled and is not an error.
func (s *SettlementServiceImpl) RecordWebhookEvent(ctx context.Context, ev *domain.WebhookEvent) error {
	if ev == nil || ev.ID == "" {
		return apperror.Validation("webhook event id is required")
	}
	now := s.now().UTC()
	if ev.ReceivedAt.IsZero() {
		ev.ReceivedAt = now
	}
	if ev.Status == "" {
		ev.Status = domain.WebhookEventProcessed
	}
	if ev.ProcessedAt == nil && ev.Status != domain.WebhookEventProcessing {
		ev.ProcessedAt = &now
	}

	inserted, err := s.webhookRepo.Record(ctx, ev)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("record webhook event: %w", err))
	}
	if !inserted {
		s.log.Debug().Str("event_id", ev.ID).Msg("webhook event already recorded")
	}
	return nil
}

// deductInventory converts the order's reservations into sales and runs the
// low-stock checks. Failures are logged and counted, never returned: the
// money is already accepted.
func (s *SettlementServiceImpl) deductInventory(ctx context.Context, order *domain.Order) bool {
	log := s.log.With().Str("order_id", order.ID).Logger()

	items, err := s.orderRepo.GetItems(ctx, order.ID)
	if err != nil {
		s.metrics.InventoryFailure("deduct")
		log.Error().Err(err).Msg("inventory deduction skipped: cannot load order items")
		return false
	}
	entries := domain.InventoryEntries(items, order.InventoryPool)
	if len(entries) == 0 {
		return false
	}

	if err := s.inventory.Deduct(ctx, entries, order.ID); err != nil {
		s.metrics.InventoryFailure("deduct")
		log.Error().Err(err).Msg("inventory deduction failed, payment kept")
		return false
	}

	for _, e := range entries {
		if err := s.inventory.CheckLowStockAndAlert(ctx, e.VariantID); err != nil {
			s.metrics.InventoryFailure("low_stock_check")
			log.Warn().Err(err).Str("variant_id", e.VariantID).Msg("low stock check failed")
		}
	}
	return true
}

// alreadySettled reports the committed state after losing an insert race.
func (s *SettlementServiceImpl) alreadySettled(ctx context.Context, gateway domain.GatewayTag, orderID string) (*ports.SettlementResult, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, s.settleError(gateway, fmt.Errorf("reload order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("order")
	}
	s.metrics.Settlement(gateway, outcomeDuplicate)
	s.log.Info().Str("order_id", orderID).Str("gateway", string(gateway)).Msg("concurrent duplicate confirmation absorbed")
	return settlementResult(order, true), nil
}

func (s *SettlementServiceImpl) settleError(gateway domain.GatewayTag, err error) error {
	s.metrics.Settlement(gateway, outcomeError)
	return apperror.InternalError(err)
}

func settlementResult(order *domain.Order, already bool) *ports.SettlementResult {
	return &ports.SettlementResult{
		OrderID:        order.ID,
		PaymentStatus:  order.PaymentStatus,
		PaidAmount:     order.PaidAmount,
		BalanceDue:     order.BalanceDue,
		AlreadySettled: already,
	}
}
