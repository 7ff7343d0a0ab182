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
	"github.com/jackc/pgx/v5"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// RefundServiceImpl implements ports.RefundService.
type RefundServiceImpl struct {
	orderRepo   ports.OrderRepository
	paymentRepo ports.OrderPaymentRepository
	settlement  ports.SettlementService
	settings    ports.SettingsResolver
	card        ports.CardGateway
	regional    ports.RegionalGateway
	transactor  ports.DBTransactor
	metrics     ports.Metrics
	log         zerolog.Logger
	now         func() time.Time
}

// NewRefundService creates a new RefundServiceImpl.
func NewRefundService(
	orderRepo ports.OrderRepository,
	paymentRepo ports.OrderPaymentRepository,
	settlement ports.SettlementService,
	settings ports.SettingsResolver,
	card ports.CardGateway,
	regional ports.RegionalGateway,
	transactor ports.DBTransactor,
	metrics ports.Metrics,
	log zerolog.Logger,
) *RefundServiceImpl {
	return &RefundServiceImpl{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		settlement:  settlement,
		settings:    settings,
		card:        card,
		regional:    regional,
		transactor:  transactor,
		metrics:     metrics,
		log:         log,
		now:         time.Now,
	}
}

// ProcessRefund sends money back through the gateways that took it and books
// the refund against the order. The order row stays locked from the gating
// checks until the booking commits, so refunds and settlements on one order
// run one after another. Every rejection happens before the first gateway
// call, so a refused refund mutates nothing.
func (s *RefundServiceImpl) ProcessRefund(ctx context.Context, req ports.RefundRequest) (*ports.RefundResult, error) {
	var override domain.GatewayTag
	if req.GatewayOverride != nil {
		gw, ok := domain.ParseGateway(string(*req.GatewayOverride))
		if !ok {
			return nil, apperror.ErrUnsupportedGateway(string(*req.GatewayOverride))
		}
		override = gw
	}
	if req.Amount != nil && *req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	order, err := s.orderRepo.GetByIDForUpdate(ctx, dbTx, req.OrderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("order")
	}

	switch order.PaymentStatus {
	case domain.PaymentStatusUnpaid, domain.PaymentStatusFailed:
		return nil, apperror.ErrNothingToRefund(string(order.PaymentStatus))
	case domain.PaymentStatusRefunded:
		return nil, apperror.ErrAlreadyRefunded()
	}
	if order.PaidAmount <= 0 {
		return nil, apperror.ErrNothingToRefund(string(order.PaymentStatus))
	}

	amount := order.PaidAmount
	if req.Amount != nil {
		if *req.Amount > order.PaidAmount {
			return nil, apperror.ErrRefundAmountExceedsPaid()
		}
		amount = *req.Amount
	}

	steps, err := s.planRefund(ctx, order.ID, override, amount)
	if err != nil {
		return nil, err
	}

	log := s.log.With().Str("order_id", order.ID).Int64("amount", amount).Logger()

	var sent []ports.RefundPart
	var dispatchErr, bookErr error
	for i, step := range steps {
		refundID, err := s.dispatch(ctx, step.target, order.ID, step.alloc, req.Reason, i)
		if err != nil {
			outcome := "rejected"
			if apperror.IsRetryable(err) {
				outcome = "error"
			}
			s.metrics.Refund(step.gateway, outcome)
			log.Warn().Err(err).Str("gateway", string(step.gateway)).Msg("gateway refund failed")
			dispatchErr = err
			break
		}
		sent = append(sent, ports.RefundPart{
			Gateway:         step.gateway,
			RefundID:        refundID,
			Amount:          step.alloc.Amount,
			ChargePaymentID: step.alloc.Charge.ID.String(),
		})
		if bookErr = s.appendRefund(ctx, dbTx, order, step, refundID, req.Reason); bookErr != nil {
			break
		}
	}
	if len(sent) == 0 {
		return nil, dispatchErr
	}

	if bookErr == nil {
		if err := s.orderRepo.UpdateBalances(ctx, dbTx, order); err != nil {
			bookErr = apperror.InternalError(fmt.Errorf("update balances: %w", err))
		} else if err := dbTx.Commit(ctx); err != nil {
			bookErr = apperror.InternalError(fmt.Errorf("commit tx: %w", err))
		}
	}
	if bookErr != nil {
		// The money has left; the operator must reconcile with these refund ids.
		for _, p := range sent {
			s.metrics.Refund(p.Gateway, "error")
			log.Error().Err(bookErr).Str("gateway", string(p.Gateway)).Str("refund_id", p.RefundID).
				Int64("part_amount", p.Amount).Msg("refund sent but not booked")
		}
		return nil, bookErr
	}

	var refunded int64
	for _, p := range sent {
		refunded += p.Amount
		s.metrics.Refund(p.Gateway, "succeeded")
	}
	isFull := order.PaymentStatus == domain.PaymentStatusRefunded

	if dispatchErr != nil {
		// Booked parts stand; the order is left PARTIAL and the rest can be retried.
		log.Warn().Err(dispatchErr).Int64("refunded", refunded).Int("parts", len(sent)).Msg("refund stopped part way")
		return nil, dispatchErr
	}
	log.Info().Str("refund_id", sent[0].RefundID).Int("parts", len(sent)).Bool("full", isFull).Msg("refund processed")

	if isFull {
		if err := s.settlement.ReleaseOrderInventory(context.WithoutCancel(ctx), order.ID); err != nil {
			log.Error().Err(err).Msg("inventory release after full refund failed")
		}
	}

	return &ports.RefundResult{
		Success:      true,
		Gateway:      sent[0].Gateway,
		RefundID:     sent[0].RefundID,
		Amount:       refunded,
		IsFullRefund: isFull,
		Parts:        sent,
	}, nil
}

// ProcessReturn marks a delivered order as returned and optionally refunds
// it. The return stands even when the refund fails.
func (s *RefundServiceImpl) ProcessReturn(ctx context.Context, req ports.ReturnRequest) (*ports.ReturnResult, error) {
	order, err := s.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("order")
	}
	if !order.FulfillmentStatus.Returnable() {
		return nil, apperror.ErrInvalidState("return order", string(order.FulfillmentStatus))
	}

	if err := s.orderRepo.UpdateFulfillmentStatus(ctx, order.ID, domain.FulfillmentReturned); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mark order returned: %w", err))
	}
	s.log.Info().Str("order_id", order.ID).Str("reason", req.Reason).Msg("order returned")

	result := &ports.ReturnResult{OrderID: order.ID, FulfillmentStatus: domain.FulfillmentReturned}

	collectible := order.PaidAmount > 0 &&
		(order.PaymentStatus == domain.PaymentStatusPaid || order.PaymentStatus == domain.PaymentStatusPartial)
	if !req.AutoRefund || !collectible {
		return result, nil
	}

	refund, err := s.ProcessRefund(ctx, ports.RefundRequest{OrderID: order.ID, Reason: req.Reason})
	if err != nil {
		s.log.Warn().Err(err).Str("order_id", order.ID).Msg("auto refund after return failed")
		result.RefundError = err
		return result, nil
	}
	result.Refund = refund
	return result, nil
}

type refundStep struct {
	alloc   domain.RefundAllocation
	gateway domain.GatewayTag
	target  domain.RefundTarget
}

// planRefund splits amount over the order's charges, newest first, and
// resolves each part's refund channel before any money moves. The ledger is
// read while the order row is locked; charges are only appended under it.
func (s *RefundServiceImpl) planRefund(ctx context.Context, orderID string, override domain.GatewayTag, amount int64) ([]refundStep, error) {
	ledger, err := s.paymentRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list payments: %w", err))
	}

	allocs, uncovered := domain.AllocateRefund(ledger, override, amount)
	if len(allocs) == 0 {
		return nil, apperror.ErrNotFound("settled payment")
	}
	if uncovered > 0 {
		return nil, apperror.ErrRefundExceedsCharges(uncovered)
	}

	steps := make([]refundStep, 0, len(allocs))
	for _, a := range allocs {
		gateway := a.Charge.PaymentMethod
		if override != "" {
			gateway = override
		}
		target, err := a.Charge.RefundTarget(gateway)
		if err != nil {
			return nil, refundTargetError(err)
		}
		steps = append(steps, refundStep{alloc: a, gateway: gateway, target: target})
	}
	return steps, nil
}

// dispatch performs the gateway side of one refund part and returns its reference.
func (s *RefundServiceImpl) dispatch(ctx context.Context, target domain.RefundTarget, orderID string, alloc domain.RefundAllocation, reason string, seq int) (string, error) {
	amount := alloc.Amount
	switch t := target.(type) {
	case domain.CardPayment:
		creds, err := s.settings.CardSettings(ctx)
		if err != nil {
			return "", err
		}
		req := ports.CardRefundRequest{
			ChargeID: t.ChargeID,
			Reason:   reason,
			Metadata: map[string]string{"order_id": orderID},
			// Stable across retries of the same part, so an unknown-outcome
			// retry cannot refund twice.
			IdempotencyKey: fmt.Sprintf("refund-%s-%d-%d", alloc.Charge.ID, alloc.Refunded, amount),
		}
		// The charge's own amount is refunded by omitting it.
		if !alloc.Full() {
			req.Amount = &amount
		}
		refund, err := s.card.CreateRefund(ctx, *creds, req)
		if err != nil {
			return "", err
		}
		return refund.ID, nil

	case domain.RegionalPayment:
		creds, err := s.settings.RegionalSettings(ctx)
		if err != nil {
			return "", err
		}
		refundTransID := fmt.Sprintf("REFUND-%s-%d-%d", orderID, s.now().UnixMilli(), seq+1)
		res, err := s.regional.InitiateRefund(ctx, *creds, ports.RegionalRefundRequest{
			BankTransactionID: t.BankTransactionID,
			RefundTransID:     refundTransID,
			Amount:            amount,
			Remarks:           reason,
		})
		if err != nil {
			return "", err
		}
		if res.RefundRefID != "" {
			return res.RefundRefID, nil
		}
		return refundTransID, nil

	case domain.CashPayment:
		return "COD-REFUND-" + ulid.Make().String(), nil
	}
	return "", apperror.ErrUnsupportedGateway(string(target.Gateway()))
}

// appendRefund applies one part to the locked order and appends its refund row.
func (s *RefundServiceImpl) appendRefund(ctx context.Context, dbTx pgx.Tx, order *domain.Order, step refundStep, refundID, reason string) error {
	order.ApplyRefund(step.alloc.Amount, step.alloc.Amount >= order.PaidAmount)

	charge := step.alloc.Charge
	row := &domain.OrderPayment{
		ID:            uuid.New(),
		OrderID:       order.ID,
		Kind:          domain.PaymentKindRefund,
		Amount:        step.alloc.Amount,
		Currency:      order.Currency,
		PaymentMethod: step.gateway,
		PaymentType:   charge.PaymentType,
		Status:        domain.PaymentRecordSucceeded,
		RefundID:      refundID,
		Reason:        reason,
		Metadata:      map[string]string{domain.MetaChargePaymentID: charge.ID.String()},
		CreatedAt:     s.now().UTC(),
	}
	if err := s.paymentRepo.Create(ctx, dbTx, row); err != nil {
		return apperror.InternalError(fmt.Errorf("create refund row: %w", err))
	}
	return nil
}

func refundTargetError(err error) error {
	var missing *domain.MissingIdentifierError
	if errors.As(err, &missing) {
		return apperror.ErrMissingGatewayIdentifier(string(missing.Gateway), missing.Identifier)
	}
	var unsupported *domain.UnsupportedGatewayError
	if errors.As(err, &unsupported) {
		return apperror.ErrUnsupportedGateway(unsupported.Gateway)
	}
	return apperror.InternalError(err)
}
