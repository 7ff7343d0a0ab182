package service

import (
	"context"
	"fmt"
	"time"

	"payment-settlement/internal/core/domain"
	"payment-settlement/internal/core/ports"
	"payment-settlement/pkg/apperror"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// CODServiceImpl implements ports.CODService.
type CODServiceImpl struct {
	codRepo    ports.CODRepository
	orderRepo  ports.OrderRepository
	settlement ports.SettlementService
	transactor ports.DBTransactor
	log        zerolog.Logger
	now        func() time.Time
}

// NewCODService creates a new CODServiceImpl.
func NewCODService(
	codRepo ports.CODRepository,
	orderRepo ports.OrderRepository,
	settlement ports.SettlementService,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *CODServiceImpl {
	return &CODServiceImpl{
		codRepo:    codRepo,
		orderRepo:  orderRepo,
		settlement: settlement,
		transactor: transactor,
		log:        log,
		now:        time.Now,
	}
}

// Get returns the COD tracking of an order.
func (s *CODServiceImpl) Get(ctx context.Context, orderID string) (*domain.CODTracking, error) {
	c, err := s.codRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get cod tracking: %w", err))
	}
	if c == nil {
		return nil, apperror.ErrNotFound("cod tracking")
	}
	return c, nil
}

// RecordDeliveryAttempt counts a courier attempt. A failed attempt moves the
// tracking to failed with its reason.
func (s *CODServiceImpl) RecordDeliveryAttempt(ctx context.Context, orderID string, success bool, reason string) (*domain.CODTracking, error) {
	return s.mutate(ctx, orderID, "record delivery attempt", (*domain.CODTracking).CanAttempt, func(c *domain.CODTracking, now time.Time) {
		c.DeliveryAttempts++
		c.LastAttemptAt = &now
		if success {
			return
		}
		if reason == "" {
			reason = "delivery failed"
		}
		c.Status = domain.CODFailed
		c.FailureReason = &reason
	})
}

// MarkCollected records the cash handed over by the courier and settles it.
// The collection reference is the payment's identifier, so a retry after a
// failed settlement converges on the same payment row.
func (s *CODServiceImpl) MarkCollected(ctx context.Context, orderID string, collectedBy string, amount int64) (*domain.CODTracking, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	current, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	tracking := current
	if current.Status != domain.CODCollected {
		tracking, err = s.mutate(ctx, orderID, "mark collected", (*domain.CODTracking).CanCollect, func(c *domain.CODTracking, now time.Time) {
			ref := "COD-" + ulid.Make().String()
			c.Status = domain.CODCollected
			c.CollectedBy = &collectedBy
			c.CollectedAmount = &amount
			c.CollectionRef = &ref
			c.CollectedAt = &now
			c.FailureReason = nil
		})
		if err != nil {
			return nil, err
		}
	}
	if tracking.CollectionRef == nil || tracking.CollectedAmount == nil {
		return nil, apperror.ErrInvalidState("mark collected", string(tracking.Status))
	}

	_, err = s.settlement.SettlePayment(ctx, domain.ConfirmedPaymentEvent{
		OrderID:     orderID,
		Amount:      *tracking.CollectedAmount,
		Gateway:     domain.GatewayCOD,
		PaymentType: domain.PaymentTypeFull,
		Refs:        domain.GatewayRefs{CODReference: *tracking.CollectionRef},
		Metadata:    map[string]string{"collected_by": deref(tracking.CollectedBy)},
	})
	if err != nil {
		return nil, err
	}
	return tracking, nil
}

// MarkReturned closes a failed delivery as returned to sender and frees its stock.
func (s *CODServiceImpl) MarkReturned(ctx context.Context, orderID string) (*domain.CODTracking, error) {
	tracking, err := s.mutate(ctx, orderID, "mark returned", (*domain.CODTracking).CanReturn, func(c *domain.CODTracking, _ time.Time) {
		c.Status = domain.CODReturned
	})
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateFulfillmentStatus(ctx, orderID, domain.FulfillmentReturned); err != nil {
		s.log.Error().Err(err).Str("order_id", orderID).Msg("failed to mark returned cod order")
	}
	if err := s.settlement.ReleaseOrderInventory(context.WithoutCancel(ctx), orderID); err != nil {
		s.log.Error().Err(err).Str("order_id", orderID).Msg("inventory release after cod return failed")
	}
	return tracking, nil
}

// mutate applies change to the locked tracking row when allowed permits it.
func (s *CODServiceImpl) mutate(
	ctx context.Context,
	orderID, action string,
	allowed func(*domain.CODTracking) bool,
	change func(c *domain.CODTracking, now time.Time),
) (*domain.CODTracking, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	c, err := s.codRepo.GetByOrderIDForUpdate(ctx, dbTx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock cod tracking: %w", err))
	}
	if c == nil {
		return nil, apperror.ErrNotFound("cod tracking")
	}
	if !allowed(c) {
		return nil, apperror.ErrInvalidState(action, "cod "+string(c.Status))
	}

	now := s.now().UTC()
	change(c, now)
	c.UpdatedAt = now

	if err := s.codRepo.Update(ctx, dbTx, c); err != nil {
		return nil, apperror.InternalError(err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("order_id", orderID).
		Str("action", action).
		Str("cod_status", string(c.Status)).
		Int("delivery_attempts", c.DeliveryAttempts).
		Msg("cod tracking updated")
	return c, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
