package service

import (
	"context"
	"fmt"
	"time"

	"payment-settlement/internal/core/domain"
	"payment-settlement/internal/core/ports"
	"payment-settlement/pkg/apperror"

	"github.com/rs/zerolog"
)

// CheckoutServiceImpl implements ports.CheckoutService.
type CheckoutServiceImpl struct {
	orderRepo  ports.OrderRepository
	planRepo   ports.PaymentPlanRepository
	codRepo    ports.CODRepository
	settings   ports.SettingsResolver
	card       ports.CardGateway
	regional   ports.RegionalGateway
	settlement ports.SettlementService
	log        zerolog.Logger
	now        func() time.Time
}

// NewCheckoutService creates a new CheckoutServiceImpl.
func NewCheckoutService(
	orderRepo ports.OrderRepository,
	planRepo ports.PaymentPlanRepository,
	codRepo ports.CODRepository,
	settings ports.SettingsResolver,
	card ports.CardGateway,
	regional ports.RegionalGateway,
	settlement ports.SettlementService,
	log zerolog.Logger,
) *CheckoutServiceImpl {
	return &CheckoutServiceImpl{
		orderRepo:  orderRepo,
		planRepo:   planRepo,
		codRepo:    codRepo,
		settings:   settings,
		card:       card,
		regional:   regional,
		settlement: settlement,
		log:        log,
		now:        time.Now,
	}
}

// InitiatePayment opens a payment for the order through the chosen gateway.
// Nothing is settled here; settlement follows the gateway's confirmation.
func (s *CheckoutServiceImpl) InitiatePayment(ctx context.Context, req ports.CheckoutRequest) (*ports.CheckoutResult, error) {
	gateway, ok := domain.ParseGateway(string(req.Gateway))
	if !ok {
		return nil, apperror.ErrUnsupportedGateway(string(req.Gateway))
	}
	paymentType := req.PaymentType
	if paymentType == "" {
		paymentType = domain.PaymentTypeFull
	}
	if !paymentType.Valid() {
		return nil, apperror.Validation(fmt.Sprintf("unknown payment type %q", paymentType))
	}

	order, err := s.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("order")
	}
	if order.IsPaid() || order.PaymentStatus == domain.PaymentStatusRefunded {
		return nil, apperror.ErrInvalidState("initiate payment", string(order.PaymentStatus))
	}

	amount, err := checkoutAmount(order, paymentType, req.Amount)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if paymentType == domain.PaymentTypeDeposit {
		if err := s.ensurePlan(ctx, order.ID, now); err != nil {
			return nil, err
		}
	}

	result := &ports.CheckoutResult{OrderID: order.ID, Gateway: gateway, Amount: amount}

	switch gateway {
	case domain.GatewayCard:
		creds, err := s.enabledCard(ctx)
		if err != nil {
			return nil, err
		}
		intent, err := s.card.CreatePaymentIntent(ctx, *creds, ports.CardIntentRequest{
			Amount:        amount,
			Currency:      order.Currency,
			ManualCapture: req.ManualCapture,
			Metadata: map[string]string{
				"order_id":     order.ID,
				"payment_type": string(paymentType),
			},
		})
		if err != nil {
			return nil, err
		}
		result.IntentID = intent.ID
		result.ClientSecret = intent.ClientSecret

	case domain.GatewayRegional:
		creds, err := s.enabledRegional(ctx)
		if err != nil {
			return nil, err
		}
		tranID := fmt.Sprintf("%s-%d", order.ID, now.Unix())
		session, err := s.regional.InitiateSession(ctx, *creds, ports.RegionalSessionRequest{
			TransactionID: tranID,
			Amount:        amount,
			Currency:      order.Currency,
			OrderID:       order.ID,
			PaymentType:   paymentType,
			SuccessURL:    req.SuccessURL,
			FailURL:       req.FailURL,
			CancelURL:     req.CancelURL,
			IPNURL:        req.IPNURL,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
		})
		if err != nil {
			return nil, err
		}
		result.TransactionID = tranID
		result.RedirectURL = session.GatewayURL

	case domain.GatewayCOD:
		tracking := &domain.CODTracking{OrderID: order.ID, Status: domain.CODPending, CreatedAt: now, UpdatedAt: now}
		if err := s.codRepo.Create(ctx, tracking); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("create cod tracking: %w", err))
		}
		result.CODStatus = domain.CODPending
	}

	s.log.Info().
		Str("order_id", order.ID).
		Str("gateway", string(gateway)).
		Str("payment_type", string(paymentType)).
		Int64("amount", amount).
		Msg("payment initiated")
	return result, nil
}

// CapturePayment captures an authorized card intent and settles the captured
// amount. The later webhook for the same charge is absorbed as a duplicate.
func (s *CheckoutServiceImpl) CapturePayment(ctx context.Context, orderID string, intentID string, amount *int64) (*ports.SettlementResult, error) {
	if intentID == "" {
		return nil, apperror.Validation("intent_id is required")
	}
	if amount != nil && *amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if err := s.requireOrder(ctx, orderID); err != nil {
		return nil, err
	}
	creds, err := s.settings.CardSettings(ctx)
	if err != nil {
		return nil, err
	}

	intent, err := s.card.CapturePaymentIntent(ctx, *creds, intentID, amount)
	if err != nil {
		return nil, err
	}
	if intent.Status != "succeeded" {
		return nil, apperror.ErrGatewayRejected(string(domain.GatewayCard), "capture left intent "+intent.Status)
	}
	if owner := intent.Metadata["order_id"]; owner != "" && owner != orderID {
		// Captured, but not for this order; the webhook settles it where it belongs.
		s.log.Error().Str("order_id", orderID).Str("intent_order_id", owner).Str("intent_id", intentID).Msg("captured intent belongs to another order")
		return nil, apperror.Validation("intent does not belong to this order")
	}

	captured := intent.AmountReceived
	if captured == 0 {
		captured = intent.Amount
	}
	s.log.Info().Str("order_id", orderID).Str("intent_id", intentID).Int64("amount", captured).Msg("card payment captured")

	return s.settlement.SettlePayment(ctx, domain.ConfirmedPaymentEvent{
		OrderID:     orderID,
		Amount:      captured,
		Gateway:     domain.GatewayCard,
		PaymentType: domain.PaymentType(intent.Metadata["payment_type"]),
		Refs:        domain.GatewayRefs{CardIntentID: intent.ID, CardChargeID: intent.LatestCharge},
		Metadata:    intent.Metadata,
	})
}

// CancelPayment voids an uncaptured card authorization.
func (s *CheckoutServiceImpl) CancelPayment(ctx context.Context, orderID string, intentID string) error {
	if intentID == "" {
		return apperror.Validation("intent_id is required")
	}
	if err := s.requireOrder(ctx, orderID); err != nil {
		return err
	}
	creds, err := s.settings.CardSettings(ctx)
	if err != nil {
		return err
	}
	intent, err := s.card.CancelPaymentIntent(ctx, *creds, intentID)
	if err != nil {
		return err
	}
	s.log.Info().Str("order_id", orderID).Str("intent_id", intentID).Str("status", intent.Status).Msg("card authorization cancelled")
	return nil
}

func (s *CheckoutServiceImpl) requireOrder(ctx context.Context, orderID string) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get order: %w", err))
	}
	if order == nil {
		return apperror.ErrNotFound("order")
	}
	return nil
}

func (s *CheckoutServiceImpl) enabledCard(ctx context.Context) (*domain.CardSettings, error) {
	creds, err := s.settings.CardSettings(ctx)
	if err != nil {
		return nil, err
	}
	if !creds.Enabled {
		return nil, apperror.ErrGatewayNotConfigured(string(domain.GatewayCard))
	}
	return creds, nil
}

func (s *CheckoutServiceImpl) enabledRegional(ctx context.Context) (*domain.RegionalSettings, error) {
	creds, err := s.settings.RegionalSettings(ctx)
	if err != nil {
		return nil, err
	}
	if !creds.Enabled {
		return nil, apperror.ErrGatewayNotConfigured(string(domain.GatewayRegional))
	}
	return creds, nil
}

// checkoutAmount resolves the amount to charge. A deposit needs an explicit
// amount below the balance due; a balance payment must clear the balance.
func checkoutAmount(order *domain.Order, paymentType domain.PaymentType, requested *int64) (int64, error) {
	due := order.BalanceDue
	if due <= 0 {
		return 0, apperror.ErrInvalidState("initiate payment", "without balance due")
	}

	switch paymentType {
	case domain.PaymentTypeDeposit:
		if requested == nil {
			return 0, apperror.Validation("deposit amount is required")
		}
		if *requested <= 0 {
			return 0, apperror.ErrInvalidAmount()
		}
		if *requested >= due {
			return 0, apperror.Validation("deposit must be less than the balance due")
		}
		return *requested, nil
	case domain.PaymentTypeBalance:
		if requested != nil && *requested != due {
			return 0, apperror.Validation(fmt.Sprintf("balance payment must be %d", due))
		}
		return due, nil
	}

	if requested == nil {
		return due, nil
	}
	if *requested <= 0 {
		return 0, apperror.ErrInvalidAmount()
	}
	if *requested > due {
		return 0, apperror.Validation("amount exceeds the balance due")
	}
	return *requested, nil
}

// ensurePlan opens a pending payment plan unless a retried deposit checkout
// already did.
func (s *CheckoutServiceImpl) ensurePlan(ctx context.Context, orderID string, now time.Time) error {
	existing, err := s.planRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get payment plan: %w", err))
	}
	if existing != nil {
		return nil
	}
	plan := &domain.PaymentPlan{OrderID: orderID, Status: domain.PaymentPlanPending, CreatedAt: now, UpdatedAt: now}
	if err := s.planRepo.Create(ctx, plan); err != nil {
		return apperror.InternalError(fmt.Errorf("create payment plan: %w", err))
	}
	return nil
}
