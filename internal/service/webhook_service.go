package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"payment-settlement/internal/core/domain"
	"payment-settlement/internal/core/ports"
	"payment-settlement/pkg/apperror"

	"github.com/rs/zerolog"
)

const codeNotFound = "ORD_001"

// Regional IPN statuses.
const (
	ipnValid       = "VALID"
	ipnValidated   = "VALIDATED"
	ipnFailed      = "FAILED"
	ipnCancelled   = "CANCELLED"
	ipnExpired     = "EXPIRED"
	ipnUnattempted = "UNATTEMPTED"
)

// WebhookServiceImpl implements ports.WebhookService. Every notification is
// claimed in the ledger before anything else happens, so concurrent
// redeliveries of one event are processed once.
type WebhookServiceImpl struct {
	settings    ports.SettingsResolver
	card        ports.CardGateway
	regional    ports.RegionalGateway
	settlement  ports.SettlementService
	webhookRepo ports.WebhookEventRepository
	metrics     ports.Metrics
	lease       time.Duration
	log         zerolog.Logger
}

// NewWebhookService creates a new WebhookServiceImpl. lease bounds how long a
// crashed handler's claim blocks a redelivery.
func NewWebhookService(
	settings ports.SettingsResolver,
	card ports.CardGateway,
	regional ports.RegionalGateway,
	settlement ports.SettlementService,
	webhookRepo ports.WebhookEventRepository,
	metrics ports.Metrics,
	lease time.Duration,
	log zerolog.Logger,
) *WebhookServiceImpl {
	return &WebhookServiceImpl{
		settings:    settings,
		card:        card,
		regional:    regional,
		settlement:  settlement,
		webhookRepo: webhookRepo,
		metrics:     metrics,
		lease:       lease,
		log:         log,
	}
}

// HandleCardWebhook verifies, claims and dispatches a card gateway event.
func (s *WebhookServiceImpl) HandleCardWebhook(ctx context.Context, payload []byte, signatureHeader string) (*ports.WebhookResult, error) {
	creds, err := s.settings.CardSettings(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.card.VerifyWebhookSignature(payload, signatureHeader, creds.WebhookSecret); err != nil {
		s.metrics.Webhook(domain.ProviderCard, "invalid_signature")
		s.log.Warn().Err(err).Msg("card webhook signature rejected")
		return nil, err
	}

	ev, err := s.card.ParseEvent(payload)
	if err != nil {
		s.metrics.Webhook(domain.ProviderCard, "invalid")
		return nil, err
	}
	obj := ev.Object
	orderID := obj.Metadata["order_id"]

	return s.process(ctx, &domain.WebhookEvent{
		ID:        ev.ID,
		Provider:  domain.ProviderCard,
		EventType: ev.Type,
		OrderID:   optional(orderID),
	}, func() (*ports.WebhookResult, error) {
		res := &ports.WebhookResult{EventID: ev.ID, EventType: ev.Type}
		refs := domain.GatewayRefs{CardIntentID: obj.IntentID, CardChargeID: obj.ChargeID}

		switch ev.Type {
		case ports.CardEventIntentSucceeded, ports.CardEventChargeSucceeded, ports.CardEventChargeCaptured:
			// A manual-capture authorization settles on capture, not here.
			if orderID == "" || !obj.Captured {
				res.Ignored = true
				return res, nil
			}
			settled, err := s.settlement.SettlePayment(ctx, domain.ConfirmedPaymentEvent{
				OrderID:     orderID,
				Amount:      obj.Amount,
				Gateway:     domain.GatewayCard,
				PaymentType: domain.PaymentType(obj.Metadata["payment_type"]),
				Refs:        refs,
				Metadata:    obj.Metadata,
			})
			if err != nil {
				return nil, err
			}
			res.Settlement = settled

		case ports.CardEventIntentFailed:
			if orderID == "" {
				res.Ignored = true
				return res, nil
			}
			if err := s.settlement.SettlePaymentFailed(ctx, orderID, domain.GatewayCard, refs); err != nil {
				return nil, err
			}

		default:
			res.Ignored = true
		}
		return res, nil
	})
}

// HandleRegionalIPN processes an unsigned regional notification. A success
// notification is trusted only after the provider confirms it server to
// server, and the settled amount and identifiers come from that confirmation.
func (s *WebhookServiceImpl) HandleRegionalIPN(ctx context.Context, form map[string]string) (*ports.WebhookResult, error) {
	status := strings.ToUpper(strings.TrimSpace(form["status"]))
	tranID := strings.TrimSpace(form["tran_id"])
	valID := strings.TrimSpace(form["val_id"])
	orderID := strings.TrimSpace(form["value_a"])

	if tranID == "" || status == "" {
		s.metrics.Webhook(domain.ProviderRegional, "invalid")
		return nil, apperror.Validation("notification missing tran_id or status")
	}

	eventID := tranID + ":" + status
	if valID != "" {
		eventID = valID
	}

	return s.process(ctx, &domain.WebhookEvent{
		ID:        eventID,
		Provider:  domain.ProviderRegional,
		EventType: status,
		OrderID:   optional(orderID),
	}, func() (*ports.WebhookResult, error) {
		res := &ports.WebhookResult{EventID: eventID, EventType: status}

		switch status {
		case ipnValid, ipnValidated:
			settled, err := s.settleValidated(ctx, form, tranID, valID, orderID)
			if err != nil {
				return nil, err
			}
			res.Settlement = settled

		case ipnFailed, ipnCancelled, ipnExpired, ipnUnattempted:
			if orderID == "" {
				return nil, apperror.Validation("notification missing order reference")
			}
			refs := domain.GatewayRefs{RegionalTransactionID: tranID}
			if err := s.settlement.SettlePaymentFailed(ctx, orderID, domain.GatewayRegional, refs); err != nil {
				return nil, err
			}

		default:
			res.Ignored = true
		}
		return res, nil
	})
}

func (s *WebhookServiceImpl) settleValidated(ctx context.Context, form map[string]string, tranID, valID, orderID string) (*ports.SettlementResult, error) {
	if valID == "" {
		return nil, apperror.ErrPaymentNotValidated("missing val_id")
	}
	creds, err := s.settings.RegionalSettings(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.regional.ValidatePayment(ctx, *creds, valID)
	if err != nil {
		return nil, err
	}

	if v.Status != ipnValid && v.Status != ipnValidated {
		return nil, apperror.ErrPaymentNotValidated("provider reports " + v.Status)
	}
	if v.TransactionID != tranID {
		return nil, apperror.ErrPaymentNotValidated("transaction id mismatch")
	}
	if v.OrderID != "" {
		if orderID != "" && v.OrderID != orderID {
			return nil, apperror.ErrPaymentNotValidated("order reference mismatch")
		}
		orderID = v.OrderID
	}
	if orderID == "" {
		return nil, apperror.ErrPaymentNotValidated("missing order reference")
	}

	paymentType := v.PaymentType
	if paymentType == "" {
		paymentType = domain.PaymentType(form["value_b"])
	}

	metadata := map[string]string{"currency": v.Currency}
	if cardType := form["card_type"]; cardType != "" {
		metadata["card_type"] = cardType
	}

	return s.settlement.SettlePayment(ctx, domain.ConfirmedPaymentEvent{
		OrderID:     orderID,
		Amount:      v.Amount,
		Gateway:     domain.GatewayRegional,
		PaymentType: paymentType,
		Refs: domain.GatewayRefs{
			RegionalTransactionID:     v.TransactionID,
			RegionalValidationID:      v.ValidationID,
			RegionalBankTransactionID: v.BankTransactionID,
		},
		Metadata: metadata,
	})
}

// process runs handle under a ledger claim and records its outcome. A failed
// outcome leaves the event claimable by the provider's next redelivery.
func (s *WebhookServiceImpl) process(ctx context.Context, ev *domain.WebhookEvent, handle func() (*ports.WebhookResult, error)) (*ports.WebhookResult, error) {
	log := s.log.With().Str("event_id", ev.ID).Str("provider", string(ev.Provider)).Str("event_type", ev.EventType).Logger()

	claimed, err := s.webhookRepo.Claim(ctx, ev, s.lease)
	if err != nil {
		s.metrics.Webhook(ev.Provider, "error")
		return nil, apperror.InternalError(fmt.Errorf("claim webhook event: %w", err))
	}
	if !claimed {
		s.metrics.Webhook(ev.Provider, "duplicate")
		log.Info().Msg("webhook event already processed")
		return &ports.WebhookResult{EventID: ev.ID, EventType: ev.EventType, Duplicate: true}, nil
	}

	res, err := handle()
	if apperror.HasCode(err, codeNotFound) {
		// Redelivery cannot make an unknown order appear; acknowledge and stop.
		log.Warn().Err(err).Msg("webhook references an unknown order")
		res, err = &ports.WebhookResult{EventID: ev.ID, EventType: ev.EventType, Ignored: true}, nil
	}
	// The outcome must be written even if the provider hung up.
	bg := context.WithoutCancel(ctx)
	if err != nil {
		s.metrics.Webhook(ev.Provider, "failed")
		log.Error().Err(err).Msg("webhook processing failed")
		if cerr := s.webhookRepo.Complete(bg, ev.ID, domain.WebhookEventFailed, errorResult(err)); cerr != nil {
			log.Error().Err(cerr).Msg("failed to record webhook failure")
		}
		return nil, err
	}

	outcome := "processed"
	if res.Ignored {
		outcome = "ignored"
	}
	s.metrics.Webhook(ev.Provider, outcome)

	body, _ := json.Marshal(res)
	if cerr := s.webhookRepo.Complete(bg, ev.ID, domain.WebhookEventProcessed, string(body)); cerr != nil {
		// The effect is committed; a later redelivery re-claims after the
		// lease and settles idempotently.
		log.Warn().Err(cerr).Msg("failed to record webhook outcome")
	}
	log.Info().Str("outcome", outcome).Msg("webhook event handled")
	return res, nil
}

func errorResult(err error) string {
	body, _ := json.Marshal(map[string]string{"error": err.Error()})
	return string(body)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
