package card

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"payment-settlement/internal/core/ports"
	"payment-settlement/pkg/apperror"
)

// VerifyWebhookSignature checks a "t=<unix>,v1=<hex>" header against the
// HMAC-SHA256 of "<t>.<payload>" and rejects timestamps outside the tolerance.
func (c *Client) VerifyWebhookSignature(payload []byte, header string, secret string) error {
	if secret == "" {
		return apperror.ErrGatewayNotConfigured(gatewayName)
	}

	var ts int64
	var sigs []string
	for _, part := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "t":
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return apperror.ErrInvalidSignature()
			}
			ts = n
		case "v1":
			sigs = append(sigs, v)
		}
	}
	if ts == 0 || len(sigs) == 0 {
		return apperror.ErrInvalidSignature()
	}

	if c.tolerance > 0 {
		age := c.now().Unix() - ts
		if age < 0 {
			age = -age
		}
		if age > int64(c.tolerance.Seconds()) {
			return apperror.ErrInvalidSignature()
		}
	}

	signed := c.signer.SignedPayload(ts, payload)
	for _, sig := range sigs {
		if c.signer.Verify(secret, signed, sig) {
			return nil
		}
	}
	return apperror.ErrInvalidSignature()
}

type rawEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID               string            `json:"id"`
			Object           string            `json:"object"`
			Amount           int64             `json:"amount"`
			AmountReceived   int64             `json:"amount_received"`
			AmountCaptured   int64             `json:"amount_captured"`
			Captured         *bool             `json:"captured"`
			Currency         string            `json:"currency"`
			Status           string            `json:"status"`
			LatestCharge     string            `json:"latest_charge"`
			PaymentIntent    string            `json:"payment_intent"`
			Metadata         map[string]string `json:"metadata"`
			FailureMessage   string            `json:"failure_message"`
			LastPaymentError *struct {
				Message string `json:"message"`
			} `json:"last_payment_error"`
		} `json:"object"`
	} `json:"data"`
}

// ParseEvent decodes a verified webhook payload into the fields the engine reads.
func (c *Client) ParseEvent(payload []byte) (*ports.CardEvent, error) {
	var raw rawEvent
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, apperror.Validation(fmt.Sprintf("malformed card event: %v", err))
	}
	if raw.ID == "" || raw.Type == "" {
		return nil, apperror.Validation("card event missing id or type")
	}

	obj := raw.Data.Object
	ev := &ports.CardEvent{
		ID:   raw.ID,
		Type: raw.Type,
		Object: ports.CardEventObject{
			Amount:         obj.Amount,
			Currency:       strings.ToUpper(obj.Currency),
			Status:         obj.Status,
			FailureMessage: obj.FailureMessage,
			Metadata:       obj.Metadata,
			Captured:       true,
		},
	}

	if strings.HasPrefix(raw.Type, "charge.") || obj.Object == "charge" {
		ev.Object.ChargeID = obj.ID
		ev.Object.IntentID = obj.PaymentIntent
		if obj.Captured != nil {
			ev.Object.Captured = *obj.Captured
		}
		if obj.AmountCaptured > 0 {
			ev.Object.Amount = obj.AmountCaptured
		}
	} else {
		ev.Object.IntentID = obj.ID
		ev.Object.ChargeID = obj.LatestCharge
		if obj.AmountReceived > 0 {
			ev.Object.Amount = obj.AmountReceived
		}
		if obj.LastPaymentError != nil && ev.Object.FailureMessage == "" {
			ev.Object.FailureMessage = obj.LastPaymentError.Message
		}
	}
	return ev, nil
}
