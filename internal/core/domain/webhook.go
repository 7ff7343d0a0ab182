package domain

import "time"

// WebhookProvider names the source of an inbound notification.
type WebhookProvider string

const (
	ProviderCard     WebhookProvider = "card"
	ProviderRegional WebhookProvider = "regional"
)

// WebhookEventStatus is the ledger state of an inbound notification.
type WebhookEventStatus string

const (
	WebhookEventProcessing WebhookEventStatus = "processing"
	WebhookEventProcessed  WebhookEventStatus = "processed"
	WebhookEventFailed     WebhookEventStatus = "failed"
)

// WebhookEvent is one row of the idempotency ledger, keyed by the
// provider-assigned event id.
type WebhookEvent struct {
	ID          string             `json:"id"`
	Provider    WebhookProvider    `json:"provider"`
	EventType   string             `json:"event_type"`
	OrderID     *string            `json:"order_id,omitempty"`
	Status      WebhookEventStatus `json:"status"`
	Result      string             `json:"result,omitempty"` // JSON string
	ReceivedAt  time.Time          `json:"received_at"`
	ProcessedAt *time.Time         `json:"processed_at,omitempty"`
}

// ConfirmedPaymentEvent is a gateway confirmation normalized for settlement.
type ConfirmedPaymentEvent struct {
	OrderID     string            `json:"order_id"`
	Amount      int64             `json:"amount"`
	Gateway     GatewayTag        `json:"gateway"`
	PaymentType PaymentType       `json:"payment_type"`
	Refs        GatewayRefs       `json:"refs"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}
