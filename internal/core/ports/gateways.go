package ports

import (
	"context"

	"payment-settlement/internal/core/domain"
)

// --- Card gateway ---

// CardGateway wraps the card provider's REST API.
// Credentials are passed per call so rotated keys apply immediately.
type CardGateway interface {
	CreatePaymentIntent(ctx context.Context, creds domain.CardSettings, req CardIntentRequest) (*CardIntent, error)
	CapturePaymentIntent(ctx context.Context, creds domain.CardSettings, intentID string, amount *int64) (*CardIntent, error)
	CancelPaymentIntent(ctx context.Context, creds domain.CardSettings, intentID string) (*CardIntent, error)
	CreateRefund(ctx context.Context, creds domain.CardSettings, req CardRefundRequest) (*CardRefund, error)
	VerifyWebhookSignature(payload []byte, header string, secret string) error
	ParseEvent(payload []byte) (*CardEvent, error)
}

// CardIntentRequest creates an authorization for an order.
type CardIntentRequest struct {
	Amount        int64
	Currency      string
	ManualCapture bool
	Metadata      map[string]string
}

// CardIntent is the provider's payment intent.
type CardIntent struct {
	ID             string            `json:"id"`
	Status         string            `json:"status"`
	Amount         int64             `json:"amount"`
	AmountReceived int64             `json:"amount_received"`
	Currency       string            `json:"currency"`
	ClientSecret   string            `json:"client_secret"`
	LatestCharge   string            `json:"latest_charge"`
	Metadata       map[string]string `json:"metadata"`
}

// CardRefundRequest refunds a charge. A nil Amount refunds in full.
type CardRefundRequest struct {
	ChargeID       string
	Amount         *int64
	Reason         string
	Metadata       map[string]string
	IdempotencyKey string
}

// CardRefund is the provider's refund object.
type CardRefund struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
	Status string `json:"status"`
	Charge string `json:"charge"`
}

// Card event types the engine acts on.
const (
	CardEventIntentSucceeded = "payment_intent.succeeded"
	CardEventIntentFailed    = "payment_intent.payment_failed"
	CardEventChargeSucceeded = "charge.succeeded"
	CardEventChargeCaptured  = "charge.captured"
)

// CardEvent is a parsed, signature-verified webhook event.
type CardEvent struct {
	ID     string
	Type   string
	Object CardEventObject
}

// CardEventObject is the subset of the event's data.object the engine reads.
// For intent events IntentID is the object id; for charge events ChargeID is.
type CardEventObject struct {
	IntentID       string
	ChargeID       string
	Amount         int64
	Currency       string
	Status         string
	FailureMessage string
	Metadata       map[string]string
	// Captured is false for a charge that is only authorized; no money has
	// moved until it is captured.
	Captured bool
}

// --- Regional gateway ---

// RegionalGateway wraps the regional provider's session/validation/refund API.
type RegionalGateway interface {
	InitiateSession(ctx context.Context, creds domain.RegionalSettings, req RegionalSessionRequest) (*RegionalSession, error)
	ValidatePayment(ctx context.Context, creds domain.RegionalSettings, valID string) (*RegionalValidation, error)
	InitiateRefund(ctx context.Context, creds domain.RegionalSettings, req RegionalRefundRequest) (*RegionalRefund, error)
	QueryRefund(ctx context.Context, creds domain.RegionalSettings, refundRefID string) (*RegionalRefund, error)
}

// RegionalSessionRequest opens a hosted checkout session.
type RegionalSessionRequest struct {
	TransactionID string
	Amount        int64
	Currency      string
	OrderID       string
	PaymentType   domain.PaymentType
	SuccessURL    string
	FailURL       string
	CancelURL     string
	IPNURL        string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

// RegionalSession is the hosted checkout redirect.
type RegionalSession struct {
	SessionKey   string `json:"session_key"`
	GatewayURL   string `json:"gateway_url"`
	Status       string `json:"status"`
	FailedReason string `json:"failed_reason,omitempty"`
}

// RegionalValidation is the server-to-server validation result.
// Amount is converted to minor units.
type RegionalValidation struct {
	Status            string
	TransactionID     string
	ValidationID      string
	BankTransactionID string
	Amount            int64
	Currency          string
	OrderID           string
	PaymentType       domain.PaymentType
}

// RegionalRefundRequest refunds a bank transaction.
type RegionalRefundRequest struct {
	BankTransactionID string
	RefundTransID     string
	Amount            int64
	Remarks           string
}

// RegionalRefund is the refund submission or query outcome.
type RegionalRefund struct {
	Status      string `json:"status"`
	RefundRefID string `json:"refund_ref_id"`
	BankTranID  string `json:"bank_tran_id"`
	TransID     string `json:"trans_id"`
	ErrorReason string `json:"errorReason"`
}

// --- Inventory ---

// InventoryCoordinator is the external stock service. Release must be
// idempotent on its side.
type InventoryCoordinator interface {
	Reserve(ctx context.Context, entries []domain.InventoryEntry, orderID string) error
	Deduct(ctx context.Context, entries []domain.InventoryEntry, orderID string) error
	Release(ctx context.Context, entries []domain.InventoryEntry, orderID string) error
	CheckLowStockAndAlert(ctx context.Context, variantID string) error
}
