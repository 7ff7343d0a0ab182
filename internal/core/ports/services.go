package ports

import (
	"context"
	"time"

	"payment-settlement/internal/core/domain"

	"github.com/google/uuid"
)

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService handles HMAC-SHA256 signing and verification.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
	// SignedPayload builds the timestamped string a webhook signature covers.
	SignedPayload(timestamp int64, body []byte) string
}

// TokenService validates operator bearer tokens.
type TokenService interface {
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
	Role    string
}

// SettingsCache is the short-TTL cache in front of gateway settings.
type SettingsCache interface {
	// Get reports found=false on a cache miss.
	Get(ctx context.Context, gateway domain.GatewayTag) (settings *domain.GatewaySettings, found bool, err error)
	Set(ctx context.Context, gateway domain.GatewayTag, settings *domain.GatewaySettings, ttl time.Duration) error
	Delete(ctx context.Context, gateway domain.GatewayTag) error
}

// RateLimiter counts requests per key in fixed windows.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// Metrics records engine outcomes.
type Metrics interface {
	Settlement(gateway domain.GatewayTag, outcome string)
	Refund(gateway domain.GatewayTag, outcome string)
	Webhook(provider domain.WebhookProvider, outcome string)
	InventoryFailure(operation string)
	SettingsCache(hit bool)
}

// --- Service Ports (Business Logic) ---

// SettlementService turns confirmed gateway events into order state.
type SettlementService interface {
	SettlePayment(ctx context.Context, event domain.ConfirmedPaymentEvent) (*SettlementResult, error)
	SettlePaymentFailed(ctx context.Context, orderID string, gateway domain.GatewayTag, refs domain.GatewayRefs) error
	ReleaseOrderInventory(ctx context.Context, orderID string) error
	RecordWebhookEvent(ctx context.Context, event *domain.WebhookEvent) error
}

// SettlementResult describes the order after a settlement call.
type SettlementResult struct {
	OrderID           string               `json:"order_id"`
	PaymentStatus     domain.PaymentStatus `json:"payment_status"`
	PaidAmount        int64                `json:"paid_amount"`
	BalanceDue        int64                `json:"balance_due"`
	AlreadySettled    bool                 `json:"already_settled"`
	InventoryDeducted bool                 `json:"inventory_deducted"`
	PaymentID         *uuid.UUID           `json:"payment_id,omitempty"`
}

// RefundService drives refunds and returns back through the originating gateway.
type RefundService interface {
	ProcessRefund(ctx context.Context, req RefundRequest) (*RefundResult, error)
	ProcessReturn(ctx context.Context, req ReturnRequest) (*ReturnResult, error)
}

// RefundRequest holds validated input for refund processing.
type RefundRequest struct {
	OrderID         string
	Amount          *int64 // nil = full refund
	Reason          string
	GatewayOverride *domain.GatewayTag
}

// RefundResult is the outcome of a dispatched refund. Gateway and RefundID
// describe the first part; an order paid in installments may be refunded in
// several parts, one per charge.
type RefundResult struct {
	Success      bool              `json:"success"`
	Gateway      domain.GatewayTag `json:"gateway"`
	RefundID     string            `json:"refund_id,omitempty"`
	Amount       int64             `json:"amount"`
	IsFullRefund bool              `json:"is_full_refund"`
	Parts        []RefundPart      `json:"parts,omitempty"`
}

// RefundPart is the refund of one charge.
type RefundPart struct {
	Gateway         domain.GatewayTag `json:"gateway"`
	RefundID        string            `json:"refund_id"`
	Amount          int64             `json:"amount"`
	ChargePaymentID string            `json:"charge_payment_id"`
}

// ReturnRequest holds validated input for a goods return.
type ReturnRequest struct {
	OrderID    string
	Reason     string
	AutoRefund bool
}

// ReturnResult reports the return and, when requested, the nested refund.
// A failed refund does not fail the return; its error is carried here.
type ReturnResult struct {
	OrderID           string                   `json:"order_id"`
	FulfillmentStatus domain.FulfillmentStatus `json:"fulfillment_status"`
	Refund            *RefundResult            `json:"refund,omitempty"`
	RefundError       error                    `json:"-"`
}

// SettingsResolver resolves gateway credentials behind a cache.
type SettingsResolver interface {
	GetGatewaySettings(ctx context.Context, gateway domain.GatewayTag) (*domain.GatewaySettings, error)
	CardSettings(ctx context.Context) (*domain.CardSettings, error)
	RegionalSettings(ctx context.Context) (*domain.RegionalSettings, error)
	InvalidateCache(ctx context.Context, gateway domain.GatewayTag) error
	GetActivePaymentMethods(ctx context.Context) ([]domain.PaymentMethodOption, error)
	UpdateGatewaySettings(ctx context.Context, gateway domain.GatewayTag, values map[string]string) error
}

// WebhookService verifies, deduplicates and dispatches provider notifications.
type WebhookService interface {
	HandleCardWebhook(ctx context.Context, payload []byte, signatureHeader string) (*WebhookResult, error)
	HandleRegionalIPN(ctx context.Context, form map[string]string) (*WebhookResult, error)
}

// WebhookResult is the outcome of one inbound notification.
type WebhookResult struct {
	EventID    string            `json:"event_id"`
	EventType  string            `json:"event_type"`
	Duplicate  bool              `json:"duplicate"`
	Ignored    bool              `json:"ignored,omitempty"`
	Settlement *SettlementResult `json:"settlement,omitempty"`
}

// CheckoutService starts and manages gateway payments for an order.
type CheckoutService interface {
	InitiatePayment(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
	// CapturePayment captures an authorized card intent and settles it.
	// A nil amount captures the full authorization.
	CapturePayment(ctx context.Context, orderID string, intentID string, amount *int64) (*SettlementResult, error)
	CancelPayment(ctx context.Context, orderID string, intentID string) error
}

// CheckoutRequest holds validated input for payment initiation.
type CheckoutRequest struct {
	OrderID       string
	Gateway       domain.GatewayTag
	PaymentType   domain.PaymentType
	Amount        *int64 // nil = full balance due
	ManualCapture bool
	SuccessURL    string
	FailURL       string
	CancelURL     string
	IPNURL        string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

// CheckoutResult tells the storefront how to continue the payment.
type CheckoutResult struct {
	OrderID       string            `json:"order_id"`
	Gateway       domain.GatewayTag `json:"gateway"`
	Amount        int64             `json:"amount"`
	IntentID      string            `json:"intent_id,omitempty"`
	ClientSecret  string            `json:"client_secret,omitempty"`
	TransactionID string            `json:"transaction_id,omitempty"`
	RedirectURL   string            `json:"redirect_url,omitempty"`
	CODStatus     domain.CODStatus  `json:"cod_status,omitempty"`
}

// CODService manages cash-on-delivery collection.
type CODService interface {
	Get(ctx context.Context, orderID string) (*domain.CODTracking, error)
	RecordDeliveryAttempt(ctx context.Context, orderID string, success bool, reason string) (*domain.CODTracking, error)
	MarkCollected(ctx context.Context, orderID string, collectedBy string, amount int64) (*domain.CODTracking, error)
	MarkReturned(ctx context.Context, orderID string) (*domain.CODTracking, error)
}

// AuditService records operator actions.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
