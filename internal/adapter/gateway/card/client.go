package card

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"payment-settlement/internal/adapter/metrics"
	"payment-settlement/internal/core/domain"
	"payment-settlement/internal/core/ports"
	"payment-settlement/pkg/apperror"

	"github.com/rs/zerolog"
)

const gatewayName = "card"

var _ ports.CardGateway = (*Client)(nil)

// Config holds the card provider endpoint and timing knobs.
type Config struct {
	BaseURL          string
	Timeout          time.Duration
	WebhookTolerance time.Duration
}

// Client is a form-encoded REST client for the card provider.
// Credentials are supplied per call from the settings resolver.
type Client struct {
	baseURL   string
	http      *http.Client
	signer    ports.SignatureService
	tolerance time.Duration
	now       func() time.Time
	log       zerolog.Logger
}

// NewClient creates a card gateway client with a bounded HTTP timeout.
func NewClient(cfg Config, signer ports.SignatureService, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		http:      &http.Client{Timeout: timeout},
		signer:    signer,
		tolerance: cfg.WebhookTolerance,
		now:       time.Now,
		log:       log,
	}
}

type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// post sends a form request and decodes a 2xx body into out.
// Transport failures and 5xx responses have an unknown outcome and are
// reported as retryable network errors; 4xx are business rejections.
func (c *Client) post(ctx context.Context, op, secretKey, path string, form url.Values, idempotencyKey string, out any) error {
	start := time.Now()
	success := false
	defer func() { metrics.ObserveGatewayCall(gatewayName, op, success, time.Since(start)) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return apperror.InternalError(fmt.Errorf("build %s request: %w", op, err))
	}
	req.Header.Set("Authorization", "Bearer "+secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("op", op).Msg("card gateway call failed")
		return apperror.ErrGatewayNetwork(gatewayName, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apperror.ErrGatewayNetwork(gatewayName, fmt.Errorf("read %s response: %w", op, err))
	}

	if resp.StatusCode >= 500 {
		return apperror.ErrGatewayNetwork(gatewayName, fmt.Errorf("%s: http %d", op, resp.StatusCode))
	}
	if resp.StatusCode >= 300 {
		var ae apiError
		msg := fmt.Sprintf("http %d", resp.StatusCode)
		if json.Unmarshal(body, &ae) == nil && ae.Error.Message != "" {
			msg = ae.Error.Message
		}
		return apperror.ErrGatewayRejected(gatewayName, msg)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return apperror.InternalError(fmt.Errorf("decode %s response: %w", op, err))
	}
	success = true
	return nil
}

func setMetadata(form url.Values, md map[string]string) {
	for k, v := range md {
		form.Set("metadata["+k+"]", v)
	}
}

// CreatePaymentIntent opens an authorization for amount minor units.
func (c *Client) CreatePaymentIntent(ctx context.Context, creds domain.CardSettings, req ports.CardIntentRequest) (*ports.CardIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(req.Amount, 10))
	form.Set("currency", strings.ToLower(req.Currency))
	form.Set("automatic_payment_methods[enabled]", "true")
	if req.ManualCapture {
		form.Set("capture_method", "manual")
	}
	setMetadata(form, req.Metadata)

	var intent ports.CardIntent
	if err := c.post(ctx, "create_intent", creds.SecretKey, "/v1/payment_intents", form, "", &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

// CapturePaymentIntent captures an authorized intent. A nil amount captures in full.
func (c *Client) CapturePaymentIntent(ctx context.Context, creds domain.CardSettings, intentID string, amount *int64) (*ports.CardIntent, error) {
	form := url.Values{}
	if amount != nil {
		form.Set("amount_to_capture", strconv.FormatInt(*amount, 10))
	}

	var intent ports.CardIntent
	path := "/v1/payment_intents/" + url.PathEscape(intentID) + "/capture"
	if err := c.post(ctx, "capture_intent", creds.SecretKey, path, form, "capture-"+intentID, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

// CancelPaymentIntent voids an uncaptured intent.
func (c *Client) CancelPaymentIntent(ctx context.Context, creds domain.CardSettings, intentID string) (*ports.CardIntent, error) {
	var intent ports.CardIntent
	path := "/v1/payment_intents/" + url.PathEscape(intentID) + "/cancel"
	if err := c.post(ctx, "cancel_intent", creds.SecretKey, path, url.Values{}, "", &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

// CreateRefund refunds a charge. The amount is omitted for a full refund.
func (c *Client) CreateRefund(ctx context.Context, creds domain.CardSettings, req ports.CardRefundRequest) (*ports.CardRefund, error) {
	if req.ChargeID == "" {
		return nil, apperror.ErrMissingGatewayIdentifier(gatewayName, "charge id")
	}
	form := url.Values{}
	form.Set("charge", req.ChargeID)
	if req.Amount != nil {
		form.Set("amount", strconv.FormatInt(*req.Amount, 10))
	}
	form.Set("reason", NormalizeRefundReason(req.Reason))
	setMetadata(form, req.Metadata)

	var refund ports.CardRefund
	if err := c.post(ctx, "create_refund", creds.SecretKey, "/v1/refunds", form, req.IdempotencyKey, &refund); err != nil {
		return nil, err
	}
	if refund.Status == "failed" || refund.Status == "canceled" {
		return nil, apperror.ErrGatewayRejected(gatewayName, "refund "+refund.Status)
	}
	return &refund, nil
}

// NormalizeRefundReason maps a free-text reason onto the provider's enum.
func NormalizeRefundReason(reason string) string {
	switch strings.ToLower(strings.TrimSpace(reason)) {
	case "duplicate":
		return "duplicate"
	case "fraud", "fraudulent":
		return "fraudulent"
	default:
		return "requested_by_customer"
	}
}
