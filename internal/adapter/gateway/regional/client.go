package regional

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"payment-settlement/internal/adapter/metrics"
	"payment-settlement/internal/core/domain"
	"payment-settlement/internal/core/ports"
	"payment-settlement/pkg/apperror"

	"github.com/rs/zerolog"
)

const gatewayName = "regional"

const (
	sessionPath  = "/gwprocess/v4/api.php"
	validatePath = "/validator/api/validationserverAPI.php"
	refundPath   = "/validator/api/merchantTransIDvalidationAPI.php"
)

var _ ports.RegionalGateway = (*Client)(nil)

// Config holds the regional provider endpoints.
type Config struct {
	SandboxURL string
	LiveURL    string
	Timeout    time.Duration
}

// Client talks to the regional provider's hosted-checkout API.
// The base URL is picked per call from the settings' sandbox flag.
type Client struct {
	sandboxURL string
	liveURL    string
	http       *http.Client
	log        zerolog.Logger
}

// NewClient creates a regional gateway client with a bounded HTTP timeout.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		sandboxURL: strings.TrimRight(cfg.SandboxURL, "/"),
		liveURL:    strings.TrimRight(cfg.LiveURL, "/"),
		http:       &http.Client{Timeout: timeout},
		log:        log,
	}
}

func (c *Client) endpoint(creds domain.RegionalSettings, path string) string {
	if creds.Sandbox {
		return c.sandboxURL + path
	}
	return c.liveURL + path
}

func (c *Client) do(req *http.Request, op string, out any) error {
	start := time.Now()
	success := false
	defer func() { metrics.ObserveGatewayCall(gatewayName, op, success, time.Since(start)) }()

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("op", op).Msg("regional gateway call failed")
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
		return apperror.ErrGatewayRejected(gatewayName, fmt.Sprintf("%s: http %d", op, resp.StatusCode))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return apperror.InternalError(fmt.Errorf("decode %s response: %w", op, err))
	}
	success = true
	return nil
}

func (c *Client) get(ctx context.Context, op, endpoint string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("build %s request: %w", op, err))
	}
	return c.do(req, op, out)
}

type sessionResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	SessionKey     string `json:"sessionkey"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

// InitiateSession opens a hosted checkout session and returns the redirect URL.
func (c *Client) InitiateSession(ctx context.Context, creds domain.RegionalSettings, r ports.RegionalSessionRequest) (*ports.RegionalSession, error) {
	form := url.Values{}
	form.Set("store_id", creds.StoreID)
	form.Set("store_passwd", creds.StorePassword)
	form.Set("total_amount", ToMajor(r.Amount))
	form.Set("currency", r.Currency)
	form.Set("tran_id", r.TransactionID)
	form.Set("success_url", r.SuccessURL)
	form.Set("fail_url", r.FailURL)
	form.Set("cancel_url", r.CancelURL)
	form.Set("ipn_url", r.IPNURL)
	form.Set("cus_name", r.CustomerName)
	form.Set("cus_email", r.CustomerEmail)
	form.Set("cus_phone", r.CustomerPhone)
	form.Set("shipping_method", "NO")
	form.Set("product_name", "Order "+r.OrderID)
	form.Set("product_category", "ecommerce")
	form.Set("product_profile", "general")
	form.Set("value_a", r.OrderID)
	form.Set("value_b", string(r.PaymentType))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(creds, sessionPath), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("build session request: %w", err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var out sessionResponse
	if err := c.do(req, "init_session", &out); err != nil {
		return nil, err
	}
	if !strings.EqualFold(out.Status, "SUCCESS") || out.GatewayPageURL == "" {
		reason := out.FailedReason
		if reason == "" {
			reason = "session not created"
		}
		return nil, apperror.ErrGatewayRejected(gatewayName, reason)
	}
	return &ports.RegionalSession{
		SessionKey: out.SessionKey,
		GatewayURL: out.GatewayPageURL,
		Status:     out.Status,
	}, nil
}

type validationResponse struct {
	Status     string `json:"status"`
	TranID     string `json:"tran_id"`
	ValID      string `json:"val_id"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
	BankTranID string `json:"bank_tran_id"`
	ValueA     string `json:"value_a"`
	ValueB     string `json:"value_b"`
}

// ValidatePayment re-checks a notification server-to-server. The returned
// status is the provider's (VALID, VALIDATED, INVALID_TRANSACTION, ...).
func (c *Client) ValidatePayment(ctx context.Context, creds domain.RegionalSettings, valID string) (*ports.RegionalValidation, error) {
	q := url.Values{}
	q.Set("val_id", valID)
	q.Set("store_id", creds.StoreID)
	q.Set("store_passwd", creds.StorePassword)
	q.Set("format", "json")

	var out validationResponse
	if err := c.get(ctx, "validate", c.endpoint(creds, validatePath), q, &out); err != nil {
		return nil, err
	}

	v := &ports.RegionalValidation{
		Status:            strings.ToUpper(out.Status),
		TransactionID:     out.TranID,
		ValidationID:      out.ValID,
		BankTransactionID: out.BankTranID,
		Currency:          out.Currency,
		OrderID:           out.ValueA,
		PaymentType:       domain.PaymentType(out.ValueB),
	}
	if out.Amount != "" {
		amount, err := ToMinor(out.Amount)
		if err != nil {
			return nil, apperror.ErrPaymentNotValidated(err.Error())
		}
		v.Amount = amount
	}
	return v, nil
}

type refundResponse struct {
	APIConnect  string `json:"APIConnect"`
	BankTranID  string `json:"bank_tran_id"`
	TransID     string `json:"trans_id"`
	RefundRefID string `json:"refund_ref_id"`
	Status      string `json:"status"`
	ErrorReason string `json:"errorReason"`
}

func (r refundResponse) toPort() *ports.RegionalRefund {
	return &ports.RegionalRefund{
		Status:      strings.ToLower(r.Status),
		RefundRefID: r.RefundRefID,
		BankTranID:  r.BankTranID,
		TransID:     r.TransID,
		ErrorReason: r.ErrorReason,
	}
}

func (r refundResponse) rejection() error {
	if !strings.EqualFold(r.APIConnect, "DONE") {
		return apperror.ErrGatewayRejected(gatewayName, "api connect "+r.APIConnect)
	}
	if strings.EqualFold(r.Status, "failed") {
		reason := r.ErrorReason
		if reason == "" {
			reason = "refund failed"
		}
		return apperror.ErrGatewayRejected(gatewayName, reason)
	}
	return nil
}

// InitiateRefund submits a refund of a bank transaction.
func (c *Client) InitiateRefund(ctx context.Context, creds domain.RegionalSettings, r ports.RegionalRefundRequest) (*ports.RegionalRefund, error) {
	if r.BankTransactionID == "" {
		return nil, apperror.ErrMissingGatewayIdentifier(gatewayName, "bank transaction id")
	}
	q := url.Values{}
	q.Set("bank_tran_id", r.BankTransactionID)
	q.Set("refund_trans_id", r.RefundTransID)
	q.Set("refund_amount", ToMajor(r.Amount))
	q.Set("refund_remarks", r.Remarks)
	q.Set("store_id", creds.StoreID)
	q.Set("store_passwd", creds.StorePassword)
	q.Set("format", "json")

	var out refundResponse
	if err := c.get(ctx, "refund", c.endpoint(creds, refundPath), q, &out); err != nil {
		return nil, err
	}
	if err := out.rejection(); err != nil {
		return nil, err
	}
	return out.toPort(), nil
}

// QueryRefund reports the status of a previously submitted refund.
func (c *Client) QueryRefund(ctx context.Context, creds domain.RegionalSettings, refundRefID string) (*ports.RegionalRefund, error) {
	q := url.Values{}
	q.Set("refund_ref_id", refundRefID)
	q.Set("store_id", creds.StoreID)
	q.Set("store_passwd", creds.StorePassword)
	q.Set("format", "json")

	var out refundResponse
	if err := c.get(ctx, "refund_query", c.endpoint(creds, refundPath), q, &out); err != nil {
		return nil, err
	}
	if !strings.EqualFold(out.APIConnect, "DONE") {
		return nil, apperror.ErrGatewayRejected(gatewayName, "api connect "+out.APIConnect)
	}
	return out.toPort(), nil
}
