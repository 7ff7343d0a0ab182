package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"payment-settlement/internal/core/domain"
	"payment-settlement/internal/core/ports"

	"github.com/rs/zerolog"
)

var _ ports.InventoryCoordinator = (*Client)(nil)

// HTTPClient allows tests to substitute the transport.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client forwards stock movements to the external inventory service.
// Stock arithmetic lives there; this client only reports what moved.
type Client struct {
	baseURL string
	http    HTTPClient
	log     zerolog.Logger
}

// NewClient creates an inventory client. A nil httpClient gets a default
// client bounded by timeout.
func NewClient(baseURL string, timeout time.Duration, httpClient HTTPClient, log zerolog.Logger) *Client {
	if httpClient == nil {
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		log:     log,
	}
}

type movementItem struct {
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
	Pool      string `json:"pool"`
}

type movementRequest struct {
	OrderID string         `json:"order_id"`
	Items   []movementItem `json:"items"`
}

// Reserve holds stock for an order awaiting payment.
func (c *Client) Reserve(ctx context.Context, entries []domain.InventoryEntry, orderID string) error {
	return c.move(ctx, "reserve", entries, orderID)
}

// Deduct converts held stock into a sale.
func (c *Client) Deduct(ctx context.Context, entries []domain.InventoryEntry, orderID string) error {
	return c.move(ctx, "deduct", entries, orderID)
}

// Release returns held or sold stock. The inventory service treats a repeated
// release for the same order as a no-op.
func (c *Client) Release(ctx context.Context, entries []domain.InventoryEntry, orderID string) error {
	return c.move(ctx, "release", entries, orderID)
}

// CheckLowStockAndAlert asks the inventory service to evaluate its
// low-stock threshold for one variant.
func (c *Client) CheckLowStockAndAlert(ctx context.Context, variantID string) error {
	return c.post(ctx, "/v1/inventory/low-stock-check", map[string]string{"variant_id": variantID})
}

func (c *Client) move(ctx context.Context, op string, entries []domain.InventoryEntry, orderID string) error {
	if len(entries) == 0 {
		return nil
	}
	req := movementRequest{OrderID: orderID, Items: make([]movementItem, 0, len(entries))}
	for _, e := range entries {
		req.Items = append(req.Items, movementItem{VariantID: e.VariantID, Quantity: e.Quantity, Pool: string(e.Pool)})
	}
	if err := c.post(ctx, "/v1/inventory/"+op, req); err != nil {
		return fmt.Errorf("inventory %s for order %s: %w", op, orderID, err)
	}
	c.log.Debug().Str("order_id", orderID).Str("op", op).Int("items", len(entries)).Msg("inventory movement sent")
	return nil
}

func (c *Client) post(ctx context.Context, path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
