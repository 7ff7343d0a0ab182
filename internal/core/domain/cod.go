package domain

import "time"

// CODStatus is the cash-on-delivery collection state.
type CODStatus string

const (
	CODPending   CODStatus = "pending"
	CODCollected CODStatus = "collected"
	CODFailed    CODStatus = "failed"
	CODReturned  CODStatus = "returned"
)

// CODTracking holds the collection state of one COD order.
type CODTracking struct {
	OrderID          string     `json:"order_id"`
	Status           CODStatus  `json:"status"`
	DeliveryAttempts int        `json:"delivery_attempts"`
	CollectedBy      *string    `json:"collected_by,omitempty"`
	CollectedAmount  *int64     `json:"collected_amount,omitempty"`
	CollectionRef    *string    `json:"collection_ref,omitempty"`
	CollectedAt      *time.Time `json:"collected_at,omitempty"`
	FailureReason    *string    `json:"failure_reason,omitempty"`
	LastAttemptAt    *time.Time `json:"last_attempt_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// CanCollect returns true if cash can still be collected.
func (c *CODTracking) CanCollect() bool {
	return c.Status == CODPending || c.Status == CODFailed
}

// CanReturn returns true if the parcel can be marked as returned to sender.
func (c *CODTracking) CanReturn() bool {
	return c.Status == CODFailed
}

// CanAttempt returns true while delivery attempts may still be recorded.
func (c *CODTracking) CanAttempt() bool {
	return c.Status == CODPending || c.Status == CODFailed
}
