package domain

import "time"

// PaymentStatus is the financial state of an order.
type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "UNPAID"
	PaymentStatusPartial  PaymentStatus = "PARTIAL"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// FulfillmentStatus is the shipping state of an order.
type FulfillmentStatus string

const (
	FulfillmentPending    FulfillmentStatus = "PENDING"
	FulfillmentProcessing FulfillmentStatus = "PROCESSING"
	FulfillmentShipped    FulfillmentStatus = "SHIPPED"
	FulfillmentDelivered  FulfillmentStatus = "DELIVERED"
	FulfillmentCompleted  FulfillmentStatus = "COMPLETED"
	FulfillmentCancelled  FulfillmentStatus = "CANCELLED"
	FulfillmentReturned   FulfillmentStatus = "RETURNED"
)

// Returnable reports whether goods in this state can be taken back.
func (s FulfillmentStatus) Returnable() bool {
	return s == FulfillmentDelivered || s == FulfillmentCompleted || s == FulfillmentShipped
}

// InventoryPool selects which stock pool an order's reservation lives in.
type InventoryPool string

const (
	InventoryPoolRegular   InventoryPool = "regular"
	InventoryPoolPreorder  InventoryPool = "preorder"
	InventoryPoolBackorder InventoryPool = "backorder"
)

// Order is the aggregate root for a single purchase.
// All money fields are integer minor currency units.
type Order struct {
	ID                string            `json:"id"`
	TotalAmount       int64             `json:"total_amount"`
	PaidAmount        int64             `json:"paid_amount"`
	BalanceDue        int64             `json:"balance_due"`
	Currency          string            `json:"currency"`
	PaymentStatus     PaymentStatus     `json:"payment_status"`
	FulfillmentStatus FulfillmentStatus `json:"fulfillment_status"`
	InventoryPool     InventoryPool     `json:"inventory_pool"`
	PaymentMethod     GatewayTag        `json:"payment_method"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// BalanceDue returns max(0, total - paid).
func BalanceDue(total, paid int64) int64 {
	if paid >= total {
		return 0
	}
	return total - paid
}

// IsPaid returns true if the order is fully settled.
func (o *Order) IsPaid() bool {
	return o.PaymentStatus == PaymentStatusPaid
}

// ApplyPayment adds amount to the paid total and recomputes the balance and
// payment status. It reports whether the order is now fully paid.
func (o *Order) ApplyPayment(amount int64) bool {
	o.PaidAmount += amount
	o.BalanceDue = BalanceDue(o.TotalAmount, o.PaidAmount)
	if o.BalanceDue == 0 {
		o.PaymentStatus = PaymentStatusPaid
		return true
	}
	o.PaymentStatus = PaymentStatusPartial
	return false
}

// ApplyRefund subtracts amount from the paid total, floored at zero.
// A full refund moves the order to REFUNDED, anything less to PARTIAL.
func (o *Order) ApplyRefund(amount int64, full bool) {
	o.PaidAmount -= amount
	if o.PaidAmount < 0 {
		o.PaidAmount = 0
	}
	o.BalanceDue = BalanceDue(o.TotalAmount, o.PaidAmount)
	if full {
		o.PaymentStatus = PaymentStatusRefunded
		return
	}
	o.PaymentStatus = PaymentStatusPartial
}
