package dto

// RefundRequest is the request body for an operator refund.
// A nil Amount refunds everything still paid on the order.
type RefundRequest struct {
	Amount  *int64  `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Reason  string  `json:"reason" binding:"max=500"`
	Gateway *string `json:"gateway,omitempty" binding:"omitempty,gateway"`
}

// ReturnRequest is the request body for recording a goods return.
type ReturnRequest struct {
	Reason     string `json:"reason" binding:"required,max=500"`
	AutoRefund bool   `json:"auto_refund"`
}

// CaptureRequest is the request body for capturing an authorized card intent.
type CaptureRequest struct {
	IntentID string `json:"intent_id" binding:"required,safe_id"`
	Amount   *int64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
}

// CancelRequest is the request body for cancelling an uncaptured card intent.
type CancelRequest struct {
	IntentID string `json:"intent_id" binding:"required,safe_id"`
}

// CheckoutRequest is the request body for starting a gateway payment.
type CheckoutRequest struct {
	OrderID       string `json:"order_id" binding:"required,safe_id,max=100"`
	Gateway       string `json:"gateway" binding:"required,gateway"`
	PaymentType   string `json:"payment_type" binding:"omitempty,payment_type"`
	Amount        *int64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	ManualCapture bool   `json:"manual_capture"`
	SuccessURL    string `json:"success_url" binding:"omitempty,safe_url" sanitize:"-"`
	FailURL       string `json:"fail_url" binding:"omitempty,safe_url" sanitize:"-"`
	CancelURL     string `json:"cancel_url" binding:"omitempty,safe_url" sanitize:"-"`
	IPNURL        string `json:"ipn_url" binding:"omitempty,safe_url" sanitize:"-"`
	CustomerName  string `json:"customer_name" binding:"max=100"`
	CustomerEmail string `json:"customer_email" binding:"omitempty,email" sanitize:"-"`
	CustomerPhone string `json:"customer_phone" binding:"max=30"`
}

// CODAttemptRequest is the request body for a cash-on-delivery attempt.
type CODAttemptRequest struct {
	Success *bool  `json:"success" binding:"required"`
	Reason  string `json:"reason" binding:"max=500"`
}

// CODCollectRequest is the request body for recording collected cash.
type CODCollectRequest struct {
	CollectedBy string `json:"collected_by" binding:"required,max=100"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
}

// UpdateSettingsRequest is the request body for replacing gateway settings.
type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings" binding:"required,min=1"`
}

// PaymentMethodsResponse lists the methods a storefront may offer.
type PaymentMethodsResponse struct {
	Methods []PaymentMethod `json:"methods"`
}

// PaymentMethod is one selectable checkout option.
type PaymentMethod struct {
	Gateway string `json:"gateway"`
	Label   string `json:"label"`
}

// RefundResponse is the outcome of a dispatched refund.
type RefundResponse struct {
	Success      bool                 `json:"success"`
	Gateway      string               `json:"gateway"`
	RefundID     string               `json:"refund_id,omitempty"`
	Amount       int64                `json:"amount"`
	IsFullRefund bool                 `json:"is_full_refund"`
	Parts        []RefundPartResponse `json:"parts,omitempty"`
}

// RefundPartResponse is the refund of one charge.
type RefundPartResponse struct {
	Gateway         string `json:"gateway"`
	RefundID        string `json:"refund_id"`
	Amount          int64  `json:"amount"`
	ChargePaymentID string `json:"charge_payment_id"`
}

// ReturnResponse reports a recorded return. A failed refund is reported
// alongside the return rather than failing the request.
type ReturnResponse struct {
	OrderID           string          `json:"order_id"`
	FulfillmentStatus string          `json:"fulfillment_status"`
	Refund            *RefundResponse `json:"refund,omitempty"`
	RefundError       string          `json:"refund_error,omitempty"`
}

// SettingsUpdatedResponse confirms a settings write.
type SettingsUpdatedResponse struct {
	Gateway string `json:"gateway"`
	Updated int    `json:"updated"`
}

// WebhookAck is returned to providers once an event has been absorbed.
type WebhookAck struct {
	Received  bool   `json:"received"`
	EventID   string `json:"event_id,omitempty"`
	Duplicate bool   `json:"duplicate,omitempty"`
	Message   string `json:"message,omitempty"`
}
