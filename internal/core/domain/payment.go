package domain

import (
	"time"

	"github.com/google/uuid"
)

// GatewayTag identifies the payment channel a payment went through.
type GatewayTag string

const (
	GatewayCard     GatewayTag = "card"
	GatewayRegional GatewayTag = "regional"
	GatewayCOD      GatewayTag = "cod"
)

// ParseGateway validates a raw gateway tag.
func ParseGateway(s string) (GatewayTag, bool) {
	switch g := GatewayTag(s); g {
	case GatewayCard, GatewayRegional, GatewayCOD:
		return g, true
	}
	return "", false
}

// PaymentType distinguishes single payments from installment parts.
type PaymentType string

const (
	PaymentTypeFull    PaymentType = "full"
	PaymentTypeDeposit PaymentType = "deposit"
	PaymentTypeBalance PaymentType = "balance"
)

// Valid reports whether t is a known payment type.
func (t PaymentType) Valid() bool {
	return t == PaymentTypeFull || t == PaymentTypeDeposit || t == PaymentTypeBalance
}

// PaymentRecordStatus is the outcome of one ledger row.
type PaymentRecordStatus string

const (
	PaymentRecordSucceeded PaymentRecordStatus = "succeeded"
	PaymentRecordFailed    PaymentRecordStatus = "failed"
)

// PaymentKind separates money in from money out on the ledger.
type PaymentKind string

const (
	PaymentKindCharge PaymentKind = "charge"
	PaymentKindRefund PaymentKind = "refund"
)

// GatewayRefs carries the provider-assigned identifiers of a payment.
// Empty string means absent.
type GatewayRefs struct {
	CardIntentID              string `json:"card_intent_id,omitempty"`
	CardChargeID              string `json:"card_charge_id,omitempty"`
	RegionalTransactionID     string `json:"regional_transaction_id,omitempty"`
	RegionalValidationID      string `json:"regional_validation_id,omitempty"`
	RegionalBankTransactionID string `json:"regional_bank_transaction_id,omitempty"`
	CODReference              string `json:"cod_reference,omitempty"`
}

// MetaChargePaymentID links a refund row to the charge row it returns money from.
const MetaChargePaymentID = "charge_payment_id"

// IsEmpty returns true when no identifier is present.
func (r GatewayRefs) IsEmpty() bool {
	return r == GatewayRefs{}
}

// OrderPayment is an append-only ledger row. Rows are never updated.
type OrderPayment struct {
	ID            uuid.UUID           `json:"id"`
	OrderID       string              `json:"order_id"`
	Kind          PaymentKind         `json:"kind"`
	Amount        int64               `json:"amount"`
	Currency      string              `json:"currency"`
	PaymentMethod GatewayTag          `json:"payment_method"`
	PaymentType   PaymentType         `json:"payment_type"`
	Status        PaymentRecordStatus `json:"status"`
	Refs          GatewayRefs         `json:"refs"`
	RefundID      string              `json:"refund_id,omitempty"`
	Reason        string              `json:"reason,omitempty"`
	Metadata      map[string]string   `json:"metadata,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

// IsSettledCharge returns true for a successful incoming payment.
func (p *OrderPayment) IsSettledCharge() bool {
	return p.Kind == PaymentKindCharge && p.Status == PaymentRecordSucceeded
}

// RefundTarget builds the refund channel for this payment through gateway.
// It fails when the payment never recorded the identifier that channel needs.
func (p *OrderPayment) RefundTarget(gateway GatewayTag) (RefundTarget, error) {
	switch gateway {
	case GatewayCard:
		if p.Refs.CardChargeID == "" {
			return nil, &MissingIdentifierError{Gateway: gateway, Identifier: "charge id"}
		}
		return CardPayment{ChargeID: p.Refs.CardChargeID}, nil
	case GatewayRegional:
		if p.Refs.RegionalBankTransactionID == "" {
			return nil, &MissingIdentifierError{Gateway: gateway, Identifier: "bank transaction id"}
		}
		return RegionalPayment{BankTransactionID: p.Refs.RegionalBankTransactionID}, nil
	case GatewayCOD:
		return CashPayment{}, nil
	}
	return nil, &UnsupportedGatewayError{Gateway: string(gateway)}
}
