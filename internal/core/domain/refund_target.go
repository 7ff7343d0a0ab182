package domain

// RefundTarget is the channel a refund is sent back through. Each variant
// carries exactly the identifier its gateway requires.
type RefundTarget interface {
	Gateway() GatewayTag
	refundTarget()
}

// CardPayment refunds a captured card charge.
type CardPayment struct {
	ChargeID string
}

func (CardPayment) Gateway() GatewayTag { return GatewayCard }
func (CardPayment) refundTarget()       {}

// RegionalPayment refunds a regional-gateway bank transaction.
type RegionalPayment struct {
	BankTransactionID string
}

func (RegionalPayment) Gateway() GatewayTag { return GatewayRegional }
func (RegionalPayment) refundTarget()       {}

// CashPayment is refunded by bookkeeping only.
type CashPayment struct{}

func (CashPayment) Gateway() GatewayTag { return GatewayCOD }
func (CashPayment) refundTarget()       {}

// RefundAllocation is the share of a refund sent back against one charge.
type RefundAllocation struct {
	Charge OrderPayment
	// Refunded is what earlier refunds already took from this charge.
	Refunded int64
	Amount   int64
}

// Full reports whether the allocation returns the whole untouched charge.
func (a RefundAllocation) Full() bool {
	return a.Refunded == 0 && a.Amount == a.Charge.Amount
}

// AllocateRefund spreads amount over the settled charges in ledger, newest
// first, never taking more from a charge than earlier refunds left on it.
// With a gateway, only that gateway's charges are used when it has any.
// It returns the part of amount no charge could cover.
func AllocateRefund(ledger []OrderPayment, gateway GatewayTag, amount int64) ([]RefundAllocation, int64) {
	refunded := make(map[string]int64)
	var charges []OrderPayment
	for _, p := range ledger {
		switch {
		case p.IsSettledCharge():
			charges = append(charges, p)
		case p.Kind == PaymentKindRefund && p.Status == PaymentRecordSucceeded:
			refunded[p.Metadata[MetaChargePaymentID]] += p.Amount
		}
	}

	if gateway != "" {
		var own []OrderPayment
		for _, c := range charges {
			if c.PaymentMethod == gateway {
				own = append(own, c)
			}
		}
		if len(own) > 0 {
			charges = own
		}
	}

	var out []RefundAllocation
	for i := len(charges) - 1; i >= 0 && amount > 0; i-- {
		c := charges[i]
		done := refunded[c.ID.String()]
		left := c.Amount - done
		if left <= 0 {
			continue
		}
		take := min(left, amount)
		out = append(out, RefundAllocation{Charge: c, Refunded: done, Amount: take})
		amount -= take
	}
	return out, amount
}
