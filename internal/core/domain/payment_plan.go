package domain

import "time"

// PaymentPlanStatus tracks installment progress. It only moves forward.
type PaymentPlanStatus string

const (
	PaymentPlanPending     PaymentPlanStatus = "pending"
	PaymentPlanDepositPaid PaymentPlanStatus = "deposit_paid"
	PaymentPlanFullyPaid   PaymentPlanStatus = "fully_paid"
)

func (s PaymentPlanStatus) rank() int {
	switch s {
	case PaymentPlanPending:
		return 0
	case PaymentPlanDepositPaid:
		return 1
	case PaymentPlanFullyPaid:
		return 2
	}
	return -1
}

// CanAdvanceTo reports whether moving from s to next is a forward step.
func (s PaymentPlanStatus) CanAdvanceTo(next PaymentPlanStatus) bool {
	return next.rank() > s.rank()
}

// PaymentPlan is an optional deposit + balance schedule for an order.
type PaymentPlan struct {
	OrderID       string            `json:"order_id"`
	Status        PaymentPlanStatus `json:"status"`
	DepositPaidAt *time.Time        `json:"deposit_paid_at,omitempty"`
	BalancePaidAt *time.Time        `json:"balance_paid_at,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// PlanTarget returns the plan status a settlement of paymentType should
// advance to, or "" when the plan is left alone.
func PlanTarget(paymentType PaymentType, fullyPaid bool) PaymentPlanStatus {
	switch {
	case paymentType == PaymentTypeDeposit:
		return PaymentPlanDepositPaid
	case paymentType == PaymentTypeBalance && fullyPaid:
		return PaymentPlanFullyPaid
	}
	return ""
}
