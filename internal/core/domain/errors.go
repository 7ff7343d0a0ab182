package domain

import (
	"errors"
	"fmt"
)

// ErrDuplicatePayment is returned by storage when a succeeded charge with the
// same gateway identifier already exists.
var ErrDuplicatePayment = errors.New("payment with this gateway identifier already recorded")

// MissingIdentifierError means a payment record lacks the identifier a gateway needs.
type MissingIdentifierError struct {
	Gateway    GatewayTag
	Identifier string
}

func (e *MissingIdentifierError) Error() string {
	return fmt.Sprintf("payment has no %s %s", e.Gateway, e.Identifier)
}

// UnsupportedGatewayError names a gateway tag this engine cannot dispatch to.
type UnsupportedGatewayError struct {
	Gateway string
}

func (e *UnsupportedGatewayError) Error() string {
	return fmt.Sprintf("unsupported gateway %q", e.Gateway)
}
