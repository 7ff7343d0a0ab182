package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Retryable  bool   `json:"retryable,omitempty"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err is an AppError carrying code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsRetryable reports whether err is an AppError marked safe to retry.
func IsRetryable(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Retryable
}

// ---- Security (SEC) ----

func ErrInvalidSignature() *AppError {
	return New("SEC_002", "Invalid signature", http.StatusUnauthorized)
}

func ErrPaymentNotValidated(reason string) *AppError {
	return New("SEC_005", "Payment notification could not be validated: "+reason, http.StatusBadRequest)
}

// ---- Orders (ORD) ----

func ErrNotFound(entity string) *AppError {
	return New("ORD_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ErrInvalidState names the state the order is actually in.
func ErrInvalidState(action string, state string) *AppError {
	return New("ORD_002", fmt.Sprintf("cannot %s: order is %s", action, state), http.StatusConflict)
}

// ---- Payment Business Logic (PAY) ----

func ErrInvalidAmount() *AppError {
	return New("PAY_002", "Invalid amount", http.StatusBadRequest)
}

// ---- Refunds (REF) ----

func ErrNothingToRefund(state string) *AppError {
	return New("REF_001", fmt.Sprintf("nothing to refund: order is %s", state), http.StatusConflict)
}

func ErrAlreadyRefunded() *AppError {
	return New("REF_002", "Order is already refunded", http.StatusConflict)
}

func ErrRefundAmountExceedsPaid() *AppError {
	return New("REF_003", "Refund amount exceeds the paid amount", http.StatusBadRequest)
}

// ErrRefundExceedsCharges means the ledger holds too little refundable charge
// (for the chosen gateway) to cover the amount.
func ErrRefundExceedsCharges(uncovered int64) *AppError {
	return New("REF_004", fmt.Sprintf("recorded charges cannot cover %d of the refund", uncovered), http.StatusUnprocessableEntity)
}

// ---- Gateways (GW) ----

func ErrGatewayNotConfigured(gateway string) *AppError {
	return New("GW_001", fmt.Sprintf("payment gateway %s is not configured", gateway), http.StatusServiceUnavailable)
}

// ErrGatewayRejected passes the provider's decline message through verbatim.
func ErrGatewayRejected(gateway string, message string) *AppError {
	return New("GW_002", fmt.Sprintf("%s: %s", gateway, message), http.StatusBadGateway)
}

// ErrGatewayNetwork marks an unknown-outcome failure (timeout, transport error).
func ErrGatewayNetwork(gateway string, err error) *AppError {
	e := Wrap("GW_003", fmt.Sprintf("%s gateway unreachable, outcome unknown", gateway), http.StatusGatewayTimeout, err)
	e.Retryable = true
	return e
}

func ErrUnsupportedGateway(gateway string) *AppError {
	return New("GW_004", fmt.Sprintf("unsupported payment gateway %q", gateway), http.StatusBadRequest)
}

func ErrMissingGatewayIdentifier(gateway string, identifier string) *AppError {
	return New("GW_005", fmt.Sprintf("payment record has no %s %s", gateway, identifier), http.StatusUnprocessableEntity)
}

// ---- Requests (REQ) ----

func ErrPayloadTooLarge(limit int64) *AppError {
	return New("REQ_001", fmt.Sprintf("request body exceeds %d bytes", limit), http.StatusRequestEntityTooLarge)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	e := Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
	e.Retryable = true
	return e
}

// Validation returns a PAY_002-style validation error.
func Validation(message string) *AppError {
	return New("PAY_002", message, http.StatusBadRequest)
}
