package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := CODCollectRequest{
		CollectedBy: "  rider-17  ",
		Amount:      500,
	}
	SanitizeStruct(&req)

	assert.Equal(t, "rider-17", req.CollectedBy)
	assert.Equal(t, int64(500), req.Amount)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := ReturnRequest{
		Reason: "customer <script>alert('x')</script> request",
	}
	SanitizeStruct(&req)

	assert.Contains(t, req.Reason, "&lt;script&gt;")
	assert.NotContains(t, req.Reason, "<script>")
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	gw := "  card  "
	req := RefundRequest{
		Reason:  "damaged",
		Gateway: &gw,
	}
	SanitizeStruct(&req)

	assert.Equal(t, "card", *req.Gateway)
}

func TestSanitizeStruct_NilPointerIsNoOp(t *testing.T) {
	req := RefundRequest{Reason: "damaged"}
	SanitizeStruct(&req)
	assert.Nil(t, req.Gateway)
	assert.Nil(t, req.Amount)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom Validator tests ---

func TestSafeID_Valid(t *testing.T) {
	cases := []string{
		"ord-001",
		"pi_3MtwBwLkdIwHu7ix28a3tqPa",
		"a.b.c",
		"simple123",
		"ABC-def_GHI.123",
	}
	for _, tc := range cases {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestSafeID_Invalid(t *testing.T) {
	cases := []string{
		"ord 001",     // space
		"ord<001>",    // angle brackets
		"ord;DROP",    // semicolon
		"",            // empty
		"hello world", // space
		"ord\n001",    // newline
	}
	for _, tc := range cases {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}

func TestCheckoutRequest_Binding(t *testing.T) {
	valid := CheckoutRequest{
		OrderID:    "ord-1",
		Gateway:    "regional",
		SuccessURL: "https://shop.example.com/ok",
	}
	assert.NoError(t, binding.Validator.ValidateStruct(&valid))

	badGateway := valid
	badGateway.Gateway = "paypal"
	assert.Error(t, binding.Validator.ValidateStruct(&badGateway))

	badURL := valid
	badURL.SuccessURL = "javascript:alert(1)"
	assert.Error(t, binding.Validator.ValidateStruct(&badURL))

	badType := valid
	badType.PaymentType = "layaway"
	assert.Error(t, binding.Validator.ValidateStruct(&badType))
}

func TestRefundRequest_Binding(t *testing.T) {
	zero := int64(0)
	assert.Error(t, binding.Validator.ValidateStruct(&RefundRequest{Amount: &zero}))

	amount := int64(100)
	assert.NoError(t, binding.Validator.ValidateStruct(&RefundRequest{Amount: &amount}))
	assert.NoError(t, binding.Validator.ValidateStruct(&RefundRequest{}))
}

func TestSanitizeStruct_SkipsEscapingForOptOutFields(t *testing.T) {
	req := CheckoutRequest{
		OrderID:      " ord-1 ",
		SuccessURL:   " https://shop.example.com/ok?a=1&b=2 ",
		CustomerName: "Tom & Jerry",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "ord-1", req.OrderID)
	assert.Equal(t, "https://shop.example.com/ok?a=1&b=2", req.SuccessURL)
	assert.Equal(t, "Tom &amp; Jerry", req.CustomerName)
}

func TestGatewayAndPaymentTypeValidators(t *testing.T) {
	for _, gw := range []string{"card", "regional", "cod"} {
		req := CheckoutRequest{OrderID: "ord-1", Gateway: gw}
		assert.NoError(t, binding.Validator.ValidateStruct(&req), gw)
	}
	for _, pt := range []string{"full", "deposit", "balance"} {
		req := CheckoutRequest{OrderID: "ord-1", Gateway: "card", PaymentType: pt}
		assert.NoError(t, binding.Validator.ValidateStruct(&req), pt)
	}

	override := "wallet"
	assert.Error(t, binding.Validator.ValidateStruct(&RefundRequest{Gateway: &override}))
}

func TestSafeURL_RequiresHost(t *testing.T) {
	req := CheckoutRequest{OrderID: "ord-1", Gateway: "card", IPNURL: "https:///ipn"}
	assert.Error(t, binding.Validator.ValidateStruct(&req))
}
