package card

import (
	"fmt"
	"testing"
	"time"

	"payment-settlement/internal/core/ports"
	"payment-settlement/internal/service"
	"payment-settlement/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const intentSucceeded = `{
  "id": "evt_1",
  "type": "payment_intent.succeeded",
  "data": {"object": {
    "id": "pi_1", "object": "payment_intent", "amount": 1000, "amount_received": 1000,
    "currency": "usd", "status": "succeeded", "latest_charge": "ch_1",
    "metadata": {"order_id": "ord-1", "payment_type": "full"}
  }}
}`

func signedClient(now time.Time) *Client {
	c := NewClient(Config{BaseURL: "http://unused", WebhookTolerance: 5 * time.Minute},
		service.NewHMACSignatureService(), zerolog.Nop())
	c.now = func() time.Time { return now }
	return c
}

func signHeader(secret string, ts int64, payload []byte) string {
	signer := service.NewHMACSignatureService()
	return fmt.Sprintf("t=%d,v1=%s", ts, signer.Sign(secret, signer.SignedPayload(ts, payload)))
}

func TestVerifyWebhookSignature(t *testing.T) {
	now := time.Unix(1_750_000_000, 0)
	c := signedClient(now)
	payload := []byte(intentSucceeded)

	t.Run("valid", func(t *testing.T) {
		header := signHeader("whsec_abc", now.Unix()-10, payload)
		assert.NoError(t, c.VerifyWebhookSignature(payload, header, "whsec_abc"))
	})

	t.Run("one of several v1 signatures matches", func(t *testing.T) {
		header := signHeader("whsec_abc", now.Unix(), payload) + ",v1=deadbeef"
		assert.NoError(t, c.VerifyWebhookSignature(payload, header, "whsec_abc"))
	})

	t.Run("wrong secret", func(t *testing.T) {
		header := signHeader("whsec_other", now.Unix(), payload)
		assert.True(t, apperror.HasCode(c.VerifyWebhookSignature(payload, header, "whsec_abc"), "SEC_002"))
	})

	t.Run("tampered payload", func(t *testing.T) {
		header := signHeader("whsec_abc", now.Unix(), payload)
		err := c.VerifyWebhookSignature([]byte(`{"id":"evt_forged"}`), header, "whsec_abc")
		assert.True(t, apperror.HasCode(err, "SEC_002"))
	})

	t.Run("stale timestamp", func(t *testing.T) {
		header := signHeader("whsec_abc", now.Add(-10*time.Minute).Unix(), payload)
		assert.True(t, apperror.HasCode(c.VerifyWebhookSignature(payload, header, "whsec_abc"), "SEC_002"))
	})

	t.Run("malformed header", func(t *testing.T) {
		assert.True(t, apperror.HasCode(c.VerifyWebhookSignature(payload, "garbage", "whsec_abc"), "SEC_002"))
		assert.True(t, apperror.HasCode(c.VerifyWebhookSignature(payload, "t=abc,v1=00", "whsec_abc"), "SEC_002"))
	})

	t.Run("no secret configured", func(t *testing.T) {
		assert.True(t, apperror.HasCode(c.VerifyWebhookSignature(payload, "t=1,v1=00", ""), "GW_001"))
	})
}

func TestParseEvent_PaymentIntent(t *testing.T) {
	c := signedClient(time.Now())

	ev, err := c.ParseEvent([]byte(intentSucceeded))
	require.NoError(t, err)
	assert.Equal(t, "evt_1", ev.ID)
	assert.Equal(t, ports.CardEventIntentSucceeded, ev.Type)
	assert.Equal(t, "pi_1", ev.Object.IntentID)
	assert.Equal(t, "ch_1", ev.Object.ChargeID)
	assert.Equal(t, int64(1000), ev.Object.Amount)
	assert.Equal(t, "USD", ev.Object.Currency)
	assert.Equal(t, "ord-1", ev.Object.Metadata["order_id"])
	assert.True(t, ev.Object.Captured)
}

func TestParseEvent_Charge(t *testing.T) {
	c := signedClient(time.Now())
	payload := `{"id":"evt_2","type":"charge.succeeded","data":{"object":{
		"id":"ch_2","object":"charge","amount":600,"amount_captured":600,"currency":"usd",
		"payment_intent":"pi_2","metadata":{"order_id":"ord-2","payment_type":"balance"}}}}`

	ev, err := c.ParseEvent([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, "ch_2", ev.Object.ChargeID)
	assert.Equal(t, "pi_2", ev.Object.IntentID)
	assert.Equal(t, "balance", ev.Object.Metadata["payment_type"])
	assert.True(t, ev.Object.Captured, "a charge without the flag counts as captured")
}

func TestParseEvent_UncapturedCharge(t *testing.T) {
	c := signedClient(time.Now())
	payload := `{"id":"evt_4","type":"charge.succeeded","data":{"object":{
		"id":"ch_4","object":"charge","amount":1000,"amount_captured":0,"captured":false,
		"currency":"usd","payment_intent":"pi_4","metadata":{"order_id":"ord-4"}}}}`

	ev, err := c.ParseEvent([]byte(payload))
	require.NoError(t, err)
	assert.False(t, ev.Object.Captured)
	assert.Equal(t, "ch_4", ev.Object.ChargeID)
}

func TestParseEvent_PaymentFailed(t *testing.T) {
	c := signedClient(time.Now())
	payload := `{"id":"evt_3","type":"payment_intent.payment_failed","data":{"object":{
		"id":"pi_3","object":"payment_intent","amount":500,"currency":"usd",
		"last_payment_error":{"message":"Your card was declined."},"metadata":{"order_id":"ord-3"}}}}`

	ev, err := c.ParseEvent([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, "pi_3", ev.Object.IntentID)
	assert.Equal(t, "Your card was declined.", ev.Object.FailureMessage)
}

func TestParseEvent_Malformed(t *testing.T) {
	c := signedClient(time.Now())

	_, err := c.ParseEvent([]byte(`{not json`))
	assert.True(t, apperror.HasCode(err, "PAY_002"))

	_, err = c.ParseEvent([]byte(`{"data":{}}`))
	assert.True(t, apperror.HasCode(err, "PAY_002"))
}
