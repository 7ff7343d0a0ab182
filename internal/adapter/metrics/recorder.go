package metrics

import "payment-settlement/internal/core/domain"

// Recorder implements ports.Metrics on top of the package collectors.
type Recorder struct{}

// NewRecorder returns a ports.Metrics backed by the registered collectors.
func NewRecorder() *Recorder { return &Recorder{} }

func (Recorder) Settlement(gateway domain.GatewayTag, outcome string) {
	IncSettlement(string(gateway), outcome)
}

func (Recorder) Refund(gateway domain.GatewayTag, outcome string) {
	IncRefund(string(gateway), outcome)
}

func (Recorder) Webhook(provider domain.WebhookProvider, outcome string) {
	IncWebhookEvent(string(provider), outcome)
}

func (Recorder) InventoryFailure(operation string) {
	IncInventoryFailure(operation)
}

func (Recorder) SettingsCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	IncCacheRequest("gateway_settings", result)
}
