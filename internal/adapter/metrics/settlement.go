package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(settlementsTotal, refundsTotal, webhookEventsTotal, inventoryFailuresTotal)
}

var (
	settlementsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settlements_total",
			Help: "Settlement calls by gateway and outcome (settled/partial/duplicate/failed/error).",
		},
		[]string{"gateway", "outcome"},
	)

	refundsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refunds_total",
			Help: "Refund dispatches by gateway and outcome.",
		},
		[]string{"gateway", "outcome"},
	)

	webhookEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_events_total",
			Help: "Inbound provider notifications by provider and outcome.",
		},
		[]string{"provider", "outcome"},
	)

	inventoryFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_side_effect_failures_total",
			Help: "Inventory calls that failed after money was accepted or returned.",
		},
		[]string{"operation"},
	)
)

func IncSettlement(gateway, outcome string) {
	settlementsTotal.WithLabelValues(norm(gateway), norm(outcome)).Inc()
}

func IncRefund(gateway, outcome string) {
	refundsTotal.WithLabelValues(norm(gateway), norm(outcome)).Inc()
}

func IncWebhookEvent(provider, outcome string) {
	webhookEventsTotal.WithLabelValues(norm(provider), norm(outcome)).Inc()
}

func IncInventoryFailure(operation string) {
	inventoryFailuresTotal.WithLabelValues(norm(operation)).Inc()
}
