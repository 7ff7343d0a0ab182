package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func init() { register(gatewayCallLatencyMs) }

var gatewayCallLatencyMs = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "gateway_call_latency_ms",
		Help:    "Outbound gateway API latency in milliseconds.",
		Buckets: []float64{25, 50, 100, 200, 400, 800, 1600, 3000, 6000, 15000},
	},
	[]string{"gateway", "operation", "success"},
)

// ObserveGatewayCall records one outbound provider call.
func ObserveGatewayCall(gateway, operation string, success bool, elapsed time.Duration) {
	gatewayCallLatencyMs.
		WithLabelValues(norm(gateway), norm(operation), strconv.FormatBool(success)).
		Observe(float64(elapsed.Milliseconds()))
}
