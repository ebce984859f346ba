package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the landing evaluate HTTP handler
	EvaluateLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "landing_evaluate_latency_seconds",
		Help:    "Latency of the landing card evaluate handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of evaluate requests served
	EvaluateRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "landing_evaluate_requests_total",
		Help: "Total number of landing card evaluate requests",
	})
)

func Init() {
	prometheus.MustRegister(
		EvaluateLatency,
		EvaluateRequests,
	)
}
