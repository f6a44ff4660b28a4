package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vendorflow"

var (
	// Function metrics
	FunctionRequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "function_requests_total",
			Help:      "Total number of callable function requests",
		},
		[]string{"function", "status"},
	)

	FunctionDurationHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "function_duration_seconds",
			Help:      "Duration of callable function requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"function"},
	)

	// Vendor order lifecycle
	VendorOrderTransitionCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vendor_order_transitions_total",
			Help:      "Vendor order lifecycle transitions",
		},
		[]string{"transition"},
	)

	ReceivedUnitsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "received_units_total",
			Help:      "Units received from vendors, split by reserved against demand or added to stock",
		},
		[]string{"allocation"},
	)

	EmailCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vendor_order_emails_total",
			Help:      "Vendor order emails by delivery result",
		},
		[]string{"result"},
	)

	// Jobs
	JobsInFlightGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "jobs_in_flight",
		Help:      "Number of deferred jobs currently running",
	})

	JobCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_finished_total",
			Help:      "Deferred jobs by final status",
		},
		[]string{"name", "status"},
	)

	// Catalog feed
	CatalogMessageCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_messages_total",
			Help:      "Catalog feed messages by outcome",
		},
		[]string{"outcome"},
	)
)

// TrackFunction returns a func that records the outcome and duration of one call.
func TrackFunction(function string) func(err error) {
	start := time.Now()
	return func(err error) {
		status := "ok"
		if err != nil {
			status = "error"
		}
		FunctionRequestCounter.WithLabelValues(function, status).Inc()
		FunctionDurationHistogram.WithLabelValues(function).Observe(time.Since(start).Seconds())
	}
}

func RecordTransition(transition string) {
	VendorOrderTransitionCounter.WithLabelValues(transition).Inc()
}

func RecordReceived(reserved, unreserved int) {
	if reserved > 0 {
		ReceivedUnitsCounter.WithLabelValues("reserved").Add(float64(reserved))
	}
	if unreserved > 0 {
		ReceivedUnitsCounter.WithLabelValues("stock").Add(float64(unreserved))
	}
}
