package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	hrWorkflow = "hr_workflow"

	// Dispatch metrics
	dispatchTotal = "action_dispatch_total"

	// Labels
	dispatchKindLabel   = "kind"
	dispatchResultLabel = "result"
)

var dispatchTotalLabels = []string{
	dispatchKindLabel,
	dispatchResultLabel,
}

/**
* Metrics definition
**/
var dispatchTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: hrWorkflow,
		Name:      dispatchTotal,
		Help:      "number of dispatched workflow actions by kind and result",
	},
	dispatchTotalLabels,
)

var inFlightOperationsMetric = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Subsystem: hrWorkflow,
		Name:      "in_flight_operations",
		Help:      "number of workflow operations currently awaiting a remote call",
	},
)

func IncreaseDispatchTotalMetric(kind, result string) {
	labels := prometheus.Labels{
		dispatchKindLabel:   kind,
		dispatchResultLabel: result,
	}
	dispatchTotalMetric.With(labels).Inc()
}

func SetInFlightOperations(count int) {
	inFlightOperationsMetric.Set(float64(count))
}

// NewPrometheusMetricsHandler exposes the default registry over HTTP.
func NewPrometheusMetricsHandler() http.Handler {
	return promhttp.Handler()
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(dispatchTotalMetric)
	prometheus.MustRegister(inFlightOperationsMetric)
}
