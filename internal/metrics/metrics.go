package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the PAYE API.
type Metrics struct {
	// Request latency by route pattern, method and status code
	RequestLatency *prometheus.HistogramVec

	// Completed calculations by taxpayer category
	Calculations *prometheus.CounterVec

	// Annual tax of each calculation, in naira
	AnnualTax prometheus.Histogram

	// Bisection iterations used by gross-up requests
	GrossUpIterations prometheus.Histogram

	// Rejected requests by reason
	Rejections *prometheus.CounterVec
}

// New creates a Metrics instance registered with reg. A nil reg registers
// with the default Prometheus registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		RequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "paye_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route", "method", "status"}),

		Calculations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "paye_calculations_total",
			Help: "Total tax calculations by taxpayer category",
		}, []string{"category"}),

		AnnualTax: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "paye_annual_tax_naira",
			Help:    "Distribution of computed annual tax",
			Buckets: prometheus.ExponentialBuckets(10_000, 4, 8), // 10k .. ~164m
		}),

		GrossUpIterations: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "paye_grossup_iterations",
			Help:    "Bisection iterations per gross-up solve",
			Buckets: prometheus.LinearBuckets(5, 10, 10),
		}),

		Rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "paye_rejected_requests_total",
			Help: "Requests rejected before calculation by reason",
		}, []string{"reason"}),
	}
}

// ObserveRequest records the duration of one HTTP request.
func (m *Metrics) ObserveRequest(route, method, status string, d time.Duration) {
	if m != nil {
		m.RequestLatency.WithLabelValues(route, method, status).Observe(d.Seconds())
	}
}

// ObserveCalculation records a completed calculation.
func (m *Metrics) ObserveCalculation(category string, annualTax float64) {
	if m != nil {
		m.Calculations.WithLabelValues(category).Inc()
		m.AnnualTax.Observe(annualTax)
	}
}

// ObserveGrossUp records the iterations a gross-up solve needed.
func (m *Metrics) ObserveGrossUp(iterations int) {
	if m != nil {
		m.GrossUpIterations.Observe(float64(iterations))
	}
}

// IncrementRejection records a rejected request.
func (m *Metrics) IncrementRejection(reason string) {
	if m != nil {
		m.Rejections.WithLabelValues(reason).Inc()
	}
}
