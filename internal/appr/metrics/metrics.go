package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the APPR validation module.
type Metrics struct {
	// Validation outcomes by applicability and eligibility
	ValidationsTotal *prometheus.CounterVec

	// Compensation amounts awarded on eligible decisions
	CompensationAmount prometheus.Histogram

	// Full validation latency including audit append
	ValidateLatency prometheus.Histogram
}

// New creates a Metrics instance with all APPR module metrics registered.
func New() *Metrics {
	return &Metrics{
		ValidationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "skyclaim_appr_validations_total",
			Help: "Total APPR validations by applicability and eligibility",
		}, []string{"applicable", "eligible"}),

		CompensationAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "skyclaim_appr_compensation_cad",
			Help:    "Compensation amounts awarded on eligible decisions, in CAD",
			Buckets: []float64{100, 400, 700, 900, 1000, 1800, 2400, 5000},
		}),

		ValidateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "skyclaim_appr_validate_duration_seconds",
			Help:    "Duration of full APPR validation including the audit append",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
	}
}

// ObserveValidation records one validation outcome.
func (m *Metrics) ObserveValidation(applicable, eligible bool, amount float64) {
	if m == nil {
		return
	}
	m.ValidationsTotal.WithLabelValues(label(applicable), label(eligible)).Inc()
	if eligible && amount > 0 {
		m.CompensationAmount.Observe(amount)
	}
}

// ObserveValidateLatency records the total validation duration.
func (m *Metrics) ObserveValidateLatency(d time.Duration) {
	if m != nil {
		m.ValidateLatency.Observe(d.Seconds())
	}
}

func label(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
