package fixture

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/flemzord/cronfixture/internal/cron"
)

// Metrics holds the Prometheus collectors updated by a Pipeline.
type Metrics struct {
	attempts prometheus.Counter
	accepted prometheus.Counter
	rejected *prometheus.CounterVec
	duration prometheus.Gauge
}

// NewMetrics creates the pipeline collectors and registers them with reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	m := &Metrics{
		attempts: f.NewCounter(prometheus.CounterOpts{
			Namespace: "cronfixture",
			Name:      "attempts_total",
			Help:      "Candidate expressions assembled.",
		}),
		accepted: f.NewCounter(prometheus.CounterOpts{
			Namespace: "cronfixture",
			Name:      "fixtures_accepted_total",
			Help:      "Candidate expressions accepted as fixtures.",
		}),
		rejected: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cronfixture",
			Name:      "fixtures_rejected_total",
			Help:      "Candidate expressions rejected, by reason.",
		}, []string{"reason"}),
		duration: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "cronfixture",
			Name:      "build_duration_seconds",
			Help:      "Wall time of the last corpus build.",
		}),
	}
	for _, r := range cron.Reasons {
		m.rejected.WithLabelValues(string(r))
	}
	return m
}

func (m *Metrics) recordAttempt() {
	if m != nil {
		m.attempts.Inc()
	}
}

func (m *Metrics) recordAccepted() {
	if m != nil {
		m.accepted.Inc()
	}
}

func (m *Metrics) recordRejected(r cron.RejectReason) {
	if m != nil {
		m.rejected.WithLabelValues(string(r)).Inc()
	}
}

func (m *Metrics) recordDuration(seconds float64) {
	if m != nil {
		m.duration.Set(seconds)
	}
}
