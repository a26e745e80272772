package collision

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "seedsweep"

type Metrics struct {
	seedsGenerated *prometheus.CounterVec
	distinctSeeds  *prometheus.GaugeVec
	collidingSeeds *prometheus.GaugeVec
	expectedSeeds  *prometheus.GaugeVec
	sweepDuration  *prometheus.GaugeVec
}

// NewMetrics registers the sweep metrics with reg. A nil reg leaves them
// unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		seedsGenerated: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seeds_generated_total",
			Help:      "Total number of seeds generated.",
		}, []string{"algorithm"}),
		distinctSeeds: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "distinct_seeds",
			Help:      "Number of distinct seed values in the last sweep.",
		}, []string{"algorithm"}),
		collidingSeeds: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "colliding_seeds",
			Help:      "Number of seed values seen more than once in the last sweep.",
		}, []string{"algorithm"}),
		expectedSeeds: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "expected_colliding_seeds",
			Help:      "Expected number of colliding seed values for a uniform hash.",
		}, []string{"algorithm"}),
		sweepDuration: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sweep_duration_seconds",
			Help:      "Wall time of the last sweep.",
		}, []string{"algorithm"}),
	}
}

func (m *Metrics) observe(r *Report) {
	if m == nil {
		return
	}
	m.seedsGenerated.WithLabelValues(r.Algorithm).Add(float64(r.Generated))
	m.distinctSeeds.WithLabelValues(r.Algorithm).Set(float64(r.Distinct))
	m.collidingSeeds.WithLabelValues(r.Algorithm).Set(float64(len(r.Collisions)))
	m.expectedSeeds.WithLabelValues(r.Algorithm).Set(r.Expected)
	m.sweepDuration.WithLabelValues(r.Algorithm).Set(r.Duration.Seconds())
}
