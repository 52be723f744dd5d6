package harness

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics mirrors the harness statistics as Prometheus collectors.
type Metrics struct {
	Outcomes       *prometheus.CounterVec
	DistanceChecks *prometheus.CounterVec
	CaseDuration   *prometheus.HistogramVec
}

// NewMetrics registers the harness collectors on reg under namespace.
// It panics if they are already registered there.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Outcomes: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "harness",
				Name:      "outcomes_total",
				Help:      "Search results classified against ground truth",
			},
			[]string{"suite", "class"},
		),
		DistanceChecks: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "harness",
				Name:      "distance_checks_total",
				Help:      "Reported distances compared with ground truth",
			},
			[]string{"suite", "result"},
		),
		CaseDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "harness",
				Name:      "case_duration_seconds",
				Help:      "Duration of one search call",
				Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5, 30},
			},
			[]string{"suite"},
		),
	}
}

// WriteTextfile writes everything gathered by g to path in the text
// exposition format, for node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return errors.Wrapf(err, "harness: write metrics to %s", path)
	}
	return nil
}
