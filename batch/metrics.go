package batch

import "github.com/prometheus/client_golang/prometheus"

// Metrics records batch validation outcomes.
type Metrics struct {
	documents *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	inFlight  prometheus.Gauge
}

// NewMetrics creates the batch collectors under namespace and registers them
// with reg.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	m := &Metrics{
		documents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "batch",
				Name:      "documents_total",
				Help:      "Documents processed by message kind and outcome.",
			},
			[]string{"kind", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "batch",
				Name:      "document_duration_seconds",
				Help:      "Time spent decoding and validating one document.",
				Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
			[]string{"kind"},
		),
		inFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "batch",
				Name:      "documents_in_flight",
				Help:      "Documents currently being processed.",
			},
		),
	}
	for _, c := range []prometheus.Collector{m.documents, m.duration, m.inFlight} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) start() {
	if m == nil {
		return
	}
	m.inFlight.Inc()
}

func (m *Metrics) record(r Result) {
	if m == nil {
		return
	}
	kind := r.Kind
	if kind == "" {
		kind = "unknown"
	}
	m.inFlight.Dec()
	m.documents.WithLabelValues(kind, string(r.Outcome())).Inc()
	m.duration.WithLabelValues(kind).Observe(r.Duration.Seconds())
}
