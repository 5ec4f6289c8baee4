package registry

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultValue    = "value"
	resultSentinel = "sentinel"
)

type Metrics struct {
	queries    *prometheus.CounterVec
	loaded     prometheus.Gauge
	loadErrors prometheus.Counter
	collectors []prometheus.Collector
}

func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "timetable_queries_total",
			Help: "Total number of maximum value queries by result",
		}, []string{"result"}),
		loaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "timetable_loaded_tables",
			Help: "Number of tables held by the registry",
		}),
		loadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "timetable_load_errors_total",
			Help: "Total number of failed table loads",
		}),
	}

	m.collectors = []prometheus.Collector{m.queries, m.loaded, m.loadErrors}

	if reg != nil {
		for _, c := range m.collectors {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

func (m *Metrics) observeQuery(sentinel bool) {
	if m == nil {
		return
	}

	if sentinel {
		m.queries.WithLabelValues(resultSentinel).Inc()
	} else {
		m.queries.WithLabelValues(resultValue).Inc()
	}
}

func (m *Metrics) setLoaded(n int) {
	if m == nil {
		return
	}

	m.loaded.Set(float64(n))
}

func (m *Metrics) loadFailed() {
	if m == nil {
		return
	}

	m.loadErrors.Inc()
}
