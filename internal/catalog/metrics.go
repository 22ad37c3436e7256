package catalog

import "github.com/prometheus/client_golang/prometheus"

// LoadMetrics counts catalog loads by outcome. The original behavior hides
// the distinction between remote, cache and fallback; the counter keeps it
// observable without changing what callers receive.
type LoadMetrics struct {
	Loads *prometheus.CounterVec
}

func NewLoadMetrics(reg *prometheus.Registry) *LoadMetrics {
	m := &LoadMetrics{
		Loads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_load_total",
				Help: "Catalog loads by source and fallback reason",
			},
			[]string{"source", "reason"},
		),
	}

	reg.MustRegister(m.Loads)
	return m
}
