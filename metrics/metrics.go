package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	SearchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shopsight_searches_total",
		Help: "Count of search requests processed.",
	})

	SearchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "shopsight_search_duration_seconds",
		Help:    "End-to-end search request latency.",
		Buckets: prometheus.DefBuckets,
	})

	SearchErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shopsight_search_errors_total",
			Help: "Count of failed search requests by error kind.",
		},
		[]string{"kind"},
	)

	IntentFallbacksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shopsight_intent_fallbacks_total",
		Help: "Count of queries parsed with the keyword fallback instead of the model.",
	})
)

func init() {
	prometheus.MustRegister(SearchesTotal, SearchDuration, SearchErrorsTotal, IntentFallbacksTotal)
}
