// Package metrics содержит prometheus-метрики навыка.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
	OutcomeNoop  = "noop"
)

var (
	// DispatchTotal считает обработанные события по типу запроса, интенту и исходу.
	// Значения меток из запроса должны быть сведены к известному набору.
	DispatchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "greetings_dispatch_total",
			Help: "Dispatched skill events",
		},
		[]string{"request_type", "intent", "outcome"},
	)

	// QuoteFetchTotal считает обращения к сервису цитат по исходу.
	QuoteFetchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "greetings_quote_fetch_total",
			Help: "Quote service requests",
		},
		[]string{"outcome"},
	)

	// QuoteFetchDuration — время ответа сервиса цитат в секундах.
	QuoteFetchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "greetings_quote_fetch_duration_seconds",
			Help:    "Quote service latency",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(
		DispatchTotal,
		QuoteFetchTotal,
		QuoteFetchDuration,
	)
}
