package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RefreshTotal counts refresh runs by outcome
	RefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "countries_refresh_total",
			Help: "Total number of country refresh runs",
		},
		[]string{"status"},
	)

	// RefreshDuration tracks end to end refresh time
	RefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "countries_refresh_duration_seconds",
			Help:    "Refresh pipeline duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// CountriesStored is the number of rows written by the last refresh
	CountriesStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "countries_stored",
			Help: "Number of countries written by the last successful refresh",
		},
	)

	// CountriesWithoutRate is the number of rows from the last refresh without a quoted rate
	CountriesWithoutRate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "countries_without_rate",
			Help: "Number of countries without a quoted exchange rate in the last refresh",
		},
	)

	// UpstreamRequests counts outbound requests by upstream and result
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "countries_upstream_requests_total",
			Help: "Total number of requests sent to external data sources",
		},
		[]string{"upstream", "result"},
	)

	// UpstreamDuration tracks outbound request latency
	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "countries_upstream_request_duration_seconds",
			Help:    "External data source request duration in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"upstream"},
	)

	// SummaryRenders counts summary image renders by trigger and outcome
	SummaryRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "countries_summary_renders_total",
			Help: "Total number of summary image renders",
		},
		[]string{"trigger", "status"},
	)
)
