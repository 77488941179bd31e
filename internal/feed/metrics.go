package feed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FetchesTotal tracks feed requests by category.
	FetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "polymix_feed_fetches_total",
		Help: "Total number of feed fetch attempts",
	}, []string{"category"})

	// FetchErrorsTotal tracks failed feed requests by category.
	FetchErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "polymix_feed_fetch_errors_total",
		Help: "Total number of failed feed fetches",
	}, []string{"category"})

	// RecordsFetchedTotal tracks pair records received by category.
	RecordsFetchedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "polymix_feed_records_fetched_total",
		Help: "Total number of pair records received from the feed",
	}, []string{"category"})

	// CacheServedTotal tracks fetches answered from the local cache.
	CacheServedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "polymix_feed_cache_served_total",
		Help: "Total number of feed fetches served from cache",
	}, []string{"category"})
)
