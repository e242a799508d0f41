// Package metrics exposes daemon-level Prometheus counters and an
// optional /metrics listener.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Ticks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notifyme_ticks_total",
		Help: "Total number of scheduler ticks executed.",
	})

	NotificationsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notifyme_notifications_sent_total",
		Help: "Total number of desktop notifications delivered.",
	})

	NotificationsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notifyme_notifications_failed_total",
		Help: "Total number of desktop notifications that failed to deliver.",
	})

	OccurrencesAdvanced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notifyme_occurrences_advanced_total",
		Help: "Total number of recurring events whose occurrence date was advanced.",
	})

	StoreErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notifyme_store_errors_total",
		Help: "Total number of event store failures observed by the scheduler.",
	})
)

// Handler returns the /metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Serve blocks serving /metrics on addr. Intended to run in its own
// goroutine; it returns the http.ListenAndServe error.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	return http.ListenAndServe(addr, mux)
}
