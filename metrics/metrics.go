package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	EventsSeen = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guard_events_total",
		Help: "Structural-change events received, labelled by action kind.",
	}, []string{"action"})

	ResolutionMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "guard_resolution_misses_total",
		Help: "Events for which no actor could be attributed within the audit freshness window.",
	})

	PunishmentsApplied = promauto.NewCounter(prometheus.CounterOpts{
		Name: "guard_punishments_applied_total",
		Help: "Punish-role grants that succeeded and were recorded in the ledger.",
	})

	PunishmentsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guard_punishments_skipped_total",
		Help: "Enforcements declined by a precondition, labelled by reason.",
	}, []string{"reason"})

	Releases = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guard_releases_total",
		Help: "Punish-role removals, labelled by cause (expired, manual).",
	}, []string{"cause"})

	Sweeps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "guard_sweeps_total",
		Help: "Reconciliation sweeps executed.",
	})
)

// Serve exposes /metrics on addr. Blocks; run it on its own goroutine.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
