package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	claimsGranted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "almaaz",
			Name:      "booking_claims_granted_total",
			Help:      "Booking claims granted, by ledger scope.",
		},
		[]string{"scope"},
	)

	claimConflicts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "almaaz",
			Name:      "booking_claim_conflicts_total",
			Help:      "Booking claims rejected as conflicts, by ledger scope.",
		},
		[]string{"scope"},
	)

	availabilityCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "almaaz",
			Name:      "availability_cache_total",
			Help:      "Availability snapshot cache lookups, by outcome (hit/miss).",
		},
		[]string{"outcome"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(claimsGranted, claimConflicts, availabilityCache)
	})
}

func IncClaimGranted(scope string) {
	claimsGranted.WithLabelValues(scope).Inc()
}

func IncClaimConflict(scope string) {
	claimConflicts.WithLabelValues(scope).Inc()
}

func IncAvailabilityCache(outcome string) {
	availabilityCache.WithLabelValues(outcome).Inc()
}
