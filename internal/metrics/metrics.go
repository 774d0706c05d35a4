package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Core request/hit/miss counters per cached region
	FragmentRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fragment_cache_requests_total",
			Help: "Total number of fragment render requests",
		},
		[]string{"region"},
	)

	FragmentHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fragment_cache_hits_total",
			Help: "Total number of fragment cache hits",
		},
		[]string{"region"},
	)

	FragmentMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fragment_cache_misses_total",
			Help: "Total number of fragment cache misses",
		},
		[]string{"region"},
	)

	// Population outcomes: success, failure or timeout
	Populations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fragment_cache_populations_total",
			Help: "Total number of fragment population episodes by outcome",
		},
		[]string{"region", "outcome"},
	)

	PopulationsShared = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fragment_cache_populations_shared_total",
			Help: "Total number of render calls that joined another caller's in-flight population",
		},
		[]string{"region"},
	)

	PopulationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fragment_cache_population_duration_seconds",
			Help:    "Duration of fragment population episodes",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"region"},
	)

	// Store accounting
	Evictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fragment_cache_evictions_total",
			Help: "Total number of entries evicted to satisfy the byte budget",
		},
	)

	SweepRemovals = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fragment_cache_sweep_removals_total",
			Help: "Total number of expired entries removed by sweeps",
		},
	)

	OversizeFragments = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fragment_cache_oversize_fragments_total",
			Help: "Total number of fragments served but not retained because they exceed the store budget",
		},
	)

	StoreUsedBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fragment_cache_store_used_bytes",
			Help: "Approximate retained fragment bytes",
		},
	)

	StoreEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fragment_cache_store_entries",
			Help: "Number of retained fragments",
		},
	)
)

// RecordFragmentRequest records one render request for a region
func RecordFragmentRequest(region string) {
	FragmentRequests.WithLabelValues(region).Inc()
}

// RecordFragmentHit records a fresh cache hit
func RecordFragmentHit(region string) {
	FragmentHits.WithLabelValues(region).Inc()
}

// RecordFragmentMiss records a miss or stale entry
func RecordFragmentMiss(region string) {
	FragmentMisses.WithLabelValues(region).Inc()
}

// RecordPopulation records the outcome of one population episode
func RecordPopulation(region, outcome string) {
	Populations.WithLabelValues(region, outcome).Inc()
}

// RecordPopulationShared records a caller that shared an in-flight result
func RecordPopulationShared(region string) {
	PopulationsShared.WithLabelValues(region).Inc()
}

// TimePopulation returns a timer function for one population episode
func TimePopulation(region string) func() {
	timer := prometheus.NewTimer(PopulationDuration.WithLabelValues(region))
	return func() {
		timer.ObserveDuration()
	}
}

// RecordEviction records one budget eviction
func RecordEviction() {
	Evictions.Inc()
}

// RecordSweep records the result of an expired-entry sweep
func RecordSweep(removed int) {
	SweepRemovals.Add(float64(removed))
}

// RecordOversizeFragment records a fragment too large to retain
func RecordOversizeFragment() {
	OversizeFragments.Inc()
}

// UpdateStoreUsage updates the store accounting gauges
func UpdateStoreUsage(usedBytes int64, entries int) {
	StoreUsedBytes.Set(float64(usedBytes))
	StoreEntries.Set(float64(entries))
}
