package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	votesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "votetally",
		Name:      "votes_total",
		Help:      "Vote requests by action and outcome.",
	}, []string{"action", "outcome"})

	voteDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "votetally",
		Name:      "vote_duration_seconds",
		Help:      "Time spent handling a vote, storage round trips included.",
		Buckets:   prometheus.DefBuckets,
	})

	tallyCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "votetally",
		Name:      "tally_cache_hits_total",
		Help:      "Tally reads served from the cache.",
	})

	tallyCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "votetally",
		Name:      "tally_cache_misses_total",
		Help:      "Tally reads that fell through to the repository.",
	})
)

// ObserveVote records one vote attempt.
func ObserveVote(action, outcome string, seconds float64) {
	votesTotal.WithLabelValues(action, outcome).Inc()
	voteDuration.Observe(seconds)
}

func IncTallyCacheHit() { tallyCacheHits.Inc() }

func IncTallyCacheMiss() { tallyCacheMisses.Inc() }
