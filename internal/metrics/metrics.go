package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	// ResolverLatency records resolver latency by resolver name and outcome.
	ResolverLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "socialstack_graphql_resolver_latency_seconds",
		Help:    "GraphQL root resolver latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"resolver", "outcome"})

	// StoreEntities is the number of records held per collection.
	StoreEntities = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "socialstack_store_entities",
		Help: "Number of records in each in-memory collection",
	}, []string{"collection"})
)

// ObserveResolver records the latency of a resolver call that started at start.
func ObserveResolver(resolver string, start time.Time, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	ResolverLatency.WithLabelValues(resolver, outcome).Observe(time.Since(start).Seconds())
}

func SetStoreEntities(users, profiles, posts int) {
	StoreEntities.WithLabelValues("users").Set(float64(users))
	StoreEntities.WithLabelValues("profiles").Set(float64(profiles))
	StoreEntities.WithLabelValues("posts").Set(float64(posts))
}
