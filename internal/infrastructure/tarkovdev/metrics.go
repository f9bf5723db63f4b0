package tarkovdev

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK         = "ok"
	resultNetwork    = "network"
	resultGraphQL    = "graphql"
	resultMalformed  = "malformed"
	metricsNamespace = "tarkov_market"
	metricsSubsystem = "tarkovdev"
)

//nolint:gochecknoglobals
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "requests_total",
		Help:      "GraphQL requests to tarkov.dev by operation and result.",
	}, []string{"operation", "result"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "request_duration_seconds",
		Help:      "Latency of GraphQL requests to tarkov.dev.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
)

func resultLabel(err error) string {
	switch {
	case err == nil:
		return resultOK
	case isNetwork(err):
		return resultNetwork
	case isGraphQL(err):
		return resultGraphQL
	default:
		return resultMalformed
	}
}
