// Package metrics implements collector metrics with Prometheus.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/rolegraph/internal/core/domain"
	"go.trai.ch/rolegraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// Collector implements ports.Metrics over a private Prometheus registry.
type Collector struct {
	registry *prometheus.Registry

	// PagesFetched counts fetched pages per endpoint.
	PagesFetched *prometheus.CounterVec
	// RuleAttemptFailures counts failed attempts at fetching a role's rules.
	RuleAttemptFailures prometheus.Counter
	// RolesExhausted counts roles that ran out of retries.
	RolesExhausted prometheus.Counter
	// CacheLookups counts cache reads per kind and outcome.
	CacheLookups *prometheus.CounterVec
	// AdjacencyRoles is the number of roles in the merged relation.
	AdjacencyRoles prometheus.Gauge
	// AdjacencyEdges is the number of edges in the merged relation.
	AdjacencyEdges prometheus.Gauge
}

var _ ports.Metrics = (*Collector)(nil)

// New creates a Collector with all metrics registered.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		PagesFetched: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rolegraph_pages_fetched_total",
				Help: "Total number of inventory API pages fetched",
			},
			[]string{"endpoint"},
		),
		RuleAttemptFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rolegraph_rule_attempt_failures_total",
			Help: "Total number of failed attempts at fetching a role's rules",
		}),
		RolesExhausted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rolegraph_roles_exhausted_total",
			Help: "Total number of roles whose rules could not be fetched within the retry budget",
		}),
		CacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rolegraph_cache_lookups_total",
				Help: "Total number of result cache reads",
			},
			[]string{"kind", "hit"},
		),
		AdjacencyRoles: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rolegraph_adjacency_roles",
			Help: "Number of roles in the merged dependency relation",
		}),
		AdjacencyEdges: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rolegraph_adjacency_edges",
			Help: "Number of edges in the merged dependency relation",
		}),
	}

	c.registry.MustRegister(
		c.PagesFetched,
		c.RuleAttemptFailures,
		c.RolesExhausted,
		c.CacheLookups,
		c.AdjacencyRoles,
		c.AdjacencyEdges,
	)
	return c
}

// Registry returns the registry holding the metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// PageFetched counts a fetched page of endpoint.
func (c *Collector) PageFetched(endpoint string) {
	c.PagesFetched.WithLabelValues(endpoint).Inc()
}

// RuleAttemptFailed counts a failed rules attempt.
func (c *Collector) RuleAttemptFailed() {
	c.RuleAttemptFailures.Inc()
}

// RoleExhausted counts a role that ran out of retries.
func (c *Collector) RoleExhausted() {
	c.RolesExhausted.Inc()
}

// CacheLookup counts a cache read.
func (c *Collector) CacheLookup(kind domain.CacheKind, hit bool) {
	c.CacheLookups.WithLabelValues(kind.String(), strconv.FormatBool(hit)).Inc()
}

// AdjacencySize records the size of the merged relation.
func (c *Collector) AdjacencySize(roles, edges int) {
	c.AdjacencyRoles.Set(float64(roles))
	c.AdjacencyEdges.Set(float64(edges))
}

// WriteTextfile writes the metrics to path in the text exposition format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write metrics file"), "path", path)
	}
	return nil
}
