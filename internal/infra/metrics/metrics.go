// Package metrics exposes service counters to Prometheus.
package metrics

import (
	"net/http"

	"aiclub/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector implements service.Metrics on a Prometheus registry.
type Collector struct {
	logins        *prometheus.CounterVec
	mutations     *prometheus.CounterVec
	subscriptions *prometheus.GaugeVec
	snapshots     *prometheus.CounterVec
}

var _ service.Metrics = (*Collector)(nil)

// NewRegistry returns a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// NewCollector creates the service metrics and registers them on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aiclub_login_attempts_total",
			Help: "Admin login attempts by outcome",
		}, []string{"outcome"}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aiclub_content_mutations_total",
			Help: "Committed content mutations by kind and operation",
		}, []string{"kind", "operation"}),
		subscriptions: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "aiclub_live_subscriptions",
			Help: "Open live collection subscriptions",
		}, []string{"collection"}),
		snapshots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aiclub_snapshots_delivered_total",
			Help: "Collection snapshots handed to subscribers",
		}, []string{"collection"}),
	}

	reg.MustRegister(c.logins, c.mutations, c.subscriptions, c.snapshots)

	return c
}

func (c *Collector) LoginAttempt(outcome string) {
	c.logins.WithLabelValues(outcome).Inc()
}

func (c *Collector) ContentMutation(kind, operation string) {
	c.mutations.WithLabelValues(kind, operation).Inc()
}

func (c *Collector) SubscriptionOpened(collection string) {
	c.subscriptions.WithLabelValues(collection).Inc()
}

func (c *Collector) SubscriptionClosed(collection string) {
	c.subscriptions.WithLabelValues(collection).Dec()
}

func (c *Collector) SnapshotDelivered(collection string) {
	c.snapshots.WithLabelValues(collection).Inc()
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
