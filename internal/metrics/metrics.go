// SPDX-License-Identifier: MIT
// Package metrics exposes load-cache and operation counters in the
// Prometheus text format. The CLI writes them to a file after each run, in
// the layout a node_exporter textfile collector expects.
package metrics

import (
	"github.com/katalvlaran/spmat/loader"
	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/zerr"
)

const namespace = "spmat"

// Operation results.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Registry holds the metrics of one process run.
type Registry struct {
	reg *prometheus.Registry
	ops *prometheus.CounterVec
}

// New creates a Registry. When cache is non-nil its counters are reported on
// every gather.
func New(cache *loader.Cache) *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Matrix operations performed, by operation and result.",
		}, []string{"operation", "result"}),
	}
	r.reg.MustRegister(r.ops)
	if cache != nil {
		r.reg.MustRegister(newCacheCollector(cache))
	}

	return r
}

// ObserveOperation counts one run of op; a non-nil err counts as a failure.
func (r *Registry) ObserveOperation(op string, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	r.ops.WithLabelValues(op, result).Inc()
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// WriteFile atomically replaces path with the current metrics.
func (r *Registry) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write metrics"), "path", path)
	}
	return nil
}

// cacheCollector reports loader.Cache statistics as constant metrics.
type cacheCollector struct {
	cache    *loader.Cache
	hits     *prometheus.Desc
	misses   *prometheus.Desc
	loads    *prometheus.Desc
	stale    *prometheus.Desc
	resident *prometheus.Desc
}

func newCacheCollector(c *loader.Cache) *cacheCollector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "cache", name), help, nil, nil)
	}

	return &cacheCollector{
		cache:    c,
		hits:     desc("hits_total", "Loads served from the matrix cache."),
		misses:   desc("misses_total", "Loads that found no cached matrix."),
		loads:    desc("loads_total", "Matrices parsed and stored in the cache."),
		stale:    desc("stale_total", "Stores that replaced a matrix whose source changed."),
		resident: desc("resident", "Matrices currently cached."),
	}
}

func (c *cacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.loads
	ch <- c.stale
	ch <- c.resident
}

func (c *cacheCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.cache.Stats()
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(c.loads, prometheus.CounterValue, float64(s.Loads))
	ch <- prometheus.MustNewConstMetric(c.stale, prometheus.CounterValue, float64(s.Stale))
	ch <- prometheus.MustNewConstMetric(c.resident, prometheus.GaugeValue, float64(s.Resident))
}
