// Package metrics exports search outcomes to Prometheus by implementing
// search.Collector.
//
//	reg := prometheus.NewRegistry()
//	col, err := metrics.New(reg)
//	...
//	res, err := pathsearch.AStar(g, "A", "B", nil, search.WithCollector(col))
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/pathsearch/search"
)

// Namespace prefixes every metric name.
const Namespace = "pathsearch"

// Outcome label values.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeError       = "error"
)

// Collector implements search.Collector on top of Prometheus vectors.
// It is safe for concurrent use.
type Collector struct {
	searches *prometheus.CounterVec
	expanded *prometheus.HistogramVec
	duration *prometheus.HistogramVec
}

var _ search.Collector = (*Collector)(nil)

// New creates the metric vectors and registers them with reg.
// A nil reg selects prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "searches_total",
			Help:      "Total shortest-path searches by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),
		expanded: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "expanded_nodes",
			Help:      "Vertices expanded per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"algorithm"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall-clock duration of searches",
			Buckets:   prometheus.DefBuckets,
		}, []string{"algorithm"}),
	}

	for _, col := range []prometheus.Collector{c.searches, c.expanded, c.duration} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// RecordSearch implements search.Collector.
func (c *Collector) RecordSearch(algorithm string, res search.Result, duration time.Duration, err error) {
	outcome := OutcomeUnreachable
	switch {
	case err != nil:
		outcome = OutcomeError
	case res.Found:
		outcome = OutcomeFound
	}
	c.searches.WithLabelValues(algorithm, outcome).Inc()
	c.expanded.WithLabelValues(algorithm).Observe(float64(res.Expanded))
	c.duration.WithLabelValues(algorithm).Observe(duration.Seconds())
}

// WriteText gathers g and writes every metric family to w in the
// Prometheus text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
