package search

import (
	"sync/atomic"
	"time"
)

// Collector defines an interface for collecting per-search metrics.
// Implement it to integrate with monitoring systems; the metrics package
// ships a Prometheus implementation.
type Collector interface {
	// RecordSearch is called once after each search call. err is nil for
	// both found and unreachable outcomes.
	RecordSearch(algorithm string, res Result, duration time.Duration, err error)
}

// NoopCollector discards every record.
type NoopCollector struct{}

// RecordSearch implements Collector.
func (NoopCollector) RecordSearch(string, Result, time.Duration, error) {}

// BasicCollector keeps simple in-memory counters. Useful in tests and for
// debugging without an external metrics system.
type BasicCollector struct {
	Searches      atomic.Int64
	Found         atomic.Int64
	Unreachable   atomic.Int64
	Errors        atomic.Int64
	Expanded      atomic.Int64
	TotalDuration atomic.Int64 // nanoseconds
}

// RecordSearch implements Collector.
func (b *BasicCollector) RecordSearch(_ string, res Result, duration time.Duration, err error) {
	b.Searches.Add(1)
	b.Expanded.Add(int64(res.Expanded))
	b.TotalDuration.Add(duration.Nanoseconds())
	switch {
	case err != nil:
		b.Errors.Add(1)
	case res.Found:
		b.Found.Add(1)
	default:
		b.Unreachable.Add(1)
	}
}
