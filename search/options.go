package search

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Option configures a search call via functional arguments.
type Option func(*Options)

// Options holds the ambient collaborators of a search call. None of them
// influence which path is returned; a canceled Ctx aborts the call.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per expansion.
	Ctx context.Context

	// Logger receives Debug-level progress records. Defaults to a discarding logger.
	Logger *slog.Logger

	// Collector is notified once per call. Defaults to NoopCollector.
	Collector Collector

	// OnExpand is called each time a node is expanded with its accumulated
	// cost (edge depth for breadth-first search).
	OnExpand func(id string, cost float64)
}

// DefaultOptions returns Options with a discarding logger, no-op collector and no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Collector: NoopCollector{},
		OnExpand:  func(string, float64) {},
	}
}

// Resolve applies opts over DefaultOptions.
func Resolve(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger; nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithCollector sets the metrics collector; nil keeps the default.
func WithCollector(c Collector) Option {
	return func(o *Options) {
		if c != nil {
			o.Collector = c
		}
	}
}

// WithOnExpand registers a callback run on every node expansion.
func WithOnExpand(fn func(id string, cost float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Canceled reports the context error, if any, without blocking.
func (o Options) Canceled() error {
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
		return nil
	}
}

// Finish logs the outcome of a call and reports it to the collector.
// Algorithms defer it with the start time taken on entry.
func (o Options) Finish(algorithm string, started time.Time, res Result, err error) {
	elapsed := time.Since(started)
	o.Collector.RecordSearch(algorithm, res, elapsed, err)

	ctx := o.Ctx
	switch {
	case err != nil:
		o.Logger.DebugContext(ctx, "search failed",
			"algorithm", algorithm,
			"expanded", res.Expanded,
			"error", err,
		)
	case res.Found:
		o.Logger.DebugContext(ctx, "search completed",
			"algorithm", algorithm,
			"hops", max(len(res.Path)-1, 0),
			"cost", res.Cost,
			"expanded", res.Expanded,
			"elapsed", elapsed,
		)
	default:
		o.Logger.DebugContext(ctx, "goal unreachable",
			"algorithm", algorithm,
			"expanded", res.Expanded,
			"elapsed", elapsed,
		)
	}
}
