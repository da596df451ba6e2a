package bloomgo

import "log/slog"

type options struct {
	seed1   uint32
	seed2   uint64
	logger  *Logger
	metrics MetricsCollector
}

// Option configures Filter construction.
type Option func(*options)

// WithSeeds overrides the seeds of the two base hashes.
//
// The defaults are fixed package constants, which makes position derivation
// deterministic across processes — the property serialized or distributed
// consumers rely on. Override only when hash flooding by untrusted inputs
// is a concern, and keep the chosen seeds as stable as the filter contents:
// two filters only agree on an item's positions when their seeds match.
//
//	f, _ := bloomgo.New(10_000, 0.01, bloomgo.WithSeeds(1234, 5678))
func WithSeeds(seed1 uint32, seed2 uint64) Option {
	return func(o *options) {
		o.seed1 = seed1
		o.seed2 = seed2
	}
}

// WithLogger configures structured logging for filter operations.
// Pass nil to disable logging (the default).
//
//	logger := bloomgo.NewJSONLogger(slog.LevelDebug)
//	f, _ := bloomgo.New(10_000, 0.01, bloomgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for insert and query
// accounting. Pass nil to disable collection (the default).
//
//	metrics := &bloomgo.BasicMetricsCollector{}
//	f, _ := bloomgo.New(10_000, 0.01, bloomgo.WithMetricsCollector(metrics))
//	// ... use f ...
//	stats := metrics.GetStats()
//	fmt.Printf("queries: %d, positives: %d\n", stats.QueryCount, stats.PositiveCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metrics = mc
	}
}
