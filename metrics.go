package bloomgo

import "sync/atomic"

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
//
// Collectors must tolerate the same concurrency the caller applies to the
// Filter: Contains may run from multiple goroutines at once, so RecordQuery
// must be safe for concurrent use.
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	// wasAbsent mirrors the Insert return value.
	RecordInsert(wasAbsent bool)

	// RecordQuery is called after each membership query.
	// found mirrors the Contains return value.
	RecordQuery(found bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(bool) {}
func (NoopMetricsCollector) RecordQuery(bool)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and capacity monitoring without external
// dependencies: a positive-query rate far above the planned false-positive
// rate on a workload of known-absent items is the signal that the filter
// has outgrown its capacity.
type BasicMetricsCollector struct {
	InsertCount   atomic.Int64
	FreshInserts  atomic.Int64
	QueryCount    atomic.Int64
	PositiveCount atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(wasAbsent bool) {
	b.InsertCount.Add(1)
	if wasAbsent {
		b.FreshInserts.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(found bool) {
	b.QueryCount.Add(1)
	if found {
		b.PositiveCount.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:   b.InsertCount.Load(),
		FreshInserts:  b.FreshInserts.Load(),
		QueryCount:    b.QueryCount.Load(),
		PositiveCount: b.PositiveCount.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	// InsertCount is the number of insert operations.
	InsertCount int64
	// FreshInserts is the number of inserts that were definitely absent
	// before; InsertCount - FreshInserts counts duplicates and collisions.
	FreshInserts int64
	// QueryCount is the number of membership queries.
	QueryCount int64
	// PositiveCount is the number of queries answered "possibly present".
	PositiveCount int64
}
