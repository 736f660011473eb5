package unitable

import "sync/atomic"

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
//
// The table mutates single-threaded, but collectors may be read from a
// monitoring goroutine, so implementations should be safe for concurrent
// reads.
type MetricsCollector interface {
	// RecordPush is called after each append.
	RecordPush()

	// RecordUpdate is called after each in-place mutation.
	RecordUpdate()

	// RecordSnapshot is called after each checkpoint is opened.
	RecordSnapshot()

	// RecordRollback is called after each rollback.
	// discarded is the number of slots the rollback removed.
	RecordRollback(discarded int)

	// RecordCommit is called after each commit.
	RecordCommit()

	// RecordReset is called after each bulk reinitialization.
	// n is the number of slots rewritten.
	RecordReset(n int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPush()        {}
func (NoopMetricsCollector) RecordUpdate()      {}
func (NoopMetricsCollector) RecordSnapshot()    {}
func (NoopMetricsCollector) RecordRollback(int) {}
func (NoopMetricsCollector) RecordCommit()      {}
func (NoopMetricsCollector) RecordReset(int)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PushCount      atomic.Int64
	UpdateCount    atomic.Int64
	SnapshotCount  atomic.Int64
	RollbackCount  atomic.Int64
	DiscardedSlots atomic.Int64
	CommitCount    atomic.Int64
	ResetCount     atomic.Int64
	ResetSlots     atomic.Int64
}

// RecordPush implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPush() {
	b.PushCount.Add(1)
}

// RecordUpdate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordUpdate() {
	b.UpdateCount.Add(1)
}

// RecordSnapshot implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshot() {
	b.SnapshotCount.Add(1)
}

// RecordRollback implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRollback(discarded int) {
	b.RollbackCount.Add(1)
	b.DiscardedSlots.Add(int64(discarded))
}

// RecordCommit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCommit() {
	b.CommitCount.Add(1)
}

// RecordReset implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReset(n int) {
	b.ResetCount.Add(1)
	b.ResetSlots.Add(int64(n))
}

// BasicMetricsStats is a point-in-time snapshot of collected metrics.
type BasicMetricsStats struct {
	PushCount      int64
	UpdateCount    int64
	SnapshotCount  int64
	RollbackCount  int64
	DiscardedSlots int64
	CommitCount    int64
	ResetCount     int64
	ResetSlots     int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		PushCount:      b.PushCount.Load(),
		UpdateCount:    b.UpdateCount.Load(),
		SnapshotCount:  b.SnapshotCount.Load(),
		RollbackCount:  b.RollbackCount.Load(),
		DiscardedSlots: b.DiscardedSlots.Load(),
		CommitCount:    b.CommitCount.Load(),
		ResetCount:     b.ResetCount.Load(),
		ResetSlots:     b.ResetSlots.Load(),
	}
}
