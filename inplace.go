package unitable

import "slices"

// InPlace is the standard, mutable backing store: one contiguous growable
// array plus checkpoint markers. Appends are amortized O(1), rollback is
// O(slots appended since the snapshot), commit is O(1).
//
// Rollback only truncates. A slot that existed before the snapshot keeps
// whatever Update wrote to it during the snapshot's lifetime; callers that
// need those mutations undone must use Persistent instead.
type InPlace[V any] struct {
	tracker snapshotTracker
	values  []V
	logger  *Logger
	metrics MetricsCollector
}

var _ Store[int] = (*InPlace[int])(nil)

// inPlaceSnapshot is a length marker; nothing else needs capturing because
// rollback is a truncation.
type inPlaceSnapshot struct {
	snapshotMark
}

// NewInPlace creates an empty in-place backed table.
func NewInPlace[V any](opts ...Option) *InPlace[V] {
	o := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}
	return &InPlace[V]{
		tracker: newSnapshotTracker(o.tag),
		values:  make([]V, 0, o.capacity),
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// Get implements Store.
func (s *InPlace[V]) Get(i int) V {
	checkBounds(s.tracker.tag, i, len(s.values))
	return s.values[i]
}

// Len implements Store.
func (s *InPlace[V]) Len() int {
	return len(s.values)
}

// StartSnapshot implements Store.
func (s *InPlace[V]) StartSnapshot() Snapshot {
	m := s.tracker.begin(len(s.values))
	s.metrics.RecordSnapshot()
	s.logger.LogSnapshot(s.tracker.tag, m.seq, m.length)
	return &inPlaceSnapshot{m}
}

// Rollback implements Store. Slots appended since the snapshot are zeroed
// before truncation so the backing array does not pin their references.
func (s *InPlace[V]) Rollback(snap Snapshot) {
	m, ok := snap.(*inPlaceSnapshot)
	if !ok {
		contractViolation("%s: rollback with a snapshot from a different backing store", s.tracker.tag)
	}
	s.tracker.resolve("rollback", &m.snapshotMark)
	discarded := len(s.values) - m.length
	clear(s.values[m.length:])
	s.values = s.values[:m.length]
	s.metrics.RecordRollback(discarded)
	s.logger.LogRollback(s.tracker.tag, m.seq, discarded, m.length)
}

// Commit implements Store.
func (s *InPlace[V]) Commit(snap Snapshot) {
	m, ok := snap.(*inPlaceSnapshot)
	if !ok {
		contractViolation("%s: commit with a snapshot from a different backing store", s.tracker.tag)
	}
	s.tracker.resolve("commit", &m.snapshotMark)
	s.metrics.RecordCommit()
	s.logger.LogCommit(s.tracker.tag, m.seq, len(s.values))
}

// ValuesSince implements Store.
func (s *InPlace[V]) ValuesSince(snap Snapshot) Range {
	m := snap.mark()
	s.tracker.verify("values-since", m)
	return Range{Start: m.length, End: len(s.values)}
}

// Push implements Store.
func (s *InPlace[V]) Push(v V) {
	s.values = append(s.values, v)
	s.metrics.RecordPush()
}

// Reserve implements Store.
func (s *InPlace[V]) Reserve(n int) {
	if n > 0 {
		s.values = slices.Grow(s.values, n)
	}
}

// Update implements Store.
func (s *InPlace[V]) Update(i int, fn func(*V)) {
	checkBounds(s.tracker.tag, i, len(s.values))
	fn(&s.values[i])
	s.metrics.RecordUpdate()
}

// ResetUnifications implements Store.
func (s *InPlace[V]) ResetUnifications(fn func(i int) V) {
	for i := range s.values {
		s.values[i] = fn(i)
	}
	s.metrics.RecordReset(len(s.values))
}

// Tag implements Store.
func (s *InPlace[V]) Tag() string {
	return s.tracker.tag
}
