package unitable

import "github.com/benbjohnson/immutable"

// Persistent is the structurally shared backing store. The live table is an
// immutable sequence handle; every Push and Update produces a new handle
// that shares unchanged substructure with its predecessor, so a snapshot is
// just a copy of the handle and rollback reinstates it wholesale.
//
// Unlike InPlace, rollback here restores every slot's exact prior value,
// including slots mutated via Update while the snapshot was open. The price
// is sharing bookkeeping on every operation.
type Persistent[V any] struct {
	tracker snapshotTracker
	values  *immutable.List[V]
	logger  *Logger
	metrics MetricsCollector
}

var _ Store[int] = (*Persistent[int])(nil)

// persistentSnapshot captures the whole handle; restoring it is assignment.
type persistentSnapshot[V any] struct {
	snapshotMark
	values *immutable.List[V]
}

// NewPersistent creates an empty persistent backed table. WithCapacity is
// accepted but ignored: a structurally shared trie has no notion of
// pre-allocation.
func NewPersistent[V any](opts ...Option) *Persistent[V] {
	o := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}
	return &Persistent[V]{
		tracker: newSnapshotTracker(o.tag),
		values:  immutable.NewList[V](),
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// Get implements Store.
func (s *Persistent[V]) Get(i int) V {
	checkBounds(s.tracker.tag, i, s.values.Len())
	return s.values.Get(i)
}

// Len implements Store.
func (s *Persistent[V]) Len() int {
	return s.values.Len()
}

// StartSnapshot implements Store.
func (s *Persistent[V]) StartSnapshot() Snapshot {
	m := s.tracker.begin(s.values.Len())
	s.metrics.RecordSnapshot()
	s.logger.LogSnapshot(s.tracker.tag, m.seq, m.length)
	return &persistentSnapshot[V]{snapshotMark: m, values: s.values}
}

// Rollback implements Store.
func (s *Persistent[V]) Rollback(snap Snapshot) {
	m, ok := snap.(*persistentSnapshot[V])
	if !ok {
		contractViolation("%s: rollback with a snapshot from a different backing store", s.tracker.tag)
	}
	s.tracker.resolve("rollback", &m.snapshotMark)
	discarded := s.values.Len() - m.length
	s.values = m.values
	s.metrics.RecordRollback(discarded)
	s.logger.LogRollback(s.tracker.tag, m.seq, discarded, m.length)
}

// Commit implements Store. Nothing exclusive was held, so this only closes
// the bookkeeping.
func (s *Persistent[V]) Commit(snap Snapshot) {
	m, ok := snap.(*persistentSnapshot[V])
	if !ok {
		contractViolation("%s: commit with a snapshot from a different backing store", s.tracker.tag)
	}
	s.tracker.resolve("commit", &m.snapshotMark)
	s.metrics.RecordCommit()
	s.logger.LogCommit(s.tracker.tag, m.seq, s.values.Len())
}

// ValuesSince implements Store.
func (s *Persistent[V]) ValuesSince(snap Snapshot) Range {
	m := snap.mark()
	s.tracker.verify("values-since", m)
	return Range{Start: m.length, End: s.values.Len()}
}

// Push implements Store.
func (s *Persistent[V]) Push(v V) {
	s.values = s.values.Append(v)
	s.metrics.RecordPush()
}

// Reserve implements Store. A no-op: growth is structural, not contiguous.
func (s *Persistent[V]) Reserve(int) {}

// Update implements Store.
func (s *Persistent[V]) Update(i int, fn func(*V)) {
	checkBounds(s.tracker.tag, i, s.values.Len())
	v := s.values.Get(i)
	fn(&v)
	s.values = s.values.Set(i, v)
	s.metrics.RecordUpdate()
}

// ResetUnifications implements Store. One Set per slot; the sequence offers
// no bulk-rewrite shortcut.
func (s *Persistent[V]) ResetUnifications(fn func(i int) V) {
	n := s.values.Len()
	for i := 0; i < n; i++ {
		s.values = s.values.Set(i, fn(i))
	}
	s.metrics.RecordReset(n)
}

// Tag implements Store.
func (s *Persistent[V]) Tag() string {
	return s.tracker.tag
}
