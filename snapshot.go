package unitable

import "sync/atomic"

// storeIDs hands out a unique id per store instance so a snapshot can be
// matched against the table that produced it.
var storeIDs atomic.Uint64

// snapshotMark is the bookkeeping shared by both snapshot kinds: which store
// issued it, its position in that store's open-snapshot order, the table
// length at capture time, and whether it has been resolved.
type snapshotMark struct {
	store    uint64
	seq      uint64
	length   int
	resolved bool
}

func (m *snapshotMark) Len() int { return m.length }

func (m *snapshotMark) mark() *snapshotMark { return m }

// snapshotTracker enforces the snapshot lifecycle contract for a store:
// tokens belong to this store, are resolved at most once, and are resolved
// in last-opened-first order.
type snapshotTracker struct {
	id   uint64
	tag  string
	open []uint64 // seqs of still-open snapshots, oldest first
	next uint64
}

func newSnapshotTracker(tag string) snapshotTracker {
	return snapshotTracker{id: storeIDs.Add(1), tag: tag}
}

// begin opens a checkpoint at the given table length.
func (t *snapshotTracker) begin(length int) snapshotMark {
	t.next++
	t.open = append(t.open, t.next)
	return snapshotMark{store: t.id, seq: t.next, length: length}
}

// verify checks that m is a live token of this store without consuming it.
func (t *snapshotTracker) verify(op string, m *snapshotMark) {
	if m.store != t.id {
		contractViolation("%s: %s with a snapshot from another table", t.tag, op)
	}
	if m.resolved {
		contractViolation("%s: %s with an already resolved snapshot", t.tag, op)
	}
}

// resolve consumes m. The token must be the most recently opened snapshot
// still outstanding.
func (t *snapshotTracker) resolve(op string, m *snapshotMark) {
	t.verify(op, m)
	if n := len(t.open); n == 0 || t.open[n-1] != m.seq {
		contractViolation("%s: %s out of order, resolve the most recent snapshot first", t.tag, op)
	}
	t.open = t.open[:len(t.open)-1]
	m.resolved = true
}
