package unitable

import "iter"

// Store is the contract every backing store satisfies.
//
// Indices are dense and zero-based: a pushed slot lives at the table length
// observed immediately before the Push. Callers are expected to derive new
// indices that way; Push deliberately returns nothing.
//
// Implementations must treat every precondition failure as a caller bug and
// panic (see package documentation), never return a recoverable error.
type Store[V any] interface {
	// Get returns the value at slot i. Precondition: i < Len().
	Get(i int) V

	// Len returns the current number of live slots.
	Len() int

	// StartSnapshot opens a checkpoint at the current state. The returned
	// token must later be passed to exactly one of Rollback or Commit, and
	// open snapshots must be resolved in last-opened-first order.
	StartSnapshot() Snapshot

	// Rollback discards every slot appended since the snapshot, restoring
	// Len to the snapshot's captured value. Whether Update calls on
	// pre-existing slots are also undone depends on the backing store; see
	// the package documentation. Consumes the snapshot.
	Rollback(s Snapshot)

	// Commit declares the checkpoint unneeded and keeps all changes made
	// since it was opened. Consumes the snapshot.
	Commit(s Snapshot)

	// ValuesSince returns the index range spanning slots introduced since
	// the snapshot, so a caller can rescan only affected variables. The
	// snapshot must still be open; ValuesSince does not consume it.
	ValuesSince(s Snapshot) Range

	// Push appends one slot at index Len().
	Push(v V)

	// Reserve hints that n more slots are about to be pushed. Purely a
	// performance hint; Persistent ignores it.
	Reserve(n int)

	// Update applies fn to slot i in place. Precondition: i < Len().
	Update(i int, fn func(*V))

	// ResetUnifications overwrites every slot 0..Len() with fn(index),
	// reusing the table's capacity across independent unification passes.
	ResetUnifications(fn func(i int) V)

	// Tag returns the fixed diagnostic label for this table, used in logs
	// and panic messages.
	Tag() string
}

// Snapshot is an opaque checkpoint token marking a point in a table's
// history. Only this package implements it.
type Snapshot interface {
	// Len returns the table length captured when the snapshot was opened.
	Len() int

	mark() *snapshotMark
}

// Range is a half-open interval [Start, End) of slot indices.
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// Contains reports whether i falls inside the range.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// All iterates the indices in ascending order.
func (r Range) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := r.Start; i < r.End; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
