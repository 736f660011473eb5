// Package unitable provides the backing storage for union-find style
// unification tables: a dense, index-addressed table of per-variable values
// with transactional snapshot, rollback and commit semantics.
//
// Constraint solvers and type-inference engines use this layer to
// speculatively merge variables and undo the merge if the attempt is
// abandoned. The table never inspects the values it stores; merge policy,
// root finding and rank bookkeeping belong to the consumer.
//
// # Backing Stores
//
// Two interchangeable implementations satisfy the Store interface:
//
//   - InPlace: a single growable array plus checkpoint markers. Fastest
//     per operation; rollback discards slots appended since the snapshot
//     but does NOT undo Update calls on slots that already existed.
//   - Persistent: a structurally shared immutable sequence. Snapshots are
//     cheap handle clones and rollback restores every slot exactly,
//     including updated ones, at the cost of per-operation overhead.
//
// The divergence is deliberate. Pick InPlace when per-slot mutations are
// monotonic with respect to further merges; pick Persistent when nested
// speculation must survive arbitrary in-place mutation.
//
// # Quick Start
//
//	table := unitable.NewInPlace[string](unitable.WithTag("ty-var"))
//	table.Push("unbound")             // index 0
//	snap := table.StartSnapshot()
//	table.Push("unbound")             // index 1, speculative
//	table.Rollback(snap)              // index 1 is gone
//
// # Contract
//
// The store is exclusively owned by a single consumer: no operation is safe
// for concurrent mutation. Snapshots must be resolved in last-opened-first
// order by exactly one Rollback or Commit call. Violations of the contract
// (out-of-bounds access, double resolution, out-of-order resolution, or a
// token from another table) are bugs in the calling algorithm and panic
// immediately rather than returning an error.
package unitable
