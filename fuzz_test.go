package unitable_test

import (
	"testing"

	"github.com/hupe1980/unitable"
)

// inPlaceModel is a naive reference for InPlace semantics: a plain slice plus
// a stack of checkpoint lengths. Updates are never undone; rollback only
// truncates.
type inPlaceModel struct {
	values []int
	marks  []int
}

func (m *inPlaceModel) push(v int)      { m.values = append(m.values, v) }
func (m *inPlaceModel) update(i, v int) { m.values[i] = v }
func (m *inPlaceModel) snapshot()       { m.marks = append(m.marks, len(m.values)) }

func (m *inPlaceModel) rollback() {
	n := m.marks[len(m.marks)-1]
	m.marks = m.marks[:len(m.marks)-1]
	m.values = m.values[:n]
}

func (m *inPlaceModel) commit() {
	m.marks = m.marks[:len(m.marks)-1]
}

// persistentModel is a naive reference for Persistent semantics: a snapshot
// captures a full copy of the slice, so rollback restores updates too.
type persistentModel struct {
	values []int
	marks  [][]int
}

func (m *persistentModel) push(v int)      { m.values = append(m.values, v) }
func (m *persistentModel) update(i, v int) { m.values[i] = v }

func (m *persistentModel) snapshot() {
	cp := make([]int, len(m.values))
	copy(cp, m.values)
	m.marks = append(m.marks, cp)
}

func (m *persistentModel) rollback() {
	m.values = m.marks[len(m.marks)-1]
	m.marks = m.marks[:len(m.marks)-1]
}

func (m *persistentModel) commit() {
	m.marks = m.marks[:len(m.marks)-1]
}

// FuzzStoreAgainstModel interprets a byte string as an operation sequence and
// checks that both backing stores track their reference models exactly.
func FuzzStoreAgainstModel(f *testing.F) {
	f.Add([]byte{0, 0, 2, 0, 1, 3})          // push, push, snapshot, push, update, rollback
	f.Add([]byte{2, 0, 2, 0, 4, 3})          // nested snapshot, inner commit, outer rollback
	f.Add([]byte{0, 2, 1, 3, 0, 2, 1, 4})    // update under snapshot: divergence exercised
	f.Add([]byte{2, 2, 2, 4, 4, 3, 0, 0, 0}) // deep nesting then growth

	f.Fuzz(func(t *testing.T, ops []byte) {
		ip := unitable.NewInPlace[int]()
		ps := unitable.NewPersistent[int]()
		var ipSnaps, psSnaps []unitable.Snapshot

		ipm := &inPlaceModel{}
		psm := &persistentModel{}

		next := 0 // deterministic value source

		for _, op := range ops {
			switch op % 5 {
			case 0: // push
				next++
				ip.Push(next)
				ps.Push(next)
				ipm.push(next)
				psm.push(next)
			case 1: // update slot 0, if any
				if ip.Len() == 0 {
					continue
				}
				next++
				v := next
				ip.Update(0, func(p *int) { *p = v })
				ps.Update(0, func(p *int) { *p = v })
				ipm.update(0, v)
				psm.update(0, v)
			case 2: // snapshot
				if len(ipSnaps) >= 16 {
					continue
				}
				ipSnaps = append(ipSnaps, ip.StartSnapshot())
				psSnaps = append(psSnaps, ps.StartSnapshot())
				ipm.snapshot()
				psm.snapshot()
			case 3: // rollback the innermost open snapshot
				if len(ipSnaps) == 0 {
					continue
				}
				ip.Rollback(ipSnaps[len(ipSnaps)-1])
				ps.Rollback(psSnaps[len(psSnaps)-1])
				ipSnaps = ipSnaps[:len(ipSnaps)-1]
				psSnaps = psSnaps[:len(psSnaps)-1]
				ipm.rollback()
				psm.rollback()
			case 4: // commit the innermost open snapshot
				if len(ipSnaps) == 0 {
					continue
				}
				ip.Commit(ipSnaps[len(ipSnaps)-1])
				ps.Commit(psSnaps[len(psSnaps)-1])
				ipSnaps = ipSnaps[:len(ipSnaps)-1]
				psSnaps = psSnaps[:len(psSnaps)-1]
				ipm.commit()
				psm.commit()
			}

			if ip.Len() != len(ipm.values) {
				t.Fatalf("in-place length diverged: store %d, model %d", ip.Len(), len(ipm.values))
			}
			if ps.Len() != len(psm.values) {
				t.Fatalf("persistent length diverged: store %d, model %d", ps.Len(), len(psm.values))
			}
		}

		for i, want := range ipm.values {
			if got := ip.Get(i); got != want {
				t.Fatalf("in-place slot %d: store %d, model %d", i, got, want)
			}
		}
		for i, want := range psm.values {
			if got := ps.Get(i); got != want {
				t.Fatalf("persistent slot %d: store %d, model %d", i, got, want)
			}
		}
	})
}
