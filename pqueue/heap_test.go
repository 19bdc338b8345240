// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pqueue

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestHeap_order(tst *testing.T) {

	chk.PrintTitle("Heap_order (pop in ascending key order)")

	keys := []float64{5, 3, 8, 1, 9, 2}
	pos := make([]int, len(keys))
	for i := range pos {
		pos[i] = NoIndex
	}
	h := New(len(keys), func(id int) float64 { return keys[id] }, func(id, p int) { pos[id] = p })
	for i := range keys {
		h.Insert(i)
	}
	if h.Size() != len(keys) {
		tst.Fatalf("expected size %d, got %d", len(keys), h.Size())
	}

	var out []float64
	for h.Size() > 0 {
		id := h.Front()
		out = append(out, keys[id])
		popped := h.PopFront()
		if popped != id {
			tst.Fatalf("Front/PopFront disagreement")
		}
		if pos[id] != NoIndex {
			tst.Errorf("popped id %d should have pos==NoIndex, got %d", id, pos[id])
		}
	}
	want := []float64{1, 2, 3, 5, 8, 9}
	for i := range want {
		if out[i] != want[i] {
			tst.Fatalf("pop order mismatch at %d: got %v want %v", i, out, want)
		}
	}
}

func TestHeap_decreaseKey(tst *testing.T) {

	chk.PrintTitle("Heap_decreaseKey (Swim after external key mutation)")

	keys := []float64{10, 20, 30}
	pos := make([]int, len(keys))
	h := New(3, func(id int) float64 { return keys[id] }, func(id, p int) { pos[id] = p })
	for i := range keys {
		h.Insert(i)
	}
	if h.Front() != 0 {
		tst.Fatalf("expected id 0 at front, got %d", h.Front())
	}

	// decrease key of id 2 below id 0's key, then re-heapify at its
	// current position (simulating a scheduler's concurrent decrease-key).
	keys[2] = 1
	h.Swim(pos[2])
	if h.Front() != 2 {
		tst.Fatalf("expected id 2 at front after decrease-key, got %d", h.Front())
	}
}

// assertBijection fails tst if pos[id] does not name id's true slot, for
// every id currently in the heap.
func assertBijection(tst *testing.T, h *Heap, pos []int) {
	tst.Helper()
	for id, p := range pos {
		if p == NoIndex {
			continue
		}
		if p < 0 || p >= h.Len() || h.ids[p] != id {
			tst.Fatalf("pos[%d]=%d does not name id %d's true slot (ids=%v)", id, p, id, h.ids)
		}
	}
}

func TestHeap_positionsStayInSync(tst *testing.T) {

	chk.PrintTitle("Heap_positionsStayInSync (pos[id] always matches true slot)")

	keys := []float64{7, 4, 9, 2, 6, 1, 8}
	pos := make([]int, len(keys))
	h := New(len(keys), func(id int) float64 { return keys[id] }, func(id, p int) { pos[id] = p })
	for i := range keys {
		h.Insert(i)
	}
	assertBijection(tst, h, pos)
	for id := range keys {
		// a heap whose Swap bijection is kept in sync can always be fixed
		// at exactly pos[id] without error.
		h.Swim(pos[id])
	}
	assertBijection(tst, h, pos)
}

func TestHeap_insertSiftsUpKeepsBijection(tst *testing.T) {

	chk.PrintTitle("Heap_insertSiftsUpKeepsBijection (decreasing-key insert order)")

	// inserting in strictly decreasing key order forces every Push to sift
	// all the way up past previously inserted ids, exercising the case
	// where Push's own Swaps move an id away from the slot it was appended
	// into (the scenario spec §8 property 12's concurrent decrease-keys
	// covers, and the one a BC sequence that adds TRIAL vertices in
	// decreasing f order would hit).
	keys := []float64{60, 50, 40, 30, 20, 10, 0}
	pos := make([]int, len(keys))
	h := New(len(keys), func(id int) float64 { return keys[id] }, func(id, p int) { pos[id] = p })
	for i := range keys {
		h.Insert(i)
		assertBijection(tst, h, pos)
	}

	if h.Front() != len(keys)-1 {
		tst.Fatalf("expected last-inserted (smallest-key) id %d at front, got %d", len(keys)-1, h.Front())
	}

	// now decrease the key of an id that sifted up during its own insert,
	// and confirm Swim at its recorded position reaches it correctly.
	keys[1] = -100
	h.Swim(pos[1])
	assertBijection(tst, h, pos)
	if h.Front() != 1 {
		tst.Fatalf("expected id 1 at front after decrease-key, got %d", h.Front())
	}
}
