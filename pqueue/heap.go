// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pqueue implements the indexed binary min-heap the front
// scheduler uses to track TRIAL vertices by their current arrival time.
// Unlike a lazy-decrease-key heap (the pattern the rest of the retrieved
// graph-algorithm corpus uses for Dijkstra), this heap maintains a live
// id<->position bijection so a caller can decrease an element's key in
// place and re-heapify with a single Fix call, without ever inserting
// stale duplicate entries.
package pqueue

import "container/heap"

// NoIndex is the sentinel position for an id that is not currently in
// the heap.
const NoIndex = -1

// Heap is a binary min-heap over ids, ordered by an externally supplied
// value function. It implements container/heap.Interface; callers drive
// it through Insert/Front/PopFront/Swim rather than the raw heap.Interface
// methods.
type Heap struct {
	ids    []int
	value  func(id int) float64
	setpos func(id, pos int)
}

// New returns an empty heap. value reads the current key of an id (the
// solver's live jet.F); setpos is invoked on every swap so an external
// pos[id] table stays in sync — the solver owns that table, not the heap.
func New(capacity int, value func(id int) float64, setpos func(id, pos int)) *Heap {
	return &Heap{
		ids:    make([]int, 0, capacity),
		value:  value,
		setpos: setpos,
	}
}

// Len implements container/heap.Interface.
func (h *Heap) Len() int { return len(h.ids) }

// Less implements container/heap.Interface.
func (h *Heap) Less(i, j int) bool { return h.value(h.ids[i]) < h.value(h.ids[j]) }

// Swap implements container/heap.Interface, keeping the external position
// table in sync with every exchange.
func (h *Heap) Swap(i, j int) {
	h.ids[i], h.ids[j] = h.ids[j], h.ids[i]
	h.setpos(h.ids[i], i)
	h.setpos(h.ids[j], j)
}

// Push implements container/heap.Interface. Use Insert, not this method,
// from outside the package. It sets the appended id's position itself so
// that the sift-up pass heap.Push runs next (whose Swaps may move the id
// again) always has an authoritative starting position to work from.
func (h *Heap) Push(x interface{}) {
	id := x.(int)
	h.ids = append(h.ids, id)
	h.setpos(id, len(h.ids)-1)
}

// Pop implements container/heap.Interface. Use PopFront, not this method,
// from outside the package.
func (h *Heap) Pop() interface{} {
	n := len(h.ids)
	id := h.ids[n-1]
	h.ids = h.ids[:n-1]
	return id
}

// Insert appends id and restores the heap property. Duplicate inserts for
// an id already present are a caller contract violation and are not
// guarded against here — the solver's state machine is responsible for
// never inserting a TRIAL id twice.
func (h *Heap) Insert(id int) {
	heap.Push(h, id)
}

// Front returns the id at the root without removing it.
func (h *Heap) Front() int {
	return h.ids[0]
}

// PopFront removes and returns the minimum id, marking it NoIndex.
func (h *Heap) PopFront() int {
	id := heap.Pop(h).(int)
	h.setpos(id, NoIndex)
	return id
}

// Swim restores the heap property after the key at pos has decreased (or
// changed in either direction): container/heap.Fix performs the
// down-then-up pass that a hand-written sift-up after a decrease-key
// would otherwise require.
func (h *Heap) Swim(pos int) {
	heap.Fix(h, pos)
}

// Size returns the number of ids currently in the heap.
func (h *Heap) Size() int { return len(h.ids) }
