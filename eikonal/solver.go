// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eikonal

import (
	"math"

	"github.com/cpmech/eik3/eikerr"
	"github.com/cpmech/eik3/pqueue"
)

// Solver holds the per-vertex jet, state, heap-position, and parent
// arrays for one eikonal solve over a fixed Mesh. It is not safe for
// concurrent use: the scheduling model is deliberately single-threaded
// (spec §5), the same way msolid.Driver is meant to be driven by one
// goroutine at a time.
type Solver struct {
	mesh Mesh
	opts Options

	jet   []Jet
	state []VertexState
	pos   []int
	par   []ParentRecord

	heap *pqueue.Heap

	Stats  Stats
	Logger Logger
}

// NewSolver allocates all per-vertex arrays, sets every vertex to FAR with
// f=+Inf, and pre-sizes the heap to ceil(3*cbrt(nverts)) (spec §6 eik_init).
func NewSolver(mesh Mesh, opts Options) *Solver {
	n := mesh.NVerts()
	s := &Solver{
		mesh:  mesh,
		opts:  opts,
		jet:   make([]Jet, n),
		state: make([]VertexState, n),
		pos:   make([]int, n),
		par:   make([]ParentRecord, n),
	}
	for i := 0; i < n; i++ {
		s.jet[i] = Jet{F: math.Inf(1)}
		s.state[i] = Far
		s.pos[i] = pqueue.NoIndex
		s.par[i] = noParentRecord()
	}
	heapCap := int(math.Ceil(3 * math.Cbrt(float64(n))))
	if heapCap < 1 {
		heapCap = 1
	}
	s.heap = pqueue.New(heapCap, func(id int) float64 { return s.jet[id].F }, func(id, pos int) { s.pos[id] = pos })
	return s
}

func (s *Solver) logf(format string, a ...interface{}) {
	if s.Logger != nil {
		s.Logger.Logf(format, a...)
	}
}

// AddTrial promotes l to TRIAL if currently FAR; decreases its jet if
// already TRIAL and the new f is smaller; is a no-op if l is VALID.
func (s *Solver) AddTrial(l int, jet Jet) {
	switch s.state[l] {
	case Far:
		s.jet[l] = jet
		s.state[l] = Trial
		s.heap.Insert(l)
	case Trial:
		if jet.F < s.jet[l].F {
			s.jet[l] = jet
			s.heap.Swim(s.pos[l])
		}
	case Valid:
		// no-op
	case Shadow:
		// no-op: shadow is terminal
	}
}

// AddValid marks l VALID directly with jet and opens its FAR ring to
// TRIAL, exactly as Step does for a vertex accepted off the heap — a
// boundary-condition vertex seeded this way (e.g. a point source) must
// still propagate to its neighbors, or the front never starts moving.
// Forbidden (fatal) if l is currently TRIAL.
func (s *Solver) AddValid(l int, jet Jet) {
	if s.state[l] == Trial {
		eikerr.Raise(l, "add_valid called on a TRIAL vertex")
	}
	s.jet[l] = jet
	s.state[l] = Valid
	s.par[l] = onePoint(l)
	if jet.Point {
		s.par[l] = noParentRecord()
	}
	s.propagateFrom(l)
}

// Peek returns the id that would be accepted by the next Step, without
// removing it from the heap.
func (s *Solver) Peek() int {
	return s.heap.Front()
}

// GetJet returns the current jet of vertex l.
func (s *Solver) GetJet(l int) Jet { return s.jet[l] }

// GetPar returns the parent record of vertex l.
func (s *Solver) GetPar(l int) ParentRecord { return s.par[l] }

// IsPointSource reports whether l is a VALID point source.
func (s *Solver) IsPointSource(l int) bool {
	return s.state[l] == Valid && s.jet[l].Point
}

func (s *Solver) IsFar(l int) bool    { return s.state[l] == Far }
func (s *Solver) IsTrial(l int) bool  { return s.state[l] == Trial }
func (s *Solver) IsValid(l int) bool  { return s.state[l] == Valid }
func (s *Solver) IsShadow(l int) bool { return s.state[l] == Shadow }

// Solve calls Step until the heap is empty.
func (s *Solver) Solve() {
	for s.heap.Size() > 0 {
		s.Step()
	}
}
