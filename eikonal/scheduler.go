// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eikonal

import (
	"math"
	"sort"

	"github.com/cpmech/eik3/eikerr"
)

// Step executes one accept: pops the minimum-f TRIAL vertex, marks it
// VALID, opens its FAR neighbors to TRIAL, and re-updates its TRIAL
// neighbors (spec §4.F). It returns the accepted vertex id.
func (s *Solver) Step() int {
	l0 := s.heap.Front()
	s.heap.PopFront()

	if math.IsInf(s.jet[l0].F, 1) {
		eikerr.Raise(l0, "popped TRIAL vertex with infinite arrival time")
	}
	s.state[l0] = Valid
	s.Stats.Accepted++

	s.propagateFrom(l0)

	s.logf("accepted vertex %d, f=%g\n", l0, s.jet[l0].F)
	return l0
}

// propagateFrom opens l0's FAR neighbors to TRIAL and re-updates its TRIAL
// neighbors against the now-VALID l0 (spec §4.F). It is the common tail of
// both Step (accepting a heap-popped vertex) and AddValid (seeding a
// boundary-condition vertex directly) — a VALID vertex always needs its
// ring opened, whether it became VALID by label-setting or by fiat.
func (s *Solver) propagateFrom(l0 int) {
	for _, w := range s.mesh.VV(l0) {
		switch s.state[w] {
		case Far:
			s.state[w] = Trial
			s.jet[w] = Jet{F: math.Inf(1)}
			s.heap.Insert(w)
			s.update(w, l0)
			s.heap.Swim(s.pos[w])
		case Trial:
			if s.mesh.BDV(w) {
				s.updateBoundary(w, l0)
			} else {
				s.update(w, l0)
			}
			s.heap.Swim(s.pos[w])
		default:
			// VALID, SHADOW: nothing to do
		}
	}
}

// tryAccept updates w's jet/parent if the candidate improves on its
// current value (spec §4.G: "a parent record may be overwritten only if
// the new f is strictly smaller").
func (s *Solver) tryAccept(w int, jet Jet, par ParentRecord) {
	if jet.F < s.jet[w].F {
		s.jet[w] = jet
		s.par[w] = par
	}
}

// update runs the hierarchical update cascade of spec §4.F against newly
// VALID vertex l0 for TRIAL target w.
func (s *Solver) update(w, l0 int) {
	if s.IsPointSource(l0) {
		x := s.mesh.Vert(w)
		x0 := s.mesh.Vert(l0)
		jet := onePointUpdate(x, x0, s.jet[l0])
		s.tryAccept(w, jet, onePoint(l0))
		return
	}

	l1star, ok := s.bestEdgeNeighbor(w, l0)
	if !ok {
		return
	}

	s.runFaceCascade(w, l0, l1star)

	// step 4: faces in w's own face ring containing l0, all VALID, that
	// the (l0,l1*)-edge traversal above may have missed.
	for _, tri := range s.mesh.VF(w) {
		if !containsID(tri, l0) {
			continue
		}
		if !(s.IsValid(tri[0]) && s.IsValid(tri[1]) && s.IsValid(tri[2])) {
			continue
		}
		s.tryFaceUpdate(w, tri[0], tri[1], tri[2])
	}
}

// bestEdgeNeighbor runs 2-point updates of w against every edge (l0, n)
// for VALID neighbors n of l0, keeping the minimizer. Returns ok=false if
// l0 has no VALID neighbor (degenerate/boundary-of-mesh case).
func (s *Solver) bestEdgeNeighbor(w, l0 int) (int, bool) {
	x := s.mesh.Vert(w)
	x0 := s.mesh.Vert(l0)
	best := -1
	var bestCand edgeCandidate
	for _, n := range s.mesh.VV(l0) {
		if !s.IsValid(n) || n == w {
			continue
		}
		x1 := s.mesh.Vert(n)
		cand := edgeUpdate(x, x0, x1, s.jet[l0], s.jet[n])
		if !cand.ok {
			continue
		}
		if best == -1 || cand.jet.F < bestCand.jet.F {
			best = n
			bestCand = cand
		}
		s.tryAccept(w, cand.jet, twoPoint(l0, n, cand.b0, cand.b1))
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

// runFaceCascade enumerates the cells incident on edge (l0, l1star),
// collects the opposite-vertex face candidates via orientEdgeFan, and
// runs a face update against each VALID opposite vertex (spec §4.F
// step 3).
func (s *Solver) runFaceCascade(w, l0, l1star int) {
	cells := s.mesh.EC(l0, l1star)
	opp2, opp3 := orientEdgeFan(cells, s.mesh.CV, l0, l1star)
	seen := map[int]bool{}
	for i := range opp2 {
		for _, l2 := range [2]int{opp2[i], opp3[i]} {
			if l2 == NoParent || seen[l2] || !s.IsValid(l2) {
				continue
			}
			seen[l2] = true
			s.tryFaceUpdate(w, l0, l1star, l2)
		}
	}
}

func (s *Solver) tryFaceUpdate(w, l0, l1, l2 int) {
	cands := s.runFaceUpdates(w, [][3]int{{l0, l1, l2}})
	s.acceptFaceCandidates(w, cands)
}

// runFaceUpdates runs a three-point update for w against each of the
// given (l0,l1,l2) triangles, skipping any that are not all VALID.
func (s *Solver) runFaceUpdates(w int, tris [][3]int) []faceCandidate {
	x := s.mesh.Vert(w)
	var out []faceCandidate
	for _, tri := range tris {
		l0, l1, l2 := tri[0], tri[1], tri[2]
		if !(s.IsValid(l0) && s.IsValid(l1) && s.IsValid(l2)) {
			continue
		}
		tol := s.mesh.FaceTol(l0, l1, l2)
		cand, iters, err := threePointCandidate(x, l0, l1, l2,
			s.mesh.Vert(l0), s.mesh.Vert(l1), s.mesh.Vert(l2),
			s.jet[l0], s.jet[l1], s.jet[l2], tol, s.opts)
		if iters > s.Stats.MaxNewtonObserved {
			s.Stats.MaxNewtonObserved = iters
		}
		switch err {
		case eikerr.ErrDegenerate:
			s.Stats.Degenerate++
			continue
		case eikerr.ErrNonConvergent:
			s.Stats.NonConvergent++
		}
		out = append(out, cand)
	}
	return out
}

// acceptFaceCandidates applies the tie-break rule of spec §4.E: sort
// ascending by F, discard candidates worse than the current jet, then
// accept the first candidate that is either interior, or whose (lambda0,
// F) coincide with the next-best candidate's within TieBreakTol and whose
// lambda1 are both 0 (two adjacent faces agreeing on the edge-crossing
// ray).
func (s *Solver) acceptFaceCandidates(w int, cands []faceCandidate) {
	if len(cands) == 0 {
		return
	}
	sort.Slice(cands, func(i, j int) bool { return cands[i].jet.F < cands[j].jet.F })

	filtered := cands[:0]
	for _, c := range cands {
		if c.jet.F < s.jet[w].F {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		return
	}

	tol := s.opts.TieBreakTol
	for i, c := range filtered {
		if c.interior {
			s.tryAccept(w, c.jet, c.par)
			return
		}
		if i+1 < len(filtered) {
			nxt := filtered[i+1]
			if math.Abs(c.lam[0]-nxt.lam[0]) <= tol && math.Abs(c.jet.F-nxt.jet.F) <= tol &&
				math.Abs(c.lam[1]) <= tol && math.Abs(nxt.lam[1]) <= tol {
				s.tryAccept(w, c.jet, c.par)
				return
			}
		}
	}
	// none qualified as interior or edge-consistent: accept the best
	// (boundary, non-agreeing) candidate anyway, as spec's cascade
	// authoritatively keeps the minimum over all successful candidates.
	s.tryAccept(w, filtered[0].jet, filtered[0].par)
}

func containsID(tri [3]int, id int) bool {
	return tri[0] == id || tri[1] == id || tri[2] == id
}
