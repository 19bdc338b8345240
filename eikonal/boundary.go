// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eikonal

// updateBoundary dispatches the additional 2-point updates spec §4.H
// requires for a boundary target w: every edge of every face adjacent to
// w whose two endpoints are both boundary vertices and both VALID gets a
// 2-point update, recovering edge-constrained arrivals that glide along
// the surface. The usual cascade (§4.F) then runs unconditionally.
//
// Per the redesign of spec §9's open question, the 2-point parent record
// here sets exactly two active slots at construction; there is no
// post-hoc patch of a third slot.
func (s *Solver) updateBoundary(w, l0 int) {
	x := s.mesh.Vert(w)
	for _, tri := range s.mesh.VF(w) {
		edges := [3][2]int{{tri[0], tri[1]}, {tri[1], tri[2]}, {tri[2], tri[0]}}
		for _, e := range edges {
			a, b := e[0], e[1]
			if a == w || b == w {
				continue
			}
			if !s.mesh.BDV(a) || !s.mesh.BDV(b) {
				continue
			}
			if !s.IsValid(a) || !s.IsValid(b) {
				continue
			}
			cand := edgeUpdate(x, s.mesh.Vert(a), s.mesh.Vert(b), s.jet[a], s.jet[b])
			if cand.ok {
				s.tryAccept(w, cand.jet, twoPoint(a, b, cand.b0, cand.b1))
			}
		}
	}
	s.update(w, l0)
}
