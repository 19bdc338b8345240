// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eikonal

import "github.com/cpmech/eik3/geom"

// solveTriangleQP minimizes q(p) = 1/2 p^T H p + g^T p over the closed
// 2-simplex {p1 >= 0, p2 >= 0, p1+p2 <= 1}, by enumerating the seven
// candidate KKT points spec §4.E step 3 names: the unconstrained interior
// critical point, the critical point of each of the three edges, and the
// three corners, then keeping the feasible candidate with least q.
func solveTriangleQP(h geom.Mat2, g geom.Vec2) geom.Vec2 {
	type cand struct {
		p geom.Vec2
		q float64
	}
	var cands []cand
	add := func(p geom.Vec2) {
		if p[0] < -1e-12 || p[1] < -1e-12 || p[0]+p[1] > 1+1e-12 {
			return
		}
		cands = append(cands, cand{p: p, q: qpObjective(h, g, p)})
	}

	// interior critical point: H p* = -g
	det := h[0][0]*h[1][1] - h[0][1]*h[1][0]
	if det != 0 {
		p0 := (-g[0]*h[1][1] + g[1]*h[0][1]) / det
		p1 := (-g[1]*h[0][0] + g[0]*h[1][0]) / det
		add(geom.Vec2{p0, p1})
	}

	// edge p1 = 0, p2 in [0,1]
	if h[1][1] != 0 {
		add(geom.Vec2{0, clamp01(-g[1] / h[1][1])})
	}
	// edge p2 = 0, p1 in [0,1]
	if h[0][0] != 0 {
		add(geom.Vec2{clamp01(-g[0] / h[0][0]), 0})
	}
	// edge p1+p2 = 1: minimize over p1 in [0,1] with p2 = 1-p1
	//   q(p1) = 1/2[H11 p1^2 + 2 H12 p1(1-p1) + H22(1-p1)^2] + g1 p1 + g2(1-p1)
	//   dq/dp1 = (H11 - 2H12 + H22) p1 + (H12 - H22 + g1 - g2)
	aEdge := h[0][0] - 2*h[0][1] + h[1][1]
	if aEdge != 0 {
		p1 := -(h[0][1] - h[1][1] + g[0] - g[1]) / aEdge
		p1 = clamp01(p1)
		add(geom.Vec2{p1, 1 - p1})
	}

	// three corners
	add(geom.Vec2{0, 0})
	add(geom.Vec2{1, 0})
	add(geom.Vec2{0, 1})

	best := cands[0]
	for _, c := range cands[1:] {
		if c.q < best.q {
			best = c
		}
	}
	return best.p
}

func qpObjective(h geom.Mat2, g geom.Vec2, p geom.Vec2) float64 {
	hp := h.MulVec2(p)
	return 0.5*(p[0]*hp[0]+p[1]*hp[1]) + g[0]*p[0] + g[1]*p[1]
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
