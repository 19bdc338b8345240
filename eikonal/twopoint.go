// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eikonal

import (
	"math"

	"github.com/cpmech/eik3/geom"
)

// onePointUpdate computes the closed-form update of x against a single
// VALID parent x0 with jet jet0: constant slowness s=1, so
// T(x) = T(x0) + ||x-x0|| and the direction is the unit ray from x0 to x
// (spec §4.D). This is both the action taken when a parent is a point
// source, and one of the two boundary candidates of the general edge
// update below.
func onePointUpdate(x, x0 geom.Vec3, jet0 Jet) Jet {
	n, l := x.Sub(x0).Normalize()
	return Jet{F: jet0.F + l, Df: n}
}

// edgeCandidate is the result of a two-point (edge) update, tagged with
// the barycentric split along the edge so the caller can build a parent
// record.
type edgeCandidate struct {
	jet    Jet
	b0, b1 float64 // barycentric weight on x0, x1 (b0+b1=1)
	ok     bool
}

// edgeUpdate minimizes F(lambda) = T_edge(lambda) + ||x - x_edge(lambda)||
// over lambda in [0,1], with x_edge(lambda) = x0 + lambda*(x1-x0) and
// T_edge(lambda) = T0 + lambda*(T1-T0) (spec §4.D/component-table D).
// Under the unit-slowness eikonal constraint the stationary point of F is
// the root of a quadratic in lambda; the candidate set is the feasible
// root plus the two endpoints (each a one-point update), and the minimum
// of those that pass the backward-ray rejection test is returned.
func edgeUpdate(x, x0, x1 geom.Vec3, jet0, jet1 Jet) edgeCandidate {
	d := x1.Sub(x0)
	u := x.Sub(x0)
	a := d.Dot(d)
	b := u.Dot(d)
	c := u.Dot(u)
	dT := jet1.F - jet0.F

	best := edgeCandidate{}
	consider := func(lam float64, jet Jet) {
		if lam < -1e-9 || lam > 1+1e-9 {
			return
		}
		if jet.Df.Dot(jet0.Df) <= 0 || jet.Df.Dot(jet1.Df) <= 0 {
			return
		}
		if !best.ok || jet.F < best.jet.F {
			best = edgeCandidate{jet: jet, b0: 1 - lam, b1: lam, ok: true}
		}
	}

	consider(0, onePointUpdate(x, x0, jet0))
	consider(1, onePointUpdate(x, x1, jet1))

	// interior stationary point: A(A-dT^2) lam^2 - 2B(A-dT^2) lam + (B^2 - dT^2*C) = 0
	coeffA := a * (a - dT*dT)
	coeffB := -2 * b * (a - dT*dT)
	coeffC := b*b - dT*dT*c
	for _, lam := range solveQuadratic(coeffA, coeffB, coeffC) {
		if lam < 0 || lam > 1 {
			continue
		}
		// the squaring step introduced a spurious root; keep only the
		// branch where (lam*A - B) has sign opposite to dT.
		lhs := lam*a - b
		if dT > 0 && lhs > 1e-12 {
			continue
		}
		if dT < 0 && lhs < -1e-12 {
			continue
		}
		y := x0.Add(d.Scale(lam))
		dir, length := x.Sub(y).Normalize()
		jet := Jet{F: jet0.F + lam*dT + length, Df: dir}
		consider(lam, jet)
	}

	return best
}

// solveQuadratic returns the real roots of a*lam^2 + b*lam + c = 0. A
// near-zero leading coefficient falls back to the linear solution.
func solveQuadratic(a, b, c float64) []float64 {
	const tiny = 1e-14
	if a < tiny && a > -tiny {
		if b < tiny && b > -tiny {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}
