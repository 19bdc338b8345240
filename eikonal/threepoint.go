// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eikonal

import (
	"math"

	"github.com/cpmech/eik3/bezier"
	"github.com/cpmech/eik3/eikerr"
	"github.com/cpmech/eik3/geom"
)

// a1, a2 are the barycentric directions (sum=0) of partial derivatives
// with respect to lambda1, lambda2, since b(lambda) = (1-l1-l2, l1, l2).
var a1 = geom.Bary3{-1, 1, 0}
var a2 = geom.Bary3{-1, 0, 1}

// faceCandidate is a single three-point update's result, before tie-break
// arbitration across adjacent faces (scheduler.go).
type faceCandidate struct {
	l0, l1, l2 int
	jet        Jet
	par        ParentRecord
	lam        geom.Vec2
	interior   bool
}

// faceObjective evaluates F, grad F, and Hess F at lambda for the base
// triangle (p0,p1,p2) with target x and interpolant tri.
func faceObjective(x, p0, p1, p2 geom.Vec3, tri *bezier.Triangle, lam geom.Vec2) (f float64, grad geom.Vec2, hess geom.Mat2) {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	b := geom.Bary2(lam).ToBary3()
	q := p0.Add(e1.Scale(lam[0])).Add(e2.Scale(lam[1]))
	r := x.Sub(q)
	L := r.Norm()

	gradL := geom.Vec2{-r.Dot(e1) / L, -r.Dot(e2) / L}
	u := r.Scale(1 / L)
	hessL := geom.Mat2{
		{e1.Dot(e1)/L - u.Dot(e1)*u.Dot(e1)/L, e1.Dot(e2)/L - u.Dot(e1)*u.Dot(e2)/L},
		{e2.Dot(e1)/L - u.Dot(e2)*u.Dot(e1)/L, e2.Dot(e2)/L - u.Dot(e2)*u.Dot(e2)/L},
	}

	T := tri.F(b)
	gradT := geom.Vec2{tri.Df(b, a1), tri.Df(b, a2)}
	hessT := geom.Mat2{
		{tri.D2f(b, a1, a1), tri.D2f(b, a1, a2)},
		{tri.D2f(b, a2, a1), tri.D2f(b, a2, a2)},
	}

	f = L + T
	grad = geom.Vec2{gradL[0] + gradT[0], gradL[1] + gradT[1]}
	hess = geom.Mat2{
		{hessL[0][0] + hessT[0][0], hessL[0][1] + hessT[0][1]},
		{hessL[1][0] + hessT[1][0], hessL[1][1] + hessT[1][1]},
	}
	return
}

// repairPSD shifts the diagonal of h so its minimum eigenvalue is >= 0,
// guaranteeing a descent direction (spec §4.E step 2).
func repairPSD(h geom.Mat2) geom.Mat2 {
	lo, _ := h.EigSym2()
	if lo < 0 {
		return h.ShiftDiag(-lo)
	}
	return h
}

// threePointCandidate runs the projected-Newton minimization of spec
// §4.E for the base triangle (l0,l1,l2) against target x. err is
// eikerr.ErrDegenerate if the base simplex is degenerate, if any corner
// jet is a point source, or if the resulting ray points upwind of a
// corner gradient (candidate must be discarded in all three cases), or
// eikerr.ErrNonConvergent if the iteration budget was
// exhausted (candidate is still usable, per spec §7, but the occurrence
// must be counted by the caller).
func threePointCandidate(x geom.Vec3, l0, l1, l2 int, p0, p1, p2 geom.Vec3, j0, j1, j2 Jet, tol float64, opts Options) (faceCandidate, int, error) {
	if j0.Point || j1.Point || j2.Point {
		return faceCandidate{}, 0, eikerr.ErrDegenerate
	}
	if geom.Coplanar(x, p0, p1, p2, opts.CoplanarTol) {
		return faceCandidate{}, 0, eikerr.ErrDegenerate
	}

	tri := bezier.NewTriangle(p0, p1, p2, j0.F, j1.F, j2.F, j0.Df, j1.Df, j2.Df)

	lam := geom.Vec2{1.0 / 3.0, 1.0 / 3.0}
	var f float64
	var grad geom.Vec2
	var converged bool
	iters := 0

	for iter := 0; iter < opts.MaxNewtonIter; iter++ {
		iters = iter + 1
		var hess geom.Mat2
		f, grad, hess = faceObjective(x, p0, p1, p2, tri, lam)
		hess = repairPSD(hess)

		g := geom.Vec2{grad[0] - (hess[0][0]*lam[0] + hess[0][1]*lam[1]), grad[1] - (hess[1][0]*lam[0] + hess[1][1]*lam[1])}
		lamQP := solveTriangleQP(hess, g)
		d := geom.Vec2{lamQP[0] - lam[0], lamQP[1] - lam[1]}
		if math.Hypot(d[0], d[1]) <= tol {
			converged = true
			break
		}

		beta := 1.0
		dirDeriv := grad[0]*d[0] + grad[1]*d[1]
		for {
			trial := geom.Vec2{lam[0] + beta*d[0], lam[1] + beta*d[1]}
			fTrial, _, _ := faceObjective(x, p0, p1, p2, tri, trial)
			if fTrial <= f+beta*opts.ArmijoC1*dirDeriv+opts.ArmijoAtol || beta < 1e-12 {
				lam = trial
				break
			}
			beta *= opts.ArmijoShrink
		}
	}

	b := geom.Bary2(lam).ToBary3()
	q := p0.Scale(b[0]).Add(p1.Scale(b[1])).Add(p2.Scale(b[2]))
	dir, length := x.Sub(q).Normalize()

	// backward-ray rejection: reject upwind candidates (spec §4.E).
	for _, pj := range []Jet{j0, j1, j2} {
		if dir.Dot(pj.Df) <= 0 {
			return faceCandidate{}, iters, eikerr.ErrDegenerate
		}
	}

	interior := isInterior(lam, grad, opts.LagrangeTol)

	cand := faceCandidate{
		l0: l0, l1: l1, l2: l2,
		jet:      Jet{F: length + tri.F(b), Df: dir},
		par:      threePoint(l0, l1, l2, b[0], b[1], b[2]),
		lam:      lam,
		interior: interior,
	}

	if !converged {
		return cand, iters, eikerr.ErrNonConvergent
	}
	return cand, iters, nil
}

// isInterior implements the Lagrange-multiplier interior-point test of
// spec §4.E: the minimizer is interior iff the multipliers of all three
// simplex constraints are <= tol in magnitude. At a boundary, the
// multiplier of the active constraint is read off the gradient component
// driving into that boundary.
func isInterior(lam geom.Vec2, grad geom.Vec2, tol float64) bool {
	b0 := 1 - lam[0] - lam[1]
	const eps = 1e-12
	switch {
	case lam[0] <= eps && lam[1] <= eps: // corner b0=1 (lambda=(0,0))
		return math.Abs(grad[0]) <= tol && math.Abs(grad[1]) <= tol
	case b0 <= eps && lam[1] <= eps: // corner b1=1 (lambda=(1,0))
		return math.Abs(grad[0]) <= tol && math.Abs(grad[1]) <= tol
	case b0 <= eps && lam[0] <= eps: // corner b2=1 (lambda=(0,1))
		return math.Abs(grad[0]) <= tol && math.Abs(grad[1]) <= tol
	case lam[0] <= eps: // edge lambda1=0
		return math.Abs(grad[0]) <= tol
	case lam[1] <= eps: // edge lambda2=0
		return math.Abs(grad[1]) <= tol
	case b0 <= eps: // edge lambda1+lambda2=1
		return math.Abs(grad[0]+grad[1]) <= tol
	default:
		return true
	}
}
