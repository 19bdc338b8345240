// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Bary3 is a barycentric triple (b0, b1, b2) on the 2-simplex.
type Bary3 [3]float64

// Valid asserts b_i >= -eps and |sum(b) - 1| <= eps.
func (b Bary3) Valid(eps float64) bool {
	if b[0] < -eps || b[1] < -eps || b[2] < -eps {
		return false
	}
	sum := NeumaierSum(b[0], b[1], b[2])
	return math.Abs(sum-1) <= eps
}

// Bary2 holds the two free parameters lambda = (b1, b2) of the face update,
// with b0 = 1 - b1 - b2 implicit.
type Bary2 Vec2

// ToBary3 expands lambda into the full barycentric triple.
func (l Bary2) ToBary3() Bary3 {
	return Bary3{1 - l[0] - l[1], l[0], l[1]}
}

// Coplanar reports whether x and the three points p0, p1, p2 are coplanar,
// using the triple scalar product of edge vectors from p0 relative to the
// tetrahedron's characteristic length scale (relative tolerance).
func Coplanar(x, p0, p1, p2 Vec3, relTol float64) bool {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	e3 := x.Sub(p0)
	vol6 := e3.Dot(e1.Cross(e2))
	scale := e1.Norm() * e2.Norm() * e3.Norm()
	if scale == 0 {
		return true
	}
	return math.Abs(vol6)/scale <= relTol
}
