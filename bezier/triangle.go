// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bezier implements the cubic Bezier-triangle interpolant used to
// represent T (and its derivatives) over the base face of a three-point
// update. The construction matches per-vertex value + gradient Hermite
// data, the same way the retrieved jmm core builds its "bb32" patch from
// (T, DT, Xt) before running the face-update Newton iteration.
package bezier

import "github.com/cpmech/eik3/geom"

// degree-3 control-point multi-indices (i, j, k), i+j+k == 3, in the
// fixed layout this package uses internally.
var deg3 = [10][3]int{
	{3, 0, 0}, {0, 3, 0}, {0, 0, 3},
	{2, 1, 0}, {1, 2, 0}, {0, 2, 1},
	{0, 1, 2}, {1, 0, 2}, {2, 0, 1},
	{1, 1, 1},
}

// Triangle is a cubic Bezier patch over the 2-simplex, carrying the 10
// control coefficients b_ijk (i+j+k=3) indexed in deg3 order.
type Triangle struct {
	c [10]float64
}

func factorial(n int) float64 {
	r := 1.0
	for i := 2; i <= n; i++ {
		r *= float64(i)
	}
	return r
}

func bernstein(n int, ijk [3]int) float64 {
	return factorial(n) / (factorial(ijk[0]) * factorial(ijk[1]) * factorial(ijk[2]))
}

// NewTriangle builds the 10 control coefficients from corner values f0,f1,f2,
// corner ambient gradients g0,g1,g2, and corner positions p0,p1,p2.
//
// Edge control points use the standard C1 Hermite construction: the point
// nearest corner i along the edge towards corner j is f_i plus a third of
// the directional derivative of f at i along (p_j - p_i). The center point
// is the average of the three edge-consistent choices, which reduces to a
// closed form in terms of the six edge points and the three corner values.
func NewTriangle(p0, p1, p2 geom.Vec3, f0, f1, f2 float64, g0, g1, g2 geom.Vec3) *Triangle {
	d := func(gi geom.Vec3, pi, pj geom.Vec3) float64 { return gi.Dot(pj.Sub(pi)) }

	b300, b030, b003 := f0, f1, f2
	b210 := f0 + d(g0, p0, p1)/3
	b120 := f1 + d(g1, p1, p0)/3
	b021 := f1 + d(g1, p1, p2)/3
	b012 := f2 + d(g2, p2, p1)/3
	b102 := f2 + d(g2, p2, p0)/3
	b201 := f0 + d(g0, p0, p2)/3

	b111 := (b210+b120+b021+b012+b102+b201)/4 - (f0+f1+f2)/6

	t := &Triangle{}
	t.c = [10]float64{b300, b030, b003, b210, b120, b021, b012, b102, b201, b111}
	return t
}

func (t *Triangle) coeff(ijk [3]int) float64 {
	for n, m := range deg3 {
		if m == ijk {
			return t.c[n]
		}
	}
	panic("bezier: invalid multi-index")
}

// F returns the interpolated value T(b) at barycentric coordinates b.
func (t *Triangle) F(b geom.Bary3) float64 {
	var terms [10]float64
	for n, ijk := range deg3 {
		terms[n] = bernstein(3, ijk) * pow(b[0], ijk[0]) * pow(b[1], ijk[1]) * pow(b[2], ijk[2]) * t.c[n]
	}
	return geom.NeumaierSum(terms[:]...)
}

// reduce applies one directional-difference step along a (sum(a)=0) to a
// degree-n control net indexed by idx, returning the degree-(n-1) net.
func reduce(coeff func([3]int) float64, a geom.Bary3, idx [][3]int) map[[3]int]float64 {
	out := make(map[[3]int]float64, len(idx))
	for _, ijk := range idx {
		out[ijk] = a[0]*coeff(addOne(ijk, 0)) + a[1]*coeff(addOne(ijk, 1)) + a[2]*coeff(addOne(ijk, 2))
	}
	return out
}

func addOne(ijk [3]int, axis int) [3]int {
	o := ijk
	o[axis]++
	return o
}

var deg2 = [][3]int{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}, {1, 1, 0}, {0, 1, 1}, {1, 0, 1}}
var deg1 = [][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Df returns the directional derivative of T at b along barycentric
// direction a (sum(a_i) = 0).
func (t *Triangle) Df(b geom.Bary3, a geom.Bary3) float64 {
	d := reduce(t.coeff, a, deg2)
	var terms [6]float64
	for n, ijk := range deg2 {
		terms[n] = bernstein(2, ijk) * pow(b[0], ijk[0]) * pow(b[1], ijk[1]) * pow(b[2], ijk[2]) * d[ijk]
	}
	return 3 * geom.NeumaierSum(terms[:]...)
}

// D2f returns the second directional derivative of T at b along a then a2.
func (t *Triangle) D2f(b geom.Bary3, a, a2 geom.Bary3) float64 {
	d := reduce(t.coeff, a, deg2)
	get := func(ijk [3]int) float64 { return d[ijk] }
	e := reduce(get, a2, deg1)
	// a degree-1 Bezier net evaluates as a plain barycentric combination.
	val := geom.NeumaierSum(b[0]*e[deg1[0]], b[1]*e[deg1[1]], b[2]*e[deg1[2]])
	return 6 * val
}

func pow(x float64, n int) float64 {
	r := 1.0
	for i := 0; i < n; i++ {
		r *= x
	}
	return r
}
