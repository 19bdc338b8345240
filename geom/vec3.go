// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geom implements the fixed-size vector/matrix primitives and
// barycentric helpers used by the eikonal solver's local update operators.
package geom

import "math"

// Vec3 is a fixed-size 3-vector in ambient space.
type Vec3 [3]float64

// NaNVec3 returns the all-NaN vector used as the point-source gradient sentinel.
func NaNVec3() Vec3 {
	n := math.NaN()
	return Vec3{n, n, n}
}

// IsNaN returns true if any component of v is NaN.
func (v Vec3) IsNaN() bool {
	return math.IsNaN(v[0]) || math.IsNaN(v[1]) || math.IsNaN(v[2])
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Scale returns a*v.
func (v Vec3) Scale(a float64) Vec3 {
	return Vec3{a * v[0], a * v[1], a * v[2]}
}

// Dot returns the inner product of v and w, compensated per NeumaierSum.
func (v Vec3) Dot(w Vec3) float64 {
	return NeumaierSum(v[0]*w[0], v[1]*w[1], v[2]*w[2])
}

// Cross returns v x w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns (v/L, L) where L = v.Norm(). The pre-normalization
// length is returned alongside the unit vector, mirroring dbl3_normalize.
func (v Vec3) Normalize() (Vec3, float64) {
	l := v.Norm()
	if l == 0 {
		return Vec3{}, 0
	}
	return v.Scale(1 / l), l
}

// NeumaierSum adds terms with Neumaier compensated summation. The face
// update's gradient/Hessian inner products sum terms of opposite sign and
// nearly equal magnitude, so a naive running sum loses precision; spec
// requires a compensated scheme here.
func NeumaierSum(terms ...float64) float64 {
	var sum, c float64
	for _, t := range terms {
		newSum := sum + t
		if math.Abs(sum) >= math.Abs(t) {
			c += (sum - newSum) + t
		} else {
			c += (t - newSum) + sum
		}
		sum = newSum
	}
	return sum + c
}
