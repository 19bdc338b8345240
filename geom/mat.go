// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Mat3 is a fixed-size 3x3 matrix stored row-major, Mat3[row][col].
type Mat3 [3][3]float64

// Cols builds the matrix whose ROWS are a, b, c — used to assemble the
// 3x3 "X" matrix of the face update (§4.E) from three vertex positions.
func Cols(a, b, c Vec3) Mat3 {
	return Mat3{
		{a[0], a[1], a[2]},
		{b[0], b[1], b[2]},
		{c[0], c[1], c[2]},
	}
}

// Transpose returns the transpose of m.
func (m Mat3) Transpose() Mat3 {
	var t Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[j][i] = m[i][j]
		}
	}
	return t
}

// MulVec returns m*v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	var r Vec3
	for i := 0; i < 3; i++ {
		r[i] = NeumaierSum(m[i][0]*v[0], m[i][1]*v[1], m[i][2]*v[2])
	}
	return r
}

// Mat2 is a symmetric or general 2x2 matrix, Mat2[row][col].
type Mat2 [2][2]float64

// Vec2 is a fixed-size 2-vector, used for the free barycentric parameters
// lambda = (b1, b2) of the face update.
type Vec2 [2]float64

// EigSym2 returns the eigenvalues of a symmetric 2x2 matrix in ascending
// order, computed from the trace/determinant closed form required by the
// Hessian-repair step of the projected Newton iteration (§4.E step 2).
func (m Mat2) EigSym2() (lo, hi float64) {
	tr := m[0][0] + m[1][1]
	det := m[0][0]*m[1][1] - m[0][1]*m[1][0]
	disc := tr*tr/4 - det
	if disc < 0 {
		disc = 0
	}
	sq := math.Sqrt(disc)
	mid := tr / 2
	lo, hi = mid-sq, mid+sq
	if lo > hi {
		lo, hi = hi, lo
	}
	return
}

// ShiftDiag adds s to both diagonal entries of m, returning the result.
func (m Mat2) ShiftDiag(s float64) Mat2 {
	o := m
	o[0][0] += s
	o[1][1] += s
	return o
}

// MulVec2 returns m*v for a 2x2 matrix and 2-vector.
func (m Mat2) MulVec2(v Vec2) Vec2 {
	return Vec2{
		m[0][0]*v[0] + m[0][1]*v[1],
		m[1][0]*v[0] + m[1][1]*v[1],
	}
}
