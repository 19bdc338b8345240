// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xfer

import (
	"testing"

	"github.com/cpmech/eik3/geom"
	"github.com/cpmech/gosl/chk"
)

func TestSample_exactAtVertex(tst *testing.T) {

	chk.PrintTitle("Sample_exactAtVertex")

	verts := []geom.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	values := []float64{1, 2, 3, 4}

	grid := Sample(verts, values, geom.Vec3{0, 0, 0}, 1, [3]int{2, 1, 1})
	chk.Scalar(tst, "grid[0][0][0]", 1e-12, grid[0][0][0], 1)
	chk.Scalar(tst, "grid[1][0][0]", 1e-12, grid[1][0][0], 2)
}

func TestSample_smoothBetweenVertices(tst *testing.T) {

	chk.PrintTitle("Sample_smoothBetweenVertices")

	verts := []geom.Vec3{{0, 0, 0}, {10, 0, 0}}
	values := []float64{0, 10}

	grid := Sample(verts, values, geom.Vec3{0, 0, 0}, 1, [3]int{11, 1, 1})
	mid := grid[5][0][0]
	if mid < 0.1 || mid > 9.9 {
		tst.Errorf("midpoint sample %g should lie strictly between the two vertex values", mid)
	}
}
