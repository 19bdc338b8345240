// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshtest

import "github.com/cpmech/eik3/geom"

// UnitCube builds the 8-vertex, 6-tetrahedron decomposition of the unit
// cube [0,1]^3 used by the solver's property tests (spec §8, scenarios
// 8-11): the 6 tets fan around the main diagonal 0-6.
func UnitCube(faceTol float64) *Mesh {
	verts := []geom.Vec3{
		{0, 0, 0}, // 0
		{1, 0, 0}, // 1
		{1, 1, 0}, // 2
		{0, 1, 0}, // 3
		{0, 0, 1}, // 4
		{1, 0, 1}, // 5
		{1, 1, 1}, // 6
		{0, 1, 1}, // 7
	}
	cells := [][4]int{
		{0, 1, 2, 6},
		{0, 2, 3, 6},
		{0, 3, 7, 6},
		{0, 7, 4, 6},
		{0, 4, 5, 6},
		{0, 5, 1, 6},
	}
	boundary := make([]bool, 8)
	for i := range boundary {
		boundary[i] = true // every corner of a single unit cube is on its boundary
	}
	return New(verts, cells, boundary, faceTol)
}
