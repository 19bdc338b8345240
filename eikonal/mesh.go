// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eikonal

import "github.com/cpmech/eik3/geom"

// Mesh is the read-only collaborator the solver requires. The mesh
// container itself (coordinates, connectivity, tolerance derivation) is
// out of scope for this module — production code supplies its own
// implementation; meshtest provides one for tests and the example binary.
type Mesh interface {
	// NVerts returns the total vertex count.
	NVerts() int
	// NCells returns the total cell (tetrahedron) count.
	NCells() int
	// Vert returns the ambient coordinates of vertex l.
	Vert(l int) geom.Vec3
	// VV returns the unique vertex ids sharing an edge with l.
	VV(l int) []int
	// VF returns the triples of vertex ids forming faces incident on l.
	VF(l int) [][3]int
	// EC returns the cell ids containing edge (l0, l1).
	EC(l0, l1 int) []int
	// CV returns the 4 vertex ids of cell c.
	CV(c int) [4]int
	// BDV reports whether l lies on the mesh boundary.
	BDV(l int) bool
	// FaceTol returns the Newton-convergence tolerance for face (l0,l1,l2).
	FaceTol(l0, l1, l2 int) float64
}
