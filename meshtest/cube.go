// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package meshtest implements a minimal in-memory eikonal.Mesh used by
// this module's tests and by cmd/eik3solve. It is explicitly NOT a
// production mesh container — spec §1 places the real mesh container out
// of scope for the solver core; this package exists only to exercise the
// Mesh interface with small, hand-checkable geometries.
package meshtest

import (
	"sort"

	"github.com/cpmech/eik3/geom"
)

// Mesh is a tetrahedral mesh built from an explicit vertex/cell list, with
// vertex-vertex, vertex-face, and edge-cell adjacency precomputed at
// construction time.
type Mesh struct {
	verts   []geom.Vec3
	cells   [][4]int
	vv      [][]int
	vf      [][][3]int
	ec      map[[2]int][]int
	bdv     []bool
	faceTol float64
}

// New builds a Mesh from an explicit vertex list, cell (tetrahedron)
// list, and boundary-vertex marker. faceTol is returned verbatim by
// FaceTol for every face — a real mesh would derive this from local
// geometric scale.
func New(verts []geom.Vec3, cells [][4]int, boundary []bool, faceTol float64) *Mesh {
	m := &Mesh{
		verts:   verts,
		cells:   cells,
		bdv:     boundary,
		faceTol: faceTol,
		ec:      map[[2]int][]int{},
	}
	m.vv = make([][]int, len(verts))
	m.vf = make([][][3]int, len(verts))
	vvSeen := make([]map[int]bool, len(verts))
	vfSeen := make([]map[[3]int]bool, len(verts))
	for i := range verts {
		vvSeen[i] = map[int]bool{}
		vfSeen[i] = map[[3]int]bool{}
	}

	faceCombos := [4][3]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}
	edgeCombos := [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

	for ci, c := range cells {
		for _, e := range edgeCombos {
			a, b := c[e[0]], c[e[1]]
			vvSeen[a][b] = true
			vvSeen[b][a] = true
			key := edgeKey(a, b)
			m.ec[key] = append(m.ec[key], ci)
		}
		for _, fc := range faceCombos {
			face := [3]int{c[fc[0]], c[fc[1]], c[fc[2]]}
			for _, v := range face {
				if !vfSeen[v][face] {
					vfSeen[v][face] = true
					m.vf[v] = append(m.vf[v], face)
				}
			}
		}
	}
	for v := range verts {
		for n := range vvSeen[v] {
			m.vv[v] = append(m.vv[v], n)
		}
		sort.Ints(m.vv[v])
	}
	return m
}

func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

func (m *Mesh) NVerts() int { return len(m.verts) }
func (m *Mesh) NCells() int { return len(m.cells) }

func (m *Mesh) Vert(l int) geom.Vec3 { return m.verts[l] }
func (m *Mesh) VV(l int) []int       { return m.vv[l] }
func (m *Mesh) VF(l int) [][3]int    { return m.vf[l] }
func (m *Mesh) EC(l0, l1 int) []int  { return m.ec[edgeKey(l0, l1)] }
func (m *Mesh) CV(c int) [4]int      { return m.cells[c] }
func (m *Mesh) BDV(l int) bool       { return m.bdv[l] }

// Cells returns the full tetrahedron connectivity list, for callers (such
// as vtkio) that need it in bulk rather than one cell at a time via CV.
func (m *Mesh) Cells() [][4]int { return m.cells }

// Verts returns the full vertex coordinate list, for the same bulk-access
// reason as Cells.
func (m *Mesh) Verts() []geom.Vec3 { return m.verts }

func (m *Mesh) FaceTol(l0, l1, l2 int) float64 { return m.faceTol }
