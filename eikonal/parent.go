// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eikonal

// NoParent is the sentinel vertex id for an inactive parent slot.
const NoParent = -1

// ParentRecord is the base simplex and barycentric coordinates that
// produced a vertex's minimizing ray: up to three parent ids and three
// barycentric coefficients summing to 1 over the active slots. One active
// parent is a point-source/degenerate update, two is an edge update,
// three is a face update. Inactive slots carry NoParent / 0.
type ParentRecord struct {
	L [3]int     // parent vertex ids, NoParent in inactive slots
	B [3]float64 // barycentric coefficients, 0 in inactive slots
}

// noParentRecord is the zero-value record for a not-yet-accepted vertex.
func noParentRecord() ParentRecord {
	return ParentRecord{L: [3]int{NoParent, NoParent, NoParent}}
}

// onePoint builds a 1-point (point-source or degenerate) parent record.
func onePoint(l0 int) ParentRecord {
	return ParentRecord{L: [3]int{l0, NoParent, NoParent}, B: [3]float64{1, 0, 0}}
}

// twoPoint builds a 2-point (edge) parent record. Exactly two slots are
// active; the third is left at the sentinel rather than patched after the
// fact (spec §9's redesign of the boundary-update's "b[2]=0" behavior).
func twoPoint(l0, l1 int, b0, b1 float64) ParentRecord {
	return ParentRecord{L: [3]int{l0, l1, NoParent}, B: [3]float64{b0, b1, 0}}
}

// threePoint builds a 3-point (face) parent record.
func threePoint(l0, l1, l2 int, b0, b1, b2 float64) ParentRecord {
	return ParentRecord{L: [3]int{l0, l1, l2}, B: [3]float64{b0, b1, b2}}
}
