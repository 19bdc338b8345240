// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eikonal implements the core of a three-dimensional eikonal
// solver on unstructured tetrahedral meshes: the label-setting front
// scheduler, the two- and three-point local update operators, the
// indexed-heap-backed TRIAL set, and the parent bookkeeping needed to
// transport fields along the minimizing ray after the solve.
//
// Fatal conditions (a broken caller contract, e.g. a duplicate AddValid
// over a TRIAL vertex) are raised via panic with an *eikerr.InvariantError
// rather than returned, mirroring the teacher corpus's chk.Panic/
// utl.Panic convention of aborting loudly at the point of detection.
package eikonal

import "github.com/cpmech/eik3/geom"

// Jet is the eikonal value and propagation direction at a vertex.
type Jet struct {
	F     float64   // T(x): first-arrival time
	Df    geom.Vec3 // unit propagation direction, or all-NaN if Point
	Point bool      // true iff this jet is a point source (Df undefined)
}

// PointSourceJet builds the jet of a point source with arrival time f.
// Per the wire-level convention in spec §6, Df is set to all-NaN so code
// that forgets to check Point still observes the historical sentinel.
func PointSourceJet(f float64) Jet {
	return Jet{F: f, Df: geom.NaNVec3(), Point: true}
}
