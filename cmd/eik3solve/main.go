// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// eik3solve is a minimal example driver: it solves the eikonal equation
// from a single point source over the unit-cube test mesh and prints the
// resulting arrival times, the same way gofem's tools/ drivers wrap a
// library call behind a flag-parsed CLI.
package main

import (
	"flag"

	"github.com/cpmech/eik3/eikonal"
	"github.com/cpmech/eik3/meshtest"
	"github.com/cpmech/eik3/vtkio"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// utlLogger routes solver progress messages through gosl/utl's colored Pf
// family, gated by Silent the same way msolid.Driver gates its own Pf
// calls.
type utlLogger struct {
	Silent bool
}

func (l utlLogger) Logf(format string, a ...interface{}) {
	if l.Silent {
		return
	}
	utl.Pfcyan(format, a...)
}

func main() {

	source := flag.Int("source", 0, "vertex id of the point source")
	faceTol := flag.Float64("facetol", 1e-9, "Newton convergence tolerance for face updates")
	silent := flag.Bool("silent", false, "suppress progress logging")
	vtu := flag.String("vtu", "", "optional path to write the solved field as a VTU file")
	flag.Parse()

	mesh := meshtest.UnitCube(*faceTol)
	if *source < 0 || *source >= mesh.NVerts() {
		utl.Panic("source vertex %d is out of range [0,%d)", *source, mesh.NVerts())
	}

	s := eikonal.NewSolver(mesh, eikonal.DefaultOptions())
	s.Logger = utlLogger{Silent: *silent}
	s.AddValid(*source, eikonal.PointSourceJet(0))
	s.Solve()

	io.Pf("\nvertex       x            y            z         f(x)\n")
	for l := 0; l < mesh.NVerts(); l++ {
		x := mesh.Vert(l)
		io.Pf("%6d  %10.4f  %10.4f  %10.4f  %12.6f\n", l, x[0], x[1], x[2], s.GetJet(l).F)
	}

	io.Pf("\naccepted=%d degenerate=%d non_convergent=%d max_newton=%d\n",
		s.Stats.Accepted, s.Stats.Degenerate, s.Stats.NonConvergent, s.Stats.MaxNewtonObserved)

	if *vtu != "" {
		values := make([]float64, mesh.NVerts())
		for l := range values {
			values[l] = s.GetJet(l).F
		}
		vtkio.WriteVTU(*vtu, "T", mesh.Verts(), mesh.Cells(), values)
		io.Pf("wrote %s\n", *vtu)
	}
}
