// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eikonal

import (
	"math"
	"testing"

	"github.com/cpmech/eik3/geom"
	"github.com/cpmech/eik3/meshtest"
	"github.com/cpmech/gosl/chk"
)

func TestSolver_pointSourceUnitCube(tst *testing.T) {

	chk.PrintTitle("Solver_pointSourceUnitCube (straight-ray exactness)")

	mesh := meshtest.UnitCube(1e-9)
	s := NewSolver(mesh, DefaultOptions())
	s.AddValid(0, PointSourceJet(0))
	s.Solve()

	origin := mesh.Vert(0)
	for l := 1; l < mesh.NVerts(); l++ {
		if !s.IsValid(l) {
			tst.Fatalf("vertex %d should be VALID after Solve", l)
		}
		want := mesh.Vert(l).Sub(origin).Norm()
		got := s.GetJet(l).F
		chk.Scalar(tst, "f", 1e-9, got, want)
	}
}

func TestSolver_solveTwiceIsNoOp(tst *testing.T) {

	chk.PrintTitle("Solver_solveTwiceIsNoOp")

	mesh := meshtest.UnitCube(1e-9)
	s := NewSolver(mesh, DefaultOptions())
	s.AddValid(0, PointSourceJet(0))
	s.Solve()

	jets := make([]Jet, mesh.NVerts())
	for l := range jets {
		jets[l] = s.GetJet(l)
	}

	s.Solve() // heap is empty: this must be a no-op
	// compare bit patterns: the point source's Df is all-NaN, and NaN != NaN.
	sameBits := func(a, b float64) bool { return math.Float64bits(a) == math.Float64bits(b) }
	for l := range jets {
		got := s.GetJet(l)
		same := got.Point == jets[l].Point && sameBits(got.F, jets[l].F)
		for i := 0; i < 3; i++ {
			same = same && sameBits(got.Df[i], jets[l].Df[i])
		}
		if !same {
			tst.Fatalf("vertex %d jet changed across a second Solve call", l)
		}
	}
}

func TestSolver_monotoneAcceptance(tst *testing.T) {

	chk.PrintTitle("Solver_monotoneAcceptance")

	mesh := meshtest.UnitCube(1e-9)
	s := NewSolver(mesh, DefaultOptions())
	s.AddValid(0, PointSourceJet(0))

	last := -math.MaxFloat64
	for s.heap.Size() > 0 {
		l := s.Step()
		f := s.GetJet(l).F
		if f < last-1e-12 {
			tst.Fatalf("acceptance order not monotone: vertex %d accepted at %g after %g", l, f, last)
		}
		last = f
	}
}

func TestSolver_planarSource(tst *testing.T) {

	chk.PrintTitle("Solver_planarSource (z=0 face all VALID point sources)")

	mesh := meshtest.UnitCube(1e-9)
	s := NewSolver(mesh, DefaultOptions())
	// vertices 0,1,2,3 form the z=0 face of the unit cube.
	for _, l := range []int{0, 1, 2, 3} {
		s.AddValid(l, PointSourceJet(0))
	}
	s.Solve()

	for _, l := range []int{4, 5, 6, 7} {
		got := s.GetJet(l).F
		want := mesh.Vert(l)[2] // distance to the z=0 plane
		if got > want+1e-9 {
			tst.Errorf("vertex %d: f=%g exceeds the planar lower bound %g", l, got, want)
		}
	}
}

func TestSolver_addValidOnTrialPanics(tst *testing.T) {

	chk.PrintTitle("Solver_addValidOnTrialPanics (broken caller contract)")

	defer func() {
		if r := recover(); r == nil {
			tst.Fatal("expected AddValid on a TRIAL vertex to panic")
		}
	}()

	mesh := meshtest.UnitCube(1e-9)
	s := NewSolver(mesh, DefaultOptions())
	s.AddTrial(1, Jet{F: 1})
	s.AddValid(1, PointSourceJet(0))
}

func TestSolver_parentBarycentricNormalization(tst *testing.T) {

	chk.PrintTitle("Solver_parentBarycentricNormalization")

	mesh := meshtest.UnitCube(1e-9)
	s := NewSolver(mesh, DefaultOptions())
	s.AddValid(0, PointSourceJet(0))
	s.Solve()

	for l := 1; l < mesh.NVerts(); l++ {
		par := s.GetPar(l)
		sum := 0.0
		nActive := 0
		for i := 0; i < 3; i++ {
			if par.L[i] != NoParent {
				nActive++
				sum += par.B[i]
			}
		}
		if nActive == 0 {
			tst.Errorf("vertex %d has no active parent slot", l)
			continue
		}
		if math.Abs(sum-1) > 1e-9 {
			tst.Errorf("vertex %d: parent barycentric coefficients sum to %g, want 1", l, sum)
		}
	}
}

func TestOnePointUpdate_straightRay(tst *testing.T) {

	chk.PrintTitle("OnePointUpdate_straightRay")

	x0 := geom.Vec3{0, 0, 0}
	x := geom.Vec3{3, 4, 0}
	jet0 := PointSourceJet(2)
	jet := onePointUpdate(x, x0, jet0)
	chk.Scalar(tst, "F", 1e-14, jet.F, 7)
	chk.Vector(tst, "Df", jet.Df[:], []float64{0.6, 0.8, 0})
}
