// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bezier

import (
	"testing"

	"github.com/cpmech/eik3/geom"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

func sampleTriangle() (*Triangle, geom.Vec3, geom.Vec3, geom.Vec3) {
	p0 := geom.Vec3{0, 0, 0}
	p1 := geom.Vec3{1, 0, 0}
	p2 := geom.Vec3{0, 1, 0}
	f0, f1, f2 := 1.0, 1.4, 1.2
	g0 := geom.Vec3{0.3, 0.1, 0}
	g1 := geom.Vec3{0.2, 0.4, 0}
	g2 := geom.Vec3{0.1, 0.2, 0}
	t := NewTriangle(p0, p1, p2, f0, f1, f2, g0, g1, g2)
	return t, p0, p1, p2
}

func TestTriangle_corners(tst *testing.T) {

	chk.PrintTitle("Triangle_corners (Hermite interpolation)")

	t, _, _, _ := sampleTriangle()
	chk.Scalar(tst, "F(1,0,0)", 1e-14, t.F(geom.Bary3{1, 0, 0}), 1.0)
	chk.Scalar(tst, "F(0,1,0)", 1e-14, t.F(geom.Bary3{0, 1, 0}), 1.4)
	chk.Scalar(tst, "F(0,0,1)", 1e-14, t.F(geom.Bary3{0, 0, 1}), 1.2)
}

func TestTriangle_Df(tst *testing.T) {

	chk.PrintTitle("Triangle_Df (directional derivative vs finite differences)")

	t, _, _, _ := sampleTriangle()
	b0 := geom.Bary3{0.3, 0.4, 0.3}
	a := geom.Bary3{-1, 1, 0} // sum(a) == 0

	ana := t.Df(b0, a)
	num_, err := num.DerivCentral(func(h float64, args ...interface{}) float64 {
		b := geom.Bary3{b0[0] + h*a[0], b0[1] + h*a[1], b0[2] + h*a[2]}
		return t.F(b)
	}, 0, 1e-3)
	if err != nil {
		tst.Fatalf("DerivCentral failed: %v", err)
	}
	utl.CheckAnaNum(tst, "dF/da", 1e-8, ana, num_, true)
}

func TestTriangle_D2f(tst *testing.T) {

	chk.PrintTitle("Triangle_D2f (second directional derivative vs finite differences)")

	t, _, _, _ := sampleTriangle()
	b0 := geom.Bary3{0.3, 0.4, 0.3}
	a1 := geom.Bary3{-1, 1, 0}
	a2 := geom.Bary3{-1, 0, 1}

	ana := t.D2f(b0, a1, a2)
	num_, err := num.DerivCentral(func(h float64, args ...interface{}) float64 {
		b := geom.Bary3{b0[0] + h*a1[0], b0[1] + h*a1[1], b0[2] + h*a1[2]}
		return t.Df(b, a2)
	}, 0, 1e-3)
	if err != nil {
		tst.Fatalf("DerivCentral failed: %v", err)
	}
	utl.CheckAnaNum(tst, "d2F/da1da2", 1e-7, ana, num_, true)
}
