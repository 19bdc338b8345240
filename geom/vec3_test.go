// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestVec3_01(tst *testing.T) {

	chk.PrintTitle("Vec3_01 (arithmetic)")

	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	chk.Vector(tst, "a+b", a.Add(b)[:], []float64{5, 7, 9})
	chk.Vector(tst, "a-b", a.Sub(b)[:], []float64{-3, -3, -3})
	chk.Vector(tst, "2a", a.Scale(2)[:], []float64{2, 4, 6})
	chk.Scalar(tst, "a.b", 1e-15, a.Dot(b), 32)
	chk.Vector(tst, "axb", a.Cross(b)[:], []float64{-3, 6, -3})

	n, l := Vec3{3, 4, 0}.Normalize()
	chk.Scalar(tst, "|v|", 1e-15, l, 5)
	chk.Vector(tst, "v/|v|", n[:], []float64{0.6, 0.8, 0})
}

func TestVec3_02(tst *testing.T) {

	chk.PrintTitle("Vec3_02 (point-source sentinel)")

	v := NaNVec3()
	if !v.IsNaN() {
		tst.Error("NaNVec3 should report IsNaN true")
	}

	z, l := Vec3{}.Normalize()
	chk.Scalar(tst, "|0|", 1e-15, l, 0)
	chk.Vector(tst, "0/|0|", z[:], []float64{0, 0, 0})
}

func TestNeumaierSum(tst *testing.T) {

	chk.PrintTitle("NeumaierSum (compensated summation)")

	sum := NeumaierSum(1e16, 1, -1e16)
	chk.Scalar(tst, "1e16+1-1e16", 1e-9, sum, 1)

	naive := 1e16 + 1 - 1e16
	if naive == 1 {
		tst.Log("note: naive summation happened to be exact on this platform too")
	}

	if math.IsNaN(sum) {
		tst.Fatal("NeumaierSum returned NaN")
	}
}
