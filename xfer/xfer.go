// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package xfer implements a minimal grid-transfer sampler: it projects a
// solved eikonal field onto a Cartesian grid via inverse-distance
// weighting. The real transfer operator (mesh-topology-aware,
// containing-cell location + barycentric interpolation) is out of scope
// for this module (spec §1); this is a self-contained stand-in that is
// enough to exercise the "sample onto a grid" concern in tests. The
// example binary cmd/eik3solve does not use it.
package xfer

import (
	"math"

	"github.com/cpmech/eik3/geom"
)

// Power is the inverse-distance weighting exponent.
const Power = 2

// Sample interpolates values[i] (defined at vertices[i]) onto a regular
// grid of dims[0] x dims[1] x dims[2] points starting at origin with
// uniform spacing. A grid point that coincides with a source vertex
// (within 1e-12) takes that vertex's value exactly.
func Sample(vertices []geom.Vec3, values []float64, origin geom.Vec3, spacing float64, dims [3]int) [][][]float64 {
	out := make([][][]float64, dims[0])
	for i := 0; i < dims[0]; i++ {
		out[i] = make([][]float64, dims[1])
		for j := 0; j < dims[1]; j++ {
			out[i][j] = make([]float64, dims[2])
			for k := 0; k < dims[2]; k++ {
				p := geom.Vec3{
					origin[0] + float64(i)*spacing,
					origin[1] + float64(j)*spacing,
					origin[2] + float64(k)*spacing,
				}
				out[i][j][k] = idw(vertices, values, p)
			}
		}
	}
	return out
}

func idw(vertices []geom.Vec3, values []float64, p geom.Vec3) float64 {
	var wsum, vsum float64
	for i, v := range vertices {
		d := p.Sub(v).Norm()
		if d < 1e-12 {
			return values[i]
		}
		w := 1.0 / math.Pow(d, Power)
		wsum += w
		vsum += w * values[i]
	}
	if wsum == 0 {
		return 0
	}
	return vsum / wsum
}
