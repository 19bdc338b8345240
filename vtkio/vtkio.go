// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package vtkio writes a solved eikonal field out as a VTK XML
// unstructured grid (.vtu), the same buffer-then-io.WriteFile structure
// gofem's tools/GenVtu.go uses for its own simulation output.
package vtkio

import (
	"bytes"

	"github.com/cpmech/eik3/geom"
	"github.com/cpmech/gosl/io"
)

// vtkTetra is the VTK cell-type code for a 4-node tetrahedron (vtkCellType
// enum value 10), the same constant gofem's shp package registers against
// tet4.VtkCode.
const vtkTetra = 10

// WriteVTU writes verts/cells (4-vertex tetrahedra) plus one scalar point
// field named fieldName to path.
func WriteVTU(path, fieldName string, verts []geom.Vec3, cells [][4]int, values []float64) {
	var hdr, points, conn, data, foo bytes.Buffer

	io.Ff(&hdr, "<?xml version=\"1.0\"?>\n<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n<UnstructuredGrid>\n")
	io.Ff(&hdr, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", len(verts), len(cells))

	io.Ff(&points, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, v := range verts {
		io.Ff(&points, "%23.15e %23.15e %23.15e ", v[0], v[1], v[2])
	}
	io.Ff(&points, "\n</DataArray>\n</Points>\n")

	io.Ff(&conn, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for _, c := range cells {
		io.Ff(&conn, "%d %d %d %d ", c[0], c[1], c[2], c[3])
	}
	io.Ff(&conn, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	offset := 0
	for range cells {
		offset += 4
		io.Ff(&conn, "%d ", offset)
	}
	io.Ff(&conn, "\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	for range cells {
		io.Ff(&conn, "%d ", vtkTetra)
	}
	io.Ff(&conn, "\n</DataArray>\n</Cells>\n")

	io.Ff(&data, "<PointData Scalars=\"%s\">\n<DataArray type=\"Float64\" Name=\"%s\" NumberOfComponents=\"1\" format=\"ascii\">\n", fieldName, fieldName)
	for _, f := range values {
		io.Ff(&data, "%23.15e ", f)
	}
	io.Ff(&data, "\n</DataArray>\n</PointData>\n")

	io.Ff(&foo, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")

	io.WriteFile(path, &hdr, &points, &conn, &data, &foo)
}
