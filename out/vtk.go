// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out writes post-processed fields (spec §6's "result sinks") to
// formats downstream tools read: VTK unstructured grids for visualization,
// and CSV for tabular post-analysis. Grounded on tools/Msh2vtu.go's
// buffer-and-write shape, generalized from a mesh-only dump to one that
// also carries the solver's nodal solution and post-processed fields.
package out

import (
	"bytes"

	"github.com/KMI020908/nonlocal/inp"

	"github.com/cpmech/gosl/io"
)

// Scalars names one scalar point-data array to embed in the VTU file.
type Scalars struct {
	Name string
	Vals []float64
}

// Vectors names one 2-component (or 3-component, c set to a 3-vec with a
// zero z) vector point-data array.
type Vectors struct {
	Name string
	Vals [][]float64 // len(mesh.Verts), each len 2 or 3
}

// WriteVTK writes a .vtu unstructured grid of mesh's geometry with the
// given scalar and vector point-data fields (spec's post-processing
// output step). Mirrors tools/Msh2vtu.go's header/geometry/data buffer
// assembly almost verbatim, generalized to accept arbitrary result
// fields instead of only the mesh's own ids/tags.
func WriteVTK(dirout, fnkey string, mesh *inp.Mesh, scalars []Scalars, vectors []Vectors) {
	geo := new(bytes.Buffer)
	dat := new(bytes.Buffer)

	writeTopology(geo, mesh)
	writePointData(dat, mesh, scalars, vectors)
	writeCellData(dat, mesh)

	nv := len(mesh.Verts)
	nc := len(mesh.Cells)
	var hdr, foo bytes.Buffer
	io.Ff(&hdr, "<?xml version=\"1.0\"?>\n<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n<UnstructuredGrid>\n")
	io.Ff(&hdr, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", nv, nc)
	io.Ff(&foo, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")
	io.WriteFileVD(dirout, fnkey+".vtu", &hdr, geo, dat, &foo)
}

func writeTopology(buf *bytes.Buffer, mesh *inp.Mesh) {
	io.Ff(buf, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, v := range mesh.Verts {
		io.Ff(buf, "%23.15e %23.15e %23.15e ", v.C[0], v.C[1], 0.0)
	}
	io.Ff(buf, "\n</DataArray>\n</Points>\n")

	io.Ff(buf, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for _, c := range mesh.Cells {
		for _, v := range c.Verts {
			io.Ff(buf, "%d ", v)
		}
	}

	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	var offset int
	for _, c := range mesh.Cells {
		offset += c.Shp.Nverts
		io.Ff(buf, "%d ", offset)
	}

	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	for _, c := range mesh.Cells {
		io.Ff(buf, "%d ", c.Shp.VtkCode)
	}
	io.Ff(buf, "\n</DataArray>\n</Cells>\n")
}

func writePointData(buf *bytes.Buffer, mesh *inp.Mesh, scalars []Scalars, vectors []Vectors) {
	io.Ff(buf, "<PointData Scalars=\"TheScalars\">\n")

	io.Ff(buf, "<DataArray type=\"Int32\" Name=\"nid\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, v := range mesh.Verts {
		io.Ff(buf, "%d ", v.Id)
	}
	io.Ff(buf, "\n</DataArray>\n")

	for _, s := range scalars {
		io.Ff(buf, "<DataArray type=\"Float64\" Name=\"%s\" NumberOfComponents=\"1\" format=\"ascii\">\n", s.Name)
		for _, v := range s.Vals {
			io.Ff(buf, "%23.15e ", v)
		}
		io.Ff(buf, "\n</DataArray>\n")
	}

	for _, vec := range vectors {
		io.Ff(buf, "<DataArray type=\"Float64\" Name=\"%s\" NumberOfComponents=\"3\" format=\"ascii\">\n", vec.Name)
		for _, c := range vec.Vals {
			z := 0.0
			if len(c) > 2 {
				z = c[2]
			}
			io.Ff(buf, "%23.15e %23.15e %23.15e ", c[0], c[1], z)
		}
		io.Ff(buf, "\n</DataArray>\n")
	}

	io.Ff(buf, "</PointData>\n")
}

func writeCellData(buf *bytes.Buffer, mesh *inp.Mesh) {
	io.Ff(buf, "<CellData Scalars=\"TheScalars\">\n")
	io.Ff(buf, "<DataArray type=\"Int32\" Name=\"eid\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, c := range mesh.Cells {
		io.Ff(buf, "%d ", c.Id)
	}
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"tag\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, c := range mesh.Cells {
		io.Ff(buf, "%d ", iabs(c.Tag))
	}
	io.Ff(buf, "\n</DataArray>\n</CellData>\n")
}

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
