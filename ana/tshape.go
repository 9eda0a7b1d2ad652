// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/KMI020908/nonlocal/inp"
	"github.com/KMI020908/nonlocal/shp"
)

// Boundary tags for BuildTMesh: the two flux faces spec §8 S3 names, a
// third tag shared by every other exterior edge (top, bottom, stem
// sides) left unbound in the BC map so it stays a natural (zero-flux)
// boundary, and a fourth tag on the stem's bottom edge used to pin the
// additive constant a pure-Neumann problem otherwise leaves undetermined.
const (
	TagTLeft   = -1
	TagTRight  = -2
	TagTNoFlux = -3
	TagTPin    = -4
)

// BuildTMesh builds the four-material T-shaped mesh of spec §8 S3: a
// horizontal bar spanning x∈[0,3], y∈[1,2] split into three unit-width
// cells (tags 1,2,3) and a vertical stem spanning x∈[1,2], y∈[0,1]
// (tag 4), one quad4 cell per material region.
//
//	6---7---8---9      y=2
//	|A  |B  |C  |
//	2---3---4---5      y=1
//	    |D  |
//	    0---1          y=0
func BuildTMesh() *inp.Mesh {
	m := &inp.Mesh{Xmin: 0, Xmax: 3, Ymin: 0, Ymax: 2}
	v := func(id int, x, y float64) *inp.Vert { return &inp.Vert{Id: id, C: []float64{x, y}} }
	m.Verts = []*inp.Vert{
		v(0, 1, 0), v(1, 2, 0),
		v(2, 0, 1), v(3, 1, 1), v(4, 2, 1), v(5, 3, 1),
		v(6, 0, 2), v(7, 1, 2), v(8, 2, 2), v(9, 3, 2),
	}

	s := shp.Get("quad4", 0)
	noflux := TagTNoFlux

	cellA := &inp.Cell{Id: 0, Tag: 1, Type: "quad4", Verts: []int{2, 3, 7, 6},
		FTags: []int{noflux, 0, noflux, TagTLeft}, Shp: s}
	cellB := &inp.Cell{Id: 1, Tag: 2, Type: "quad4", Verts: []int{3, 4, 8, 7},
		FTags: []int{0, 0, noflux, 0}, Shp: s}
	cellC := &inp.Cell{Id: 2, Tag: 3, Type: "quad4", Verts: []int{4, 5, 9, 8},
		FTags: []int{noflux, TagTRight, noflux, 0}, Shp: s}
	cellD := &inp.Cell{Id: 3, Tag: 4, Type: "quad4", Verts: []int{0, 1, 4, 3},
		FTags: []int{TagTPin, noflux, 0, noflux}, Shp: s}

	m.Cells = []*inp.Cell{cellA, cellB, cellC, cellD}
	m.CellTag2cells = map[int][]*inp.Cell{1: {cellA}, 2: {cellB}, 3: {cellC}, 4: {cellD}}
	m.Ctype2cells = map[string][]*inp.Cell{"quad4": m.Cells}
	m.FaceTag2cells = make(map[int][]inp.CellFaceId)
	m.FaceTag2verts = make(map[int][]int)
	for _, c := range m.Cells {
		for fid, ftag := range c.FTags {
			if ftag < 0 {
				m.FaceTag2cells[ftag] = append(m.FaceTag2cells[ftag], inp.CellFaceId{C: c, Fid: fid})
			}
		}
	}
	return m
}

// FluxBoundaryCond attaches FLUX=+1 on the left face, FLUX=-1 on the
// right face (spec §8 S3) and TEMPERATURE=0 on the stem's bottom edge to
// pin the otherwise-undetermined additive constant; every other exterior
// edge is left natural.
func FluxBoundaryCond(mesh *inp.Mesh) {
	left := &inp.BoundaryCond{Kind: inp.FLUX, Fx: constSource{1}}
	right := &inp.BoundaryCond{Kind: inp.FLUX, Fx: constSource{-1}}
	pin := &inp.BoundaryCond{Kind: inp.TEMPERATURE, Fx: constSource{0}}
	tag2bc := map[int]*inp.BoundaryCond{TagTLeft: left, TagTRight: right, TagTPin: pin}
	for _, c := range mesh.Cells {
		c.SetFaceConds(tag2bc)
	}
}

// TShapeMatDb builds the four-material conductivity database spec §8 S3
// calls for: heterogeneous isotropic conductivity, purely local (p1=1),
// one material per T-shape region.
func TShapeMatDb() *inp.MatDb {
	conduct := map[int]float64{1: 1.0, 2: 5.0, 3: 2.0, 4: 3.0}
	var materials []*inp.Material
	for tag, k := range conduct {
		materials = append(materials, &inp.Material{
			Name: "m", Tag: tag,
			Model:    inp.NonlocalModel{LocalWeight: 1.0},
			Physical: inp.Physical{Conductivity: k},
		})
	}
	return inp.NewMatDb(materials)
}
