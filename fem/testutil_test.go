// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/KMI020908/nonlocal/inp"
	"github.com/KMI020908/nonlocal/shp"
)

// buildUnitSquareMesh builds an n×n bilinear-quad mesh over [0,1]×[0,1],
// tagging the four edges {bottom,right,top,left} with tags {-1,-2,-3,-4}
// (quad4's FaceLocalVerts order), the same construction ana.BuildUnitSquareMesh
// uses for the end-to-end scenarios — duplicated here rather than imported
// to avoid a fem<->ana import cycle (ana imports fem, never the reverse).
func buildUnitSquareMesh(n int) *inp.Mesh {
	m := &inp.Mesh{Xmin: 0, Xmax: 1, Ymin: 0, Ymax: 1}
	node := func(ix, iy int) int { return iy*(n+1) + ix }

	for iy := 0; iy <= n; iy++ {
		for ix := 0; ix <= n; ix++ {
			m.Verts = append(m.Verts, &inp.Vert{
				Id: node(ix, iy),
				C:  []float64{float64(ix) / float64(n), float64(iy) / float64(n)},
			})
		}
	}

	s := shp.Get("quad4", 0)
	id := 0
	for cy := 0; cy < n; cy++ {
		for cx := 0; cx < n; cx++ {
			v0, v1 := node(cx, cy), node(cx+1, cy)
			v2, v3 := node(cx+1, cy+1), node(cx, cy+1)
			ftags := []int{0, 0, 0, 0}
			if cy == 0 {
				ftags[0] = -1
			}
			if cx == n-1 {
				ftags[1] = -2
			}
			if cy == n-1 {
				ftags[2] = -3
			}
			if cx == 0 {
				ftags[3] = -4
			}
			m.Cells = append(m.Cells, &inp.Cell{
				Id: id, Tag: 1, Type: "quad4",
				Verts: []int{v0, v1, v2, v3}, FTags: ftags,
				Shp: s,
			})
			id++
		}
	}

	m.CellTag2cells = map[int][]*inp.Cell{1: m.Cells}
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

// quadraticDirichletBC attaches u=x²+y² as a TEMPERATURE condition on all
// four edges.
func quadraticDirichletBC(mesh *inp.Mesh) {
	bc := &inp.BoundaryCond{Kind: inp.TEMPERATURE, Fx: testQuadratic{}}
	tag2bc := map[int]*inp.BoundaryCond{-1: bc, -2: bc, -3: bc, -4: bc}
	for _, c := range mesh.Cells {
		c.SetFaceConds(tag2bc)
	}
}

type testQuadratic struct{}

func (testQuadratic) F(t float64, x []float64) float64   { return x[0]*x[0] + x[1]*x[1] }
func (testQuadratic) G(t float64, x []float64) []float64 { return []float64{2 * x[0], 2 * x[1]} }
func (testQuadratic) H(t float64, x []float64) [][]float64 {
	return [][]float64{{2, 0}, {0, 2}}
}

func scalarMatDb(p1 float64, influence string, radius float64) *inp.MatDb {
	m := &inp.Material{
		Name: "m1", Tag: 1,
		Model: inp.NonlocalModel{
			Influence: influence, LocalWeight: p1,
			NonlocalRadius: []float64{radius},
		},
		Physical: inp.Physical{Conductivity: 1.0},
	}
	return inp.NewMatDb([]*inp.Material{m})
}
