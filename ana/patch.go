// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/KMI020908/nonlocal/inp"
	"github.com/KMI020908/nonlocal/shp"

	"github.com/cpmech/gosl/fun"
)

// Boundary tags assigned by BuildUnitSquareMesh to the four edges of the
// unit square, matching quad4's face-local-vertex order {bottom,right,top,left}.
const (
	TagBottom = -1
	TagRight  = -2
	TagTop    = -3
	TagLeft   = -4
)

// BuildUnitSquareMesh builds an n×n bilinear-quad mesh over [0,1]×[0,1]
// (spec §8 S1/S2's mesh), doing in-code what inp.ReadMesh does for a JSON
// file: resolving each cell's shp.Shape and indexing tag maps.
func BuildUnitSquareMesh(n int) *inp.Mesh {
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
				ftags[0] = TagBottom
			}
			if cx == n-1 {
				ftags[1] = TagRight
			}
			if cy == n-1 {
				ftags[2] = TagTop
			}
			if cx == 0 {
				ftags[3] = TagLeft
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

// quadratic implements fun.Func for f(x,y) = x²+y², the S1/S2 reference
// solution (Laplacian = 4, matching the f=-4 source term those scenarios
// require).
type quadratic struct{}

func (quadratic) F(t float64, x []float64) float64   { return x[0]*x[0] + x[1]*x[1] }
func (quadratic) G(t float64, x []float64) []float64 { return []float64{2 * x[0], 2 * x[1]} }
func (quadratic) H(t float64, x []float64) [][]float64 {
	return [][]float64{{2, 0}, {0, 2}}
}

// constSource implements fun.Func for a spatially constant body load.
type constSource struct{ v float64 }

func (c constSource) F(t float64, x []float64) float64     { return c.v }
func (c constSource) G(t float64, x []float64) []float64   { return []float64{0, 0} }
func (c constSource) H(t float64, x []float64) [][]float64 { return [][]float64{{0, 0}, {0, 0}} }

// QuadraticDirichletBC attaches u=x²+y² as a TEMPERATURE condition on all
// four edges of mesh (built by BuildUnitSquareMesh), the S1/S2 boundary
// data.
func QuadraticDirichletBC(mesh *inp.Mesh) {
	bc := &inp.BoundaryCond{Kind: inp.TEMPERATURE, Fx: quadratic{}}
	tag2bc := map[int]*inp.BoundaryCond{TagBottom: bc, TagRight: bc, TagTop: bc, TagLeft: bc}
	for _, c := range mesh.Cells {
		c.SetFaceConds(tag2bc)
	}
}

// linearX implements fun.Func for f(x,y) = a·x, used to prescribe the
// exact uniaxial-strain displacement field on the boundary.
type linearX struct{ a float64 }

func (o linearX) F(t float64, x []float64) float64     { return o.a * x[0] }
func (o linearX) G(t float64, x []float64) []float64   { return []float64{o.a, 0} }
func (o linearX) H(t float64, x []float64) [][]float64 { return [][]float64{{0, 0}, {0, 0}} }

// UniaxialTranslationBC prescribes the exact constant-strain displacement
// field u_x = eps·x, u_y = 0 on all four edges of mesh (spec §8 S4): a
// linear boundary field is the mechanical analogue of property #1's patch
// test, so the FEM solution reproduces it exactly everywhere, giving a
// uniform strain eps_xx=eps, eps_yy=0 and the closed-form stress spec §8
// names.
func UniaxialTranslationBC(mesh *inp.Mesh, eps float64) {
	bc := &inp.BoundaryCond{Kind: inp.TRANSLATION, Fx: linearX{eps}, Fy: constSource{0}}
	tag2bc := map[int]*inp.BoundaryCond{TagBottom: bc, TagRight: bc, TagTop: bc, TagLeft: bc}
	for _, c := range mesh.Cells {
		c.SetFaceConds(tag2bc)
	}
}

// ScalarMatDb builds a single-material conductivity database for S1/S2:
// unit isotropic conductivity, nonlocal model per p1/kernel/radius.
func ScalarMatDb(p1 float64, influence string, radius float64) *inp.MatDb {
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

// MechanicalMatDb builds a single-material elastic database for S4.
func MechanicalMatDb(E, nu float64) *inp.MatDb {
	m := &inp.Material{
		Name: "m1", Tag: 1,
		Model:    inp.NonlocalModel{LocalWeight: 1.0},
		Physical: inp.Physical{E: E, Nu: nu},
	}
	return inp.NewMatDb([]*inp.Material{m})
}

// QuadraticSource returns the fun.Func for S1/S2's f=-4 body load.
func QuadraticSource() fun.Func { return constSource{-4} }
