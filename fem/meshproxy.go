// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/KMI020908/nonlocal/inp"
)

// jac holds a 2x2 Jacobian matrix, flattened row-major.
type jac struct{ J00, J01, J10, J11 float64 }

// MeshProxy is the immutable geometry cache built once over an inp.Mesh:
// per-element Jacobians, physical quadrature-node coordinates and physical
// shape-function gradients, plus the derived node-to-element incidence and
// material-group lookups (spec §4.2). Logically one value with the mesh it
// was built from (spec §9's ownership note) — callers borrow indices into
// it rather than holding raw pointers into its slices.
type MeshProxy struct {
	Mesh  *inp.Mesh
	MatDb *inp.MatDb

	jacs  [][]jac       // [cell][qnode]
	detJ  [][]float64   // [cell][qnode]
	xq    [][][2]float64 // [cell][qnode] physical coordinates
	gradN [][][][2]float64 // [cell][qnode][localNode] physical gradient (dN/dx,dN/dy)
	shpN  [][][]float64 // [cell][qnode][localNode] shape-function value
	wq    [][]float64   // [cell][qnode] quadrature weight

	nodeElems [][]int // [nodeId] -> cell indices incident to it
}

// NewMeshProxy builds the geometry cache. Fails fast (Numerical-kind) on
// any non-positive Jacobian determinant, per spec §7.
func NewMeshProxy(mesh *inp.Mesh, matdb *inp.MatDb) (*MeshProxy, error) {
	o := &MeshProxy{Mesh: mesh, MatDb: matdb}
	nc := len(mesh.Cells)
	o.jacs = make([][]jac, nc)
	o.detJ = make([][]float64, nc)
	o.xq = make([][][2]float64, nc)
	o.gradN = make([][][][2]float64, nc)
	o.shpN = make([][][]float64, nc)
	o.wq = make([][]float64, nc)

	for ei, c := range mesh.Cells {
		s := c.Shp
		x := mesh.Coords(c)
		nip := len(s.Ips)
		o.jacs[ei] = make([]jac, nip)
		o.detJ[ei] = make([]float64, nip)
		o.xq[ei] = make([][2]float64, nip)
		o.gradN[ei] = make([][][2]float64, nip)
		o.shpN[ei] = make([][]float64, nip)
		o.wq[ei] = make([]float64, nip)
		for q, ip := range s.Ips {
			if err := s.CalcAtIp(x, ip, true); err != nil {
				return nil, Numericalf("meshproxy: cell %d qnode %d: %v", c.Id, q, err)
			}
			o.jacs[ei][q] = jac{s.DxdR[0][0], s.DxdR[0][1], s.DxdR[1][0], s.DxdR[1][1]}
			o.detJ[ei][q] = s.J
			o.wq[ei][q] = ip[2]
			y := s.IpRealCoords(x, ip)
			o.xq[ei][q] = [2]float64{y[0], y[1]}
			grads := make([][2]float64, s.Nverts)
			vals := make([]float64, s.Nverts)
			for i := 0; i < s.Nverts; i++ {
				grads[i] = [2]float64{s.G[i][0], s.G[i][1]}
				vals[i] = s.S[i]
			}
			o.gradN[ei][q] = grads
			o.shpN[ei][q] = vals
		}
	}

	o.nodeElems = make([][]int, len(mesh.Verts))
	for ei, c := range mesh.Cells {
		for _, v := range c.Verts {
			o.nodeElems[v] = append(o.nodeElems[v], ei)
		}
	}
	return o, nil
}

// JacobiMatrix returns J(e,q) as (J00,J01,J10,J11).
func (o *MeshProxy) JacobiMatrix(e, q int) (float64, float64, float64, float64) {
	j := o.jacs[e][q]
	return j.J00, j.J01, j.J10, j.J11
}

// DetJ returns |det J(e,q)|.
func (o *MeshProxy) DetJ(e, q int) float64 { return o.detJ[e][q] }

// QuadCoord returns the physical coordinates x(e,q).
func (o *MeshProxy) QuadCoord(e, q int) (float64, float64) {
	p := o.xq[e][q]
	return p[0], p[1]
}

// Gradient returns the physical gradient (∂N_i/∂x, ∂N_i/∂y) of basis i at
// quadrature node q of element e.
func (o *MeshProxy) Gradient(e, i, q int) (float64, float64) {
	g := o.gradN[e][q][i]
	return g[0], g[1]
}

// ShapeValue returns N_i(e,q).
func (o *MeshProxy) ShapeValue(e, i, q int) float64 { return o.shpN[e][q][i] }

// QWeight returns the quadrature weight of node q of element e.
func (o *MeshProxy) QWeight(e, q int) float64 { return o.wq[e][q] }

// NodeElements returns the cell indices incident to node v.
func (o *MeshProxy) NodeElements(v int) []int { return o.nodeElems[v] }

// NumElements and NumNodes report the mesh's element and node counts.
func (o *MeshProxy) NumElements() int { return len(o.Mesh.Cells) }
func (o *MeshProxy) NumNodes() int    { return len(o.Mesh.Verts) }

// QNodesCount returns the number of volume quadrature nodes of element e.
func (o *MeshProxy) QNodesCount(e int) int { return len(o.jacs[e]) }

// Cell returns the mesh cell with index e.
func (o *MeshProxy) Cell(e int) *inp.Cell { return o.Mesh.Cells[e] }

// Material returns the material group of element e, or an error if its tag
// has no matching material (spec §7 Parameter-kind).
func (o *MeshProxy) Material(e int) (*inp.Material, error) {
	c := o.Mesh.Cells[e]
	m := o.MatDb.GetByTag(c.Tag)
	if m == nil {
		return nil, Parameterf("meshproxy: cell %d (tag %d) has no matching material group", c.Id, c.Tag)
	}
	return m, nil
}

// Elements returns every cell index tagged with the given material's tag.
func (o *MeshProxy) Elements(groupName string) []int {
	mat := o.MatDb.Get(groupName)
	if mat == nil {
		return nil
	}
	var els []int
	for ei, c := range o.Mesh.Cells {
		if c.Tag == mat.Tag {
			els = append(els, ei)
		}
	}
	return els
}
