// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shp implements the shape-function catalog: reference-element
// basis values and derivatives at fixed quadrature nodes, for every
// element kind the assembler understands.
package shp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Ipoint is an integration (quadrature) point: {ξ, η, weight}.
type Ipoint = []float64

// ShpFunc evaluates shape-function values (and, if derivs, their natural
// derivatives) of every basis of a reference element at r.
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool)

// Shape holds one reference element's geometry and scratchpad data.
type Shape struct {
	// geometry
	Type           string      // e.g. "tri3", "quad9"
	Func           ShpFunc     // volume shape/derivs callback
	FaceType       string      // geometry of the face/edge; e.g. "quad8" => "lin3"
	FaceFunc       ShpFunc     // face (1-D edge) shape/derivs callback
	Gndim          int         // dimension of this shape's geometry (2 for area elements, 1 for edges)
	Nverts         int         // number of vertices/nodes
	VtkCode        int         // VTK cell-type code
	FaceNvertsMax  int         // max number of vertices on a face
	FaceLocalVerts [][]int     // local vertex indices per face, ordered
	NatCoords      [][]float64 // [Nverts][Gndim] natural coordinates of nodes
	Ips            []Ipoint    // default volume quadrature rule
	IpsFace        []Ipoint    // default face (edge) quadrature rule

	// scratchpad: volume
	S    []float64   // [Nverts] shape function values
	G    [][]float64 // [Nverts][Gndim] physical gradients (dS/dx)
	DSdR [][]float64 // [Nverts][Gndim] natural derivatives (dS/dr)
	DxdR [][]float64 // [Gndim][Gndim] Jacobian dx/dr
	DRdx [][]float64 // [Gndim][Gndim] inverse Jacobian dr/dx
	J    float64     // det(DxdR)

	// scratchpad: face (1-D edge embedded in 2-D)
	Sf     []float64   // [FaceNvertsMax] face shape values
	DSfdRf [][]float64 // [FaceNvertsMax][1] face natural derivatives
	Fnvec  []float64   // [2] outward normal scaled by |dxf/dr|
}

// GetCopy returns an independent copy of o, safe to hand to a distinct
// goroutine (each worker gets its own scratchpad).
func (o *Shape) GetCopy() *Shape {
	p := &Shape{
		Type: o.Type, Func: o.Func, FaceType: o.FaceType, FaceFunc: o.FaceFunc,
		Gndim: o.Gndim, Nverts: o.Nverts, VtkCode: o.VtkCode,
		FaceNvertsMax: o.FaceNvertsMax, FaceLocalVerts: o.FaceLocalVerts,
		NatCoords: o.NatCoords, Ips: o.Ips, IpsFace: o.IpsFace,
	}
	p.initScratchpad()
	return p
}

func (o *Shape) initScratchpad() {
	o.S = make([]float64, o.Nverts)
	o.DSdR = la.MatAlloc(o.Nverts, o.Gndim)
	o.DxdR = la.MatAlloc(o.Gndim, o.Gndim)
	o.DRdx = la.MatAlloc(o.Gndim, o.Gndim)
	o.G = la.MatAlloc(o.Nverts, o.Gndim)
	if o.FaceNvertsMax > 0 {
		o.Sf = make([]float64, o.FaceNvertsMax)
		o.DSfdRf = la.MatAlloc(o.FaceNvertsMax, 1)
		o.Fnvec = make([]float64, 2)
	}
}

// factory holds every registered Shape, keyed by Type.
var factory = make(map[string]*Shape)

// register adds s to the catalog. Called from package init only.
func register(s *Shape) {
	s.initScratchpad()
	factory[s.Type] = s
}

// Get returns the catalog Shape for geoType, or a private copy when
// goroutineId > 0 so concurrent assembly workers don't share scratchpad.
func Get(geoType string, goroutineId int) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	if goroutineId > 0 {
		return s.GetCopy()
	}
	return s
}

// IpRealCoords returns the physical coordinates of an integration point.
func (o *Shape) IpRealCoords(x [][]float64, ip Ipoint) []float64 {
	y := make([]float64, len(x))
	o.Func(o.S, o.DSdR, ip, false)
	for i := range x {
		for m := 0; m < o.Nverts; m++ {
			y[i] += o.S[m] * x[i][m]
		}
	}
	return y
}

// CalcAtIp computes S, DSdR and, if derivs, DxdR, J, DRdx and G=dS/dx
// at integration point ip, given the element's nodal coordinates x[ndim][nverts].
func (o *Shape) CalcAtIp(x [][]float64, ip Ipoint, derivs bool) (err error) {
	o.Func(o.S, o.DSdR, ip, derivs)
	if !derivs {
		return
	}

	// DxdR[i][j] = sum_n x[i][n] * DSdR[n][j]
	for i := 0; i < len(x); i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DxdR[i][j] = 0
			for n := 0; n < o.Nverts; n++ {
				o.DxdR[i][j] += x[i][n] * o.DSdR[n][j]
			}
		}
	}

	o.J, err = la.MatInv(o.DRdx, o.DxdR, MinDet)
	if err != nil {
		return chk.Err("shp: %s: cannot invert Jacobian: %v", o.Type, err)
	}
	if o.J <= 0 {
		return chk.Err("shp: %s: non-positive Jacobian determinant J=%g", o.Type, o.J)
	}

	// G = DSdR * DRdx
	la.MatMul(o.G, 1, o.DSdR, o.DRdx)
	return
}

// CalcAtFaceIp computes Sf and the (unnormalized) outward normal Fnvec at
// a face integration point, given the face's local vertex indices and the
// full element's nodal coordinates.
func (o *Shape) CalcAtFaceIp(x [][]float64, ipf Ipoint, idxface int) (err error) {
	if o.Gndim == 1 {
		return
	}
	o.FaceFunc(o.Sf, o.DSfdRf, ipf, true)

	var dxf0, dxf1 float64
	for k, n := range o.FaceLocalVerts[idxface] {
		dxf0 += x[0][n] * o.DSfdRf[k][0]
		dxf1 += x[1][n] * o.DSfdRf[k][0]
	}
	// outward normal of a CCW-ordered boundary: rotate tangent by -90deg
	o.Fnvec[0] = dxf1
	o.Fnvec[1] = -dxf0
	return
}

// GetIps returns this shape's default volume and face quadrature rules,
// optionally overridden by nip/nipf (0 => use the shape's default).
func (o *Shape) GetIps(nip, nipf int) (ips, ipsFace []Ipoint, err error) {
	ips = o.Ips
	if nip > 0 {
		r, ok := altRules[o.Type][nip]
		if !ok {
			return nil, nil, chk.Err("shp: %s: no quadrature rule with nip=%d", o.Type, nip)
		}
		ips = r
	}
	ipsFace = o.IpsFace
	if nipf > 0 && o.FaceType != "" {
		r, ok := altRules[o.FaceType][nipf]
		if !ok {
			return nil, nil, chk.Err("shp: %s: no face quadrature rule with nipf=%d", o.FaceType, nipf)
		}
		ipsFace = r
	}
	return
}
