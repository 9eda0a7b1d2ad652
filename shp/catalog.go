// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// This file registers every reference-element kind the assembler
// understands: basis values, natural derivatives and a fixed quadrature
// rule sized to exactly integrate that basis's polynomial order. Each
// ShpFunc follows the (S, dSdR, r, derivs) signature declared in shp.go.

// ---------------------------------------------------------------- lin2 ---

func funcLin2(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	ξ := r[0]
	S[0] = 0.5 * (1 - ξ)
	S[1] = 0.5 * (1 + ξ)
	if !derivs {
		return
	}
	dSdR[0][0] = -0.5
	dSdR[1][0] = 0.5
}

// ---------------------------------------------------------------- lin3 ---

func funcLin3(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	ξ := r[0]
	S[0] = 0.5 * ξ * (ξ - 1)
	S[1] = 0.5 * ξ * (ξ + 1)
	S[2] = 1 - ξ*ξ
	if !derivs {
		return
	}
	dSdR[0][0] = ξ - 0.5
	dSdR[1][0] = ξ + 0.5
	dSdR[2][0] = -2 * ξ
}

// ---------------------------------------------------------------- tri3 ---

func funcTri3(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	ξ, η := r[0], r[1]
	S[0] = 1 - ξ - η
	S[1] = ξ
	S[2] = η
	if !derivs {
		return
	}
	dSdR[0][0], dSdR[0][1] = -1, -1
	dSdR[1][0], dSdR[1][1] = 1, 0
	dSdR[2][0], dSdR[2][1] = 0, 1
}

// ---------------------------------------------------------------- tri6 ---

func funcTri6(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	ξ, η := r[0], r[1]
	L1, L2, L3 := 1-ξ-η, ξ, η
	S[0] = L1 * (2*L1 - 1)
	S[1] = L2 * (2*L2 - 1)
	S[2] = L3 * (2*L3 - 1)
	S[3] = 4 * L1 * L2
	S[4] = 4 * L2 * L3
	S[5] = 4 * L3 * L1
	if !derivs {
		return
	}
	dSdR[0][0], dSdR[0][1] = -(4*L1 - 1), -(4*L1 - 1)
	dSdR[1][0], dSdR[1][1] = 4*L2-1, 0
	dSdR[2][0], dSdR[2][1] = 0, 4*L3-1
	dSdR[3][0], dSdR[3][1] = 4*(L1-L2), -4*L2
	dSdR[4][0], dSdR[4][1] = 4*L3, 4*L2
	dSdR[5][0], dSdR[5][1] = -4*L3, 4*(L1-L3)
}

// --------------------------------------------------------------- quad4 ---

var quad4Nodes = [][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

func funcQuad4(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	ξ, η := r[0], r[1]
	for i, n := range quad4Nodes {
		ξi, ηi := n[0], n[1]
		S[i] = 0.25 * (1 + ξi*ξ) * (1 + ηi*η)
		if derivs {
			dSdR[i][0] = 0.25 * ξi * (1 + ηi*η)
			dSdR[i][1] = 0.25 * ηi * (1 + ξi*ξ)
		}
	}
}

// --------------------------------------------------------------- quad8 ---
// serendipity 8-node quad; node order: 4 corners then 4 midsides
// (0,-1),(1,0),(0,1),(-1,0) matching edges {0-1},{1-2},{2-3},{3-0}.

var quad8Corners = [][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
var quad8Mids = [][2]float64{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

func funcQuad8(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	ξ, η := r[0], r[1]
	for i, n := range quad8Corners {
		ξi, ηi := n[0], n[1]
		S[i] = 0.25 * (1 + ξi*ξ) * (1 + ηi*η) * (ξi*ξ + ηi*η - 1)
		if derivs {
			dSdR[i][0] = 0.25 * ξi * (1 + ηi*η) * (2*ξi*ξ + ηi*η) // product rule, see below
			dSdR[i][1] = 0.25 * ηi * (1 + ξi*ξ) * (ξi*ξ + 2*ηi*η)
		}
	}
	for k, n := range quad8Mids {
		i := 4 + k
		ξi, ηi := n[0], n[1]
		if ξi == 0 {
			S[i] = 0.5 * (1 - ξ*ξ) * (1 + ηi*η)
			if derivs {
				dSdR[i][0] = -ξ * (1 + ηi*η)
				dSdR[i][1] = 0.5 * ηi * (1 - ξ*ξ)
			}
		} else {
			S[i] = 0.5 * (1 + ξi*ξ) * (1 - η*η)
			if derivs {
				dSdR[i][0] = 0.5 * ξi * (1 - η*η)
				dSdR[i][1] = -η * (1 + ξi*ξ)
			}
		}
	}
}

// --------------------------------------------------------------- quad9 ---
// bi-quadratic Lagrange 9-node quad; node order: 4 corners, 4 midsides,
// 1 center (matches quad8's corner/midside layout plus node 8 = center).

func lagr1d(t, ti float64) float64 {
	if ti == 0 {
		return 1 - t*t
	}
	return 0.5 * ti * t * (1 + ti*t)
}

func dlagr1d(t, ti float64) float64 {
	if ti == 0 {
		return -2 * t
	}
	return 0.5*ti*(1+ti*t) + 0.5*ti*t*ti
}

var quad9Nodes = [][2]float64{
	{-1, -1}, {1, -1}, {1, 1}, {-1, 1},
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
	{0, 0},
}

func funcQuad9(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	ξ, η := r[0], r[1]
	for i, n := range quad9Nodes {
		ξi, ηi := n[0], n[1]
		Lξ, Lη := lagr1d(ξ, ξi), lagr1d(η, ηi)
		S[i] = Lξ * Lη
		if derivs {
			dSdR[i][0] = dlagr1d(ξ, ξi) * Lη
			dSdR[i][1] = Lξ * dlagr1d(η, ηi)
		}
	}
}

// -------------------------------------------------------------- quad12 ---
// cubic serendipity with the non-negativity shape parameter p (default
// CubicSerendipityP = -1/2), grounded on the closed-form basis given in
// original_source's qubic_serendipity.hpp. Node order follows that file's
// numbering: corners at 0,3,6,9; two mid-edge nodes per side in between.

var quad12Corners = []struct {
	i, ξi, ηi int
}{
	{0, -1, -1}, {3, 1, -1}, {6, 1, 1}, {9, -1, 1},
}

// mid-edge nodes: {index, fixed-axis ("xi" or "eta"), fixed value ±1/3, other axis sign ±1}
var quad12Mids = []struct {
	i       int
	onXAxis bool    // true: varies along ξ at fixed η=etaSign (node's xi is ±1/3)
	third   float64 // the ±1/3 coordinate
	sign    float64 // the ±1 coordinate on the other axis
}{
	{1, true, -1.0 / 3.0, -1},
	{2, true, 1.0 / 3.0, -1},
	{4, false, -1.0 / 3.0, 1},
	{5, false, 1.0 / 3.0, 1},
	{7, true, 1.0 / 3.0, 1},
	{8, true, -1.0 / 3.0, 1},
	{10, false, 1.0 / 3.0, -1},
	{11, false, -1.0 / 3.0, -1},
}

func funcQuad12(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	ξ, η := r[0], r[1]
	p := CubicSerendipityP

	for _, c := range quad12Corners {
		ξi, ηi := float64(c.ξi), float64(c.ηi)
		a := 1 + ξi*ξ
		b := 1 + ηi*η
		bracket := 9*(ξ*ξ+η*η) + (18*p+9)*(ξi*ξ*ηi*η-ξi*ξ-ηi*η) + 18*p - 1
		S[c.i] = a * b * bracket / 32
		if derivs {
			dBracketDξ := 18*ξ + (18*p+9)*(ξi*ηi*η-ξi)
			dBracketDη := 18*η + (18*p+9)*(ξi*ηi*ξ-ηi)
			dSdR[c.i][0] = (ξi*b*bracket + a*b*dBracketDξ) / 32
			dSdR[c.i][1] = (a*ηi*bracket + a*b*dBracketDη) / 32
		}
	}

	for _, m := range quad12Mids {
		if m.onXAxis {
			// node varies along xi at xi_i=m.third, fixed eta_i=m.sign
			ξi, ηi := m.third, m.sign
			bracket := 18*ξi*ξ + (2*p+1)*ηi*η + 1 - 2*p
			one := 1 + ηi*η
			S[m.i] = (9.0 / 64.0) * (1 - ξ*ξ) * one * bracket
			if derivs {
				dSdR[m.i][0] = (9.0 / 64.0) * (-2 * ξ * one * bracket + (1-ξ*ξ)*one*18*ξi)
				dSdR[m.i][1] = (9.0 / 64.0) * ((1-ξ*ξ)*ηi*bracket + (1-ξ*ξ)*one*(2*p+1)*ηi)
			}
		} else {
			ηi, ξi := m.third, m.sign
			bracket := 18*ηi*η + (2*p+1)*ξi*ξ + 1 - 2*p
			one := 1 + ξi*ξ
			S[m.i] = (9.0 / 64.0) * (1 - η*η) * one * bracket
			if derivs {
				dSdR[m.i][1] = (9.0 / 64.0) * (-2 * η * one * bracket + (1-η*η)*one*18*ηi)
				dSdR[m.i][0] = (9.0 / 64.0) * ((1-η*η)*ξi*bracket + (1-η*η)*one*(2*p+1)*ξi)
			}
		}
	}
}

// ---------------------------------------------------------- registration ---

func init() {
	register(&Shape{
		Type: "lin2", Func: funcLin2, Gndim: 1, Nverts: 2, VtkCode: 3,
		NatCoords: [][]float64{{-1}, {1}},
		Ips:       lineRule(2),
	})
	register(&Shape{
		Type: "lin3", Func: funcLin3, Gndim: 1, Nverts: 3, VtkCode: 21,
		NatCoords: [][]float64{{-1}, {1}, {0}},
		Ips:       lineRule(3),
	})
	register(&Shape{
		Type: "tri3", Func: funcTri3, FaceType: "lin2", FaceFunc: funcLin2,
		Gndim: 2, Nverts: 3, VtkCode: 5,
		FaceNvertsMax:  2,
		FaceLocalVerts: [][]int{{0, 1}, {1, 2}, {2, 0}},
		NatCoords:      [][]float64{{0, 0}, {1, 0}, {0, 1}},
		Ips:            triRule3(), IpsFace: lineRule(2),
	})
	register(&Shape{
		Type: "tri6", Func: funcTri6, FaceType: "lin3", FaceFunc: funcLin3,
		Gndim: 2, Nverts: 6, VtkCode: 22,
		FaceNvertsMax:  3,
		FaceLocalVerts: [][]int{{0, 1, 3}, {1, 2, 4}, {2, 0, 5}},
		NatCoords:      [][]float64{{0, 0}, {1, 0}, {0, 1}, {0.5, 0}, {0.5, 0.5}, {0, 0.5}},
		Ips:            triRule6(), IpsFace: lineRule(3),
	})
	register(&Shape{
		Type: "quad4", Func: funcQuad4, FaceType: "lin2", FaceFunc: funcLin2,
		Gndim: 2, Nverts: 4, VtkCode: 9,
		FaceNvertsMax:  2,
		FaceLocalVerts: [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
		NatCoords:      [][]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}},
		Ips:            quadProduct(2), IpsFace: lineRule(2),
	})
	register(&Shape{
		Type: "quad8", Func: funcQuad8, FaceType: "lin3", FaceFunc: funcLin3,
		Gndim: 2, Nverts: 8, VtkCode: 23,
		FaceNvertsMax:  3,
		FaceLocalVerts: [][]int{{0, 1, 4}, {1, 2, 5}, {2, 3, 6}, {3, 0, 7}},
		NatCoords: [][]float64{
			{-1, -1}, {1, -1}, {1, 1}, {-1, 1},
			{0, -1}, {1, 0}, {0, 1}, {-1, 0},
		},
		Ips: quadProduct(3), IpsFace: lineRule(3),
	})
	register(&Shape{
		Type: "quad9", Func: funcQuad9, FaceType: "lin3", FaceFunc: funcLin3,
		Gndim: 2, Nverts: 9, VtkCode: 28,
		FaceNvertsMax:  3,
		FaceLocalVerts: [][]int{{0, 1, 4}, {1, 2, 5}, {2, 3, 6}, {3, 0, 7}},
		NatCoords: [][]float64{
			{-1, -1}, {1, -1}, {1, 1}, {-1, 1},
			{0, -1}, {1, 0}, {0, 1}, {-1, 0},
			{0, 0},
		},
		Ips: quadProduct(3), IpsFace: lineRule(3),
	})
	register(&Shape{
		Type: "quad12", Func: funcQuad12, FaceType: "lin2", FaceFunc: funcLin2,
		Gndim: 2, Nverts: 12, VtkCode: 23, // VTK has no dedicated cubic-serendipity code; exported as quadratic for visualization
		FaceNvertsMax:  4,
		FaceLocalVerts: [][]int{{0, 1, 2, 3}, {3, 4, 5, 6}, {6, 7, 8, 9}, {9, 10, 11, 0}},
		NatCoords: [][]float64{
			{-1, -1}, {-1.0 / 3.0, -1}, {1.0 / 3.0, -1}, {1, -1},
			{1, -1.0 / 3.0}, {1, 1.0 / 3.0}, {1, 1}, {1.0 / 3.0, 1},
			{-1.0 / 3.0, 1}, {-1, 1}, {-1, 1.0 / 3.0}, {-1, -1.0 / 3.0},
		},
		Ips: quadProduct(4), IpsFace: lineRule(3),
	})
}
