// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "github.com/cpmech/gosl/chk"

// N returns the value of basis i at quadrature node q of element kind k.
func N(k string, i, q int) float64 {
	s := factory[k]
	if s == nil {
		chk.Panic("shp: unknown element kind %q", k)
	}
	s.Func(s.S, s.DSdR, s.Ips[q], false)
	return s.S[i]
}

// Nxi returns ∂N_i/∂ξ at quadrature node q of element kind k.
func Nxi(k string, i, q int) float64 {
	s := factory[k]
	if s == nil {
		chk.Panic("shp: unknown element kind %q", k)
	}
	s.Func(s.S, s.DSdR, s.Ips[q], true)
	return s.DSdR[i][0]
}

// Neta returns ∂N_i/∂η at quadrature node q of element kind k.
func Neta(k string, i, q int) float64 {
	s := factory[k]
	if s == nil {
		chk.Panic("shp: unknown element kind %q", k)
	}
	s.Func(s.S, s.DSdR, s.Ips[q], true)
	return s.DSdR[i][1]
}

// Weight returns the quadrature weight of node q of element kind k.
func Weight(k string, q int) float64 {
	s := factory[k]
	if s == nil {
		chk.Panic("shp: unknown element kind %q", k)
	}
	return s.Ips[q][2]
}

// QNodesCount returns the number of volume quadrature nodes of element kind k.
func QNodesCount(k string) int {
	s := factory[k]
	if s == nil {
		chk.Panic("shp: unknown element kind %q", k)
	}
	return len(s.Ips)
}

// GetFaceLocalVerts returns the local vertex indices of face/edge faceId
// of the given cell type, in the order the edge's 1-D shape expects.
func GetFaceLocalVerts(cellType string, faceId int) []int {
	s := factory[cellType]
	if s == nil || faceId < 0 || faceId >= len(s.FaceLocalVerts) {
		return nil
	}
	return s.FaceLocalVerts[faceId]
}

// Kinds returns the list of registered element-kind tags.
func Kinds() []string {
	ks := make([]string, 0, len(factory))
	for k := range factory {
		ks = append(ks, k)
	}
	return ks
}
