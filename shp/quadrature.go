// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// gauss1d returns the n-point Gauss-Legendre rule on [-1,1].
func gauss1d(n int) (pts, wts []float64) {
	switch n {
	case 1:
		return []float64{0}, []float64{2}
	case 2:
		const a = 0.5773502691896257645091488
		return []float64{-a, a}, []float64{1, 1}
	case 3:
		const a = 0.7745966692414833770358531
		return []float64{-a, 0, a}, []float64{5.0 / 9.0, 8.0 / 9.0, 5.0 / 9.0}
	case 4:
		const a = 0.3399810435848562648026658
		const b = 0.8611363115940525752239465
		const wa = 0.6521451548625461426269361
		const wb = 0.3478548451374538573730639
		return []float64{-b, -a, a, b}, []float64{wb, wa, wa, wb}
	case 5:
		const a = 0.5384693101056830910363144
		const b = 0.9061798459386639927976269
		const wa = 0.4786286704993664680412915
		const wb = 0.2369268850561890875142640
		const w0 = 0.5688888888888888888888889
		return []float64{-b, -a, 0, a, b}, []float64{wb, wa, w0, wa, wb}
	}
	panic("shp: unsupported Gauss-Legendre order")
}

// quadProduct builds a tensor-product quadrature rule on the reference
// square [-1,1]x[-1,1] from an n-point 1-D Gauss rule.
func quadProduct(n int) []Ipoint {
	pts, wts := gauss1d(n)
	ips := make([]Ipoint, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ips = append(ips, Ipoint{pts[i], pts[j], wts[i] * wts[j]})
		}
	}
	return ips
}

// lineRule builds an n-point Gauss rule on the reference segment [-1,1].
func lineRule(n int) []Ipoint {
	pts, wts := gauss1d(n)
	ips := make([]Ipoint, n)
	for i := range pts {
		ips[i] = Ipoint{pts[i], 0, wts[i]}
	}
	return ips
}

// triRule3 is the standard 3-point, degree-2-exact rule for triangles in
// area coordinates, expressed in (ξ,η) with ξ=L2, η=L3.
func triRule3() []Ipoint {
	const a = 1.0 / 6.0
	const b = 2.0 / 3.0
	const w = 1.0 / 6.0
	return []Ipoint{
		{a, a, w},
		{b, a, w},
		{a, b, w},
	}
}

// triRule6 is a standard 6-point, degree-4-exact symmetric rule for
// triangles (Dunavant-style), in (ξ,η)=(L2,L3): two symmetry groups, each
// the three permutations of a repeated barycentric pair, weighted so the
// six weights sum to the reference triangle's area, 1/2.
func triRule6() []Ipoint {
	const a1 = 0.0915762135097707
	const w1 = 0.1099517436553219 / 2
	const b1 = 0.4459484909159649
	const w2 = 0.2233815896780115 / 2
	return []Ipoint{
		{a1, a1, w1}, {1 - 2*a1, a1, w1}, {a1, 1 - 2*a1, w1},
		{b1, b1, w2}, {1 - 2*b1, b1, w2}, {b1, 1 - 2*b1, w2},
	}
}

// altRules maps element Type => {nip: rule} for non-default integration
// orders requested through GetIps's nip/nipf arguments.
var altRules = map[string]map[int][]Ipoint{
	"quad4":  {1: quadProduct(1), 4: quadProduct(2), 9: quadProduct(3)},
	"quad8":  {4: quadProduct(2), 9: quadProduct(3), 16: quadProduct(4)},
	"quad9":  {4: quadProduct(2), 9: quadProduct(3), 16: quadProduct(4)},
	"quad12": {9: quadProduct(3), 16: quadProduct(4), 25: quadProduct(5)},
	"tri3":   {1: []Ipoint{{1.0 / 3.0, 1.0 / 3.0, 0.5}}, 3: triRule3()},
	"tri6":   {3: triRule3(), 6: triRule6()},
	"lin2":   {1: lineRule(1), 2: lineRule(2), 3: lineRule(3)},
	"lin3":   {2: lineRule(2), 3: lineRule(3), 4: lineRule(4)},
}
