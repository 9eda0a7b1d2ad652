// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// triMoment is the closed-form integral of ξ^p η^q over the reference
// triangle with vertices (0,0),(1,0),(0,1): p!q!/(p+q+2)!.
func triMoment(p, q int) float64 {
	return fact(p) * fact(q) / fact(p+q+2)
}

func fact(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

func quadMoment(rule []Ipoint, p, q int) float64 {
	sum := 0.0
	for _, ip := range rule {
		xi, eta, w := ip[0], ip[1], ip[2]
		sum += w * math.Pow(xi, float64(p)) * math.Pow(eta, float64(q))
	}
	return sum
}

// Test_triRule6_exactness checks that triRule6 integrates every monomial
// ξ^p η^q of total degree ≤ 4 exactly, as a degree-4 rule must.
func Test_triRule6_exactness(tst *testing.T) {
	chk.PrintTitle("triRule6 exactness")
	rule := triRule6()
	for p := 0; p <= 4; p++ {
		for q := 0; q <= 4-p; q++ {
			got := quadMoment(rule, p, q)
			want := triMoment(p, q)
			chk.Scalar(tst, "moment", 1e-12, got, want)
		}
	}
}

// Test_triRule3_exactness is the analogous degree-2 check for triRule3.
func Test_triRule3_exactness(tst *testing.T) {
	chk.PrintTitle("triRule3 exactness")
	rule := triRule3()
	for p := 0; p <= 2; p++ {
		for q := 0; q <= 2-p; q++ {
			got := quadMoment(rule, p, q)
			want := triMoment(p, q)
			chk.Scalar(tst, "moment", 1e-12, got, want)
		}
	}
}
