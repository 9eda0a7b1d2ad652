// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// integrateOverDisc approximates ∫_disc(r) κ(x0,y) dy via a polar-grid
// midpoint rule centred at x0.
func integrateOverDisc(k Kernel, x0 []float64, r float64, nr, nt int) float64 {
	dr := r / float64(nr)
	dt := 2 * math.Pi / float64(nt)
	sum := 0.0
	for i := 0; i < nr; i++ {
		rr := (float64(i) + 0.5) * dr
		for j := 0; j < nt; j++ {
			th := (float64(j) + 0.5) * dt
			y := []float64{x0[0] + rr*math.Cos(th), x0[1] + rr*math.Sin(th)}
			sum += k.Eval(x0, y) * rr * dr * dt
		}
	}
	return sum
}

func TestKernelUnitMass(tst *testing.T) {
	chk.PrintTitle("KernelUnitMass")
	x0 := []float64{1.3, -0.7}
	cases := []struct {
		name string
		r    float64
		prms fun.Prms
	}{
		{"constant_2d", 0.5, nil},
		{"constant_2d", 1.7, nil},
		{"polynomial_2d", 0.5, fun.Prms{&fun.Prm{N: "a", V: 2}, &fun.Prm{N: "b", V: 1}}},
		{"polynomial_2d", 1.0, fun.Prms{&fun.Prm{N: "a", V: 4}, &fun.Prm{N: "b", V: 2}}},
		{"normal_distribution_2d", 0.8, nil},
		{"normal_distribution_2d", 1.2, fun.Prms{&fun.Prm{N: "sigma", V: 0.3}}},
	}
	for _, c := range cases {
		k, err := New(c.name, c.r, c.prms)
		if err != nil {
			tst.Fatalf("New(%s) failed: %v", c.name, err)
		}
		mass := integrateOverDisc(k, x0, c.r, 400, 800)
		chk.Scalar(tst, "mass("+c.name+")", 1e-3, mass, 1.0)
	}
}

func TestKernelSupportCutoff(tst *testing.T) {
	chk.PrintTitle("KernelSupportCutoff")
	k, err := New("constant_2d", 1.0, nil)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	chk.Scalar(tst, "outside support", 1e-17, k.Eval([]float64{0, 0}, []float64{2, 0}), 0.0)
	if k.Eval([]float64{0, 0}, []float64{0.5, 0}) <= 0.0 {
		tst.Fatalf("expected strictly positive weight inside support")
	}
}

func TestKernelUnknownName(tst *testing.T) {
	chk.PrintTitle("KernelUnknownName")
	_, err := New("bogus", 1.0, nil)
	if err == nil {
		tst.Fatalf("expected error for unknown kernel name")
	}
}
