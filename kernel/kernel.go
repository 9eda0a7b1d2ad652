// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kernel implements the nonlocal influence kernels: nonnegative,
// radially-decaying, compactly-supported scalar functions of two points
// whose integral over the support disc equals one (unit mass).
package kernel

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"gonum.org/v1/gonum/floats"
)

// Kernel evaluates the influence weight κ(x,y) between two physical points.
// Eval returns 0 for any pair farther apart than Radius.
type Kernel interface {
	Eval(x, y []float64) float64
	Radius() float64
}

// allocators holds a constructor per kernel family name, mirroring the
// msolid package's factory-of-constructors idiom.
var allocators = make(map[string]func(radius float64, prms fun.Prms) (Kernel, error))

func register(name string, alloc func(radius float64, prms fun.Prms) (Kernel, error)) {
	allocators[name] = alloc
}

// New builds the kernel named name with the given support radius and
// parameter list. name must be one of "polynomial_2d", "normal_distribution_2d"
// or "constant_2d" (spec §6).
func New(name string, radius float64, prms fun.Prms) (Kernel, error) {
	if radius <= 0 {
		return nil, chk.Err("kernel: radius must be positive, got %g", radius)
	}
	alloc, ok := allocators[name]
	if !ok {
		return nil, chk.Err("kernel: unknown influence kernel %q", name)
	}
	return alloc(radius, prms)
}

func dist(x, y []float64) float64 {
	return floats.Distance(x, y, 2)
}

// ------------------------------------------------------------- constant ---

// constantKernel is the uniform distribution over the support disc:
// κ(x,y) = 1/(π r²) for |x-y| ≤ r, 0 otherwise.
type constantKernel struct{ r, c float64 }

func (o *constantKernel) Radius() float64 { return o.r }
func (o *constantKernel) Eval(x, y []float64) float64 {
	if dist(x, y) > o.r {
		return 0
	}
	return o.c
}

func init() {
	register("constant_2d", func(r float64, prms fun.Prms) (Kernel, error) {
		return &constantKernel{r: r, c: 1.0 / (math.Pi * r * r)}, nil
	})
}

// ----------------------------------------------------------- polynomial ---

// polynomialKernel implements κ(x,y) = C·(1-(d/r)^a)^b for d=|x-y|≤r,
// normalized so that ∫_disc(r) κ dy = 1.
type polynomialKernel struct {
	r, a, b, c float64
}

func (o *polynomialKernel) Radius() float64 { return o.r }
func (o *polynomialKernel) Eval(x, y []float64) float64 {
	d := dist(x, y)
	if d > o.r {
		return 0
	}
	u := d / o.r
	return o.c * math.Pow(1-math.Pow(u, o.a), o.b)
}

// polyUnitMassConst computes C such that 2π r² C ∫0^1 (1-u^a)^b u du = 1,
// using the closed-form Beta-function value of that integral.
func polyUnitMassConst(r, a, b float64) float64 {
	I := (1.0 / a) * math.Gamma(2.0/a) * math.Gamma(b+1) / math.Gamma(2.0/a+b+1)
	return 1.0 / (2 * math.Pi * r * r * I)
}

func init() {
	register("polynomial_2d", func(r float64, prms fun.Prms) (Kernel, error) {
		a, b := 2.0, 1.0 // defaults: the classic (1-(d/r)^2) tent-like weight
		for _, p := range prms {
			switch p.N {
			case "a":
				a = p.V
			case "b":
				b = p.V
			}
		}
		if a <= 0 || b <= 0 {
			return nil, chk.Err("kernel: polynomial_2d requires a>0 and b>0, got a=%g b=%g", a, b)
		}
		return &polynomialKernel{r: r, a: a, b: b, c: polyUnitMassConst(r, a, b)}, nil
	})
}

// -------------------------------------------------------- normal (gauss) ---

// normalKernel implements a Gaussian truncated to the support disc:
// κ(x,y) = C·exp(-d²/(2σ²)) for d≤r, normalized to unit mass. σ defaults
// to r/3 (about 98.9% of the untruncated 2-D mass already lies within r).
type normalKernel struct {
	r, σ, c float64
}

func (o *normalKernel) Radius() float64 { return o.r }
func (o *normalKernel) Eval(x, y []float64) float64 {
	d := dist(x, y)
	if d > o.r {
		return 0
	}
	return o.c * math.Exp(-d*d/(2*o.σ*o.σ))
}

func init() {
	register("normal_distribution_2d", func(r float64, prms fun.Prms) (Kernel, error) {
		σ := r / 3.0
		for _, p := range prms {
			if p.N == "sigma" {
				σ = p.V
			}
		}
		if σ <= 0 {
			return nil, chk.Err("kernel: normal_distribution_2d requires sigma>0, got %g", σ)
		}
		tail := math.Exp(-r * r / (2 * σ * σ))
		c := 1.0 / (2 * math.Pi * σ * σ * (1 - tail))
		return &normalKernel{r: r, σ: σ, c: c}, nil
	})
}
