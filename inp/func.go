// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gosl/fun"

// affine implements fun.Func for f(x,y) = a·x + b·y + c.
type affine struct{ a, b, c float64 }

func (o *affine) F(t float64, x []float64) float64 { return o.a*x[0] + o.b*x[1] + o.c }
func (o *affine) G(t float64, x []float64) []float64 {
	return []float64{o.a, o.b}
}
func (o *affine) H(t float64, x []float64) [][]float64 { return [][]float64{{0, 0}, {0, 0}} }

// radialQuadratic implements fun.Func for f(x,y) = a·(x²+y²) + c, the
// S1/S2 patch-test closed form, available to simulation files as Type
// "radial_quadratic".
type radialQuadratic struct{ a, c float64 }

func (o *radialQuadratic) F(t float64, x []float64) float64 {
	return o.a*(x[0]*x[0]+x[1]*x[1]) + o.c
}
func (o *radialQuadratic) G(t float64, x []float64) []float64 {
	return []float64{2 * o.a * x[0], 2 * o.a * x[1]}
}
func (o *radialQuadratic) H(t float64, x []float64) [][]float64 {
	return [][]float64{{2 * o.a, 0}, {0, 2 * o.a}}
}

// newFunc builds a gosl/fun.Func from a FuncDef, mirroring the teacher's
// name/Type-keyed function table (inp/func.go's FuncsData.Get).
func newFunc(fd *FuncDef) (fun.Func, error) {
	get := func(name string, dflt float64) float64 {
		for _, p := range fd.Prms {
			if p.N == name {
				return p.V
			}
		}
		return dflt
	}
	switch fd.Type {
	case "cte", "":
		return &fun.Cte{C: get("c", 0)}, nil
	case "affine":
		return &affine{a: get("a", 0), b: get("b", 0), c: get("c", 0)}, nil
	case "radial_quadratic":
		return &radialQuadratic{a: get("a", 1), c: get("c", 0)}, nil
	default:
		return nil, ErrConfigf("function %q: unknown type %q", fd.Name, fd.Type)
	}
}
